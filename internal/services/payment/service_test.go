package payment_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/services/decryptor"
	"payseal/internal/services/payment"
	"payseal/internal/services/signer"
	"payseal/internal/testutil"
)

type fakeGateway struct {
	got  []*domain.Envelope
	resp *domain.GatewayResponse
	err  error
}

func (f *fakeGateway) CreatePayment(_ context.Context, env *domain.Envelope) (*domain.GatewayResponse, error) {
	f.got = append(f.got, env)
	return f.resp, f.err
}

const (
	partnerID  = "312006000004128"
	merchantID = "312006000003933"
)

func validRequest() domain.PaymentLinkRequest {
	return domain.PaymentLinkRequest{
		RequestID: "88866600010020117253477607681610",
		OrderNo:   "stringstringstri",
		Amount:    json.Number("100"),
		Currency:  "EUR",
		CardType:  10,
		Email:     "test@test.com",
	}
}

func newService(t *testing.T, gw domain.GatewayClient) *payment.Service {
	t.Helper()
	src, err := crypto.NewFixedSessionKey(testutil.FixedSessionKey)
	require.NoError(t, err)
	return payment.New(signer.New(testutil.KeyMaterial(t, false), src, partnerID), gw, merchantID)
}

func TestCreatePaymentLink(t *testing.T) {
	gw := &fakeGateway{resp: &domain.GatewayResponse{Status: 200, Body: json.RawMessage(`{"code":"0000"}`)}}
	svc := newService(t, gw)

	resp, err := svc.CreatePaymentLink(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, 200, resp.Status)
	require.Len(t, gw.got, 1)

	env := gw.got[0]
	require.Equal(t, "88866600010020117253477607681610", env.RequestID)
	require.Equal(t, partnerID, env.PartnerID)

	plain, err := decryptor.New(testutil.KeyMaterial(t, true)).InspectRequest(env)
	require.NoError(t, err)
	require.Equal(t,
		`{"merchantId":"312006000003933","orderNo":"stringstringstri","amount":100,"currency":"EUR","cardType":10,"email":"test@test.com"}`,
		string(plain.BizData))
}

func TestBuildPaymentEnvelope_MatchesGolden(t *testing.T) {
	env, err := newService(t, &fakeGateway{}).BuildPaymentEnvelope(validRequest())
	require.NoError(t, err)
	require.Equal(t,
		"S1exb+Hqe89dYrFFM5IZpABZhBSrmTmR2YX6/zVz4zcspBJsNYMDG5MqFyvYsHwNpG/vkXCi75i49zVbsNlKX6cGD73aeT2NjQr8gKCup7279GZRUbVEf/GVI07bq6hXiSUX+glSZMb6Mc0nHwQaJPMCV4sGHcWJ6GjPWjljKfk=",
		env.Signature)
}

func TestBuildPaymentEnvelope_OptionalFields(t *testing.T) {
	req := validRequest()
	req.GoodsDesc = "T-shirt <blue> & cap"
	req.NotifyURL = "https://merchant.example/notify?a=1&b=2"
	req.ReturnURL = "https://merchant.example/return"

	env, err := newService(t, &fakeGateway{}).BuildPaymentEnvelope(req)
	require.NoError(t, err)

	plain, err := decryptor.New(testutil.KeyMaterial(t, true)).InspectRequest(env)
	require.NoError(t, err)
	require.Contains(t, string(plain.BizData), `"goodsDesc":"T-shirt <blue> & cap"`)
	require.Contains(t, string(plain.BizData), `"notifyUrl":"https://merchant.example/notify?a=1&b=2"`)
}

func TestBuildPaymentEnvelope_GeneratesRequestID(t *testing.T) {
	req := validRequest()
	req.RequestID = ""

	svc := newService(t, &fakeGateway{})
	a, err := svc.BuildPaymentEnvelope(req)
	require.NoError(t, err)
	b, err := svc.BuildPaymentEnvelope(req)
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), a.RequestID)
	require.NotEqual(t, a.RequestID, b.RequestID)
}

func TestNewRequestID(t *testing.T) {
	require.Regexp(t, `^[0-9a-f]{32}$`, payment.NewRequestID())
}

func TestBuildPaymentEnvelope_Validation(t *testing.T) {
	cases := map[string]func(r *domain.PaymentLinkRequest){
		"zero amount":        func(r *domain.PaymentLinkRequest) { r.Amount = "0" },
		"zero decimal":       func(r *domain.PaymentLinkRequest) { r.Amount = "0.00" },
		"negative amount":    func(r *domain.PaymentLinkRequest) { r.Amount = "-5" },
		"exponent amount":    func(r *domain.PaymentLinkRequest) { r.Amount = "1e3" },
		"leading zero":       func(r *domain.PaymentLinkRequest) { r.Amount = "010" },
		"missing amount":     func(r *domain.PaymentLinkRequest) { r.Amount = "" },
		"lowercase currency": func(r *domain.PaymentLinkRequest) { r.Currency = "eur" },
		"long currency":      func(r *domain.PaymentLinkRequest) { r.Currency = "EURO" },
		"missing order":      func(r *domain.PaymentLinkRequest) { r.OrderNo = "" },
		"missing email":      func(r *domain.PaymentLinkRequest) { r.Email = "" },
		"bad email":          func(r *domain.PaymentLinkRequest) { r.Email = "nobody" },
		"bad notify url":     func(r *domain.PaymentLinkRequest) { r.NotifyURL = "not a url" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &fakeGateway{}
			req := validRequest()
			mutate(&req)

			_, err := newService(t, gw).CreatePaymentLink(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrCreatePaymentLink)
			require.ErrorIs(t, err, payment.ErrInvalidRequest)
			require.Empty(t, gw.got)
		})
	}
}

func TestBuildPaymentEnvelope_AcceptsDecimals(t *testing.T) {
	for _, amount := range []string{"0.01", "12.50", "100.0", "999999"} {
		req := validRequest()
		req.Amount = json.Number(amount)
		_, err := newService(t, &fakeGateway{}).BuildPaymentEnvelope(req)
		require.NoError(t, err, amount)
	}
}

func TestCreatePaymentLink_MissingMerchant(t *testing.T) {
	src, err := crypto.NewFixedSessionKey(testutil.FixedSessionKey)
	require.NoError(t, err)
	svc := payment.New(signer.New(testutil.KeyMaterial(t, false), src, partnerID), &fakeGateway{}, "")

	_, err = svc.CreatePaymentLink(context.Background(), validRequest())
	require.ErrorIs(t, err, payment.ErrInvalidRequest)
}

func TestCreatePaymentLink_GatewayError(t *testing.T) {
	cause := errors.New("connection refused")
	svc := newService(t, &fakeGateway{err: cause})

	_, err := svc.CreatePaymentLink(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrCreatePaymentLink)
	require.ErrorIs(t, err, cause)
}

func TestCreatePaymentLink_SignerError(t *testing.T) {
	svc := payment.New(signer.New(nil, crypto.RandomSessionKeys{}, partnerID), &fakeGateway{}, merchantID)

	_, err := svc.CreatePaymentLink(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrCreatePaymentLink)
	require.ErrorIs(t, err, domain.ErrBuildEnvelope)
	require.ErrorIs(t, err, domain.ErrKeyMaterial)
}
