package sandbox_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/gateway"
	"payseal/internal/sandbox"
	"payseal/internal/services/decryptor"
	"payseal/internal/services/payment"
	"payseal/internal/services/signer"
	"payseal/internal/testutil"
)

func setup(t *testing.T) (*httptest.Server, *payment.Service) {
	t.Helper()
	keys := testutil.KeyMaterial(t, true)
	srv := httptest.NewServer(sandbox.New(decryptor.New(keys), "https://pay.sandbox.test"))
	t.Cleanup(srv.Close)

	sg := signer.New(keys, crypto.RandomSessionKeys{}, "312006000004128")
	svc := payment.New(sg, gateway.NewHTTP(srv.URL, 5*time.Second), "312006000003933")
	return srv, svc
}

func request(id string) domain.PaymentLinkRequest {
	return domain.PaymentLinkRequest{
		RequestID: id,
		OrderNo:   "order-" + id,
		Amount:    json.Number("12.50"),
		Currency:  "EUR",
		CardType:  10,
		Email:     "buyer@example.com",
	}
}

func TestSandbox_EndToEnd(t *testing.T) {
	srv, svc := setup(t)

	resp, err := svc.CreatePaymentLink(context.Background(), request("abc123"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)

	var res struct {
		Code string              `json:"code"`
		Data sandbox.PaymentLink `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &res))
	require.Equal(t, sandbox.CodeSuccess, res.Code)
	require.Equal(t, "https://pay.sandbox.test/pay/abc123", res.Data.PayURL)

	got, err := http.Get(srv.URL + "/wave/payment/abc123")
	require.NoError(t, err)
	defer got.Body.Close()
	require.Equal(t, http.StatusOK, got.StatusCode)

	var stored struct {
		Data struct {
			RequestID string          `json:"requestId"`
			BizData   json.RawMessage `json:"bizData"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(got.Body).Decode(&stored))
	require.Equal(t, "abc123", stored.Data.RequestID)
	require.JSONEq(t,
		`{"merchantId":"312006000003933","orderNo":"order-abc123","amount":12.50,"currency":"EUR","cardType":10,"email":"buyer@example.com"}`,
		string(stored.Data.BizData))
}

func TestSandbox_DuplicateRequestID(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.CreatePaymentLink(context.Background(), request("dup"))
	require.NoError(t, err)

	_, err = svc.CreatePaymentLink(context.Background(), request("dup"))
	var se *gateway.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusConflict, se.Code)
	require.Contains(t, string(se.Body), sandbox.CodeDuplicateRequest)
}

func TestSandbox_ForgedSignature(t *testing.T) {
	srv, _ := setup(t)

	// Signed by a key the sandbox does not know as the partner.
	forged := signer.New(testutil.KeyMaterialFor(t, "other"), crypto.RandomSessionKeys{}, "312006000004128")
	env, err := forged.BuildEnvelope(domain.SignRequest{RequestID: "f-1", Payload: map[string]any{"orderNo": "x"}})
	require.NoError(t, err)

	_, err = gateway.NewHTTP(srv.URL, 5*time.Second).CreatePayment(context.Background(), env)
	var se *gateway.StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusBadRequest, se.Code)
	require.Contains(t, string(se.Body), sandbox.CodeSignatureMismatch)
}

func TestSandbox_Malformed(t *testing.T) {
	srv, _ := setup(t)

	resp, err := http.Post(srv.URL+"/wave/payment", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	missing, err := http.Get(srv.URL + "/wave/payment/nope")
	require.NoError(t, err)
	defer missing.Body.Close()
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}
