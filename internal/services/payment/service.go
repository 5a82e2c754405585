package payment

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/domain"
)

// ErrInvalidRequest marks caller input that failed validation.
var ErrInvalidRequest = errors.New("invalid payment request")

// Service implements domain.PaymentService.
type Service struct {
	signer     domain.RequestSigner
	gateway    domain.GatewayClient
	merchantID string
	validate   *validator.Validate
	newID      func() string
}

// New constructs a payment service for merchantID.
func New(signer domain.RequestSigner, gateway domain.GatewayClient, merchantID string) *Service {
	return &Service{
		signer:     signer,
		gateway:    gateway,
		merchantID: merchantID,
		validate:   newValidator(),
		newID:      NewRequestID,
	}
}

var _ domain.PaymentService = (*Service)(nil)

// NewRequestID returns a random 32-character hex id.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BuildPaymentEnvelope validates req and seals it without contacting the
// gateway.
func (s *Service) BuildPaymentEnvelope(req domain.PaymentLinkRequest) (*domain.Envelope, error) {
	env, err := s.build(req)
	if err != nil {
		return nil, domain.NewError(domain.ErrCreatePaymentLink, "build payment envelope", err)
	}
	return env, nil
}

// CreatePaymentLink seals req and posts it. The gateway's answer is returned
// unchanged.
func (s *Service) CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (*domain.GatewayResponse, error) {
	const op = "create payment link"

	env, err := s.build(req)
	if err != nil {
		return nil, domain.NewError(domain.ErrCreatePaymentLink, op, err)
	}
	resp, err := s.gateway.CreatePayment(ctx, env)
	if err != nil {
		log.Error().Err(err).Str("requestId", env.RequestID).Msg("payment link request failed")
		return nil, domain.NewError(domain.ErrCreatePaymentLink, op, err)
	}
	return resp, nil
}

func (s *Service) build(req domain.PaymentLinkRequest) (*domain.Envelope, error) {
	if s.merchantID == "" {
		return nil, errors.Wrap(ErrInvalidRequest, "merchantId is not configured")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Wrap(ErrInvalidRequest, describe(err))
	}
	if req.RequestID == "" {
		req.RequestID = s.newID()
	}

	payload := domain.SensitivePayload{
		MerchantID: s.merchantID,
		OrderNo:    req.OrderNo,
		Amount:     req.Amount,
		Currency:   req.Currency,
		CardType:   req.CardType,
		Email:      req.Email,
		GoodsDesc:  req.GoodsDesc,
		NotifyURL:  req.NotifyURL,
		ReturnURL:  req.ReturnURL,
	}
	log.Debug().Str("requestId", req.RequestID).Msg("building payment envelope")

	return s.signer.BuildEnvelope(domain.SignRequest{RequestID: req.RequestID, Payload: payload})
}
