package signer

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/protocol/canonical"
	"payseal/internal/protocol/envelope"
)

// Service implements domain.RequestSigner. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	keys      *domain.KeyMaterial
	sessions  domain.SessionKeySource
	partnerID string
}

// New constructs a signer for partnerID. keys and sessions must be non-nil.
func New(keys *domain.KeyMaterial, sessions domain.SessionKeySource, partnerID string) *Service {
	return &Service{keys: keys, sessions: sessions, partnerID: partnerID}
}

var _ domain.RequestSigner = (*Service)(nil)

// BuildEnvelope seals req.Payload into a wire envelope. Every failure is
// reported as ErrBuildEnvelope with the underlying kind still reachable.
func (s *Service) BuildEnvelope(req domain.SignRequest) (*domain.Envelope, error) {
	env, err := s.build(req)
	if err != nil {
		log.Error().Err(err).Str("requestId", req.RequestID).Msg("envelope build failed")
		return nil, domain.NewError(domain.ErrBuildEnvelope, "build envelope", err)
	}
	log.Debug().
		Str("requestId", env.RequestID).
		Str("partnerId", env.PartnerID).
		Msg("envelope sealed")
	return env, nil
}

func (s *Service) build(req domain.SignRequest) (*domain.Envelope, error) {
	if s.keys == nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, "signer", errors.New("no key material"))
	}
	if s.partnerID == "" {
		return nil, domain.NewError(domain.ErrConfig, "signer", errors.New("partnerId is required"))
	}

	bizData, err := payloadJSON(req.Payload)
	if err != nil {
		return nil, err
	}

	sessionKey, err := s.sessions.SessionKey()
	if err != nil {
		return nil, errors.Wrap(err, "session key")
	}
	defer crypto.Wipe(sessionKey)

	return envelope.Seal(
		domain.PlainEnvelope{
			EnvelopeHeader: domain.EnvelopeHeader{
				RequestID: req.RequestID,
				PartnerID: s.partnerID,
				SignType:  domain.SignTypeRSA,
				Version:   domain.ProtocolVersion,
			},
			BizData: bizData,
		},
		sessionKey,
		s.keys.PartnerPrivate(),
		s.keys.GatewayPublic(),
	)
}

// payloadJSON renders the payload as canonical compact JSON. The payload must
// be a JSON object.
func payloadJSON(payload any) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	switch p := payload.(type) {
	case nil:
		return nil, domain.NewError(domain.ErrEncoding, "payload", errors.New("payload is required"))
	case json.RawMessage:
		raw, err = canonical.Compact(p)
	case []byte:
		raw, err = canonical.Compact(p)
	default:
		raw, err = canonical.JSON(p)
	}
	if err != nil {
		return nil, errors.Wrap(err, "payload")
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, domain.NewError(domain.ErrEncoding, "payload", errors.New("payload must be a JSON object"))
	}
	return raw, nil
}
