package decryptor

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/protocol/envelope"
)

// Service implements domain.ResponseDecryptor over a fixed key set.
type Service struct {
	keys *domain.KeyMaterial
}

// New constructs a decryptor. keys must be non-nil.
func New(keys *domain.KeyMaterial) *Service {
	return &Service{keys: keys}
}

var _ domain.ResponseDecryptor = (*Service)(nil)

// DecryptByPrivateKey decrypts ciphertext produced under the partner public
// key. The plaintext must be UTF-8.
func (s *Service) DecryptByPrivateKey(ciphertext []byte) (string, error) {
	const op = "decrypt by private key"

	pt, err := crypto.DecryptBlocks(ciphertext, s.keys.PartnerPrivate())
	if err != nil {
		return "", domain.NewError(domain.ErrDecrypt, op, err)
	}
	if !utf8.Valid(pt) {
		crypto.Wipe(pt)
		return "", domain.NewError(domain.ErrDecrypt, op,
			domain.NewError(domain.ErrEncoding, "utf-8", errors.New("plaintext is not valid UTF-8")))
	}
	return string(pt), nil
}

// DecryptBase64 is DecryptByPrivateKey for base64 transports.
func (s *Service) DecryptBase64(ciphertext string) (string, error) {
	raw, err := crypto.FromB64(ciphertext)
	if err != nil {
		return "", domain.NewError(domain.ErrDecrypt, "decrypt base64", err)
	}
	return s.DecryptByPrivateKey(raw)
}

// OpenResponse opens an envelope the gateway sealed for us.
func (s *Service) OpenResponse(env *domain.Envelope) (*domain.PlainEnvelope, error) {
	plain, err := envelope.Open(env, s.keys.PartnerPrivate(), s.keys.GatewayPublic())
	if err != nil {
		return nil, domain.NewError(domain.ErrDecrypt, "open response", err)
	}
	log.Debug().Str("requestId", plain.RequestID).Msg("response opened")
	return plain, nil
}

// InspectRequest opens one of our own outbound envelopes. It needs the
// sandbox gateway private key.
func (s *Service) InspectRequest(env *domain.Envelope) (*domain.PlainEnvelope, error) {
	const op = "inspect request"

	if !s.keys.HasGatewayPrivate() {
		return nil, domain.NewError(domain.ErrDecrypt, op,
			domain.NewError(domain.ErrKeyMaterial, op, errors.New("gateway private key not loaded")))
	}
	plain, err := envelope.Open(env, s.keys.GatewayPrivate(), s.keys.PartnerPublic())
	if err != nil {
		return nil, domain.NewError(domain.ErrDecrypt, op, err)
	}
	return plain, nil
}
