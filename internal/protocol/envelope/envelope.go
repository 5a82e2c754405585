package envelope

import (
	"crypto/rsa"
	"encoding/json"

	"github.com/pkg/errors"

	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/protocol/canonical"
)

// Wire names of the signed fields.
const (
	FieldRequestID = "requestId"
	FieldPartnerID = "partnerId"
	FieldSignType  = "signType"
	FieldVersion   = "version"
	FieldRandomKey = "randomKey"
	FieldBizData   = "bizData"
)

// Fields returns the signed field set of an envelope in its plaintext state.
func Fields(h domain.EnvelopeHeader, randomKey string, bizData json.RawMessage) map[string]any {
	return map[string]any{
		FieldRequestID: h.RequestID,
		FieldPartnerID: h.PartnerID,
		FieldSignType:  h.SignType,
		FieldVersion:   h.Version,
		FieldRandomKey: randomKey,
		FieldBizData:   bizData,
	}
}

// SigningString is the canonical string signed for p when randomKey carries
// the base64 session key.
func SigningString(p domain.PlainEnvelope, randomKey string) (string, error) {
	return canonical.String(Fields(p.EnvelopeHeader, randomKey, p.BizData))
}

// Seal signs and encrypts p. sessionKey is the raw AES-128 key; the caller
// owns it and should wipe it afterwards.
func Seal(
	p domain.PlainEnvelope,
	sessionKey []byte,
	signer *rsa.PrivateKey,
	recipient *rsa.PublicKey,
) (*domain.Envelope, error) {
	if len(sessionKey) != crypto.SessionKeySize {
		return nil, domain.NewError(domain.ErrCryptoOperation, "seal",
			errors.Errorf("session key must be %d bytes, got %d", crypto.SessionKeySize, len(sessionKey)))
	}
	if p.RequestID == "" {
		return nil, domain.NewError(domain.ErrEncoding, "seal", errors.New("requestId is required"))
	}
	bizData, err := canonical.Compact(p.BizData)
	if err != nil {
		return nil, errors.Wrap(err, "bizData")
	}
	p.BizData = bizData

	keyText := crypto.B64(sessionKey)

	signingString, err := SigningString(p, keyText)
	if err != nil {
		return nil, errors.Wrap(err, "canonicalize")
	}
	signature, err := crypto.SignSHA256(signer, signingString)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}

	encrypted, err := crypto.EncryptECB(bizData, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt bizData")
	}

	wrapped, err := crypto.WrapKey([]byte(keyText), recipient)
	if err != nil {
		return nil, errors.Wrap(err, "wrap randomKey")
	}

	return &domain.Envelope{
		EnvelopeHeader: p.EnvelopeHeader,
		RandomKey:      wrapped,
		BizData:        encrypted,
		Signature:      signature,
	}, nil
}

// Open decrypts env with the recipient's private key and verifies it against
// the signer's public key.
func Open(env *domain.Envelope, recipient *rsa.PrivateKey, signer *rsa.PublicKey) (*domain.PlainEnvelope, error) {
	if env == nil {
		return nil, domain.NewError(domain.ErrEncoding, "open", errors.New("nil envelope"))
	}
	if env.SignType != domain.SignTypeRSA {
		return nil, domain.NewError(domain.ErrCryptoOperation, "open",
			errors.Errorf("unsupported signType %q", env.SignType))
	}

	keyText, err := crypto.UnwrapKey(env.RandomKey, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "unwrap randomKey")
	}
	defer crypto.Wipe(keyText)

	sessionKey, err := crypto.FromB64(string(keyText))
	if err != nil {
		return nil, errors.Wrap(err, "decode randomKey")
	}
	defer crypto.Wipe(sessionKey)

	bizData, err := crypto.DecryptECB(env.BizData, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt bizData")
	}
	if !json.Valid(bizData) {
		return nil, domain.NewError(domain.ErrEncoding, "open", errors.New("bizData is not valid JSON"))
	}

	plain := &domain.PlainEnvelope{EnvelopeHeader: env.EnvelopeHeader, BizData: bizData}
	signingString, err := SigningString(*plain, string(keyText))
	if err != nil {
		return nil, errors.Wrap(err, "canonicalize")
	}
	if !crypto.VerifySHA256(signer, signingString, env.Signature) {
		return nil, domain.NewError(domain.ErrCryptoOperation, "open", domain.ErrSignatureMismatch)
	}
	return plain, nil
}
