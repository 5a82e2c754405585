package domain

import (
	"context"
	"crypto/rsa"
)

// SessionKeySource yields the symmetric key for a single envelope.
type SessionKeySource interface {
	SessionKey() ([]byte, error)
}

// KeyStore loads and persists PEM key files.
type KeyStore interface {
	LoadKeyMaterial(passphrase string) (*KeyMaterial, error)
	SaveKeyPair(owner KeyOwner, priv *rsa.PrivateKey, overwrite bool) error
}

// RequestSigner turns a request into a sealed envelope.
type RequestSigner interface {
	BuildEnvelope(req SignRequest) (*Envelope, error)
}

// ResponseDecryptor recovers data sent to us under our own public key.
type ResponseDecryptor interface {
	DecryptByPrivateKey(ciphertext []byte) (string, error)
	DecryptBase64(ciphertext string) (string, error)
	OpenResponse(env *Envelope) (*PlainEnvelope, error)
	InspectRequest(env *Envelope) (*PlainEnvelope, error)
}

// GatewayClient posts envelopes to the payment gateway.
type GatewayClient interface {
	CreatePayment(ctx context.Context, env *Envelope) (*GatewayResponse, error)
}

// PaymentService is the create-payment-link use case.
type PaymentService interface {
	BuildPaymentEnvelope(req PaymentLinkRequest) (*Envelope, error)
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*GatewayResponse, error)
}
