package domain

import (
	"crypto/rsa"

	"github.com/pkg/errors"
)

// KeyMaterial holds the RSA keys loaded once at startup. It is immutable after
// construction and safe to share between goroutines; callers must treat the
// returned keys as read-only.
type KeyMaterial struct {
	partnerPrivate *rsa.PrivateKey
	partnerPublic  *rsa.PublicKey
	gatewayPublic  *rsa.PublicKey
	gatewayPrivate *rsa.PrivateKey
}

// NewKeyMaterial validates and bundles the key set. gatewayPrivate is optional
// and only present in sandbox setups.
func NewKeyMaterial(
	partnerPrivate *rsa.PrivateKey,
	partnerPublic *rsa.PublicKey,
	gatewayPublic *rsa.PublicKey,
	gatewayPrivate *rsa.PrivateKey,
) (*KeyMaterial, error) {
	const op = "new key material"

	if partnerPrivate == nil {
		return nil, NewError(ErrKeyMaterial, op, errors.New("partner private key is required"))
	}
	if partnerPublic == nil {
		return nil, NewError(ErrKeyMaterial, op, errors.New("partner public key is required"))
	}
	if gatewayPublic == nil {
		return nil, NewError(ErrKeyMaterial, op, errors.New("gateway public key is required"))
	}
	if !partnerPublic.Equal(&partnerPrivate.PublicKey) {
		return nil, NewError(ErrKeyMaterial, op, errors.New("partner public key does not match partner private key"))
	}
	if gatewayPrivate != nil && !gatewayPublic.Equal(&gatewayPrivate.PublicKey) {
		return nil, NewError(ErrKeyMaterial, op, errors.New("gateway public key does not match gateway private key"))
	}

	return &KeyMaterial{
		partnerPrivate: partnerPrivate,
		partnerPublic:  partnerPublic,
		gatewayPublic:  gatewayPublic,
		gatewayPrivate: gatewayPrivate,
	}, nil
}

// PartnerPrivate signs outgoing envelopes and decrypts inbound data.
func (k *KeyMaterial) PartnerPrivate() *rsa.PrivateKey { return k.partnerPrivate }

// PartnerPublic verifies our own signatures.
func (k *KeyMaterial) PartnerPublic() *rsa.PublicKey { return k.partnerPublic }

// GatewayPublic wraps session keys and verifies gateway signatures.
func (k *KeyMaterial) GatewayPublic() *rsa.PublicKey { return k.gatewayPublic }

// GatewayPrivate is nil unless a sandbox key pair was loaded.
func (k *KeyMaterial) GatewayPrivate() *rsa.PrivateKey { return k.gatewayPrivate }

// HasGatewayPrivate reports whether envelopes we sent can be opened locally.
func (k *KeyMaterial) HasGatewayPrivate() bool { return k.gatewayPrivate != nil }
