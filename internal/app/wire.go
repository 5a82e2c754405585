package app

import (
	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/gateway"
	"payseal/internal/services/decryptor"
	"payseal/internal/services/payment"
	"payseal/internal/services/signer"
)

// Wire bundles the services built on top of a loaded key set.
type Wire struct {
	Keys      *domain.KeyMaterial
	Signer    domain.RequestSigner
	Decryptor domain.ResponseDecryptor
	Gateway   domain.GatewayClient
	Payments  domain.PaymentService
}

// NewWire loads key material from ks and constructs the dependency graph.
func NewWire(cfg Config, ks domain.KeyStore) (*Wire, error) {
	keys, err := ks.LoadKeyMaterial(cfg.KeyPassphrase)
	if err != nil {
		return nil, err
	}

	sessions, err := SessionKeySource(cfg)
	if err != nil {
		return nil, err
	}

	gc := gateway.NewHTTP(cfg.BaseURL, cfg.HTTPTimeout)
	sg := signer.New(keys, sessions, cfg.PartnerID)

	return &Wire{
		Keys:      keys,
		Signer:    sg,
		Decryptor: decryptor.New(keys),
		Gateway:   gc,
		Payments:  payment.New(sg, gc, cfg.MerchantID),
	}, nil
}

// SessionKeySource picks random keys unless a sandbox fixed key is set.
func SessionKeySource(cfg Config) (domain.SessionKeySource, error) {
	if cfg.FixedSessionKey == "" {
		return crypto.RandomSessionKeys{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return crypto.NewFixedSessionKey(cfg.FixedSessionKey)
}
