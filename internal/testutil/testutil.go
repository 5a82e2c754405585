// Package testutil provides fixed RSA fixtures for tests.
//
// The keys under keys/ are 1024-bit test keys and must never be used outside
// tests. "partner" signs, "gateway" receives, "other" is an unrelated pair for
// mismatch cases.
package testutil

import (
	"crypto/rsa"
	"embed"
	"testing"

	"payseal/internal/crypto"
	"payseal/internal/domain"
)

//go:embed keys/*.pem
var keyFiles embed.FS

// FixedSessionKey is the reproducible session key used by golden tests.
const FixedSessionKey = "dM4B1HjIZcJskATkjxhqhA=="

// KeyPassphrase decrypts keys/partner_private_encrypted.pem.
const KeyPassphrase = "correct-horse"

// PEM returns the raw bytes of keys/<name>.pem.
func PEM(t testing.TB, name string) []byte {
	t.Helper()
	b, err := keyFiles.ReadFile("keys/" + name + ".pem")
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return b
}

// PrivateKey parses keys/<owner>_private.pem.
func PrivateKey(t testing.TB, owner string) *rsa.PrivateKey {
	t.Helper()
	key, err := crypto.ParsePrivateKeyPEM(PEM(t, owner+"_private"), "")
	if err != nil {
		t.Fatalf("parse %s private key: %v", owner, err)
	}
	return key
}

// PublicKey parses keys/<owner>_public.pem.
func PublicKey(t testing.TB, owner string) *rsa.PublicKey {
	t.Helper()
	key, err := crypto.ParsePublicKeyPEM(PEM(t, owner+"_public"))
	if err != nil {
		t.Fatalf("parse %s public key: %v", owner, err)
	}
	return key
}

// KeyMaterial returns the partner/gateway key set. withGatewayPrivate controls
// whether the sandbox-only gateway private key is included.
func KeyMaterial(t testing.TB, withGatewayPrivate bool) *domain.KeyMaterial {
	t.Helper()
	var gatewayPriv *rsa.PrivateKey
	if withGatewayPrivate {
		gatewayPriv = PrivateKey(t, "gateway")
	}
	km, err := domain.NewKeyMaterial(
		PrivateKey(t, "partner"),
		PublicKey(t, "partner"),
		PublicKey(t, "gateway"),
		gatewayPriv,
	)
	if err != nil {
		t.Fatalf("NewKeyMaterial: %v", err)
	}
	return km
}

// KeyMaterialFor returns a key set whose partner pair is keys/<partner>_*.pem,
// addressed to the fixture gateway. It builds envelopes the gateway will not
// attribute to the fixture partner.
func KeyMaterialFor(t testing.TB, partner string) *domain.KeyMaterial {
	t.Helper()
	km, err := domain.NewKeyMaterial(
		PrivateKey(t, partner),
		PublicKey(t, partner),
		PublicKey(t, "gateway"),
		nil,
	)
	if err != nil {
		t.Fatalf("NewKeyMaterial: %v", err)
	}
	return km
}
