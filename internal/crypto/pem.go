package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"

	"payseal/internal/domain"
)

// MinKeyBits is the smallest modulus GenerateKeyPair will produce.
const MinKeyBits = 1024

// ParsePrivateKeyPEM parses a PKCS#1 or PKCS#8 RSA private key. Legacy
// encrypted PEM ("Proc-Type: 4,ENCRYPTED") is decrypted with passphrase.
func ParsePrivateKeyPEM(data []byte, passphrase string) (*rsa.PrivateKey, error) {
	const op = "parse private key"

	raw, err := ssh.ParseRawPrivateKey(data)
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		if passphrase == "" {
			return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.New("key is encrypted and no passphrase was given"))
		}
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(data, []byte(passphrase))
	}
	if err != nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.WithStack(err))
	}

	key, ok := raw.(*rsa.PrivateKey)
	if !ok {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.Errorf("expected RSA key, got %T", raw))
	}
	return key, nil
}

// ParsePublicKeyPEM parses a PKIX ("PUBLIC KEY") or PKCS#1 ("RSA PUBLIC KEY")
// RSA public key.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	const op = "parse public key"

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.New("no PEM block found"))
	}

	switch block.Type {
	case "PUBLIC KEY":
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.WithStack(err))
		}
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.Errorf("expected RSA key, got %T", pub))
		}
		return key, nil
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.WithStack(err))
		}
		return key, nil
	default:
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.Errorf("unexpected PEM block %q", block.Type))
	}
}

// GenerateKeyPair creates an RSA key of the given size.
func GenerateKeyPair(bits int) (*rsa.PrivateKey, error) {
	if bits < MinKeyBits {
		return nil, domain.NewError(domain.ErrKeyMaterial, "generate key",
			errors.Errorf("key size %d is below %d bits", bits, MinKeyBits))
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, domain.NewError(domain.ErrCryptoOperation, "generate key", errors.WithStack(err))
	}
	return key, nil
}

// MarshalPrivateKeyPEM encodes priv as PKCS#1 "RSA PRIVATE KEY".
func MarshalPrivateKeyPEM(priv *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})
}

// MarshalPublicKeyPEM encodes pub as PKIX "PUBLIC KEY".
func MarshalPublicKeyPEM(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, "marshal public key", errors.WithStack(err))
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
