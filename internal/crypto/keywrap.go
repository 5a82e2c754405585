package crypto

import (
	"crypto/rand"
	"crypto/rsa"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// pkcs1v15Overhead is the minimum padding RSAES-PKCS1-v1_5 adds to a block.
const pkcs1v15Overhead = 11

// MaxWrapSize is the largest plaintext WrapKey accepts for pub: 117 bytes for
// a 1024-bit modulus.
func MaxWrapSize(pub *rsa.PublicKey) int {
	return pub.Size() - pkcs1v15Overhead
}

// WrapKey encrypts plaintext to pub with RSAES-PKCS1-v1_5 and returns base64.
// Plaintext over MaxWrapSize fails with ErrMessageTooLong; nothing is truncated.
func WrapKey(plaintext []byte, pub *rsa.PublicKey) (string, error) {
	const op = "rsa wrap"

	if pub == nil {
		return "", domain.NewError(domain.ErrKeyMaterial, op, errors.New("nil public key"))
	}
	if limit := MaxWrapSize(pub); len(plaintext) > limit {
		return "", domain.NewError(domain.ErrCryptoOperation, op,
			errors.Wrapf(domain.ErrMessageTooLong, "%d bytes exceeds limit of %d", len(plaintext), limit))
	}
	ct, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
	if err != nil {
		return "", domain.NewError(domain.ErrCryptoOperation, op, errors.WithStack(err))
	}
	return B64(ct), nil
}

// UnwrapKey reverses WrapKey. The ciphertext must be exactly one block.
func UnwrapKey(wrapped string, priv *rsa.PrivateKey) ([]byte, error) {
	const op = "rsa unwrap"

	if priv == nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.New("nil private key"))
	}
	ct, err := FromB64(wrapped)
	if err != nil {
		return nil, err
	}
	if len(ct) != priv.Size() {
		return nil, domain.NewError(domain.ErrCryptoOperation, op,
			errors.Errorf("wrapped key is %d bytes, want %d", len(ct), priv.Size()))
	}
	pt, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ct)
	if err != nil {
		return nil, domain.NewError(domain.ErrCryptoOperation, op, errors.WithStack(err))
	}
	return pt, nil
}

// DecryptBlocks decrypts ciphertext made of one or more modulus-sized
// RSAES-PKCS1-v1_5 blocks and concatenates the plaintexts. The gateway splits
// long messages this way.
func DecryptBlocks(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	const op = "rsa decrypt"

	if priv == nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, errors.New("nil private key"))
	}
	k := priv.Size()
	if len(ciphertext) == 0 || len(ciphertext)%k != 0 {
		return nil, domain.NewError(domain.ErrCryptoOperation, op,
			errors.Errorf("ciphertext length %d is not a positive multiple of %d", len(ciphertext), k))
	}

	out := make([]byte, 0, len(ciphertext)/k*(k-pkcs1v15Overhead))
	for i := 0; i < len(ciphertext); i += k {
		pt, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext[i:i+k])
		if err != nil {
			return nil, domain.NewError(domain.ErrCryptoOperation, op,
				errors.Wrapf(err, "block %d", i/k))
		}
		out = append(out, pt...)
	}
	return out, nil
}
