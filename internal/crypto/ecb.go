package crypto

import (
	"crypto/aes"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// SessionKeySize is the raw session key length. The gateway expects AES-128,
// keyed with the base64-decoded randomKey text.
const SessionKeySize = 16

// EncryptECB encrypts plaintext with AES-128-ECB and PKCS#7 padding and
// returns the base64 ciphertext. Identical plaintext blocks produce identical
// ciphertext blocks; the gateway requires this mode.
func EncryptECB(plaintext, key []byte) (string, error) {
	const op = "aes-ecb encrypt"

	if len(key) != SessionKeySize {
		return "", domain.NewError(domain.ErrCryptoOperation, op,
			errors.Errorf("key must be %d bytes, got %d", SessionKeySize, len(key)))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", domain.NewError(domain.ErrCryptoOperation, op, errors.WithStack(err))
	}

	bs := block.BlockSize()
	padded := pkcs7Pad(plaintext, bs)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		block.Encrypt(out[i:i+bs], padded[i:i+bs])
	}
	return B64(out), nil
}

// DecryptECB reverses EncryptECB.
func DecryptECB(ciphertext string, key []byte) ([]byte, error) {
	const op = "aes-ecb decrypt"

	ct, err := FromB64(ciphertext)
	if err != nil {
		return nil, err
	}
	if len(key) != SessionKeySize {
		return nil, domain.NewError(domain.ErrCryptoOperation, op,
			errors.Errorf("key must be %d bytes, got %d", SessionKeySize, len(key)))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, domain.NewError(domain.ErrCryptoOperation, op, errors.WithStack(err))
	}

	bs := block.BlockSize()
	if len(ct) == 0 || len(ct)%bs != 0 {
		return nil, domain.NewError(domain.ErrCryptoOperation, op,
			errors.Errorf("ciphertext length %d is not a positive multiple of %d", len(ct), bs))
	}
	out := make([]byte, len(ct))
	for i := 0; i < len(ct); i += bs {
		block.Decrypt(out[i:i+bs], ct[i:i+bs])
	}

	pt, err := pkcs7Unpad(out, bs)
	if err != nil {
		return nil, domain.NewError(domain.ErrCryptoOperation, op, err)
	}
	return pt, nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	for i := 0; i < n; i++ {
		out = append(out, byte(n))
	}
	return out
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, errors.New("bad padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errors.New("bad padding")
		}
	}
	return b[:len(b)-n], nil
}
