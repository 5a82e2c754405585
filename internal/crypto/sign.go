package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// SignSHA256 signs content with RSASSA-PKCS1-v1_5 over SHA-256 and returns the
// base64 signature. The gateway verifies with exactly this scheme.
func SignSHA256(priv *rsa.PrivateKey, content string) (string, error) {
	const op = "rsa sign"

	if priv == nil {
		return "", domain.NewError(domain.ErrKeyMaterial, op, errors.New("nil private key"))
	}
	digest := sha256.Sum256([]byte(content))
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, stdcrypto.SHA256, digest[:])
	if err != nil {
		return "", domain.NewError(domain.ErrCryptoOperation, op, errors.WithStack(err))
	}
	return B64(sig), nil
}

// VerifySHA256 reports whether signature is a valid base64 SignSHA256
// signature of content under pub. Malformed input verifies as false.
func VerifySHA256(pub *rsa.PublicKey, content, signature string) bool {
	if pub == nil {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	digest := sha256.Sum256([]byte(content))
	return rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], sig) == nil
}
