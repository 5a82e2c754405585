package crypto

import (
	"crypto/rsa"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"

	"payseal/internal/domain"
)

// Fingerprint returns the OpenSSH-style fingerprint ("SHA256:...") of pub.
func Fingerprint(pub *rsa.PublicKey) (domain.Fingerprint, error) {
	if pub == nil {
		return "", domain.NewError(domain.ErrKeyMaterial, "fingerprint", errors.New("nil public key"))
	}
	k, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", domain.NewError(domain.ErrKeyMaterial, "fingerprint", errors.WithStack(err))
	}
	return domain.Fingerprint(ssh.FingerprintSHA256(k)), nil
}
