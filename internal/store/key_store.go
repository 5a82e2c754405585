package store

import (
	"crypto/rsa"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/crypto"
	"payseal/internal/domain"
)

// File names inside the keys directory. The gateway pair keeps the
// gateway's own naming.
var keyFiles = map[domain.KeyRole]string{
	domain.RolePartnerPrivate: "partner_private.pem",
	domain.RolePartnerPublic:  "partner_public.pem",
	domain.RoleGatewayPublic:  "paytend_public.pem",
	domain.RoleGatewayPrivate: "paytend_private.pem",
}

const (
	privateMode = 0o600
	publicMode  = 0o644
)

// KeyFileStore reads and writes the PEM key set under one directory.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyFileStore returns a store rooted at dir. The directory is not
// touched until a method is called.
func NewKeyFileStore(dir string) *KeyFileStore { return &KeyFileStore{dir: dir} }

var _ domain.KeyStore = (*KeyFileStore)(nil)

// Path returns the file that holds role.
func (s *KeyFileStore) Path(role domain.KeyRole) string {
	return filepath.Join(s.dir, keyFiles[role])
}

// LoadKeyMaterial parses the key files and validates them as a set.
// passphrase decrypts encrypted private keys and may be empty. The gateway
// private key is optional; every other file must exist and parse.
func (s *KeyFileStore) LoadKeyMaterial(passphrase string) (*domain.KeyMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partnerPriv, err := s.loadPrivate(domain.RolePartnerPrivate, passphrase, true)
	if err != nil {
		return nil, err
	}
	partnerPub, err := s.loadPublic(domain.RolePartnerPublic)
	if err != nil {
		return nil, err
	}
	gatewayPub, err := s.loadPublic(domain.RoleGatewayPublic)
	if err != nil {
		return nil, err
	}
	gatewayPriv, err := s.loadPrivate(domain.RoleGatewayPrivate, passphrase, false)
	if err != nil {
		return nil, err
	}

	km, err := domain.NewKeyMaterial(partnerPriv, partnerPub, gatewayPub, gatewayPriv)
	if err != nil {
		return nil, err
	}

	if fp, err := crypto.Fingerprint(partnerPub); err == nil {
		log.Debug().Str("partnerKey", fp.String()).Msg("partner key loaded")
	}
	if fp, err := crypto.Fingerprint(gatewayPub); err == nil {
		log.Debug().
			Str("gatewayKey", fp.String()).
			Bool("gatewayPrivate", km.HasGatewayPrivate()).
			Msg("gateway key loaded")
	}
	return km, nil
}

// SaveKeyPair writes priv and its public half under owner's file names.
// Existing files are only replaced when overwrite is set.
func (s *KeyFileStore) SaveKeyPair(owner domain.KeyOwner, priv *rsa.PrivateKey, overwrite bool) error {
	const op = "save key pair"

	privRole, pubRole, err := rolesFor(owner)
	if err != nil {
		return domain.NewError(domain.ErrKeyMaterial, op, err)
	}
	if priv == nil {
		return domain.NewError(domain.ErrKeyMaterial, op, errors.New("nil private key"))
	}
	pubPEM, err := crypto.MarshalPublicKeyPEM(&priv.PublicKey)
	if err != nil {
		return err
	}
	privPEM := crypto.MarshalPrivateKeyPEM(priv)
	defer crypto.Wipe(privPEM)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return domain.NewError(domain.ErrKeyMaterial, op, errors.WithStack(err))
	}
	if !overwrite {
		for _, role := range []domain.KeyRole{privRole, pubRole} {
			if _, err := os.Stat(s.Path(role)); err == nil {
				return domain.NewError(domain.ErrKeyMaterial, op,
					errors.Errorf("%s already exists", s.Path(role)))
			}
		}
	}
	if err := writeFile(s.Path(privRole), privPEM, privateMode); err != nil {
		return domain.NewError(domain.ErrKeyMaterial, op, err)
	}
	if err := writeFile(s.Path(pubRole), pubPEM, publicMode); err != nil {
		return domain.NewError(domain.ErrKeyMaterial, op, err)
	}

	log.Info().Str("owner", owner.String()).Str("dir", s.dir).Msg("key pair written")
	return nil
}

func rolesFor(owner domain.KeyOwner) (priv, pub domain.KeyRole, err error) {
	switch owner {
	case domain.OwnerPartner:
		return domain.RolePartnerPrivate, domain.RolePartnerPublic, nil
	case domain.OwnerGateway:
		return domain.RoleGatewayPrivate, domain.RoleGatewayPublic, nil
	default:
		return "", "", errors.Errorf("unknown key owner %q", owner)
	}
}

func (s *KeyFileStore) loadPrivate(role domain.KeyRole, passphrase string, required bool) (*rsa.PrivateKey, error) {
	data, err := s.read(role, required)
	if err != nil || data == nil {
		return nil, err
	}
	key, err := crypto.ParsePrivateKeyPEM(data, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, s.Path(role))
	}
	return key, nil
}

func (s *KeyFileStore) loadPublic(role domain.KeyRole) (*rsa.PublicKey, error) {
	data, err := s.read(role, true)
	if err != nil {
		return nil, err
	}
	key, err := crypto.ParsePublicKeyPEM(data)
	if err != nil {
		return nil, errors.Wrap(err, s.Path(role))
	}
	return key, nil
}

func (s *KeyFileStore) read(role domain.KeyRole, required bool) ([]byte, error) {
	const op = "load key material"

	data, err := readFile(s.Path(role))
	if err != nil {
		return nil, domain.NewError(domain.ErrKeyMaterial, op, err)
	}
	if data == nil && required {
		return nil, domain.NewError(domain.ErrKeyMaterial, op,
			errors.Errorf("%s not found (%s)", s.Path(role), role))
	}
	return data, nil
}
