package crypto

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// RandomSessionKeys draws a fresh key per envelope. The zero value reads
// crypto/rand and is safe for concurrent use.
type RandomSessionKeys struct {
	Reader io.Reader
}

// SessionKey returns SessionKeySize random bytes.
func (r RandomSessionKeys) SessionKey() ([]byte, error) {
	src := r.Reader
	if src == nil {
		src = rand.Reader
	}
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(src, key); err != nil {
		return nil, domain.NewError(domain.ErrCryptoOperation, "session key", errors.WithStack(err))
	}
	return key, nil
}

// FixedSessionKey returns the same key for every envelope so that output is
// reproducible. It must only be wired in sandbox mode.
type FixedSessionKey struct {
	key []byte
}

// NewFixedSessionKey decodes a base64 key of SessionKeySize bytes.
func NewFixedSessionKey(encoded string) (*FixedSessionKey, error) {
	key, err := FromB64(encoded)
	if err != nil {
		return nil, err
	}
	if len(key) != SessionKeySize {
		return nil, domain.NewError(domain.ErrKeyMaterial, "fixed session key",
			errors.Errorf("want %d bytes, got %d", SessionKeySize, len(key)))
	}
	return &FixedSessionKey{key: key}, nil
}

// SessionKey returns a copy so callers may wipe it.
func (f *FixedSessionKey) SessionKey() ([]byte, error) {
	return bytes.Clone(f.key), nil
}

var (
	_ domain.SessionKeySource = RandomSessionKeys{}
	_ domain.SessionKeySource = (*FixedSessionKey)(nil)
)
