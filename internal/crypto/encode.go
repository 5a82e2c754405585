package crypto

import (
	"encoding/base64"

	"github.com/pkg/errors"

	"payseal/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// FromB64 decodes standard base64. Failures are ErrEncoding.
func FromB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, domain.NewError(domain.ErrEncoding, "base64 decode", errors.WithStack(err))
	}
	return b, nil
}
