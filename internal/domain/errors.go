package domain

import (
	"github.com/pkg/errors"
)

// Failure kinds. Classify with errors.Is.
var (
	// ErrKeyMaterial covers missing, malformed or mismatched key files.
	ErrKeyMaterial = errors.New("key material error")
	// ErrEncoding covers invalid base64 or UTF-8 at a boundary.
	ErrEncoding = errors.New("encoding error")
	// ErrCryptoOperation covers cipher, signature and RSA failures.
	ErrCryptoOperation = errors.New("crypto operation failed")
	// ErrConfig covers identity settings a component was built without.
	ErrConfig = errors.New("invalid configuration")

	ErrMessageTooLong    = errors.New("message too long for RSA key size")
	ErrSignatureMismatch = errors.New("signature verification failed")

	ErrBuildEnvelope     = errors.New("failed to build envelope")
	ErrDecrypt           = errors.New("failed to decrypt")
	ErrCreatePaymentLink = errors.New("failed to create payment link")
)

// Error ties a failure to its kind and the operation that produced it.
// Both Kind and Err are reachable through errors.Is and errors.As.
type Error struct {
	Kind error
	Op   string
	Err  error
}

// NewError returns an *Error, or nil when kind is nil.
func NewError(kind error, op string, err error) error {
	if kind == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
