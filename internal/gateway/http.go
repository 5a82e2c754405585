package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/domain"
)

// PaymentPath is the create-payment endpoint relative to the base URL.
const PaymentPath = "/wave/payment"

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 1 << 20

// HTTPClient posts envelopes to the gateway.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base with the given request timeout. A zero
// timeout means none.
func NewHTTP(base string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
	}
}

var _ domain.GatewayClient = (*HTTPClient)(nil)

// StatusError reports a non-2xx answer from the gateway.
type StatusError struct {
	Method string
	URL    string
	Status string
	Code   int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway %s %s: %s", strings.ToLower(e.Method), e.URL, e.Status)
}

// CreatePayment posts env and returns the gateway's answer.
func (c *HTTPClient) CreatePayment(ctx context.Context, env *domain.Envelope) (*domain.GatewayResponse, error) {
	if env == nil {
		return nil, domain.NewError(domain.ErrEncoding, "create payment", errors.New("nil envelope"))
	}
	resp, err := c.post(ctx, PaymentPath, env)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("requestId", env.RequestID).
		Int("status", resp.Status).
		Msg("payment request accepted")
	return resp, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in any) (*domain.GatewayResponse, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, errors.WithStack(err)
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "gateway post %s", u)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "gateway post %s: read body", u)
	}
	if resp.StatusCode/100 != 2 {
		log.Warn().Str("url", u).Int("status", resp.StatusCode).Msg("gateway rejected request")
		return nil, &StatusError{
			Method: http.MethodPost,
			URL:    u,
			Status: resp.Status,
			Code:   resp.StatusCode,
			Body:   body,
		}
	}
	return &domain.GatewayResponse{Status: resp.StatusCode, Body: rawBody(body)}, nil
}

func (c *HTTPClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// rawBody keeps JSON bodies as-is and quotes anything else so the result is
// always valid JSON.
func rawBody(b []byte) json.RawMessage {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	if json.Valid(b) {
		return b
	}
	quoted, _ := json.Marshal(string(b))
	return quoted
}
