package app

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"payseal/internal/crypto"
)

// Environment variables backing the CLI flags.
const (
	EnvBaseURL         = "PAYTEND_BASE_URL"
	EnvPartnerID       = "PAYSEAL_PARTNER_ID"
	EnvMerchantID      = "PAYSEAL_MERCHANT_ID"
	EnvKeysDir         = "PAYSEAL_KEYS_DIR"
	EnvKeyPassphrase   = "PAYSEAL_KEY_PASSPHRASE"
	EnvSandbox         = "PAYSEAL_SANDBOX"
	EnvFixedSessionKey = "PAYSEAL_FIXED_SESSION_KEY"
	EnvHTTPTimeout     = "PAYSEAL_HTTP_TIMEOUT"
	EnvLogLevel        = "PAYSEAL_LOG_LEVEL"
)

const (
	DefaultBaseURL     = "https://sandbox-api.paytend.com"
	DefaultKeysDir     = "./keys"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLogLevel    = "info"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseURL    string // gateway base URL, e.g. https://sandbox-api.paytend.com
	PartnerID  string
	MerchantID string

	KeysDir       string
	KeyPassphrase string // decrypts encrypted private key PEMs; may be empty

	// Sandbox enables test-only behaviour: the fixed session key and
	// opening our own envelopes with the gateway private key.
	Sandbox         bool
	FixedSessionKey string // base64 AES-128 key; sandbox only

	HTTPTimeout time.Duration
	LogLevel    string
	LogJSON     bool
}

// FromEnv returns a Config populated from the environment, with defaults for
// anything unset. Malformed booleans and durations are errors.
func FromEnv() (Config, error) {
	cfg := Config{
		BaseURL:         getenv(EnvBaseURL, DefaultBaseURL),
		PartnerID:       getenv(EnvPartnerID, ""),
		MerchantID:      getenv(EnvMerchantID, ""),
		KeysDir:         getenv(EnvKeysDir, DefaultKeysDir),
		KeyPassphrase:   os.Getenv(EnvKeyPassphrase),
		FixedSessionKey: getenv(EnvFixedSessionKey, ""),
		HTTPTimeout:     DefaultHTTPTimeout,
		LogLevel:        getenv(EnvLogLevel, DefaultLogLevel),
	}

	if v := getenv(EnvSandbox, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Errorf("%s must be a boolean, got %q", EnvSandbox, v)
		}
		cfg.Sandbox = b
	}
	if v := getenv(EnvHTTPTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Errorf("%s must be a duration such as 30s, got %q", EnvHTTPTimeout, v)
		}
		cfg.HTTPTimeout = d
	}
	return cfg, nil
}

// Validate checks settings every command depends on.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid base URL %q", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("base URL must be http(s), got %q", c.BaseURL)
	}
	if u.Host == "" {
		return errors.Errorf("base URL %q has no host", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.Errorf("HTTP timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.KeysDir == "" {
		return errors.New("keys directory is required")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.FixedSessionKey != "" {
		if !c.Sandbox {
			return errors.New("a fixed session key is only allowed in sandbox mode")
		}
		if _, err := crypto.NewFixedSessionKey(c.FixedSessionKey); err != nil {
			return errors.Wrap(err, "fixed session key")
		}
	}
	return nil
}

// ValidateIdentity checks the ids needed to build payment envelopes.
func (c Config) ValidateIdentity() error {
	if c.PartnerID == "" {
		return errors.Errorf("partner id is required (--partner-id or %s)", EnvPartnerID)
	}
	if c.MerchantID == "" {
		return errors.Errorf("merchant id is required (--merchant-id or %s)", EnvMerchantID)
	}
	return nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
