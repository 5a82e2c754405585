package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"payseal/internal/app"
	"payseal/internal/crypto"
	"payseal/internal/domain"
	"payseal/internal/testutil"
)

func keysDir(t *testing.T, withGatewayPrivate bool) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"partner_private.pem": "partner_private",
		"partner_public.pem":  "partner_public",
		"paytend_public.pem":  "gateway_public",
	}
	if withGatewayPrivate {
		files["paytend_private.pem"] = "gateway_private"
	}
	for name, fixture := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), testutil.PEM(t, fixture), 0o600))
	}
	return dir
}

func config(dir string) app.Config {
	return app.Config{
		BaseURL:     app.DefaultBaseURL,
		PartnerID:   "312006000004128",
		MerchantID:  "312006000003933",
		KeysDir:     dir,
		HTTPTimeout: app.DefaultHTTPTimeout,
		LogLevel:    "disabled",
	}
}

func TestApp_Wire(t *testing.T) {
	cfg := config(keysDir(t, true))
	cfg.Sandbox = true
	cfg.FixedSessionKey = testutil.FixedSessionKey

	a, err := app.New(cfg)
	require.NoError(t, err)

	w, err := a.Wire()
	require.NoError(t, err)
	again, err := a.Wire()
	require.NoError(t, err)
	require.Same(t, w, again)

	env, err := w.Signer.BuildEnvelope(domain.SignRequest{
		RequestID: "r-1",
		Payload:   map[string]any{"orderNo": "o-1"},
	})
	require.NoError(t, err)

	keyText, err := crypto.UnwrapKey(env.RandomKey, testutil.PrivateKey(t, "gateway"))
	require.NoError(t, err)
	require.Equal(t, testutil.FixedSessionKey, string(keyText))

	plain, err := w.Decryptor.InspectRequest(env)
	require.NoError(t, err)
	require.JSONEq(t, `{"orderNo":"o-1"}`, string(plain.BizData))
}

func TestApp_WireMissingKeys(t *testing.T) {
	a, err := app.New(config(t.TempDir()))
	require.NoError(t, err)

	_, err = a.Wire()
	require.ErrorIs(t, err, domain.ErrKeyMaterial)
}

func TestApp_RejectsInvalidConfig(t *testing.T) {
	cfg := config(t.TempDir())
	cfg.FixedSessionKey = testutil.FixedSessionKey

	_, err := app.New(cfg)
	require.Error(t, err)
}

func TestSessionKeySource(t *testing.T) {
	src, err := app.SessionKeySource(config(t.TempDir()))
	require.NoError(t, err)
	require.IsType(t, crypto.RandomSessionKeys{}, src)

	cfg := config(t.TempDir())
	cfg.Sandbox = true
	cfg.FixedSessionKey = testutil.FixedSessionKey
	src, err = app.SessionKeySource(cfg)
	require.NoError(t, err)
	a, err := src.SessionKey()
	require.NoError(t, err)
	b, err := src.SessionKey()
	require.NoError(t, err)
	require.Equal(t, a, b)
}
