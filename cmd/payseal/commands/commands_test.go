package commands

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"payseal/internal/app"
	"payseal/internal/domain"
	"payseal/internal/testutil"
)

const goldenSignature = "S1exb+Hqe89dYrFFM5IZpABZhBSrmTmR2YX6/zVz4zcspBJsNYMDG5MqFyvYsHwNpG/vkXCi75i49zVbsNlKX6cGD73aeT2NjQr8gKCup7279GZRUbVEf/GVI07bq6hXiSUX+glSZMb6Mc0nHwQaJPMCV4sGHcWJ6GjPWjljKfk="

// sandboxEnv points the CLI at a keys directory seeded with the test fixtures.
func sandboxEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, fixture := range map[string]string{
		"partner_private.pem": "partner_private",
		"partner_public.pem":  "partner_public",
		"paytend_public.pem":  "gateway_public",
		"paytend_private.pem": "gateway_private",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), testutil.PEM(t, fixture), 0o600))
	}

	t.Setenv(app.EnvBaseURL, "")
	t.Setenv(app.EnvPartnerID, "312006000004128")
	t.Setenv(app.EnvMerchantID, "312006000003933")
	t.Setenv(app.EnvKeysDir, dir)
	t.Setenv(app.EnvKeyPassphrase, "")
	t.Setenv(app.EnvSandbox, "true")
	t.Setenv(app.EnvFixedSessionKey, testutil.FixedSessionKey)
	t.Setenv(app.EnvHTTPTimeout, "")
	t.Setenv(app.EnvLogLevel, "disabled")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root, err := newRootCmd()
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

var goldenOrder = []string{
	"--request-id", "88866600010020117253477607681610",
	"--order-no", "stringstringstri",
	"--amount", "100",
	"--currency", "EUR",
	"--card-type", "10",
	"--email", "test@test.com",
}

func TestBuild_Golden(t *testing.T) {
	sandboxEnv(t)

	out, err := run(t, "", append([]string{"build"}, goldenOrder...)...)
	require.NoError(t, err)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.Equal(t, "88866600010020117253477607681610", env.RequestID)
	require.Equal(t, "312006000004128", env.PartnerID)
	require.Equal(t, goldenSignature, env.Signature)
}

func TestBuild_ThenInspect(t *testing.T) {
	sandboxEnv(t)

	built, err := run(t, "", append([]string{"build"}, goldenOrder...)...)
	require.NoError(t, err)

	out, err := run(t, built, "inspect")
	require.NoError(t, err)

	var plain struct {
		RequestID string          `json:"requestId"`
		BizData   json.RawMessage `json:"bizData"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plain))
	require.Equal(t, "88866600010020117253477607681610", plain.RequestID)
	require.JSONEq(t,
		`{"merchantId":"312006000003933","orderNo":"stringstringstri","amount":100,"currency":"EUR","cardType":10,"email":"test@test.com"}`,
		string(plain.BizData))
}

func TestInspect_RequiresSandbox(t *testing.T) {
	sandboxEnv(t)
	t.Setenv(app.EnvSandbox, "false")
	t.Setenv(app.EnvFixedSessionKey, "")

	_, err := run(t, "{}", "inspect")
	require.ErrorContains(t, err, "--sandbox")
}

func TestBuild_RequiresIdentity(t *testing.T) {
	sandboxEnv(t)
	t.Setenv(app.EnvMerchantID, "")

	_, err := run(t, "", append([]string{"build"}, goldenOrder...)...)
	require.ErrorContains(t, err, app.EnvMerchantID)
}

func TestDecrypt(t *testing.T) {
	sandboxEnv(t)
	ct, err := rsa.EncryptPKCS1v15(rand.Reader, testutil.PublicKey(t, "partner"), []byte(`{"status":"PAID"}`))
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(ct)

	out, err := run(t, "", "decrypt", encoded)
	require.NoError(t, err)
	require.Equal(t, "{\"status\":\"PAID\"}\n", out)

	out, err = run(t, encoded+"\n", "decrypt")
	require.NoError(t, err)
	require.Equal(t, "{\"status\":\"PAID\"}\n", out)
}

func TestKeygen(t *testing.T) {
	sandboxEnv(t)
	dir := filepath.Join(t.TempDir(), "fresh")
	t.Setenv(app.EnvKeysDir, dir)

	out, err := run(t, "", "keygen", "--bits", "1024")
	require.NoError(t, err)
	require.Regexp(t, `Fingerprint: SHA256:[A-Za-z0-9+/]{43}`, out)
	require.FileExists(t, filepath.Join(dir, "partner_private.pem"))
	require.FileExists(t, filepath.Join(dir, "partner_public.pem"))

	_, err = run(t, "", "keygen", "--bits", "1024")
	require.ErrorIs(t, err, domain.ErrKeyMaterial)

	_, err = run(t, "", "keygen", "--bits", "1024", "--owner", "gateway")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "paytend_public.pem"))

	out, err = run(t, "", "fingerprint")
	require.NoError(t, err)
	require.Contains(t, out, "Partner: SHA256:")
	require.Contains(t, out, "Gateway private key loaded")
}

func TestKeygen_GatewayOutsideSandbox(t *testing.T) {
	sandboxEnv(t)
	t.Setenv(app.EnvSandbox, "")
	t.Setenv(app.EnvFixedSessionKey, "")
	t.Setenv(app.EnvKeysDir, t.TempDir())

	_, err := run(t, "", "keygen", "--owner", "gateway", "--bits", "1024")
	require.ErrorContains(t, err, "--sandbox")
}
