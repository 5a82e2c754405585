package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"payseal/internal/app"
)

// state is shared by the commands of one root.
type state struct {
	cfg    app.Config
	appCtx *app.App
}

// Execute runs the CLI against os.Args.
func Execute() error {
	root, err := newRootCmd()
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		return err
	}
	return root.Execute()
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := app.FromEnv()
	if err != nil {
		return nil, err
	}
	st := &state{cfg: cfg}

	root := &cobra.Command{
		Use:          "payseal",
		Short:        "Build signed and encrypted payment requests for the Paytend gateway",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.SetupLogger(st.cfg.LogLevel, st.cfg.LogJSON); err != nil {
				return err
			}
			a, err := app.New(st.cfg)
			if err != nil {
				return err
			}
			st.appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfg.BaseURL, "base-url", cfg.BaseURL, "gateway base URL")
	pf.StringVar(&st.cfg.PartnerID, "partner-id", cfg.PartnerID, "partner id assigned by the gateway")
	pf.StringVar(&st.cfg.MerchantID, "merchant-id", cfg.MerchantID, "merchant id placed in every payment payload")
	pf.StringVar(&st.cfg.KeysDir, "keys-dir", cfg.KeysDir, "directory holding the PEM key files")
	pf.StringVar(&st.cfg.KeyPassphrase, "key-passphrase", cfg.KeyPassphrase, "passphrase for encrypted private keys")
	pf.BoolVar(&st.cfg.Sandbox, "sandbox", cfg.Sandbox, "enable sandbox-only features")
	pf.StringVar(&st.cfg.FixedSessionKey, "fixed-session-key", cfg.FixedSessionKey, "base64 AES-128 session key for reproducible output (sandbox only)")
	pf.DurationVar(&st.cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "gateway request timeout")
	pf.StringVar(&st.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error, disabled)")
	pf.BoolVar(&st.cfg.LogJSON, "log-json", cfg.LogJSON, "log as JSON instead of console text")

	root.AddCommand(
		keygenCmd(st),
		fingerprintCmd(st),
		buildCmd(st),
		payCmd(st),
		decryptCmd(st),
		inspectCmd(st),
	)
	return root, nil
}
