package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"payseal/internal/crypto"
)

// fingerprint: print SHA256 fingerprints of the loaded public keys.
func fingerprintCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print fingerprints of the loaded public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := st.appCtx.Wire()
			if err != nil {
				return err
			}
			partner, err := crypto.Fingerprint(w.Keys.PartnerPublic())
			if err != nil {
				return err
			}
			gateway, err := crypto.Fingerprint(w.Keys.GatewayPublic())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Partner: %s\n", partner)
			fmt.Fprintf(out, "Gateway: %s\n", gateway)
			if w.Keys.HasGatewayPrivate() {
				fmt.Fprintln(out, "Gateway private key loaded (sandbox).")
			}
			return nil
		},
	}
}
