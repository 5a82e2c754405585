package commands

import (
	"github.com/spf13/cobra"
)

// build: seal a payment request and print the wire envelope without sending it.
func buildCmd(st *state) *cobra.Command {
	var order orderFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a payment envelope and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.cfg.ValidateIdentity(); err != nil {
				return err
			}
			w, err := st.appCtx.Wire()
			if err != nil {
				return err
			}
			env, err := w.Payments.BuildPaymentEnvelope(order.request())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), env)
		},
	}
	order.register(cmd)
	return cmd
}
