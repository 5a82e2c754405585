package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"payseal/internal/gateway"
)

// pay: seal a payment request, post it and print the gateway's answer.
func payCmd(st *state) *cobra.Command {
	var order orderFlags
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Create a payment link through the gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.cfg.ValidateIdentity(); err != nil {
				return err
			}
			w, err := st.appCtx.Wire()
			if err != nil {
				return err
			}
			resp, err := w.Payments.CreatePaymentLink(cmd.Context(), order.request())
			if err != nil {
				var se *gateway.StatusError
				if errors.As(err, &se) && len(se.Body) > 0 {
					_, _ = cmd.ErrOrStderr().Write(append(se.Body, '\n'))
				}
				return err
			}
			if len(resp.Body) == 0 {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"status": resp.Status})
			}
			return writeJSON(cmd.OutOrStdout(), resp.Body)
		},
	}
	order.register(cmd)
	return cmd
}
