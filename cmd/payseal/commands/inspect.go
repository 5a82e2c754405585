package commands

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"payseal/internal/domain"
)

// inspect: open an envelope we built, using the sandbox gateway private key.
func inspectCmd(st *state) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decrypt and verify one of our own envelopes (sandbox only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !st.cfg.Sandbox {
				return errors.New("inspect requires --sandbox")
			}
			w, err := st.appCtx.Wire()
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			var env domain.Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				return errors.Wrap(err, "parse envelope")
			}
			plain, err := w.Decryptor.InspectRequest(&env)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), plain)
		},
	}
	cmd.Flags().StringVarP(&input, "in", "i", "", "read the envelope from file (default stdin)")
	return cmd
}
