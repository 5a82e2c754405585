package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"payseal/internal/domain"
)

// decrypt [data]: decrypt base64 RSA ciphertext addressed to the partner key.
// With --envelope the input is a response envelope instead.
func decryptCmd(st *state) *cobra.Command {
	var (
		input      string
		isEnvelope bool
	)
	cmd := &cobra.Command{
		Use:   "decrypt [base64-ciphertext]",
		Short: "Decrypt data or a response envelope addressed to us",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := st.appCtx.Wire()
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else if data, err = readInput(cmd.InOrStdin(), input); err != nil {
				return err
			}
			data = bytes.TrimSpace(data)

			if isEnvelope {
				var env domain.Envelope
				if err := json.Unmarshal(data, &env); err != nil {
					return errors.Wrap(err, "parse envelope")
				}
				plain, err := w.Decryptor.OpenResponse(&env)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), plain)
			}

			pt, err := w.Decryptor.DecryptBase64(string(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "in", "i", "", "read input from file (default stdin)")
	cmd.Flags().BoolVar(&isEnvelope, "envelope", false, "input is a JSON response envelope")
	return cmd
}
