package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"payseal/internal/crypto"
	"payseal/internal/domain"
)

// keygen: create an RSA key pair and write it to the keys directory.
func keygenCmd(st *state) *cobra.Command {
	var (
		owner string
		bits  int
		force bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair into the keys directory",
		Long: "Generate an RSA key pair into the keys directory.\n\n" +
			"The partner pair is ours; upload partner_public.pem to the gateway. " +
			"A gateway pair can only be generated in sandbox mode, to self-test " +
			"envelopes without the real gateway.",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := domain.KeyOwner(owner)
			if o == domain.OwnerGateway && !st.cfg.Sandbox {
				return errors.New("gateway keys can only be generated with --sandbox")
			}
			priv, err := crypto.GenerateKeyPair(bits)
			if err != nil {
				return err
			}
			if err := st.appCtx.Keys.SaveKeyPair(o, priv, force); err != nil {
				return err
			}
			fp, err := crypto.Fingerprint(&priv.PublicKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key pair written for %s.\nFingerprint: %s\n", o, fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", string(domain.OwnerPartner), "key owner (partner or gateway)")
	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA modulus size")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing key files")
	return cmd
}
