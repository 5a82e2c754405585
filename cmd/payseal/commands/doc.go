// Package commands defines the payseal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate an RSA key pair into the keys directory
//   - fingerprint  Print SHA256 fingerprints of the loaded public keys
//   - build        Build a signed, encrypted payment envelope and print it
//   - pay          Build a payment envelope and post it to the gateway
//   - decrypt      Decrypt data or a response envelope addressed to us
//   - inspect      Open one of our own envelopes (sandbox only)
//
// # Configuration
//
// Every persistent flag defaults from an environment variable, so a deployment
// can be configured without flags:
//
//	PAYTEND_BASE_URL           --base-url
//	PAYSEAL_PARTNER_ID         --partner-id
//	PAYSEAL_MERCHANT_ID        --merchant-id
//	PAYSEAL_KEYS_DIR           --keys-dir
//	PAYSEAL_KEY_PASSPHRASE     --key-passphrase
//	PAYSEAL_SANDBOX            --sandbox
//	PAYSEAL_FIXED_SESSION_KEY  --fixed-session-key
//	PAYSEAL_HTTP_TIMEOUT       --http-timeout
//	PAYSEAL_LOG_LEVEL          --log-level
//
// # Implementation
//
// The root command validates configuration and sets up logging before any
// subcommand runs. Key material is loaded lazily, so keygen works on an empty
// keys directory.
package commands
