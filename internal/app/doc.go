// Package app wires application dependencies for the CLI.
//
// Config is filled from flags with environment fallbacks. App owns the key
// store and builds the rest of the dependency graph (key material, signer,
// decryptor, gateway client, payment service) on first use, so commands that
// only manage key files never need a complete key set.
package app
