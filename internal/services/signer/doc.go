// Package signer builds signed and encrypted request envelopes.
//
// Each BuildEnvelope call draws its own session key, seals the payload with
// the partner private key and the gateway public key, and wipes the key
// before returning.
package signer
