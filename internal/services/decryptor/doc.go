// Package decryptor recovers data addressed to the partner key pair.
//
// Gateway notifications carry bare RSA ciphertext, possibly split into
// modulus-sized blocks; full response envelopes are opened and verified
// against the gateway public key.
package decryptor
