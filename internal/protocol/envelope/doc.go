// Package envelope seals payment requests for the gateway and opens them again.
//
// # Seal
//
//  1. Render the plaintext envelope (header, base64 session key as randomKey,
//     payload JSON as bizData) with package canonical.
//  2. Sign that string with the sender's RSA key (SHA-256, PKCS#1 v1.5).
//  3. Replace bizData with its AES-128-ECB ciphertext under the raw session key.
//  4. Replace randomKey with the session key text wrapped to the recipient's
//     RSA public key (PKCS#1 v1.5).
//
// The signature therefore covers the plaintext, never the ciphertext, and is
// not recomputed after steps 3 and 4.
//
// # Open
//
// Open runs the steps backwards: unwrap, decrypt, re-render the canonical
// string and verify the signature. A bad signature is ErrSignatureMismatch.
package envelope
