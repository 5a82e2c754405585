// Package crypto exposes the primitives the gateway protocol is built from.
//
// Contents
//
//   - RSA SHA-256 PKCS#1 v1.5 signatures over canonical strings (SignSHA256,
//     VerifySHA256)
//   - AES-128-ECB with PKCS#7 padding for the payload (EncryptECB, DecryptECB)
//   - RSA PKCS#1 v1.5 key wrapping with an explicit size limit (WrapKey,
//     UnwrapKey, MaxWrapSize) and segmented inbound decryption (DecryptBlocks)
//   - Session key sources (RandomSessionKeys, FixedSessionKey)
//   - PEM parsing and generation for RSA keys (ParsePrivateKeyPEM,
//     ParsePublicKeyPEM, GenerateKeyPair)
//   - Best-effort memory wiping for session keys (Wipe)
//   - SHA256 public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// The padding schemes and the ECB mode are fixed by the gateway contract and
// are not interchangeable with OAEP or an AEAD. Failures are returned as
// *domain.Error values whose kind is ErrKeyMaterial, ErrEncoding or
// ErrCryptoOperation.
package crypto
