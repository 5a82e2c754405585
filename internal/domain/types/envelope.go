package types

import "encoding/json"

const (
	// SignTypeRSA tags envelopes signed with RSA SHA-256 PKCS#1 v1.5.
	SignTypeRSA = "RSA"

	// ProtocolVersion is the gateway API version the envelope targets.
	ProtocolVersion = "2.0"
)

// EnvelopeHeader carries the fields that are never encrypted.
type EnvelopeHeader struct {
	RequestID string `json:"requestId"`
	PartnerID string `json:"partnerId"`
	SignType  string `json:"signType"`
	Version   string `json:"version"`
}

// Envelope is the wire-format request posted to the gateway.
type Envelope struct {
	EnvelopeHeader
	RandomKey string `json:"randomKey"` // base64 RSA ciphertext of the session key text
	BizData   string `json:"bizData"`   // base64 AES-128-ECB ciphertext of the payload JSON
	Signature string `json:"signature"` // base64 signature over the plaintext canonical form
}

// PlainEnvelope is an envelope before sealing, or after opening.
//
// BizData holds the compact JSON of the payload and is treated as an opaque
// blob by the protocol.
type PlainEnvelope struct {
	EnvelopeHeader
	BizData json.RawMessage `json:"bizData"`
}
