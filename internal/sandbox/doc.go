// Package sandbox is a local stand-in for the gateway's payment endpoint.
//
// It accepts envelopes on POST /wave/payment, opens them with the sandbox
// gateway private key, verifies the partner signature and keeps the opened
// request in memory. GET /wave/payment/{requestId} returns what was
// received. Request ids are single-use, as on the real gateway.
//
// The server only exists for self-tests: it needs the gateway private key,
// which a production deployment never has.
package sandbox
