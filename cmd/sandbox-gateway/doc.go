// Package main runs a local stand-in for the gateway payment endpoint, for
// end-to-end tests of payseal without network access to the real gateway.
//
// HTTP API
//
//	POST /wave/payment
//	    Open and verify a payment envelope. Answers {"code":"0000"} with a
//	    payment link, or a 4xx with code 1001 (malformed), 1002 (request id
//	    reused) or 1003 (signature mismatch).
//
//	GET /wave/payment/{requestId}
//	    Return the opened request received under {requestId}.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Keys come from the payseal keys directory, which must include
//     paytend_private.pem. Configuration uses the same PAYSEAL_* environment
//     as the CLI.
//   - The default listen address is 127.0.0.1:8080 (SANDBOX_LISTEN_ADDR).
package main
