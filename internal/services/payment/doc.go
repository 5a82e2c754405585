// Package payment implements the create-payment-link use case.
//
// It validates the caller's order details, fills in the configured merchant
// id, seals the payload through a RequestSigner and posts the envelope
// through a GatewayClient.
package payment
