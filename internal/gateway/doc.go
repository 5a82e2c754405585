// Package gateway provides an HTTP implementation of domain.GatewayClient.
//
// Envelopes are POSTed as JSON to {base}/wave/payment. Requests accept a
// context for cancellation and deadlines. Non-2xx statuses are returned as
// *StatusError with the method, full URL, status text and response body.
// Nothing is retried: a retry must rebuild the envelope with a fresh
// session key.
package gateway
