package types

import "encoding/json"

// SignRequest is the input to one envelope build.
//
// Payload may be any value that marshals to a JSON object; it becomes the
// encrypted bizData.
type SignRequest struct {
	RequestID string
	Payload   any
}

// GatewayResponse is the raw answer to a posted envelope.
type GatewayResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// PaymentLinkRequest carries the caller-supplied parts of a payment request.
// The merchant id is filled from configuration. An empty RequestID is
// replaced with a generated one.
type PaymentLinkRequest struct {
	RequestID string      `validate:"omitempty,max=64,printascii"`
	OrderNo   string      `validate:"required,max=64"`
	Amount    json.Number `validate:"required,amount"`
	Currency  string      `validate:"required,len=3,alpha,uppercase"`
	CardType  int         `validate:"gte=0"`
	Email     string      `validate:"required,email"`
	GoodsDesc string      `validate:"omitempty,max=256"`
	NotifyURL string      `validate:"omitempty,url"`
	ReturnURL string      `validate:"omitempty,url"`
}
