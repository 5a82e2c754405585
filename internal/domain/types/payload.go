package types

import "encoding/json"

// SensitivePayload is the business data encrypted into Envelope.BizData.
//
// Field order is significant: it is the order of the compact JSON that gets
// signed and encrypted.
type SensitivePayload struct {
	MerchantID string      `json:"merchantId"`
	OrderNo    string      `json:"orderNo"`
	Amount     json.Number `json:"amount"`
	Currency   string      `json:"currency"`
	CardType   int         `json:"cardType"`
	Email      string      `json:"email"`
	GoodsDesc  string      `json:"goodsDesc,omitempty"`
	NotifyURL  string      `json:"notifyUrl,omitempty"`
	ReturnURL  string      `json:"returnUrl,omitempty"`
}
