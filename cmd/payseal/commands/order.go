package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"payseal/internal/domain"
)

// orderFlags are the per-payment flags shared by build and pay.
type orderFlags struct {
	requestID string
	orderNo   string
	amount    string
	currency  string
	cardType  int
	email     string
	goodsDesc string
	notifyURL string
	returnURL string
}

func (o *orderFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.requestID, "request-id", "", "request id (default: random 32 hex characters)")
	f.StringVar(&o.orderNo, "order-no", "", "merchant order number")
	f.StringVar(&o.amount, "amount", "", "amount as a decimal, e.g. 12.50")
	f.StringVar(&o.currency, "currency", "EUR", "ISO 4217 currency code")
	f.IntVar(&o.cardType, "card-type", 10, "gateway card type code")
	f.StringVar(&o.email, "email", "", "payer email")
	f.StringVar(&o.goodsDesc, "goods-desc", "", "goods description")
	f.StringVar(&o.notifyURL, "notify-url", "", "asynchronous notification URL")
	f.StringVar(&o.returnURL, "return-url", "", "browser return URL")
	_ = cmd.MarkFlagRequired("order-no")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("email")
}

func (o *orderFlags) request() domain.PaymentLinkRequest {
	return domain.PaymentLinkRequest{
		RequestID: o.requestID,
		OrderNo:   o.orderNo,
		Amount:    json.Number(o.amount),
		Currency:  o.currency,
		CardType:  o.cardType,
		Email:     o.email,
		GoodsDesc: o.goodsDesc,
		NotifyURL: o.notifyURL,
		ReturnURL: o.returnURL,
	}
}
