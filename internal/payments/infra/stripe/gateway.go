package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/vetstore-io/vetstore/internal/payments/app"
)

// Currency for hosted checkout; prices are already in minor units.
const currency = "cop"

// Gateway builds Stripe hosted-checkout sessions.
type Gateway struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func NewGateway(secretKey, successURL, cancelURL string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Gateway{
		api:        api,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (g *Gateway) CreateSession(ctx context.Context, lines []app.Line) (string, error) {
	items := make([]*stripego.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		items = append(items, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(currency),
				UnitAmount: stripego.Int64(line.UnitAmount),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(line.Name),
				},
			},
			Quantity: stripego.Int64(line.Quantity),
		})
	}

	params := &stripego.CheckoutSessionParams{
		Params:             stripego.Params{Context: ctx},
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		LineItems:          items,
		SuccessURL:         stripego.String(successURLWithCart(g.successURL, lines)),
		CancelURL:          stripego.String(g.cancelURL),
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe session: %w", err)
	}
	return session.URL, nil
}

// successURLWithCart carries the cart back to the frontend on the success
// redirect as url-encoded JSON.
func successURLWithCart(base string, lines []app.Line) string {
	type entry struct {
		Name     string `json:"nombre"`
		Price    int64  `json:"precio"`
		Quantity int64  `json:"cantidad"`
	}

	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, entry{Name: line.Name, Price: line.UnitAmount, Quantity: line.Quantity})
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		return base
	}
	return base + "?carrito=" + url.QueryEscape(string(encoded))
}
