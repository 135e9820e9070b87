package app

import (
	"context"
	"errors"
	"testing"
)

type fakeCart struct {
	items    map[string][]CartItem
	links    map[string]string
	linkErr  error
	setCalls int
}

func (f *fakeCart) Items(ctx context.Context, cartID string) ([]CartItem, error) {
	items, ok := f.items[cartID]
	if !ok {
		return nil, ErrNotFound
	}
	return items, nil
}

func (f *fakeCart) SetPaymentLink(ctx context.Context, cartID, link string) error {
	f.setCalls++
	if f.linkErr != nil {
		return f.linkErr
	}
	if f.links == nil {
		f.links = map[string]string{}
	}
	f.links[cartID] = link
	return nil
}

type fakeCatalog struct {
	products map[string]Product
}

func (f fakeCatalog) GetProduct(ctx context.Context, productID string) (Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return Product{}, errors.New("unknown product")
	}
	return p, nil
}

type fakePayments struct {
	url   string
	err   error
	calls int
	last  PaymentRequest
}

func (f *fakePayments) CreateSession(ctx context.Context, req PaymentRequest) (string, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func twoLineFixture() (*fakeCart, fakeCatalog) {
	cart := &fakeCart{items: map[string][]CartItem{
		"cart-1": {
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		"empty": {},
	}}
	catalog := fakeCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Alimento", Currency: "COP", Amount: 1000},
		"p2": {ID: "p2", Name: "Collar", Currency: "COP", Amount: 500},
	}}
	return cart, catalog
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("totals at current prices", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		svc := NewService(cart, catalog, &fakePayments{}, 0)

		quote, err := svc.Quote(ctx, "cart-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Total.Amount != 2500 {
			t.Fatalf("expected total 2500, got %d", quote.Total.Amount)
		}
		if quote.Total.Currency != "COP" {
			t.Fatalf("expected COP, got %s", quote.Total.Currency)
		}
		if len(quote.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(quote.Lines))
		}
		if quote.Lines[0].LineTotal.Amount != 2000 {
			t.Fatalf("expected first line total 2000, got %d", quote.Lines[0].LineTotal.Amount)
		}
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		svc := NewService(cart, catalog, &fakePayments{}, 0)

		_, err := svc.Quote(ctx, "empty")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("unknown cart -> ErrNotFound", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		svc := NewService(cart, catalog, &fakePayments{}, 0)

		_, err := svc.Quote(ctx, "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestInitiateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart never reaches the gateway", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		payments := &fakePayments{url: "https://pay.example/s/1"}
		svc := NewService(cart, catalog, payments, 0)

		_, err := svc.InitiateCheckout(ctx, "empty", "")
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
		if payments.calls != 0 {
			t.Fatalf("gateway called %d times for empty cart", payments.calls)
		}
	})

	t.Run("gateway failure leaves the cart untouched", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		payments := &fakePayments{err: &GatewayError{Status: 500, Detail: "boom"}}
		svc := NewService(cart, catalog, payments, 0)

		_, err := svc.InitiateCheckout(ctx, "cart-1", "")
		var gwErr *GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if cart.setCalls != 0 {
			t.Fatalf("payment link written despite gateway failure")
		}
	})

	t.Run("success persists the link and forwards the buyer email", func(t *testing.T) {
		cart, catalog := twoLineFixture()
		payments := &fakePayments{url: "https://pay.example/s/1"}
		svc := NewService(cart, catalog, payments, 0)

		res, err := svc.InitiateCheckout(ctx, "cart-1", "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentLink != "https://pay.example/s/1" {
			t.Fatalf("unexpected link: %s", res.PaymentLink)
		}
		if cart.links["cart-1"] != "https://pay.example/s/1" {
			t.Fatalf("link not persisted on cart")
		}
		if payments.last.BuyerEmail != "ana@example.com" {
			t.Fatalf("buyer email not forwarded: %q", payments.last.BuyerEmail)
		}
		if len(payments.last.Items) != 2 || payments.last.Items[0].UnitAmount != 1000 {
			t.Fatalf("unexpected payment items: %+v", payments.last.Items)
		}
	})
}

func TestGatewayErrorUnreachable(t *testing.T) {
	down := &GatewayError{Status: 0, Detail: "connection refused"}
	if !down.Unreachable() {
		t.Fatal("status 0 should mean unreachable")
	}
	rejected := &GatewayError{Status: 422, Detail: "bad payload"}
	if rejected.Unreachable() {
		t.Fatal("status 422 is a response, not unreachable")
	}
}
