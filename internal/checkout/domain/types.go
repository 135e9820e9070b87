package domain

// Money is an amount in the currency's minor unit.
type Money struct {
	Currency string
	Amount   int64
}

// QuoteLine prices one cart line at the catalog's current price.
type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

// Result is what a successful checkout hands back to the caller.
type Result struct {
	PaymentLink string
	Quote       Quote
}
