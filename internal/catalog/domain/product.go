package domain

import "time"

// Money carries an amount in the currency's minor unit (e.g. centavos).
// Prices are stored, totaled, and forwarded in minor units end to end;
// nothing downstream multiplies by 100.
type Money struct {
	Currency string
	Amount   int64
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Stock       int32
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
