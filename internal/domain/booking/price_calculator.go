package booking

import "github.com/shopspring/decimal"

// Quote carries the catalog prices of a venue and the items selected with it.
type Quote struct {
	Venue decimal.Decimal
	Items []decimal.Decimal
}

type PriceCalculator interface {
	Calculate(q Quote) decimal.Decimal
}

// CatalogPriceCalculator charges the venue price plus every selected item once.
type CatalogPriceCalculator struct{}

func NewCatalogPriceCalculator() *CatalogPriceCalculator {
	return &CatalogPriceCalculator{}
}

func (CatalogPriceCalculator) Calculate(q Quote) decimal.Decimal {
	total := q.Venue
	for _, p := range q.Items {
		total = total.Add(p)
	}
	return total.Round(2)
}
