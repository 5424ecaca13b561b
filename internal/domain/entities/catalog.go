package entities

import "github.com/shopspring/decimal"

// Service is a main cleaning package from the catalog (e.g. "Deep Cleaning").
//
// Pricing model:
//   - Base is always charged when the service is selected.
//   - PerRoom / PerBathroom are multiplied by the counts, only when both the
//     increment and the count are positive.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Base        decimal.Decimal `json:"base"`
	PerRoom     decimal.Decimal `json:"per_room"`
	PerBathroom decimal.Decimal `json:"per_bathroom"`
}

// AdditionalOption is a flat-fee add-on (e.g. "Pet-Friendly Cleaning").
type AdditionalOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is the static service/option configuration of one deployment.
// Slice order is display order.
type Catalog struct {
	Services []Service          `json:"services"`
	Options  []AdditionalOption `json:"options"`
}
