package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BreakdownOrder controls where the service base line sits in the itemized
// breakdown. The estimate page and the scheduling page differ here.
type BreakdownOrder string

const (
	// BreakdownBaseFirst: base, rooms, bathrooms, options.
	BreakdownBaseFirst BreakdownOrder = "base_first"
	// BreakdownBaseLast: rooms, bathrooms, base, options.
	BreakdownBaseLast BreakdownOrder = "base_last"
)

// ParseBreakdownOrder maps a config value to a BreakdownOrder, defaulting to
// BreakdownBaseFirst.
func ParseBreakdownOrder(v string) BreakdownOrder {
	if BreakdownOrder(strings.ToLower(strings.TrimSpace(v))) == BreakdownBaseLast {
		return BreakdownBaseLast
	}
	return BreakdownBaseFirst
}

// Estimate is derived from a Selection and never stored on its own.
//
// Rooms and Bathrooms are the parsed counts the total was computed with.
type Estimate struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown []string        `json:"breakdown"`
	Rooms     int             `json:"rooms"`
	Bathrooms int             `json:"bathrooms"`
}

// ComputeEstimate is the pricing engine. It is a pure function of its inputs:
//
//	total = base
//	      + perRoom * rooms          (perRoom > 0 and rooms > 0)
//	      + perBathroom * bathrooms  (perBathroom > 0 and bathrooms > 0)
//	      + sum(option prices)
func ComputeEstimate(sel Selection, order BreakdownOrder) Estimate {
	rooms := sel.Rooms.Value()
	bathrooms := sel.Bathrooms.Value()

	total := decimal.Zero
	breakdown := make([]string, 0, 3+len(sel.Options))

	if svc := sel.Service; svc != nil {
		total = total.Add(svc.Base)

		var counted []string
		if svc.PerRoom.IsPositive() && rooms > 0 {
			cost := svc.PerRoom.Mul(decimal.NewFromInt(int64(rooms)))
			total = total.Add(cost)
			counted = append(counted, fmt.Sprintf("%s (Rooms: %d): %s", svc.Name, rooms, FormatMoney(cost)))
		}
		if svc.PerBathroom.IsPositive() && bathrooms > 0 {
			cost := svc.PerBathroom.Mul(decimal.NewFromInt(int64(bathrooms)))
			total = total.Add(cost)
			counted = append(counted, fmt.Sprintf("%s (Bathrooms: %d): %s", svc.Name, bathrooms, FormatMoney(cost)))
		}

		base := fmt.Sprintf("%s (Base): %s", svc.Name, FormatMoney(svc.Base))
		if order == BreakdownBaseLast {
			breakdown = append(breakdown, counted...)
			breakdown = append(breakdown, base)
		} else {
			breakdown = append(breakdown, base)
			breakdown = append(breakdown, counted...)
		}
	}

	for _, opt := range sel.Options {
		total = total.Add(opt.Price)
		breakdown = append(breakdown, fmt.Sprintf("%s: %s", opt.Name, FormatMoney(opt.Price)))
	}

	return Estimate{Total: total, Breakdown: breakdown, Rooms: rooms, Bathrooms: bathrooms}
}

// FormatMoney renders an amount as "$123.45".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
