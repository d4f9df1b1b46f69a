package service

import (
	"github.com/limbo/agencydesk/pkg/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeFinalPrice returns the amount shown to the client, rounded to cents and never negative.
// Any discount type other than percentage is subtracted as a fixed amount.
func ComputeFinalPrice(p entity.PricingSnapshot) float64 {
	addOnsTotal := decimal.Zero
	for _, addOn := range p.AddOns {
		addOnsTotal = addOnsTotal.Add(decimal.NewFromFloat(addOn.Price))
	}

	var starting decimal.Decimal
	switch {
	case p.IsHourlyQuote:
		starting = decimal.NewFromFloat(p.CustomHours).Mul(decimal.NewFromFloat(p.HourlyRate))
	case p.CustomPrice != nil && *p.CustomPrice > 0:
		starting = decimal.NewFromFloat(*p.CustomPrice)
	default:
		starting = decimal.NewFromFloat(p.BasePrice).Add(addOnsTotal)
	}

	discount := decimal.NewFromFloat(p.Discount)
	var discounted decimal.Decimal
	if p.DiscountType == entity.DiscountPercentage {
		discounted = starting.Mul(decimal.NewFromInt(1).Sub(discount.Div(hundred)))
	} else {
		discounted = starting.Sub(discount)
	}

	final := discounted.Round(2)
	if final.IsNegative() {
		return 0
	}
	result, _ := final.Float64()
	return result
}

func (r *PricingRequest) snapshot() entity.PricingSnapshot {
	addOns := make([]entity.AddOn, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, entity.AddOn{Name: a.Name, Price: a.Price})
	}
	discountType := entity.DiscountType(r.DiscountType)
	if discountType == "" {
		discountType = entity.DiscountPercentage
	}
	return entity.PricingSnapshot{
		BasePrice:     r.BasePrice,
		CustomPrice:   r.CustomPrice,
		AddOns:        addOns,
		Discount:      r.Discount,
		DiscountType:  discountType,
		IsHourlyQuote: r.IsHourlyQuote,
		CustomHours:   r.CustomHours,
		HourlyRate:    r.HourlyRate,
	}
}
