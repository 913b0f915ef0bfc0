package pricing

import (
	"github.com/shopspring/decimal"
)

// profitRateLimit clamps profit_rate to the column's NUMERIC(5,1) range.
var profitRateLimit = decimal.NewFromInt(9999)

// Deposit derives net proceeds: sale_price - commission - shipping_cost.
// A nil or zero sale price resets the deposit to nil rather than zero, so a
// cleared sale leaves no stale settlement behind.
func Deposit(salePrice, commission, shippingCost *decimal.Decimal) *decimal.Decimal {
	if salePrice == nil || salePrice.IsZero() {
		return nil
	}
	d := salePrice.Sub(orZero(commission)).Sub(orZero(shippingCost))
	return &d
}

// Profit is deposit - purchase_total - other_cost, defined only once the item
// actually sold: a sale date must exist and must not be the return sentinel.
func Profit(depositAmount, purchaseTotal, otherCost *decimal.Decimal, saleDate *string) *decimal.Decimal {
	if depositAmount == nil {
		return nil
	}
	if saleDate == nil || *saleDate == "" || *saleDate == returnSentinel {
		return nil
	}
	p := depositAmount.Sub(orZero(purchaseTotal)).Sub(orZero(otherCost))
	return &p
}

// ProfitRate is profit/sale_price as a whole percent, nil when either input
// is missing or the price is zero.
func ProfitRate(profit, salePrice *decimal.Decimal) *decimal.Decimal {
	if profit == nil || salePrice == nil || salePrice.IsZero() {
		return nil
	}
	r := profit.Div(*salePrice).Mul(d100).Round(0)
	if r.GreaterThan(profitRateLimit) {
		r = profitRateLimit
	} else if r.LessThan(profitRateLimit.Neg()) {
		r = profitRateLimit.Neg()
	}
	return &r
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
