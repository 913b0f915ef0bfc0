package pricing

import (
	"fmt"
	"time"

	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/shopspring/decimal"
)

const returnSentinel = model.ReturnSentinel

// Editable field names accepted by ApplyFieldEdit. They match the JSON/DB
// column names so the cell-edit endpoint can pass them through untouched.
const (
	FieldProductName     = "product_name"
	FieldBrandName       = "brand_name"
	FieldCategory        = "category"
	FieldImageURL        = "image_url"
	FieldInventoryNumber = "inventory_number"
	FieldMemo            = "memo"
	FieldPurchaseSource  = "purchase_source"
	FieldSaleDestination = "sale_destination"
	FieldStatus          = "status"
	FieldPurchaseDate    = "purchase_date"
	FieldListingDate     = "listing_date"
	FieldSaleDate        = "sale_date"
	FieldPurchasePrice   = "purchase_price"
	FieldPurchaseTotal   = "purchase_total"
	FieldSalePrice       = "sale_price"
	FieldCommission      = "commission"
	FieldShippingCost    = "shipping_cost"
	FieldOtherCost       = "other_cost"
	FieldDepositAmount   = "deposit_amount"
)

// ApplyFieldEdit is the single transition function for cell edits. It applies
// one field change to a copy of the item and runs every cross-field cascade
// in one place:
//
//   - sale_destination = 返品 clears price/commission/deposit/profit and
//     stamps 返品 into listing_date and sale_date;
//   - sale_destination or sale_price recompute commission first, then the
//     deposit from the possibly-updated commission (ordering matters);
//   - commission / shipping_cost recompute the deposit;
//   - sale_date flips status between 在庫 and 売却済み;
//   - every money edit re-derives profit, profit_rate and turnover_days.
//
// Numeric fields take *decimal.Decimal (nil clears), text fields take
// *string. A wrong value type is a programming error and is returned as such.
func ApplyFieldEdit(item model.InventoryItem, calc Calculator, field string, value any) (model.InventoryItem, error) {
	switch field {
	case FieldProductName:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		if s != nil {
			item.ProductName = *s
		}

	case FieldBrandName, FieldCategory, FieldImageURL, FieldInventoryNumber,
		FieldMemo, FieldPurchaseSource, FieldPurchaseDate:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		*textField(&item, field) = s

	case FieldStatus:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		if s != nil {
			item.Status = *s
		}

	case FieldSaleDestination:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		if s != nil && *s == returnSentinel {
			return applyReturn(item), nil
		}
		item.SaleDestination = s
		recomputeCommission(&item, calc)
		item.DepositAmount = Deposit(item.SalePrice, item.Commission, item.ShippingCost)
		recomputeDerived(&item)

	case FieldSalePrice:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.SalePrice = d
		recomputeCommission(&item, calc)
		item.DepositAmount = Deposit(item.SalePrice, item.Commission, item.ShippingCost)
		recomputeDerived(&item)

	case FieldCommission:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.Commission = d
		item.DepositAmount = Deposit(item.SalePrice, item.Commission, item.ShippingCost)
		recomputeDerived(&item)

	case FieldShippingCost:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.ShippingCost = d
		item.DepositAmount = Deposit(item.SalePrice, item.Commission, item.ShippingCost)
		recomputeDerived(&item)

	case FieldPurchasePrice:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.PurchasePrice = d
		recomputeDerived(&item)

	case FieldPurchaseTotal:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.PurchaseTotal = d
		recomputeDerived(&item)

	case FieldOtherCost:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.OtherCost = d
		recomputeDerived(&item)

	case FieldDepositAmount:
		d, err := decimalValue(field, value)
		if err != nil {
			return item, err
		}
		item.DepositAmount = d
		recomputeDerived(&item)

	case FieldSaleDate:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		item.SaleDate = s
		if s != nil && *s != "" && *s != returnSentinel {
			item.Status = model.StatusSold
		} else if s == nil || *s == "" {
			item.Status = model.StatusInStock
		}
		recomputeDerived(&item)

	case FieldListingDate:
		s, err := stringValue(field, value)
		if err != nil {
			return item, err
		}
		item.ListingDate = s
		recomputeDerived(&item)

	default:
		return item, fmt.Errorf("pricing: unknown editable field %q", field)
	}
	return item, nil
}

// applyReturn is the 返品 cascade: the sentinel replaces the destination and
// both activity dates, and every settlement figure is cleared at once.
func applyReturn(item model.InventoryItem) model.InventoryItem {
	sentinel := returnSentinel
	item.SaleDestination = &sentinel
	item.SalePrice = nil
	item.Commission = nil
	item.DepositAmount = nil
	item.Profit = nil
	item.ProfitRate = nil
	listing, sale := returnSentinel, returnSentinel
	item.ListingDate = &listing
	item.SaleDate = &sale
	item.TurnoverDays = nil
	return item
}

// recomputeCommission overwrites the commission only when the calculator can
// determine one; an unknown channel leaves the stored value untouched.
func recomputeCommission(item *model.InventoryItem, calc Calculator) {
	if c := calc.Commission(item.SaleDestination, item.SalePrice, item.SaleDate); c != nil {
		item.Commission = c
	}
}

func recomputeDerived(item *model.InventoryItem) {
	purchaseCost := item.PurchaseTotal
	if purchaseCost == nil {
		purchaseCost = item.PurchasePrice
	}
	item.Profit = Profit(item.DepositAmount, purchaseCost, item.OtherCost, item.SaleDate)
	item.ProfitRate = ProfitRate(item.Profit, item.SalePrice)
	item.TurnoverDays = TurnoverDays(item.ListingDate, item.SaleDate)
}

// TurnoverDays counts listing → sale in whole days, nil unless both dates
// parse as YYYY-MM-DD and the span is non-negative.
func TurnoverDays(listingDate, saleDate *string) *int {
	if listingDate == nil || saleDate == nil {
		return nil
	}
	listed, err := time.Parse("2006-01-02", *listingDate)
	if err != nil {
		return nil
	}
	sold, err := time.Parse("2006-01-02", *saleDate)
	if err != nil {
		return nil
	}
	days := int(sold.Sub(listed).Hours() / 24)
	if days < 0 {
		return nil
	}
	return &days
}

// textField returns the address of the plain text column named by field.
// Only called for the fields the text case above enumerates.
func textField(item *model.InventoryItem, field string) **string {
	switch field {
	case FieldBrandName:
		return &item.BrandName
	case FieldCategory:
		return &item.Category
	case FieldImageURL:
		return &item.ImageURL
	case FieldInventoryNumber:
		return &item.InventoryNumber
	case FieldMemo:
		return &item.Memo
	case FieldPurchaseSource:
		return &item.PurchaseSource
	}
	return &item.PurchaseDate
}

func stringValue(field string, value any) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *string:
		return v, nil
	case string:
		return &v, nil
	}
	return nil, fmt.Errorf("pricing: field %q expects a string value, got %T", field, value)
}

func decimalValue(field string, value any) (*decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *decimal.Decimal:
		return v, nil
	case decimal.Decimal:
		return &v, nil
	}
	return nil, fmt.Errorf("pricing: field %q expects a decimal value, got %T", field, value)
}
