package dto

import "github.com/shopspring/decimal"

// ─── Commission settings ─────────────────────────────────────────────────────

type UpsertCommissionSettingRequest struct {
	YearMonth string          `json:"year_month" validate:"required,len=7"` // "2025-03"
	Rate      decimal.Decimal `json:"rate"       validate:"required"`
}

type CommissionSettingResponse struct {
	ID        string          `json:"id"`
	YearMonth string          `json:"year_month"`
	Rate      decimal.Decimal `json:"rate"`
}

// ─── Sales summary ───────────────────────────────────────────────────────────

type SummaryFilter struct {
	From            string `form:"from"`  // YYYY-MM-DD inclusive
	To              string `form:"to"`    // YYYY-MM-DD inclusive
	Month           string `form:"month"` // YYYY-MM shortcut
	SaleDestination string `form:"sale_destination"`
	SourceType      string `form:"source_type" validate:"omitempty,oneof=single bulk"`
	Page            int    `form:"page,default=1"    validate:"min=1"`
	Limit           int    `form:"limit,default=100" validate:"min=1,max=500"`
}

type SummaryRowResponse struct {
	ID              string           `json:"id"`
	SourceType      string           `json:"source_type"`
	SourceID        string           `json:"source_id"`
	InventoryNumber *string          `json:"inventory_number"`
	ProductName     string           `json:"product_name"`
	BrandName       *string          `json:"brand_name"`
	Category        *string          `json:"category"`
	PurchaseSource  *string          `json:"purchase_source"`
	SaleDestination *string          `json:"sale_destination"`
	SalePrice       decimal.Decimal  `json:"sale_price"`
	Commission      decimal.Decimal  `json:"commission"`
	ShippingCost    decimal.Decimal  `json:"shipping_cost"`
	OtherCost       decimal.Decimal  `json:"other_cost"`
	PurchasePrice   decimal.Decimal  `json:"purchase_price"`
	PurchaseCost    decimal.Decimal  `json:"purchase_cost"`
	DepositAmount   *decimal.Decimal `json:"deposit_amount"`
	Profit          decimal.Decimal  `json:"profit"`
	ProfitRate      decimal.Decimal  `json:"profit_rate"`
	SaleDate        *string          `json:"sale_date"`
	TurnoverDays    *int             `json:"turnover_days"`
	Quantity        int              `json:"quantity"`
}

type SummaryTotals struct {
	Sales    decimal.Decimal `json:"sales"`
	Profit   decimal.Decimal `json:"profit"`
	Quantity int             `json:"quantity"`
}

type SummaryListResponse struct {
	Data   []SummaryRowResponse `json:"data"`
	Totals SummaryTotals        `json:"totals"`
	Total  int64                `json:"total"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
}
