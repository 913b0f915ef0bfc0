package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateInventoryItemRequest struct {
	ProductName     string           `json:"product_name" validate:"required,min=1,max=300"`
	BrandName       *string          `json:"brand_name"`
	Category        *string          `json:"category"`
	ImageURL        *string          `json:"image_url"    validate:"omitempty,url"`
	InventoryNumber *string          `json:"inventory_number"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	PurchaseTotal   *decimal.Decimal `json:"purchase_total"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	PurchaseDate    *string          `json:"purchase_date"`
	ListingDate     *string          `json:"listing_date"`
	PurchaseSource  *string          `json:"purchase_source"`
	Status          *string          `json:"status" validate:"omitempty,oneof=在庫 売却済み"`
	Memo            *string          `json:"memo"`
}

// CellEditRequest is one spreadsheet-style cell write. The service runs the
// full cascade for the field, so the response carries the whole updated row.
type CellEditRequest struct {
	Field string  `json:"field" validate:"required"`
	Value *string `json:"value"`
}

type MarkReturnRequest struct {
	RefundAmount *decimal.Decimal `json:"refund_amount"`
	RefundDate   *string          `json:"refund_date"`
	Memo         *string          `json:"memo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type InventoryFilter struct {
	Status          string `form:"status"`
	PurchaseSource  string `form:"purchase_source"`
	SaleDestination string `form:"sale_destination"`
	BrandName       string `form:"brand_name"`
	Category        string `form:"category"`
	Query           string `form:"q"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryItemResponse struct {
	ID              string           `json:"id"`
	InventoryNumber *string          `json:"inventory_number"`
	ProductName     string           `json:"product_name"`
	BrandName       *string          `json:"brand_name"`
	Category        *string          `json:"category"`
	ImageURL        *string          `json:"image_url"`
	SavedImageURL   *string          `json:"saved_image_url"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	PurchaseTotal   *decimal.Decimal `json:"purchase_total"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	Commission      *decimal.Decimal `json:"commission"`
	ShippingCost    *decimal.Decimal `json:"shipping_cost"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	DepositAmount   *decimal.Decimal `json:"deposit_amount"`
	Status          string           `json:"status"`
	PurchaseDate    *string          `json:"purchase_date"`
	ListingDate     *string          `json:"listing_date"`
	SaleDate        *string          `json:"sale_date"`
	PurchaseSource  *string          `json:"purchase_source"`
	SaleDestination *string          `json:"sale_destination"`
	Memo            *string          `json:"memo"`
	Profit          *decimal.Decimal `json:"profit"`
	ProfitRate      *decimal.Decimal `json:"profit_rate"`
	TurnoverDays    *int             `json:"turnover_days"`
	RefundStatus    *string          `json:"refund_status"`
	RefundDate      *string          `json:"refund_date"`
	RefundAmount    *decimal.Decimal `json:"refund_amount"`
}

type InventoryListResponse struct {
	Data       []InventoryItemResponse `json:"data"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}
