package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBulkPurchaseRequest struct {
	PurchaseDate   string          `json:"purchase_date"  validate:"required"`
	Genre          string          `json:"genre"          validate:"required,min=1,max=100"`
	PurchaseSource *string         `json:"purchase_source"`
	TotalAmount    decimal.Decimal `json:"total_amount"   validate:"required"`
	TotalQuantity  int             `json:"total_quantity" validate:"required,min=1"`
	Memo           *string         `json:"memo"`
}

type UpdateBulkPurchaseRequest struct {
	PurchaseDate   *string          `json:"purchase_date"`
	Genre          *string          `json:"genre" validate:"omitempty,min=1,max=100"`
	PurchaseSource *string          `json:"purchase_source"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	TotalQuantity  *int             `json:"total_quantity" validate:"omitempty,min=1"`
	Memo           *string          `json:"memo"`
}

type CreateBulkSaleRequest struct {
	SaleDate        string           `json:"sale_date"   validate:"required"`
	SaleDestination *string          `json:"sale_destination"`
	SaleAmount      decimal.Decimal  `json:"sale_amount" validate:"required"`
	Commission      *decimal.Decimal `json:"commission"`
	ShippingCost    *decimal.Decimal `json:"shipping_cost"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	Quantity        int              `json:"quantity" validate:"min=0"`
	ProductName     *string          `json:"product_name"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	ListingDate     *string          `json:"listing_date"`
	CostRecovered   *bool            `json:"cost_recovered"`
	Memo            *string          `json:"memo"`
}

type UpdateBulkSaleRequest struct {
	SaleDate        *string          `json:"sale_date"`
	SaleDestination *string          `json:"sale_destination"`
	SaleAmount      *decimal.Decimal `json:"sale_amount"`
	Commission      *decimal.Decimal `json:"commission"`
	ShippingCost    *decimal.Decimal `json:"shipping_cost"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	Quantity        *int             `json:"quantity" validate:"omitempty,min=0"`
	ProductName     *string          `json:"product_name"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	ListingDate     *string          `json:"listing_date"`
	CostRecovered   *bool            `json:"cost_recovered"`
	Memo            *string          `json:"memo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BulkSaleResponse struct {
	ID              string           `json:"id"`
	BulkPurchaseID  string           `json:"bulk_purchase_id"`
	SaleDate        string           `json:"sale_date"`
	SaleDestination *string          `json:"sale_destination"`
	SaleAmount      decimal.Decimal  `json:"sale_amount"`
	Commission      decimal.Decimal  `json:"commission"`
	ShippingCost    decimal.Decimal  `json:"shipping_cost"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	DepositAmount   *decimal.Decimal `json:"deposit_amount"`
	Quantity        int              `json:"quantity"`
	ProductName     *string          `json:"product_name"`
	ListingDate     *string          `json:"listing_date"`
	CostRecovered   bool             `json:"cost_recovered"`
	Memo            *string          `json:"memo"`
}

type BulkPurchaseResponse struct {
	ID             string             `json:"id"`
	PurchaseDate   string             `json:"purchase_date"`
	Genre          string             `json:"genre"`
	PurchaseSource *string            `json:"purchase_source"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	TotalQuantity  int                `json:"total_quantity"`
	Memo           *string            `json:"memo"`
	UnitCost       decimal.Decimal    `json:"unit_cost"`
	SoldQuantity   int                `json:"sold_quantity"`
	Sales          []BulkSaleResponse `json:"sales,omitempty"`
}

type BulkPurchaseListResponse struct {
	Data  []BulkPurchaseResponse `json:"data"`
	Total int64                  `json:"total"`
}
