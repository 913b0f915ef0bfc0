package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary source types.
const (
	SummarySourceSingle = "single"
	SummarySourceBulk   = "bulk"
)

// SalesSummary is one denormalized sold row used by the dashboard and the
// monthly reports. Rebuilt asynchronously by the summary worker: single-item
// rows are append-only (keyed source_type:source_id), bulk rows are deleted
// and recomputed every run because lot amortization shifts as sales accrue.
type SalesSummary struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourceType      string    `gorm:"not null;index:idx_summary_source,unique"`
	SourceID        uuid.UUID `gorm:"type:uuid;not null;index:idx_summary_source,unique"`
	InventoryNumber *string
	ProductName     string `gorm:"not null"`
	BrandName       *string
	Category        *string
	ImageURL        *string
	PurchaseSource  *string
	SaleDestination *string
	SalePrice       decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	Commission      decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	ShippingCost    decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	OtherCost       decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	PurchasePrice   decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	PurchaseCost    decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	DepositAmount   *decimal.Decimal `gorm:"type:decimal(12,0)"`
	Profit          decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	ProfitRate      decimal.Decimal  `gorm:"type:decimal(5,1);not null"`
	PurchaseDate    *string
	ListingDate     *string
	SaleDate        *string `gorm:"index"`
	TurnoverDays    *int
	Memo            *string
	Quantity        int `gorm:"not null;default:1"`
	CreatedAt       time.Time
}

func (SalesSummary) TableName() string { return "sales_summary" }
