package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item status values. Stored as text to match the spreadsheet-style UI the
// API serves; the summary sync and the returns view match on them exactly.
const (
	StatusInStock = "在庫"
	StatusSold    = "売却済み"
)

// ReturnSentinel marks a returned item. It lives in sale_destination and is
// also stamped into listing_date / sale_date, which is why every date column
// on InventoryItem is TEXT: sentinel strings must survive round trips.
const ReturnSentinel = "返品"

// InventoryItem is one physical unit of resale stock, from purchase through
// listing to sale (or return).
type InventoryItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InventoryNumber *string   `gorm:"index"` // "3415）33660" — sequence + purchase price
	ProductName     string    `gorm:"index;not null"`
	BrandName       *string
	Category        *string
	ImageURL        *string
	SavedImageURL   *string
	PurchasePrice   *decimal.Decimal `gorm:"type:decimal(12,0)"` // net cost
	PurchaseTotal   *decimal.Decimal `gorm:"type:decimal(12,0)"` // cost incl. tax/fees
	SalePrice       *decimal.Decimal `gorm:"type:decimal(12,0)"`
	Commission      *decimal.Decimal `gorm:"type:decimal(12,0)"`
	ShippingCost    *decimal.Decimal `gorm:"type:decimal(12,0)"`
	OtherCost       *decimal.Decimal `gorm:"type:decimal(12,0)"`
	DepositAmount   *decimal.Decimal `gorm:"type:decimal(12,0)"`
	Status          string           `gorm:"not null;default:'在庫';index"`
	PurchaseDate    *string
	ListingDate     *string
	SaleDate        *string
	PurchaseSource  *string `gorm:"index"`
	SaleDestination *string `gorm:"index"`
	Memo            *string

	Profit       *decimal.Decimal `gorm:"type:decimal(12,0)"`
	ProfitRate   *decimal.Decimal `gorm:"type:decimal(5,1)"`
	TurnoverDays *int

	// Returns workflow
	RefundStatus *string
	RefundDate   *string
	RefundAmount *decimal.Decimal `gorm:"type:decimal(12,0)"`

	// External ingest (mail scraper) dedup key
	ExternalID     *string `gorm:"index:idx_inventory_external,unique,where:external_id IS NOT NULL"`
	ExternalSource *string `gorm:"index:idx_inventory_external,unique,where:external_id IS NOT NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (InventoryItem) TableName() string { return "inventory_items" }
