package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BulkPurchase is one lot purchase (e.g. a junk box of 30 watches) whose cost
// is amortized across the BulkSales that reference it. Deleting a purchase
// cascades to its sales: the purchase owns them.
type BulkPurchase struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseDate   string          `gorm:"not null"`
	Genre          string          `gorm:"not null"`
	PurchaseSource *string         `gorm:"index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	TotalQuantity  int             `gorm:"not null"`
	Memo           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Sales []BulkSale `gorm:"foreignKey:BulkPurchaseID;constraint:OnDelete:CASCADE"`
}

func (BulkPurchase) TableName() string { return "bulk_purchases" }

// BulkSale is one sale out of a lot. PurchasePrice is usually left nil while
// the lot is still in cost-recovery mode; the summary sync then values the
// sale at its deposit amount so recovered cost never shows as profit.
type BulkSale struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BulkPurchaseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SaleDate        string    `gorm:"not null"`
	SaleDestination *string
	Quantity        int              `gorm:"not null;default:1"`
	SaleAmount      decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	Commission      decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	ShippingCost    decimal.Decimal  `gorm:"type:decimal(12,0);not null"`
	OtherCost       *decimal.Decimal `gorm:"type:decimal(12,0)"`
	PurchasePrice   *decimal.Decimal `gorm:"type:decimal(12,0)"`
	DepositAmount   *decimal.Decimal `gorm:"type:decimal(12,0)"`
	ProductName     *string
	ListingDate     *string
	Memo            *string
	CostRecovered   *bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Purchase *BulkPurchase `gorm:"foreignKey:BulkPurchaseID"`
}

func (BulkSale) TableName() string { return "bulk_sales" }
