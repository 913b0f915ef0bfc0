package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionSetting is the monthly commission-rate override for ラクマ, whose
// fee varies per calendar month under the seller's contract. Keyed by
// "YYYY-MM"; months without a row fall back to the default 10%.
type CommissionSetting struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	YearMonth string          `gorm:"uniqueIndex;not null"` // "2025-03"
	Rate      decimal.Decimal `gorm:"type:decimal(4,1);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommissionSetting) TableName() string { return "commission_settings" }
