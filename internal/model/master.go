package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform is one sale destination (channel) in the master list. Fee lookups
// and dedup match on Name exactly, so renames go through the master, never
// through free text. The contact fields feed the dealer-ledger PDF.
type Platform struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"uniqueIndex;not null"`
	ColorClass     string          `gorm:"not null;default:''"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(4,1);not null;default:0"`
	SalesType      string          `gorm:"not null;default:'toC'"` // toB | toC
	SortOrder      int             `gorm:"not null;default:0"`
	IsActive       bool            `gorm:"not null;default:true"`
	IsHidden       bool            `gorm:"not null;default:false"`

	// 古物台帳 (secondhand-dealer ledger) counterparty details
	Address            *string
	RepresentativeName *string
	Occupation         *string
	Phone              *string
	Email              *string
	Website            *string
	VerificationMethod *string
	IsAnonymous        bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Platform) TableName() string { return "platforms" }

// Supplier is one purchase source in the master list.
type Supplier struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"uniqueIndex;not null"`
	ColorClass string    `gorm:"not null;default:''"`
	SortOrder  int       `gorm:"not null;default:0"`
	IsActive   bool      `gorm:"not null;default:true"`
	IsHidden   bool      `gorm:"not null;default:false"`

	Address            *string
	RepresentativeName *string
	Occupation         *string
	Phone              *string
	Email              *string
	Website            *string
	VerificationMethod *string
	IsAnonymous        bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Supplier) TableName() string { return "suppliers" }
