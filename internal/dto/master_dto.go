package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePlatformRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=100"`
	ColorClass     string           `json:"color_class"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	SalesType      string           `json:"sales_type" validate:"omitempty,oneof=toB toC"`
	SortOrder      int              `json:"sort_order"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Website            *string `json:"website" validate:"omitempty,url"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        bool    `json:"is_anonymous"`
}

type UpdatePlatformRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=100"`
	ColorClass     *string          `json:"color_class"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	SalesType      *string          `json:"sales_type" validate:"omitempty,oneof=toB toC"`
	SortOrder      *int             `json:"sort_order"`
	IsActive       *bool            `json:"is_active"`
	IsHidden       *bool            `json:"is_hidden"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Website            *string `json:"website" validate:"omitempty,url"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        *bool   `json:"is_anonymous"`
}

type CreateSupplierRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	ColorClass string `json:"color_class"`
	SortOrder  int    `json:"sort_order"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Website            *string `json:"website" validate:"omitempty,url"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        bool    `json:"is_anonymous"`
}

type UpdateSupplierRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	ColorClass *string `json:"color_class"`
	SortOrder  *int    `json:"sort_order"`
	IsActive   *bool   `json:"is_active"`
	IsHidden   *bool   `json:"is_hidden"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Website            *string `json:"website" validate:"omitempty,url"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        *bool   `json:"is_anonymous"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlatformResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ColorClass     string          `json:"color_class"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	SalesType      string          `json:"sales_type"`
	SortOrder      int             `json:"sort_order"`
	IsActive       bool            `json:"is_active"`
	IsHidden       bool            `json:"is_hidden"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	Website            *string `json:"website"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        bool    `json:"is_anonymous"`
}

type SupplierResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ColorClass string `json:"color_class"`
	SortOrder  int    `json:"sort_order"`
	IsActive   bool   `json:"is_active"`
	IsHidden   bool   `json:"is_hidden"`

	Address            *string `json:"address"`
	RepresentativeName *string `json:"representative_name"`
	Occupation         *string `json:"occupation"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	Website            *string `json:"website"`
	VerificationMethod *string `json:"verification_method"`
	IsAnonymous        bool    `json:"is_anonymous"`
}
