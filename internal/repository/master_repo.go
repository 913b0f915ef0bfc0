package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

// PlatformRepository manages the sale-destination master list.
type PlatformRepository interface {
	Create(ctx context.Context, p *model.Platform) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Platform, error)
	FindByName(ctx context.Context, name string) (*model.Platform, error)
	List(ctx context.Context, includeHidden bool) ([]model.Platform, error)
	Update(ctx context.Context, p *model.Platform) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type platformRepo struct{ db *gorm.DB }

func NewPlatformRepository(db *gorm.DB) PlatformRepository { return &platformRepo{db: db} }

func (r *platformRepo) Create(ctx context.Context, p *model.Platform) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *platformRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Platform, error) {
	var p model.Platform
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *platformRepo) FindByName(ctx context.Context, name string) (*model.Platform, error) {
	var p model.Platform
	err := r.db.WithContext(ctx).Where("name = ? AND is_active = true", name).First(&p).Error
	return &p, err
}

func (r *platformRepo) List(ctx context.Context, includeHidden bool) ([]model.Platform, error) {
	var platforms []model.Platform
	q := r.db.WithContext(ctx).Where("is_active = true")
	if !includeHidden {
		q = q.Where("is_hidden = false")
	}
	err := q.Order("sort_order ASC, name ASC").Find(&platforms).Error
	return platforms, err
}

func (r *platformRepo) Update(ctx context.Context, p *model.Platform) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *platformRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Platform{}).Where("id = ?", id).Update("is_active", false).Error
}

// SupplierRepository manages the purchase-source master list.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, includeHidden bool) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context, includeHidden bool) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	q := r.db.WithContext(ctx).Where("is_active = true")
	if !includeHidden {
		q = q.Where("is_hidden = false")
	}
	err := q.Order("sort_order ASC, name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).Update("is_active", false).Error
}
