package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

type BulkRepository interface {
	CreatePurchase(ctx context.Context, p *model.BulkPurchase) error
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*model.BulkPurchase, error)
	// FindPurchaseWithSales preloads the owned sales for unit-cost math.
	FindPurchaseWithSales(ctx context.Context, id uuid.UUID) (*model.BulkPurchase, error)
	ListPurchases(ctx context.Context) ([]model.BulkPurchase, error)
	UpdatePurchase(ctx context.Context, p *model.BulkPurchase) error
	// DeletePurchase removes the purchase and, via FK cascade, all its sales.
	DeletePurchase(ctx context.Context, id uuid.UUID) error

	CreateSale(ctx context.Context, s *model.BulkSale) error
	FindSaleByID(ctx context.Context, id uuid.UUID) (*model.BulkSale, error)
	ListSalesByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.BulkSale, error)
	UpdateSale(ctx context.Context, s *model.BulkSale) error
	DeleteSale(ctx context.Context, id uuid.UUID) error
}

type bulkRepo struct{ db *gorm.DB }

func NewBulkRepository(db *gorm.DB) BulkRepository { return &bulkRepo{db: db} }

func (r *bulkRepo) CreatePurchase(ctx context.Context, p *model.BulkPurchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *bulkRepo) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*model.BulkPurchase, error) {
	var p model.BulkPurchase
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *bulkRepo) FindPurchaseWithSales(ctx context.Context, id uuid.UUID) (*model.BulkPurchase, error) {
	var p model.BulkPurchase
	err := r.db.WithContext(ctx).
		Preload("Sales", func(db *gorm.DB) *gorm.DB { return db.Order("sale_date ASC") }).
		First(&p, id).Error
	return &p, err
}

func (r *bulkRepo) ListPurchases(ctx context.Context) ([]model.BulkPurchase, error) {
	var purchases []model.BulkPurchase
	err := r.db.WithContext(ctx).
		Preload("Sales").
		Order("purchase_date DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *bulkRepo) UpdatePurchase(ctx context.Context, p *model.BulkPurchase) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *bulkRepo) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Sales").Delete(&model.BulkPurchase{ID: id}).Error
}

func (r *bulkRepo) CreateSale(ctx context.Context, s *model.BulkSale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *bulkRepo) FindSaleByID(ctx context.Context, id uuid.UUID) (*model.BulkSale, error) {
	var s model.BulkSale
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *bulkRepo) ListSalesByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.BulkSale, error) {
	var sales []model.BulkSale
	err := r.db.WithContext(ctx).
		Where("bulk_purchase_id = ?", purchaseID).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *bulkRepo) UpdateSale(ctx context.Context, s *model.BulkSale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *bulkRepo) DeleteSale(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BulkSale{}, id).Error
}
