package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

// InventoryRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindByExternalKey(ctx context.Context, source, externalID string) (*model.InventoryItem, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error)
	// FindAll drains the whole table in pages; the dedup filter needs every
	// persisted row, not just the first page.
	FindAll(ctx context.Context) ([]model.InventoryItem, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	BatchInsert(ctx context.Context, items []model.InventoryItem) error
	MaxInventorySequence(ctx context.Context) (int, error)
	ListReturns(ctx context.Context) ([]model.InventoryItem, error)
	ListSoldSince(ctx context.Context, sinceDate string) ([]model.InventoryItem, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *inventoryRepo) FindByExternalKey(ctx context.Context, source, externalID string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("external_source = ? AND external_id = ?", source, externalID).
		First(&item).Error
	return &item, err
}

func (r *inventoryRepo) List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.InventoryItem{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PurchaseSource != "" {
		q = q.Where("purchase_source = ?", filter.PurchaseSource)
	}
	if filter.SaleDestination != "" {
		q = q.Where("sale_destination = ?", filter.SaleDestination)
	}
	if filter.BrandName != "" {
		q = q.Where("brand_name = ?", filter.BrandName)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Query != "" {
		q = q.Where("product_name ILIKE ?", "%"+filter.Query+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// findAllPageSize bounds memory per round trip while draining the table.
const findAllPageSize = 1000

func (r *inventoryRepo) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	var all []model.InventoryItem
	for offset := 0; ; offset += findAllPageSize {
		var page []model.InventoryItem
		err := r.db.WithContext(ctx).
			Order("created_at ASC").
			Limit(findAllPageSize).Offset(offset).
			Find(&page).Error
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < findAllPageSize {
			return all, nil
		}
	}
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}

func (r *inventoryRepo) BatchInsert(ctx context.Context, items []model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

// MaxInventorySequence extracts the highest numeric prefix among stored
// inventory numbers ("3415）33660" → 3415). Used for auto numbering.
func (r *inventoryRepo) MaxInventorySequence(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Select("COALESCE(MAX(CAST(substring(inventory_number from '^\\d+') AS integer)), 0)").
		Where("inventory_number ~ '^\\d+'").
		Scan(&max).Error
	return max, err
}

func (r *inventoryRepo) ListReturns(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("sale_destination = ?", model.ReturnSentinel).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) ListSoldSince(ctx context.Context, sinceDate string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	q := r.db.WithContext(ctx).Where("status = ?", model.StatusSold)
	if sinceDate != "" {
		q = q.Where("sale_date >= ?", sinceDate)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
