package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
)

// In-memory stand-ins for the GORM repositories. Each stub records what was
// written so tests can assert on persisted state without a database.

type stubInventoryRepo struct {
	items    map[uuid.UUID]*model.InventoryItem
	all      []model.InventoryItem
	sold     []model.InventoryItem
	returns  []model.InventoryItem
	external map[string]*model.InventoryItem

	created   []model.InventoryItem
	updated   []model.InventoryItem
	batches   [][]model.InventoryItem
	failBatch int // 1-based BatchInsert call that fails; 0 never fails
	maxSeq    int
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

func (r *stubInventoryRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.created = append(r.created, *item)
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	if item, ok := r.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) FindByExternalKey(_ context.Context, source, externalID string) (*model.InventoryItem, error) {
	if item, ok := r.external[source+"|"+externalID]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) List(_ context.Context, _ dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	return r.all, int64(len(r.all)), nil
}

func (r *stubInventoryRepo) FindAll(_ context.Context) ([]model.InventoryItem, error) {
	return r.all, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *model.InventoryItem) error {
	r.updated = append(r.updated, *item)
	if _, ok := r.items[item.ID]; ok {
		copied := *item
		r.items[item.ID] = &copied
	}
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubInventoryRepo) BatchInsert(_ context.Context, items []model.InventoryItem) error {
	r.batches = append(r.batches, items)
	if r.failBatch > 0 && len(r.batches) == r.failBatch {
		return errors.New("insert failed")
	}
	return nil
}

func (r *stubInventoryRepo) MaxInventorySequence(_ context.Context) (int, error) {
	return r.maxSeq, nil
}

func (r *stubInventoryRepo) ListReturns(_ context.Context) ([]model.InventoryItem, error) {
	return r.returns, nil
}

func (r *stubInventoryRepo) ListSoldSince(_ context.Context, _ string) ([]model.InventoryItem, error) {
	return r.sold, nil
}

func (r *stubInventoryRepo) DB() *gorm.DB { return nil }

type stubSettingsRepo struct {
	settings []model.CommissionSetting
	upserted []model.CommissionSetting
	deleted  []string
}

var _ repository.CommissionSettingRepository = (*stubSettingsRepo)(nil)

func (r *stubSettingsRepo) Upsert(_ context.Context, s *model.CommissionSetting) error {
	r.upserted = append(r.upserted, *s)
	return nil
}

func (r *stubSettingsRepo) FindByYearMonth(_ context.Context, yearMonth string) (*model.CommissionSetting, error) {
	for i := range r.settings {
		if r.settings[i].YearMonth == yearMonth {
			return &r.settings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSettingsRepo) List(_ context.Context) ([]model.CommissionSetting, error) {
	return r.settings, nil
}

func (r *stubSettingsRepo) Delete(_ context.Context, yearMonth string) error {
	r.deleted = append(r.deleted, yearMonth)
	return nil
}

type stubBulkRepo struct {
	purchases []model.BulkPurchase
	sales     []model.BulkSale

	createdSales []model.BulkSale
	updatedSales []model.BulkSale
	deletedSales []uuid.UUID
}

var _ repository.BulkRepository = (*stubBulkRepo)(nil)

func (r *stubBulkRepo) CreatePurchase(_ context.Context, p *model.BulkPurchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *stubBulkRepo) FindPurchaseByID(_ context.Context, id uuid.UUID) (*model.BulkPurchase, error) {
	for i := range r.purchases {
		if r.purchases[i].ID == id {
			return &r.purchases[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBulkRepo) FindPurchaseWithSales(ctx context.Context, id uuid.UUID) (*model.BulkPurchase, error) {
	return r.FindPurchaseByID(ctx, id)
}

func (r *stubBulkRepo) ListPurchases(_ context.Context) ([]model.BulkPurchase, error) {
	return r.purchases, nil
}

func (r *stubBulkRepo) UpdatePurchase(_ context.Context, p *model.BulkPurchase) error {
	for i := range r.purchases {
		if r.purchases[i].ID == p.ID {
			r.purchases[i] = *p
		}
	}
	return nil
}

func (r *stubBulkRepo) DeletePurchase(_ context.Context, id uuid.UUID) error {
	kept := r.purchases[:0]
	for _, p := range r.purchases {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.purchases = kept
	return nil
}

func (r *stubBulkRepo) CreateSale(_ context.Context, s *model.BulkSale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales = append(r.sales, *s)
	r.createdSales = append(r.createdSales, *s)
	return nil
}

func (r *stubBulkRepo) FindSaleByID(_ context.Context, id uuid.UUID) (*model.BulkSale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			copied := r.sales[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBulkRepo) ListSalesByPurchase(_ context.Context, purchaseID uuid.UUID) ([]model.BulkSale, error) {
	var out []model.BulkSale
	for _, s := range r.sales {
		if s.BulkPurchaseID == purchaseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubBulkRepo) UpdateSale(_ context.Context, s *model.BulkSale) error {
	r.updatedSales = append(r.updatedSales, *s)
	for i := range r.sales {
		if r.sales[i].ID == s.ID {
			r.sales[i] = *s
		}
	}
	return nil
}

func (r *stubBulkRepo) DeleteSale(_ context.Context, id uuid.UUID) error {
	r.deletedSales = append(r.deletedSales, id)
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

type stubSummaryRepo struct {
	keys map[string]struct{}
	rows []model.SalesSummary

	inserted     []model.SalesSummary
	deletedTypes []string
}

var _ repository.SummaryRepository = (*stubSummaryRepo)(nil)

func (r *stubSummaryRepo) ExistingKeys(_ context.Context) (map[string]struct{}, error) {
	keys := make(map[string]struct{}, len(r.keys))
	for k := range r.keys {
		keys[k] = struct{}{}
	}
	return keys, nil
}

func (r *stubSummaryRepo) Insert(_ context.Context, rows []model.SalesSummary) error {
	r.inserted = append(r.inserted, rows...)
	return nil
}

func (r *stubSummaryRepo) DeleteBySourceType(_ context.Context, sourceType string) error {
	r.deletedTypes = append(r.deletedTypes, sourceType)
	return nil
}

func (r *stubSummaryRepo) DeleteBySource(_ context.Context, sourceType string, sourceID uuid.UUID) error {
	delete(r.keys, sourceType+":"+sourceID.String())
	return nil
}

func (r *stubSummaryRepo) List(_ context.Context, _ dto.SummaryFilter) ([]model.SalesSummary, int64, error) {
	return r.rows, int64(len(r.rows)), nil
}

type stubPlatformRepo struct {
	platforms []model.Platform

	created []model.Platform
	updated []model.Platform
}

var _ repository.PlatformRepository = (*stubPlatformRepo)(nil)

func (r *stubPlatformRepo) Create(_ context.Context, p *model.Platform) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.platforms = append(r.platforms, *p)
	r.created = append(r.created, *p)
	return nil
}

func (r *stubPlatformRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Platform, error) {
	for i := range r.platforms {
		if r.platforms[i].ID == id {
			copied := r.platforms[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPlatformRepo) FindByName(_ context.Context, name string) (*model.Platform, error) {
	for i := range r.platforms {
		if r.platforms[i].Name == name {
			copied := r.platforms[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPlatformRepo) List(_ context.Context, includeHidden bool) ([]model.Platform, error) {
	var out []model.Platform
	for _, p := range r.platforms {
		if includeHidden || !p.IsHidden {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlatformRepo) Update(_ context.Context, p *model.Platform) error {
	r.updated = append(r.updated, *p)
	for i := range r.platforms {
		if r.platforms[i].ID == p.ID {
			r.platforms[i] = *p
		}
	}
	return nil
}

func (r *stubPlatformRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range r.platforms {
		if r.platforms[i].ID == id {
			r.platforms[i].IsActive = false
		}
	}
	return nil
}

type stubSupplierRepo struct {
	suppliers []model.Supplier
	updated   []model.Supplier
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers = append(r.suppliers, *s)
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			copied := r.suppliers[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) List(_ context.Context, includeHidden bool) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		if includeHidden || !s.IsHidden {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.updated = append(r.updated, *s)
	for i := range r.suppliers {
		if r.suppliers[i].ID == s.ID {
			r.suppliers[i] = *s
		}
	}
	return nil
}

func (r *stubSupplierRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			r.suppliers[i].IsActive = false
		}
	}
	return nil
}

// Shared pointer helpers for the service tests.

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}
