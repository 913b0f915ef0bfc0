package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/normalize"
	"github.com/Retrend821/inventory-saas-sub000/internal/pricing"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
	"github.com/Retrend821/inventory-saas-sub000/internal/worker"
)

// InventoryService manages single-item stock: CRUD, the spreadsheet-style
// cell edit with its cross-field cascades, and the returns workflow.
type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error)
	List(ctx context.Context, filter dto.InventoryFilter) (*dto.InventoryListResponse, error)
	EditCell(ctx context.Context, id uuid.UUID, req dto.CellEditRequest) (*dto.InventoryItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListReturns(ctx context.Context) ([]dto.InventoryItemResponse, error)
	MarkReturn(ctx context.Context, id uuid.UUID, req dto.MarkReturnRequest) (*dto.InventoryItemResponse, error)
}

type inventoryService struct {
	repo         repository.InventoryRepository
	settingsRepo repository.CommissionSettingRepository
	norm         *normalize.Normalizer
	dispatcher   *worker.Dispatcher
}

func NewInventoryService(
	repo repository.InventoryRepository,
	settingsRepo repository.CommissionSettingRepository,
	norm *normalize.Normalizer,
	dispatcher *worker.Dispatcher,
) InventoryService {
	return &inventoryService{
		repo:         repo,
		settingsRepo: settingsRepo,
		norm:         norm,
		dispatcher:   dispatcher,
	}
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item := model.InventoryItem{
		ProductName:     req.ProductName,
		BrandName:       req.BrandName,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		InventoryNumber: req.InventoryNumber,
		PurchasePrice:   req.PurchasePrice,
		PurchaseTotal:   req.PurchaseTotal,
		OtherCost:       req.OtherCost,
		PurchaseDate:    req.PurchaseDate,
		ListingDate:     req.ListingDate,
		PurchaseSource:  req.PurchaseSource,
		Memo:            req.Memo,
		Status:          model.StatusInStock,
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	s.fillDetected(&item)
	if item.InventoryNumber == nil {
		num, err := s.nextInventoryNumber(ctx, item.PurchasePrice)
		if err == nil {
			item.InventoryNumber = &num
		}
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	resp := itemToResponse(&item)
	return &resp, nil
}

func (s *inventoryService) Get(ctx context.Context, id uuid.UUID) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("在庫が見つかりません")
	}
	resp := itemToResponse(item)
	return &resp, nil
}

func (s *inventoryService) List(ctx context.Context, filter dto.InventoryFilter) (*dto.InventoryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.InventoryListResponse{
		Data:  make([]dto.InventoryItemResponse, 0, len(items)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range items {
		resp.Data = append(resp.Data, itemToResponse(&items[i]))
	}
	if filter.Limit > 0 {
		resp.TotalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	return resp, nil
}

// EditCell applies one field change and its cascades. Money math lives in
// the pricing reducer; this method only loads, applies, saves, and triggers
// the summary resync when a settlement-relevant field moved.
func (s *inventoryService) EditCell(ctx context.Context, id uuid.UUID, req dto.CellEditRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("在庫が見つかりません")
	}

	calc, err := s.calculator(ctx)
	if err != nil {
		return nil, err
	}

	var value any
	if req.Value != nil {
		value = *req.Value
	}
	updated, err := applyEdit(*item, calc, req.Field, value)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	if s.dispatcher != nil && settlementFields[req.Field] {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "cell_edit"})
	}

	resp := itemToResponse(&updated)
	return &resp, nil
}

// settlementFields are the edits after which sales_summary may be stale.
var settlementFields = map[string]bool{
	pricing.FieldSaleDestination: true,
	pricing.FieldSalePrice:       true,
	pricing.FieldCommission:      true,
	pricing.FieldShippingCost:    true,
	pricing.FieldOtherCost:       true,
	pricing.FieldPurchasePrice:   true,
	pricing.FieldPurchaseTotal:   true,
	pricing.FieldDepositAmount:   true,
	pricing.FieldSaleDate:        true,
	pricing.FieldStatus:          true,
}

// applyEdit parses the raw cell string into the type the field expects and
// runs the reducer. Numeric fields accept empty string as "clear".
func applyEdit(item model.InventoryItem, calc pricing.Calculator, field string, value any) (model.InventoryItem, error) {
	switch field {
	case pricing.FieldPurchasePrice, pricing.FieldPurchaseTotal, pricing.FieldSalePrice,
		pricing.FieldCommission, pricing.FieldShippingCost, pricing.FieldOtherCost,
		pricing.FieldDepositAmount:
		s, _ := value.(string)
		if value == nil || s == "" {
			return pricing.ApplyFieldEdit(item, calc, field, nil)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return item, fmt.Errorf("数値として解釈できません: %q", s)
		}
		return pricing.ApplyFieldEdit(item, calc, field, d)
	}
	return pricing.ApplyFieldEdit(item, calc, field, value)
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("在庫が見つかりません")
	}
	return s.repo.Delete(ctx, id)
}

func (s *inventoryService) ListReturns(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := s.repo.ListReturns(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, itemToResponse(&items[i]))
	}
	return resp, nil
}

// MarkReturn runs the 返品 cascade and records the refund details.
func (s *inventoryService) MarkReturn(ctx context.Context, id uuid.UUID, req dto.MarkReturnRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("在庫が見つかりません")
	}

	calc, err := s.calculator(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := pricing.ApplyFieldEdit(*item, calc, pricing.FieldSaleDestination, model.ReturnSentinel)
	if err != nil {
		return nil, err
	}

	status := "返金待ち"
	updated.RefundStatus = &status
	updated.RefundAmount = req.RefundAmount
	updated.RefundDate = req.RefundDate
	if req.Memo != nil {
		updated.Memo = req.Memo
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "cell_edit"})
	}
	resp := itemToResponse(&updated)
	return &resp, nil
}

// calculator builds a fee calculator with the stored monthly rates.
func (s *inventoryService) calculator(ctx context.Context) (pricing.Calculator, error) {
	calc := pricing.Calculator{}
	if s.settingsRepo == nil {
		return calc, nil
	}
	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		return calc, err
	}
	rates := make(pricing.RateTable, len(settings))
	for _, st := range settings {
		rates[st.YearMonth] = st.Rate
	}
	calc.Rates = rates
	return calc, nil
}

func (s *inventoryService) fillDetected(item *model.InventoryItem) {
	if s.norm == nil {
		return
	}
	if item.BrandName == nil {
		if b := s.norm.DetectBrand(item.ProductName); b != "" {
			item.BrandName = &b
		}
	}
	if item.Category == nil {
		if c := s.norm.DetectCategory(item.ProductName); c != "" {
			item.Category = &c
		}
	}
}

// nextInventoryNumber issues "sequence）price", e.g. "3416）33660".
func (s *inventoryService) nextInventoryNumber(ctx context.Context, price *decimal.Decimal) (string, error) {
	max, err := s.repo.MaxInventorySequence(ctx)
	if err != nil {
		return "", err
	}
	p := decimal.Zero
	if price != nil {
		p = *price
	}
	return fmt.Sprintf("%d）%s", max+1, p.Round(0).String()), nil
}

func itemToResponse(item *model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:              item.ID.String(),
		InventoryNumber: item.InventoryNumber,
		ProductName:     item.ProductName,
		BrandName:       item.BrandName,
		Category:        item.Category,
		ImageURL:        item.ImageURL,
		SavedImageURL:   item.SavedImageURL,
		PurchasePrice:   item.PurchasePrice,
		PurchaseTotal:   item.PurchaseTotal,
		SalePrice:       item.SalePrice,
		Commission:      item.Commission,
		ShippingCost:    item.ShippingCost,
		OtherCost:       item.OtherCost,
		DepositAmount:   item.DepositAmount,
		Status:          item.Status,
		PurchaseDate:    item.PurchaseDate,
		ListingDate:     item.ListingDate,
		SaleDate:        item.SaleDate,
		PurchaseSource:  item.PurchaseSource,
		SaleDestination: item.SaleDestination,
		Memo:            item.Memo,
		Profit:          item.Profit,
		ProfitRate:      item.ProfitRate,
		TurnoverDays:    item.TurnoverDays,
		RefundStatus:    item.RefundStatus,
		RefundDate:      item.RefundDate,
		RefundAmount:    item.RefundAmount,
	}
}
