package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
)

// SummaryService maintains the denormalized sales_summary table and serves
// the dashboard queries over it.
type SummaryService interface {
	// Rebuild brings sales_summary up to date: single-item rows are appended
	// for sold items not yet summarized, bulk rows are deleted and recomputed
	// wholesale because lot amortization shifts whenever a sale is added.
	Rebuild(ctx context.Context) (int, error)
	List(ctx context.Context, filter dto.SummaryFilter) (*dto.SummaryListResponse, error)
}

type summaryService struct {
	summaryRepo   repository.SummaryRepository
	inventoryRepo repository.InventoryRepository
	bulkRepo      repository.BulkRepository
}

func NewSummaryService(
	summaryRepo repository.SummaryRepository,
	inventoryRepo repository.InventoryRepository,
	bulkRepo repository.BulkRepository,
) SummaryService {
	return &summaryService{
		summaryRepo:   summaryRepo,
		inventoryRepo: inventoryRepo,
		bulkRepo:      bulkRepo,
	}
}

func (s *summaryService) Rebuild(ctx context.Context) (int, error) {
	existing, err := s.summaryRepo.ExistingKeys(ctx)
	if err != nil {
		return 0, err
	}

	// Bulk rows are recomputed every run.
	if err := s.summaryRepo.DeleteBySourceType(ctx, model.SummarySourceBulk); err != nil {
		return 0, err
	}
	for k := range existing {
		if len(k) > 5 && k[:5] == "bulk:" {
			delete(existing, k)
		}
	}

	var rows []model.SalesSummary

	items, err := s.inventoryRepo.ListSoldSince(ctx, "")
	if err != nil {
		return 0, err
	}
	for i := range items {
		if row := summarizeItem(&items[i], existing); row != nil {
			rows = append(rows, *row)
		}
	}

	purchases, err := s.bulkRepo.ListPurchases(ctx)
	if err != nil {
		return 0, err
	}
	for i := range purchases {
		bp := &purchases[i]
		for j := range bp.Sales {
			if row := summarizeBulkSale(bp, &bp.Sales[j], existing); row != nil {
				rows = append(rows, *row)
			}
		}
	}

	if err := s.summaryRepo.Insert(ctx, rows); err != nil {
		return 0, err
	}
	if len(rows) > 0 {
		log.Info().Int("rows", len(rows)).Msg("summary: rebuild inserted new rows")
	}
	return len(rows), nil
}

// summarizeItem converts one sold inventory item, or nil when the item does
// not qualify (unsold, returned, no sale date) or is already summarized.
func summarizeItem(item *model.InventoryItem, existing map[string]struct{}) *model.SalesSummary {
	if item.Status != model.StatusSold {
		return nil
	}
	if item.SaleDestination == nil || *item.SaleDestination == "" || *item.SaleDestination == model.ReturnSentinel {
		return nil
	}
	if item.SaleDate == nil || *item.SaleDate == "" {
		return nil
	}
	if _, ok := existing[model.SummarySourceSingle+":"+item.ID.String()]; ok {
		return nil
	}

	salePrice := valOrZero(item.SalePrice)
	commission := valOrZero(item.Commission)
	shipping := valOrZero(item.ShippingCost)
	otherCost := valOrZero(item.OtherCost)
	purchasePrice := valOrZero(item.PurchasePrice)

	deposit := salePrice.Sub(commission).Sub(shipping)
	if item.DepositAmount != nil {
		deposit = *item.DepositAmount
	}
	// Prefer the tax-inclusive purchase total; fall back to net cost plus
	// repair/other cost.
	purchaseCost := purchasePrice.Add(otherCost)
	if item.PurchaseTotal != nil {
		purchaseCost = *item.PurchaseTotal
	}
	profit := deposit.Sub(purchaseCost)

	imageURL := item.ImageURL
	if item.SavedImageURL != nil {
		imageURL = item.SavedImageURL
	}

	return &model.SalesSummary{
		SourceType:      model.SummarySourceSingle,
		SourceID:        item.ID,
		InventoryNumber: item.InventoryNumber,
		ProductName:     item.ProductName,
		BrandName:       item.BrandName,
		Category:        item.Category,
		ImageURL:        imageURL,
		PurchaseSource:  item.PurchaseSource,
		SaleDestination: item.SaleDestination,
		SalePrice:       salePrice,
		Commission:      commission,
		ShippingCost:    shipping,
		OtherCost:       otherCost,
		PurchasePrice:   purchasePrice,
		PurchaseCost:    purchaseCost,
		DepositAmount:   &deposit,
		Profit:          profit,
		ProfitRate:      wholePercent(profit, salePrice),
		PurchaseDate:    item.PurchaseDate,
		ListingDate:     item.ListingDate,
		SaleDate:        item.SaleDate,
		TurnoverDays:    daysBetween(item.PurchaseDate, item.SaleDate),
		Memo:            item.Memo,
		Quantity:        1,
	}
}

// summarizeBulkSale converts one confirmed lot sale. A nil purchase price
// means the lot is in cost-recovery mode: the sale is valued at its deposit
// so recovered cost never shows as profit, and profit is clamped at zero.
func summarizeBulkSale(bp *model.BulkPurchase, sale *model.BulkSale, existing map[string]struct{}) *model.SalesSummary {
	if sale.SaleDestination == nil || *sale.SaleDestination == "" {
		return nil
	}
	if _, ok := existing[model.SummarySourceBulk+":"+sale.ID.String()]; ok {
		return nil
	}

	deposit := sale.SaleAmount.Sub(sale.Commission).Sub(sale.ShippingCost)
	if sale.DepositAmount != nil {
		deposit = *sale.DepositAmount
	}
	otherCost := valOrZero(sale.OtherCost)

	purchasePrice := deposit
	if sale.PurchasePrice != nil {
		purchasePrice = *sale.PurchasePrice
	}
	profit := deposit.Sub(purchasePrice).Sub(otherCost)
	if profit.IsNegative() {
		profit = decimal.Zero
	}

	name := lotName(bp, sale)
	cat := &bp.Genre
	purchaseDate := bp.PurchaseDate

	return &model.SalesSummary{
		SourceType:      model.SummarySourceBulk,
		SourceID:        sale.ID,
		ProductName:     name,
		Category:        cat,
		PurchaseSource:  bp.PurchaseSource,
		SaleDestination: sale.SaleDestination,
		SalePrice:       sale.SaleAmount,
		Commission:      sale.Commission,
		ShippingCost:    sale.ShippingCost,
		OtherCost:       otherCost,
		PurchasePrice:   purchasePrice,
		PurchaseCost:    purchasePrice.Add(otherCost),
		DepositAmount:   sale.DepositAmount,
		Profit:          profit,
		ProfitRate:      wholePercent(profit, sale.SaleAmount),
		PurchaseDate:    &purchaseDate,
		ListingDate:     sale.ListingDate,
		SaleDate:        &sale.SaleDate,
		TurnoverDays:    daysBetween(&purchaseDate, &sale.SaleDate),
		Memo:            sale.Memo,
		Quantity:        sale.Quantity,
	}
}

func lotName(bp *model.BulkPurchase, sale *model.BulkSale) string {
	if sale.ProductName != nil && *sale.ProductName != "" {
		return *sale.ProductName
	}
	name := "【まとめ】" + bp.Genre
	if sale.Quantity > 1 {
		name += " × " + decimal.NewFromInt(int64(sale.Quantity)).String()
	}
	return name
}

func (s *summaryService) List(ctx context.Context, filter dto.SummaryFilter) (*dto.SummaryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	rows, total, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryListResponse{
		Data:  make([]dto.SummaryRowResponse, 0, len(rows)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range rows {
		r := &rows[i]
		resp.Data = append(resp.Data, dto.SummaryRowResponse{
			ID:              r.ID.String(),
			SourceType:      r.SourceType,
			SourceID:        r.SourceID.String(),
			InventoryNumber: r.InventoryNumber,
			ProductName:     r.ProductName,
			BrandName:       r.BrandName,
			Category:        r.Category,
			PurchaseSource:  r.PurchaseSource,
			SaleDestination: r.SaleDestination,
			SalePrice:       r.SalePrice,
			Commission:      r.Commission,
			ShippingCost:    r.ShippingCost,
			OtherCost:       r.OtherCost,
			PurchasePrice:   r.PurchasePrice,
			PurchaseCost:    r.PurchaseCost,
			DepositAmount:   r.DepositAmount,
			Profit:          r.Profit,
			ProfitRate:      r.ProfitRate,
			SaleDate:        r.SaleDate,
			TurnoverDays:    r.TurnoverDays,
			Quantity:        r.Quantity,
		})
		resp.Totals.Sales = resp.Totals.Sales.Add(r.SalePrice)
		resp.Totals.Profit = resp.Totals.Profit.Add(r.Profit)
		resp.Totals.Quantity += r.Quantity
	}
	return resp, nil
}

func valOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func wholePercent(profit, salePrice decimal.Decimal) decimal.Decimal {
	if salePrice.IsZero() {
		return decimal.Zero
	}
	return profit.Div(salePrice).Mul(decimal.NewFromInt(100)).Round(0)
}

// daysBetween is purchase → sale in days, rounded up. Sentinel and free-form
// dates yield nil.
func daysBetween(from, to *string) *int {
	if from == nil || to == nil {
		return nil
	}
	a, err := time.Parse("2006-01-02", *from)
	if err != nil {
		return nil
	}
	b, err := time.Parse("2006-01-02", *to)
	if err != nil {
		return nil
	}
	days := int(math.Ceil(b.Sub(a).Hours() / 24))
	return &days
}
