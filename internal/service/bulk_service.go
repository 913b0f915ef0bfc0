package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
	"github.com/Retrend821/inventory-saas-sub000/internal/worker"
)

// BulkService manages lot purchases and the sales amortized against them.
type BulkService interface {
	CreatePurchase(ctx context.Context, req dto.CreateBulkPurchaseRequest) (*dto.BulkPurchaseResponse, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*dto.BulkPurchaseResponse, error)
	ListPurchases(ctx context.Context) (*dto.BulkPurchaseListResponse, error)
	UpdatePurchase(ctx context.Context, id uuid.UUID, req dto.UpdateBulkPurchaseRequest) (*dto.BulkPurchaseResponse, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) error

	AddSale(ctx context.Context, purchaseID uuid.UUID, req dto.CreateBulkSaleRequest) (*dto.BulkSaleResponse, error)
	UpdateSale(ctx context.Context, saleID uuid.UUID, req dto.UpdateBulkSaleRequest) (*dto.BulkSaleResponse, error)
	DeleteSale(ctx context.Context, saleID uuid.UUID) error
}

type bulkService struct {
	repo       repository.BulkRepository
	dispatcher *worker.Dispatcher
}

func NewBulkService(repo repository.BulkRepository, dispatcher *worker.Dispatcher) BulkService {
	return &bulkService{repo: repo, dispatcher: dispatcher}
}

func (s *bulkService) CreatePurchase(ctx context.Context, req dto.CreateBulkPurchaseRequest) (*dto.BulkPurchaseResponse, error) {
	p := model.BulkPurchase{
		PurchaseDate:   req.PurchaseDate,
		Genre:          req.Genre,
		PurchaseSource: req.PurchaseSource,
		TotalAmount:    req.TotalAmount,
		TotalQuantity:  req.TotalQuantity,
		Memo:           req.Memo,
	}
	if err := s.repo.CreatePurchase(ctx, &p); err != nil {
		return nil, err
	}
	resp := purchaseToResponse(&p)
	return &resp, nil
}

func (s *bulkService) GetPurchase(ctx context.Context, id uuid.UUID) (*dto.BulkPurchaseResponse, error) {
	p, err := s.repo.FindPurchaseWithSales(ctx, id)
	if err != nil {
		return nil, errors.New("まとめ仕入れが見つかりません")
	}
	resp := purchaseToResponse(p)
	return &resp, nil
}

func (s *bulkService) ListPurchases(ctx context.Context) (*dto.BulkPurchaseListResponse, error) {
	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.BulkPurchaseListResponse{
		Data:  make([]dto.BulkPurchaseResponse, 0, len(purchases)),
		Total: int64(len(purchases)),
	}
	for i := range purchases {
		resp.Data = append(resp.Data, purchaseToResponse(&purchases[i]))
	}
	return resp, nil
}

func (s *bulkService) UpdatePurchase(ctx context.Context, id uuid.UUID, req dto.UpdateBulkPurchaseRequest) (*dto.BulkPurchaseResponse, error) {
	p, err := s.repo.FindPurchaseWithSales(ctx, id)
	if err != nil {
		return nil, errors.New("まとめ仕入れが見つかりません")
	}
	if req.PurchaseDate != nil {
		p.PurchaseDate = *req.PurchaseDate
	}
	if req.Genre != nil {
		p.Genre = *req.Genre
	}
	if req.PurchaseSource != nil {
		p.PurchaseSource = req.PurchaseSource
	}
	if req.TotalAmount != nil {
		p.TotalAmount = *req.TotalAmount
	}
	if req.TotalQuantity != nil {
		p.TotalQuantity = *req.TotalQuantity
	}
	if req.Memo != nil {
		p.Memo = req.Memo
	}
	if err := s.repo.UpdatePurchase(ctx, p); err != nil {
		return nil, err
	}
	s.resync(ctx)
	resp := purchaseToResponse(p)
	return &resp, nil
}

func (s *bulkService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindPurchaseByID(ctx, id); err != nil {
		return errors.New("まとめ仕入れが見つかりません")
	}
	if err := s.repo.DeletePurchase(ctx, id); err != nil {
		return err
	}
	s.resync(ctx)
	return nil
}

func (s *bulkService) AddSale(ctx context.Context, purchaseID uuid.UUID, req dto.CreateBulkSaleRequest) (*dto.BulkSaleResponse, error) {
	if _, err := s.repo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return nil, errors.New("まとめ仕入れが見つかりません")
	}

	sale := model.BulkSale{
		BulkPurchaseID:  purchaseID,
		SaleDate:        req.SaleDate,
		SaleDestination: req.SaleDestination,
		SaleAmount:      req.SaleAmount,
		Commission:      valOrZero(req.Commission),
		ShippingCost:    valOrZero(req.ShippingCost),
		OtherCost:       req.OtherCost,
		PurchasePrice:   req.PurchasePrice,
		Quantity:        req.Quantity,
		ProductName:     req.ProductName,
		ListingDate:     req.ListingDate,
		CostRecovered:   req.CostRecovered,
		Memo:            req.Memo,
	}
	if sale.Quantity < 1 {
		sale.Quantity = 1
	}
	deriveBulkDeposit(&sale)

	if err := s.repo.CreateSale(ctx, &sale); err != nil {
		return nil, err
	}
	s.resync(ctx)
	resp := saleToResponse(&sale)
	return &resp, nil
}

func (s *bulkService) UpdateSale(ctx context.Context, saleID uuid.UUID, req dto.UpdateBulkSaleRequest) (*dto.BulkSaleResponse, error) {
	sale, err := s.repo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, errors.New("売却記録が見つかりません")
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	if req.SaleDestination != nil {
		sale.SaleDestination = req.SaleDestination
	}
	if req.SaleAmount != nil {
		sale.SaleAmount = *req.SaleAmount
	}
	if req.Commission != nil {
		sale.Commission = *req.Commission
	}
	if req.ShippingCost != nil {
		sale.ShippingCost = *req.ShippingCost
	}
	if req.OtherCost != nil {
		sale.OtherCost = req.OtherCost
	}
	if req.PurchasePrice != nil {
		sale.PurchasePrice = req.PurchasePrice
	}
	if req.Quantity != nil && *req.Quantity >= 1 {
		sale.Quantity = *req.Quantity
	}
	if req.ProductName != nil {
		sale.ProductName = req.ProductName
	}
	if req.ListingDate != nil {
		sale.ListingDate = req.ListingDate
	}
	if req.CostRecovered != nil {
		sale.CostRecovered = req.CostRecovered
	}
	if req.Memo != nil {
		sale.Memo = req.Memo
	}
	deriveBulkDeposit(sale)

	if err := s.repo.UpdateSale(ctx, sale); err != nil {
		return nil, err
	}
	s.resync(ctx)
	resp := saleToResponse(sale)
	return &resp, nil
}

func (s *bulkService) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	if _, err := s.repo.FindSaleByID(ctx, saleID); err != nil {
		return errors.New("売却記録が見つかりません")
	}
	if err := s.repo.DeleteSale(ctx, saleID); err != nil {
		return err
	}
	s.resync(ctx)
	return nil
}

func (s *bulkService) resync(ctx context.Context) {
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "bulk"})
	}
}

func deriveBulkDeposit(sale *model.BulkSale) {
	d := sale.SaleAmount.Sub(sale.Commission).Sub(sale.ShippingCost)
	sale.DepositAmount = &d
}

// unitCost amortizes the lot: stated sale costs are added back to the pot
// and the denominator never drops below the number of recorded sales.
func unitCost(p *model.BulkPurchase) decimal.Decimal {
	pot := p.TotalAmount
	for i := range p.Sales {
		if p.Sales[i].PurchasePrice != nil {
			pot = pot.Add(*p.Sales[i].PurchasePrice)
		}
	}
	denom := p.TotalQuantity
	if len(p.Sales) > denom {
		denom = len(p.Sales)
	}
	if denom == 0 {
		return decimal.Zero
	}
	return pot.Div(decimal.NewFromInt(int64(denom))).Round(0)
}

func purchaseToResponse(p *model.BulkPurchase) dto.BulkPurchaseResponse {
	resp := dto.BulkPurchaseResponse{
		ID:             p.ID.String(),
		PurchaseDate:   p.PurchaseDate,
		Genre:          p.Genre,
		PurchaseSource: p.PurchaseSource,
		TotalAmount:    p.TotalAmount,
		TotalQuantity:  p.TotalQuantity,
		Memo:           p.Memo,
		UnitCost:       unitCost(p),
	}
	for i := range p.Sales {
		resp.SoldQuantity += p.Sales[i].Quantity
		resp.Sales = append(resp.Sales, saleToResponse(&p.Sales[i]))
	}
	return resp
}

func saleToResponse(sale *model.BulkSale) dto.BulkSaleResponse {
	return dto.BulkSaleResponse{
		ID:              sale.ID.String(),
		BulkPurchaseID:  sale.BulkPurchaseID.String(),
		SaleDate:        sale.SaleDate,
		SaleDestination: sale.SaleDestination,
		SaleAmount:      sale.SaleAmount,
		Commission:      sale.Commission,
		ShippingCost:    sale.ShippingCost,
		OtherCost:       sale.OtherCost,
		PurchasePrice:   sale.PurchasePrice,
		DepositAmount:   sale.DepositAmount,
		Quantity:        sale.Quantity,
		ProductName:     sale.ProductName,
		ListingDate:     sale.ListingDate,
		CostRecovered:   sale.CostRecovered != nil && *sale.CostRecovered,
		Memo:            sale.Memo,
	}
}
