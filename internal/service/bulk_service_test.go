package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

func TestUnitCost(t *testing.T) {
	p := &model.BulkPurchase{
		TotalAmount:   decimal.NewFromInt(30000),
		TotalQuantity: 10,
		Sales: []model.BulkSale{
			{PurchasePrice: decPtr(3000)},
			{},
		},
	}
	// Stated sale costs flow back into the pot: (30000 + 3000) / 10
	assert.Equal(t, "3300", unitCost(p).String())
}

func TestUnitCost_DenominatorNeverBelowSalesCount(t *testing.T) {
	p := &model.BulkPurchase{
		TotalAmount:   decimal.NewFromInt(9000),
		TotalQuantity: 2,
		Sales:         []model.BulkSale{{}, {}, {}},
	}
	assert.Equal(t, "3000", unitCost(p).String())
}

func TestUnitCost_EmptyLot(t *testing.T) {
	p := &model.BulkPurchase{TotalAmount: decimal.NewFromInt(5000)}
	assert.True(t, unitCost(p).IsZero())
}

func TestBulkService_AddSaleDerivesDeposit(t *testing.T) {
	repo := &stubBulkRepo{}
	svc := NewBulkService(repo, nil)

	created, err := svc.CreatePurchase(context.Background(), dto.CreateBulkPurchaseRequest{
		PurchaseDate:  "2025-04-01",
		Genre:         "腕時計",
		TotalAmount:   decimal.NewFromInt(50000),
		TotalQuantity: 20,
	})
	require.NoError(t, err)

	purchaseID := uuid.MustParse(created.ID)
	sale, err := svc.AddSale(context.Background(), purchaseID, dto.CreateBulkSaleRequest{
		SaleDate:        "2025-04-20",
		SaleDestination: strPtr("ヤフオク"),
		SaleAmount:      decimal.NewFromInt(10000),
		Commission:      decPtr(1000),
		ShippingCost:    decPtr(500),
	})
	require.NoError(t, err)

	require.NotNil(t, sale.DepositAmount)
	assert.Equal(t, "8500", sale.DepositAmount.String())
	assert.Equal(t, 1, sale.Quantity) // defaulted
	require.Len(t, repo.createdSales, 1)
}

func TestBulkService_AddSaleUnknownPurchase(t *testing.T) {
	svc := NewBulkService(&stubBulkRepo{}, nil)

	_, err := svc.AddSale(context.Background(), uuid.New(), dto.CreateBulkSaleRequest{
		SaleDate:   "2025-04-20",
		SaleAmount: decimal.NewFromInt(1000),
	})
	assert.ErrorContains(t, err, "まとめ仕入れが見つかりません")
}

func TestBulkService_UpdateSaleRederivesDeposit(t *testing.T) {
	repo := &stubBulkRepo{}
	saleID := uuid.New()
	repo.sales = []model.BulkSale{{
		ID:             saleID,
		BulkPurchaseID: uuid.New(),
		SaleDate:       "2025-04-20",
		SaleAmount:     decimal.NewFromInt(10000),
		Commission:     decimal.NewFromInt(1000),
		ShippingCost:   decimal.NewFromInt(500),
		DepositAmount:  decPtr(8500),
		Quantity:       1,
	}}
	svc := NewBulkService(repo, nil)

	updated, err := svc.UpdateSale(context.Background(), saleID, dto.UpdateBulkSaleRequest{
		SaleAmount: decPtr(12000),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.DepositAmount)
	assert.Equal(t, "10500", updated.DepositAmount.String())
	require.Len(t, repo.updatedSales, 1)
}

func TestBulkService_GetPurchaseAggregates(t *testing.T) {
	repo := &stubBulkRepo{}
	purchaseID := uuid.New()
	repo.purchases = []model.BulkPurchase{{
		ID:            purchaseID,
		PurchaseDate:  "2025-04-01",
		Genre:         "ジャンク時計",
		TotalAmount:   decimal.NewFromInt(30000),
		TotalQuantity: 10,
		Sales: []model.BulkSale{
			{Quantity: 2, SaleAmount: decimal.NewFromInt(4000)},
			{Quantity: 1, SaleAmount: decimal.NewFromInt(2500), PurchasePrice: decPtr(3000)},
		},
	}}
	svc := NewBulkService(repo, nil)

	resp, err := svc.GetPurchase(context.Background(), purchaseID)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.SoldQuantity)
	assert.Equal(t, "3300", resp.UnitCost.String()) // (30000 + 3000) / 10
	assert.Len(t, resp.Sales, 2)
}

func TestBulkService_DeleteSale(t *testing.T) {
	repo := &stubBulkRepo{}
	saleID := uuid.New()
	repo.sales = []model.BulkSale{{ID: saleID, SaleAmount: decimal.Zero}}
	svc := NewBulkService(repo, nil)

	require.NoError(t, svc.DeleteSale(context.Background(), saleID))
	assert.Empty(t, repo.sales)

	assert.ErrorContains(t, svc.DeleteSale(context.Background(), saleID), "売却記録が見つかりません")
}
