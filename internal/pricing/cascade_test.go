package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Retrend821/inventory-saas-sub000/internal/model"
)

func soldItem() model.InventoryItem {
	return model.InventoryItem{
		ProductName:     "ルイヴィトン 長財布",
		Status:          model.StatusSold,
		PurchaseTotal:   decp(3000),
		SalePrice:       decp(5000),
		Commission:      decp(500),
		ShippingCost:    decp(200),
		DepositAmount:   decp(4300),
		ListingDate:     strp("2025-04-20"),
		SaleDate:        strp("2025-05-01"),
		SaleDestination: strp(DestMercari),
	}
}

func TestApplyFieldEdit_ReturnCascade(t *testing.T) {
	item, err := ApplyFieldEdit(soldItem(), Calculator{}, FieldSaleDestination, returnSentinel)
	require.NoError(t, err)

	require.NotNil(t, item.SaleDestination)
	assert.Equal(t, returnSentinel, *item.SaleDestination)
	assert.Nil(t, item.SalePrice)
	assert.Nil(t, item.Commission)
	assert.Nil(t, item.DepositAmount)
	assert.Nil(t, item.Profit)
	assert.Nil(t, item.ProfitRate)
	assert.Nil(t, item.TurnoverDays)

	// Sentinel is stamped into both activity dates
	require.NotNil(t, item.ListingDate)
	require.NotNil(t, item.SaleDate)
	assert.Equal(t, returnSentinel, *item.ListingDate)
	assert.Equal(t, returnSentinel, *item.SaleDate)
}

func TestApplyFieldEdit_DestinationRecomputesCommissionThenDeposit(t *testing.T) {
	// Moving the sale to メルカリ changes the fee to 10% and the deposit must
	// be derived from the NEW commission, not the stored one.
	item := soldItem()
	item.SaleDestination = strp(DestAppre)
	item.Commission = decp(150)

	updated, err := ApplyFieldEdit(item, Calculator{}, FieldSaleDestination, DestMercari)
	require.NoError(t, err)

	eq(t, 500, updated.Commission)    // 5000 * 10%
	eq(t, 4300, updated.DepositAmount) // 5000 - 500 - 200
	eq(t, 1300, updated.Profit)
	eq(t, 26, updated.ProfitRate)
}

func TestApplyFieldEdit_UnknownDestinationKeepsCommission(t *testing.T) {
	updated, err := ApplyFieldEdit(soldItem(), Calculator{}, FieldSaleDestination, "町の質屋")
	require.NoError(t, err)

	// No rule for the channel: manual commission survives
	eq(t, 500, updated.Commission)
	eq(t, 4300, updated.DepositAmount)
}

func TestApplyFieldEdit_SalePriceCascade(t *testing.T) {
	updated, err := ApplyFieldEdit(soldItem(), Calculator{}, FieldSalePrice, decimal.NewFromInt(10000))
	require.NoError(t, err)

	eq(t, 1000, updated.Commission)    // メルカリ 10%
	eq(t, 8800, updated.DepositAmount) // 10000 - 1000 - 200
	eq(t, 5800, updated.Profit)        // 8800 - 3000
}

func TestApplyFieldEdit_ShippingCostRecomputesDeposit(t *testing.T) {
	updated, err := ApplyFieldEdit(soldItem(), Calculator{}, FieldShippingCost, decimal.NewFromInt(800))
	require.NoError(t, err)

	eq(t, 3700, updated.DepositAmount) // 5000 - 500 - 800
	eq(t, 700, updated.Profit)
}

func TestApplyFieldEdit_SaleDateFlipsStatus(t *testing.T) {
	item := soldItem()
	item.Status = model.StatusInStock
	item.SaleDate = nil
	item.Profit = nil

	updated, err := ApplyFieldEdit(item, Calculator{}, FieldSaleDate, "2025-05-03")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSold, updated.Status)
	require.NotNil(t, updated.TurnoverDays)
	assert.Equal(t, 13, *updated.TurnoverDays)
	eq(t, 1300, updated.Profit) // profit realizes once the date exists

	// Clearing the date reverts to 在庫 and unrealizes profit
	cleared, err := ApplyFieldEdit(updated, Calculator{}, FieldSaleDate, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInStock, cleared.Status)
	assert.Nil(t, cleared.Profit)
}

func TestApplyFieldEdit_PurchaseTotalPreferredOverPrice(t *testing.T) {
	item := soldItem()
	item.PurchasePrice = decp(2500)

	updated, err := ApplyFieldEdit(item, Calculator{}, FieldPurchaseTotal, decimal.NewFromInt(3500))
	require.NoError(t, err)
	eq(t, 800, updated.Profit) // 4300 - 3500, not 4300 - 2500

	// With the total cleared, the net price is the fallback
	fallback, err := ApplyFieldEdit(updated, Calculator{}, FieldPurchaseTotal, nil)
	require.NoError(t, err)
	eq(t, 1800, fallback.Profit) // 4300 - 2500
}

func TestApplyFieldEdit_TextFields(t *testing.T) {
	cases := []struct {
		field string
		value string
		get   func(model.InventoryItem) *string
	}{
		{FieldBrandName, "エルメス", func(it model.InventoryItem) *string { return it.BrandName }},
		{FieldCategory, "バッグ", func(it model.InventoryItem) *string { return it.Category }},
		{FieldImageURL, "https://example.com/1.jpg", func(it model.InventoryItem) *string { return it.ImageURL }},
		{FieldInventoryNumber, "3416）33660", func(it model.InventoryItem) *string { return it.InventoryNumber }},
		{FieldMemo, "傷あり", func(it model.InventoryItem) *string { return it.Memo }},
		{FieldPurchaseSource, "エコオク", func(it model.InventoryItem) *string { return it.PurchaseSource }},
		{FieldPurchaseDate, "2025-04-02", func(it model.InventoryItem) *string { return it.PurchaseDate }},
	}
	for _, tc := range cases {
		updated, err := ApplyFieldEdit(soldItem(), Calculator{}, tc.field, tc.value)
		require.NoError(t, err, tc.field)
		require.NotNil(t, tc.get(updated), tc.field)
		assert.Equal(t, tc.value, *tc.get(updated), tc.field)

		cleared, err := ApplyFieldEdit(updated, Calculator{}, tc.field, nil)
		require.NoError(t, err, tc.field)
		assert.Nil(t, tc.get(cleared), tc.field)
	}

	_, err := ApplyFieldEdit(soldItem(), Calculator{}, "no_such_field", "x")
	assert.Error(t, err)

	_, err = ApplyFieldEdit(soldItem(), Calculator{}, FieldSalePrice, "not a decimal")
	assert.Error(t, err)
}

func TestTurnoverDays(t *testing.T) {
	d := TurnoverDays(strp("2025-04-20"), strp("2025-05-01"))
	require.NotNil(t, d)
	assert.Equal(t, 11, *d)

	zero := TurnoverDays(strp("2025-05-01"), strp("2025-05-01"))
	require.NotNil(t, zero)
	assert.Equal(t, 0, *zero)

	assert.Nil(t, TurnoverDays(strp("2025-05-02"), strp("2025-05-01")))
	assert.Nil(t, TurnoverDays(strp(returnSentinel), strp("2025-05-01")))
	assert.Nil(t, TurnoverDays(nil, strp("2025-05-01")))
}
