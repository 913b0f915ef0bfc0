package csvimport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sp(s string) *string { return &s }

func dp(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestDeduper_ImageURLMatch(t *testing.T) {
	d := NewDeduper([]ExistingRecord{
		{ProductName: "財布A", ImageURL: sp("https://img.example/1.jpg")},
	})

	assert.True(t, d.IsDuplicate(Row{ProductName: "別の名前", ImageURL: sp("https://img.example/1.jpg")}))
	assert.False(t, d.IsDuplicate(Row{ProductName: "財布A", ImageURL: sp("https://img.example/2.jpg")}))
}

func TestDeduper_TripleMatch(t *testing.T) {
	d := NewDeduper([]ExistingRecord{
		{ProductName: "長財布", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(11000)},
	})

	assert.True(t, d.IsDuplicate(Row{ProductName: "長財布", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(11000)}))
	assert.False(t, d.IsDuplicate(Row{ProductName: "長財布", PurchaseDate: sp("2025-03-06"), PurchaseTotal: dp(11000)}))
	assert.False(t, d.IsDuplicate(Row{ProductName: "長財布", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(12000)}))
}

func TestDeduper_PartialRowsNeverCollide(t *testing.T) {
	// Records missing a key component produce no triple, so two of them do
	// not flag each other through an empty key.
	d := NewDeduper([]ExistingRecord{
		{ProductName: "名前だけ"},
	})

	assert.False(t, d.IsDuplicate(Row{ProductName: "名前だけ"}))
	assert.False(t, d.IsDuplicate(Row{ProductName: "", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(1)}))
}

func TestDeduper_Split(t *testing.T) {
	d := NewDeduper([]ExistingRecord{
		{ProductName: "既存", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(5000)},
	})

	dup := Row{ProductName: "既存", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(5000)}
	newA := Row{ProductName: "新規A", PurchaseDate: sp("2025-03-05"), PurchaseTotal: dp(5000)}
	newB := Row{ProductName: "新規B"}

	fresh, dups := d.Split([]Row{newA, dup, newB})
	assert.Len(t, fresh, 2)
	assert.Len(t, dups, 1)
	assert.Equal(t, "新規A", fresh[0].ProductName)
	assert.Equal(t, "新規B", fresh[1].ProductName)

	// The sets are read-only: identical rows inside one upload both pass
	again, _ := d.Split([]Row{newA, newA})
	assert.Len(t, again, 2)
}
