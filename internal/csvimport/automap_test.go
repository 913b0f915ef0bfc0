package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoMap_ExactMatches(t *testing.T) {
	m := AutoMap([]string{"商品名", "ブランド", "合計", "購入日"})

	assert.Equal(t, map[string]string{
		"商品名":  "product_name",
		"ブランド": "brand_name",
		"合計":   "purchase_total",
		"購入日":  "purchase_date",
	}, m)
}

func TestAutoMap_SubstringFallback(t *testing.T) {
	// 商品名称 is not an exact keyword but contains 商品名.
	m := AutoMap([]string{"商品名称", "お支払い金額（税込）"})

	assert.Equal(t, "product_name", m["商品名称"])
	assert.Equal(t, "purchase_total", m["お支払い金額（税込）"])
}

func TestAutoMap_EachFieldClaimedOnce(t *testing.T) {
	// Both headers could mean product_name; only the exact match gets it and
	// the second header stays unmapped rather than double-claiming.
	m := AutoMap([]string{"商品名", "品名"})

	assert.Equal(t, "product_name", m["商品名"])
	_, mapped := m["品名"]
	assert.False(t, mapped)
}

func TestAutoMap_UnrelatedHeadersIgnored(t *testing.T) {
	m := AutoMap([]string{"色", "サイズ", "状態ランク"})
	assert.Empty(t, m)
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"2025年1月度 御請求書"},
		{"合計", "1,234,000"},
		{"受付番号", "商品名", "ブランド名", "金額", "備考"},
		{"123-4", "長財布", "セリーヌ", "30000", ""},
	}
	assert.Equal(t, 2, FindHeaderRow(rows))
}

func TestFindHeaderRow_DefaultsToFirstRow(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"c", "d"},
	}
	assert.Equal(t, 0, FindHeaderRow(rows))
}
