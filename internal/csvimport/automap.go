package csvimport

import (
	"strings"

	"github.com/Retrend821/inventory-saas-sub000/internal/normalize"
)

// FieldKeywords drives the generic auto-mapper: for each internal field, the
// header words (Japanese and English) that vendors use for it. Order within a
// field matters only for tie-breaks; order of fields determines claim priority
// when two fields would match the same header.
type FieldKeywords struct {
	Field    string
	Keywords []string
}

// MappingKeywords is the built-in table for unknown dialects.
var MappingKeywords = []FieldKeywords{
	{Field: "product_name", Keywords: []string{"商品名", "品名", "アイテム名", "item_name", "name", "商品", "品目"}},
	{Field: "brand_name", Keywords: []string{"ブランド名", "ブランド", "brand", "メーカー"}},
	{Field: "category", Keywords: []string{"カテゴリー", "カテゴリ", "category", "ジャンル", "分類"}},
	{Field: "purchase_total", Keywords: []string{"税込合計", "支払金額", "お支払い金額", "合計金額", "合計", "total", "請求額"}},
	{Field: "purchase_price", Keywords: []string{"税抜金額", "落札金額", "落札価格", "bid_price", "金額", "価格", "単価", "price"}},
	{Field: "purchase_date", Keywords: []string{"購入日", "仕入日", "取引日", "開催日", "落札日", "日付", "date"}},
	{Field: "image_url", Keywords: []string{"画像url", "画像", "image", "写真"}},
	{Field: "inventory_number", Keywords: []string{"管理番号", "受付番号", "番号", "no"}},
	{Field: "memo", Keywords: []string{"備考", "メモ", "コメント", "memo", "note"}},
}

// AutoMap proposes header→field assignments for an unknown layout. Two
// passes: exact keyword match first, then longest substring match in either
// direction. Each field is claimed at most once, each header maps to at most
// one field, and the result is a suggestion for the user to edit, never a
// final decision.
func AutoMap(header []string) map[string]string {
	return AutoMapWith(header, MappingKeywords)
}

func AutoMapWith(header []string, table []FieldKeywords) map[string]string {
	mapping := make(map[string]string)
	claimed := make(map[string]bool)
	used := make(map[int]bool)

	folded := make([]string, len(header))
	for i, h := range header {
		folded[i] = normalize.Fold(cleanHeader(h))
	}

	// Pass 1: exact matches.
	for _, fk := range table {
		for i, h := range folded {
			if used[i] || claimed[fk.Field] || h == "" {
				continue
			}
			for _, kw := range fk.Keywords {
				if h == normalize.Fold(kw) {
					mapping[header[i]] = fk.Field
					claimed[fk.Field] = true
					used[i] = true
					break
				}
			}
		}
	}

	// Pass 2: longest substring match, either direction.
	for _, fk := range table {
		if claimed[fk.Field] {
			continue
		}
		bestIdx, bestLen := -1, 0
		for i, h := range folded {
			if used[i] || h == "" {
				continue
			}
			for _, kw := range fk.Keywords {
				k := normalize.Fold(kw)
				if !strings.Contains(h, k) && !strings.Contains(k, h) {
					continue
				}
				overlap := len(k)
				if len(h) < overlap {
					overlap = len(h)
				}
				if overlap > bestLen {
					bestIdx, bestLen = i, overlap
				}
			}
		}
		if bestIdx >= 0 {
			mapping[header[bestIdx]] = fk.Field
			claimed[fk.Field] = true
			used[bestIdx] = true
		}
	}
	return mapping
}

// FindHeaderRow locates the header inside the first rows of a parsed CSV.
// Vendor statements often open with title and summary lines, so the first
// row scoring at least two keyword hits and five non-empty cells wins;
// when nothing qualifies row 0 is assumed.
func FindHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		nonEmpty, hits := 0, 0
		for _, cell := range rows[i] {
			c := normalize.Fold(cleanHeader(cell))
			if c == "" {
				continue
			}
			nonEmpty++
			if headerKeywordHit(c) {
				hits++
			}
		}
		if hits >= 2 && nonEmpty >= 5 {
			return i
		}
	}
	return 0
}

func headerKeywordHit(folded string) bool {
	for _, fk := range MappingKeywords {
		for _, kw := range fk.Keywords {
			if strings.Contains(folded, normalize.Fold(kw)) {
				return true
			}
		}
	}
	return false
}
