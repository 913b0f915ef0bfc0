package csvimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Retrend821/inventory-saas-sub000/internal/normalize"
)

func testMapper() *Mapper {
	return NewMapper(normalize.Default())
}

func TestMapRows_EcoAuc(t *testing.T) {
	header := []string{"buyout_number", "item_name", "bid_price", "buy_total", "image_01"}
	records := [][]string{
		{"B-101", "ルイヴィトン モノグラム 長財布", "10000", "11000", "https://img.example/1.jpg"},
	}

	rows, err := testMapper().MapRows(DialectEcoAuc, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "ルイヴィトン モノグラム 長財布", r.ProductName)
	require.NotNil(t, r.PurchaseTotal)
	assert.Equal(t, "11000", r.PurchaseTotal.String())
	require.NotNil(t, r.InventoryNumber)
	assert.Equal(t, "B-101", *r.InventoryNumber)

	// No brand or category columns: both come from the product name
	require.NotNil(t, r.BrandName)
	assert.Equal(t, "ルイヴィトン", *r.BrandName)
	require.NotNil(t, r.Category)
	assert.Equal(t, "財布", *r.Category)
}

func TestMapRows_EcoAucSumsComponentsWhenTotalMissing(t *testing.T) {
	header := []string{
		"item_name", "bid_price", "bid_price_tax",
		"purchase_commission", "purchase_commission_tax", "buy_total",
	}
	records := [][]string{
		{"オメガ シーマスター", "10000", "1000", "500", "50", ""},
		{"セイコー ロードマチック", "8000", "", "", "", ""},
	}

	rows, err := testMapper().MapRows(DialectEcoAuc, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].PurchaseTotal)
	assert.Equal(t, "11550", rows[0].PurchaseTotal.String())

	// Only the bid parses: the total degrades to the bid alone
	require.NotNil(t, rows[1].PurchaseTotal)
	assert.Equal(t, "8000", rows[1].PurchaseTotal.String())
}

func TestMapRows_StarBuyersKeepsDatePart(t *testing.T) {
	header := []string{"管理番号", "商品名", "落札金額", "合計", "開催日"}
	records := [][]string{
		{"SB-9", "オメガ スピードマスター", "80000", "88000", "2025-11-14 14:00:00"},
	}

	rows, err := testMapper().MapRows(DialectStarBuyers, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].PurchaseDate)
	assert.Equal(t, "2025-11-14", *rows[0].PurchaseDate)
	require.NotNil(t, rows[0].Category)
	assert.Equal(t, "時計", *rows[0].Category)
}

func TestMapRows_Aucnet(t *testing.T) {
	header := []string{"受付番号", "ジャンル", "ブランド名", "商品名", "請求商品代", "支払/請求税込合計"}
	records := [][]string{
		{"123-4", "バッグ", "セリーヌ（CELINE）", "ラゲージ マイクロ", "30000", "33000"},
		{"125-1", "時計", "ロレックス", "デイトジャスト", "31000", "34100"},
	}
	opts := MapperOptions{
		FileName: "aucnet_20250131.csv",
		AucnetImages: map[string]string{
			"123-4": "https://img.example/J20250131_123-4_01.jpg",
		},
	}

	rows, err := testMapper().MapRows(DialectAucnet, header, records, opts)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	r := rows[0]
	require.NotNil(t, r.BrandName)
	assert.Equal(t, "セリーヌ", *r.BrandName)
	require.NotNil(t, r.PurchaseTotal)
	assert.Equal(t, "33000", r.PurchaseTotal.String())
	require.NotNil(t, r.PurchaseDate)
	assert.Equal(t, "2025-01-31", *r.PurchaseDate)
	require.NotNil(t, r.ImageURL)
	assert.Equal(t, "https://img.example/J20250131_123-4_01.jpg", *r.ImageURL)

	require.NotNil(t, rows[1].PurchaseTotal)
	assert.Equal(t, "34100", rows[1].PurchaseTotal.String())
	assert.Nil(t, rows[1].ImageURL)
}

func TestMapRows_AucnetLegacySplitTotals(t *testing.T) {
	// Older statements split the tax-inclusive total into payment and
	// billing columns; both still map to purchase_total.
	header := []string{"受付番号", "ジャンル", "ブランド名", "商品名", "請求商品代", "支払税込合計", "請求税込合計"}
	records := [][]string{
		{"123-4", "バッグ", "セリーヌ（CELINE）", "ラゲージ マイクロ", "30000", "33000", ""},
		{"125-1", "時計", "ロレックス", "デイトジャスト", "500000", "", "550000"},
	}

	rows, err := testMapper().MapRows(DialectAucnet, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].PurchaseTotal)
	assert.Equal(t, "33000", rows[0].PurchaseTotal.String())
	require.NotNil(t, rows[1].PurchaseTotal)
	assert.Equal(t, "550000", rows[1].PurchaseTotal.String())
}

func TestMapRows_YahooAuctionYearInference(t *testing.T) {
	header := []string{"商品名", "落札価格", "終了日時", "オークション画像URL"}
	records := [][]string{
		{"グッチ GGマーモント", "24000", "11月24日 23時36分", "https://img.example/y1.jpg"},
		{"シャネル マトラッセ", "150000", "1月3日 21時00分", "https://img.example/y2.jpg"},
	}
	opts := MapperOptions{
		Now: func() time.Time { return time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC) },
	}

	rows, err := testMapper().MapRows(DialectYahooAuction, header, records, opts)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// November is ahead of the January clock, so it was last year
	require.NotNil(t, rows[0].PurchaseDate)
	assert.Equal(t, "2025-11-24", *rows[0].PurchaseDate)
	require.NotNil(t, rows[1].PurchaseDate)
	assert.Equal(t, "2026-01-03", *rows[1].PurchaseDate)

	// 落札価格 doubles as the total
	require.NotNil(t, rows[0].PurchaseTotal)
	assert.Equal(t, "24000", rows[0].PurchaseTotal.String())
}

func TestMapRows_SecondStreetBacksOutTax(t *testing.T) {
	header := []string{"購入日(YYYY/MM/DD)", "商品名", "ブランド名", "お支払い金額", "画像URL"}
	records := [][]string{
		{"2025/03/05", "バーバリー トレンチコート", "バーバリー", "11,000", "https://img.example/s1.jpg"},
	}

	rows, err := testMapper().MapRows(DialectSecondStreet, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	require.NotNil(t, r.PurchaseTotal)
	assert.Equal(t, "11000", r.PurchaseTotal.String())
	require.NotNil(t, r.PurchasePrice)
	assert.Equal(t, "10000", r.PurchasePrice.String())
	require.NotNil(t, r.PurchaseDate)
	assert.Equal(t, "2025-03-05", *r.PurchaseDate)
}

func TestMapRows_MonobankComposesNameAndNumber(t *testing.T) {
	header := []string{"取引日", "箱番", "枝番", "ブランド", "中分類", "詳細", "カテゴリー", "金額", "備考"}
	records := [][]string{
		{"2025/4/2", "12", "3", "シャネル", "バッグ", "マトラッセ 25", "バッグ", "210000", "角スレあり"},
	}

	rows, err := testMapper().MapRows(DialectMonobank, header, records, MapperOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "シャネル バッグ マトラッセ 25", r.ProductName)
	require.NotNil(t, r.InventoryNumber)
	assert.Equal(t, "12-3", *r.InventoryNumber)
	require.NotNil(t, r.PurchaseDate)
	assert.Equal(t, "2025-04-02", *r.PurchaseDate)
	require.NotNil(t, r.Memo)
	assert.Equal(t, "角スレあり", *r.Memo)
}

func TestMapRows_UnknownDialectErrors(t *testing.T) {
	_, err := testMapper().MapRows(DialectUnknown, nil, nil, MapperOptions{})
	assert.Error(t, err)
}

func TestMapWithAssignments(t *testing.T) {
	header := []string{"品物", "メーカー", "支払額", "日にち"}
	records := [][]string{
		{"エルメス ガーデンパーティ トート", "エルメス", "¥250,000", "2025年6月1日"},
	}
	assignments := map[string]string{
		"品物":   "product_name",
		"メーカー": "brand_name",
		"支払額":  "purchase_total",
		"日にち":  "purchase_date",
	}

	rows := testMapper().MapWithAssignments(header, records, assignments)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "エルメス ガーデンパーティ トート", r.ProductName)
	require.NotNil(t, r.BrandName)
	assert.Equal(t, "エルメス", *r.BrandName)
	require.NotNil(t, r.PurchaseTotal)
	assert.Equal(t, "250000", r.PurchaseTotal.String())
	require.NotNil(t, r.PurchaseDate)
	assert.Equal(t, "2025-06-01", *r.PurchaseDate)
	// Category still backfilled from the product name
	require.NotNil(t, r.Category)
	assert.Equal(t, "バッグ", *r.Category)
}

func TestCleanAucnetBrand(t *testing.T) {
	assert.Equal(t, "セリーヌ", CleanAucnetBrand("セリーヌ（CELINE）"))
	assert.Equal(t, "LOUIS VUITTON", CleanAucnetBrand("ＬＯＵＩＳ　ＶＵＩＴＴＯＮ"))
	assert.Equal(t, "タグホイヤー", CleanAucnetBrand("  タグホイヤー (TAG Heuer) "))
	assert.Equal(t, "", CleanAucnetBrand(""))
}

func TestParseAucnetImageIndex(t *testing.T) {
	records := [][]string{
		{"https://img.example/J20250131_123-4_01.jpg"},
		{"https://img.example/J20250131_123-4_02.jpg"},
		{"https://img.example/J20250131_125-1_01.jpg"},
		{"not-an-image-cell"},
	}

	idx := ParseAucnetImageIndex(records)
	assert.Len(t, idx, 2)
	// First URL per receipt wins
	assert.Equal(t, "https://img.example/J20250131_123-4_01.jpg", idx["123-4"])
	assert.Equal(t, "https://img.example/J20250131_125-1_01.jpg", idx["125-1"])
}
