package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   Dialect
	}{
		{
			"ecoauc",
			[]string{"buyout_number", "item_name", "bid_price", "buy_total", "image_01"},
			DialectEcoAuc,
		},
		{
			"starbuyers",
			[]string{"管理番号", "商品名", "落札金額", "合計", "開催日"},
			DialectStarBuyers,
		},
		{
			"yahoo",
			[]string{"商品名", "落札価格", "終了日時", "オークション画像URL"},
			DialectYahooAuction,
		},
		{
			"second street",
			[]string{"購入日(YYYY/MM/DD)", "商品名", "ブランド名", "お支払い金額", "画像URL"},
			DialectSecondStreet,
		},
		{
			"monobank",
			[]string{"取引日", "箱番", "枝番", "ブランド", "中分類", "詳細", "金額"},
			DialectMonobank,
		},
		{
			"aucnet statement",
			[]string{"受付番号", "せり順", "ジャンル", "ブランド名", "商品名", "請求商品代", "支払/請求税込合計"},
			DialectAucnet,
		},
		{
			"aucnet with quoted headers",
			[]string{`"受付番号"`, `"せり順"`, `"ブランド名"`, `"商品名"`, `"請求商品代"`},
			DialectAucnet,
		},
		{
			"aucnet needs four distinctive columns",
			[]string{"受付番号", "せり順", "品物", "金額"},
			DialectUnknown,
		},
		{
			"unknown",
			[]string{"商品名", "ブランド", "合計"},
			DialectUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDialect(tt.header))
		})
	}
}
