package csvimport

import "strings"

// Dialect identifies a vendor's CSV export layout.
type Dialect string

const (
	DialectEcoAuc       Dialect = "ecoauc"
	DialectStarBuyers   Dialect = "starbuyers"
	DialectAucnet       Dialect = "aucnet"
	DialectYahooAuction Dialect = "yahoo_auction"
	DialectSecondStreet Dialect = "second_street"
	DialectMonobank     Dialect = "monobank"
	DialectUnknown      Dialect = "unknown"
)

// aucnetHeaders are the distinctive columns of an オークネット statement. A
// header row matching four or more of them is classified Aucnet even when the
// export tweaks the remaining columns between seasons.
var aucnetHeaders = []string{
	"受付番号", "せり順", "ジャンル", "ブランド名", "商品名", "請求商品代", "支払/請求税込合計",
}

// DetectDialect classifies an upload by its header row. The checks run from
// most to least distinctive, and the result is only a suggestion: the import
// UI shows it to the user, who can override before anything is committed.
func DetectDialect(header []string) Dialect {
	set := make(map[string]bool, len(header))
	for _, h := range header {
		set[cleanHeader(h)] = true
	}

	switch {
	case set["item_name"] && set["buy_total"]:
		return DialectEcoAuc
	case set["管理番号"] && set["落札金額"]:
		return DialectStarBuyers
	case set["オークション画像URL"]:
		return DialectYahooAuction
	case set["購入日(YYYY/MM/DD)"] && set["お支払い金額"]:
		return DialectSecondStreet
	case set["箱番"] && set["枝番"]:
		return DialectMonobank
	}

	hits := 0
	for _, h := range aucnetHeaders {
		if set[h] {
			hits++
		}
	}
	if hits >= 4 {
		return DialectAucnet
	}
	return DialectUnknown
}

// cleanHeader trims whitespace and the stray quotes Aucnet leaves around
// every header cell.
func cleanHeader(h string) string {
	return strings.Trim(strings.TrimSpace(h), `"'`)
}
