package csvimport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Retrend821/inventory-saas-sub000/internal/normalize"
)

// Row is one normalized record parsed out of a vendor CSV, shaped like the
// inventory insert payload.
type Row struct {
	ProductName     string
	BrandName       *string
	Category        *string
	ImageURL        *string
	PurchasePrice   *decimal.Decimal
	PurchaseTotal   *decimal.Decimal
	PurchaseDate    *string
	InventoryNumber *string
	Memo            *string
}

// MapperOptions carries the out-of-band inputs some dialects need: the upload
// file name (Aucnet keeps the auction date only there), a receipt→image-URL
// index from a companion image CSV, and an injectable clock for tests.
type MapperOptions struct {
	FileName     string
	AucnetImages map[string]string
	Now          func() time.Time
}

// Mapper converts data rows of a detected dialect into normalized rows.
type Mapper struct {
	norm *normalize.Normalizer
}

func NewMapper(norm *normalize.Normalizer) *Mapper {
	return &Mapper{norm: norm}
}

// MapRows dispatches to the dialect-specific mapper. Unknown dialects have no
// fixed layout and must go through AutoMap plus the user-confirmed mapping
// instead.
func (m *Mapper) MapRows(dialect Dialect, header []string, records [][]string, opts MapperOptions) ([]Row, error) {
	cols := indexHeader(header)
	switch dialect {
	case DialectEcoAuc:
		return m.mapEcoAuc(cols, records), nil
	case DialectStarBuyers:
		return m.mapStarBuyers(cols, records), nil
	case DialectAucnet:
		return m.mapAucnet(cols, records, opts), nil
	case DialectYahooAuction:
		return m.mapYahooAuction(cols, records, opts), nil
	case DialectSecondStreet:
		return m.mapSecondStreet(cols, records), nil
	case DialectMonobank:
		return m.mapMonobank(cols, records), nil
	}
	return nil, fmt.Errorf("csvimport: no fixed mapper for dialect %q", dialect)
}

// MapWithAssignments applies a user-confirmed header→field mapping to the
// data rows of an unknown dialect.
func (m *Mapper) MapWithAssignments(header []string, records [][]string, assignments map[string]string) []Row {
	fieldIdx := make(map[string]int)
	for i, h := range header {
		if field, ok := assignments[h]; ok {
			fieldIdx[field] = i
		}
	}
	get := func(rec []string, field string) string {
		i, ok := fieldIdx[field]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: get(rec, "product_name")}
		r.BrandName = optString(get(rec, "brand_name"))
		r.Category = optString(get(rec, "category"))
		r.ImageURL = optString(get(rec, "image_url"))
		r.InventoryNumber = optString(get(rec, "inventory_number"))
		r.Memo = optString(get(rec, "memo"))
		r.PurchasePrice = ParseNumber(get(rec, "purchase_price"))
		r.PurchaseTotal = ParseNumber(get(rec, "purchase_total"))
		if d := ParseDate(get(rec, "purchase_date")); d != "" {
			r.PurchaseDate = &d
		}
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapEcoAuc(cols map[string]int, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: cell(rec, cols, "item_name")}
		r.PurchasePrice = ParseNumber(cell(rec, cols, "bid_price"))
		if r.PurchaseTotal = ParseNumber(cell(rec, cols, "buy_total")); r.PurchaseTotal == nil {
			// Some exports leave buy_total blank; the total is then the bid
			// plus its tax plus the buyer commission and its tax.
			r.PurchaseTotal = sumNumbers(
				cell(rec, cols, "bid_price"),
				cell(rec, cols, "bid_price_tax"),
				cell(rec, cols, "purchase_commission"),
				cell(rec, cols, "purchase_commission_tax"),
			)
		}
		r.ImageURL = optString(cell(rec, cols, "image_01"))
		r.InventoryNumber = optString(cell(rec, cols, "buyout_number"))
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapStarBuyers(cols map[string]int, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: cell(rec, cols, "商品名")}
		r.PurchasePrice = ParseNumber(cell(rec, cols, "落札金額"))
		r.PurchaseTotal = ParseNumber(cell(rec, cols, "合計"))
		r.InventoryNumber = optString(cell(rec, cols, "管理番号"))
		// 開催日 looks like "2025-11-14 14:00:00"; keep the date part.
		if held := cell(rec, cols, "開催日"); held != "" {
			d := ParseDate(strings.Fields(held)[0])
			r.PurchaseDate = &d
		}
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapAucnet(cols map[string]int, records [][]string, opts MapperOptions) []Row {
	fileDate := DateFromFileName(opts.FileName)
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: cell(rec, cols, "商品名")}
		if b := CleanAucnetBrand(cell(rec, cols, "ブランド名")); b != "" {
			r.BrandName = &b
		}
		r.Category = optString(cell(rec, cols, "ジャンル"))
		r.PurchasePrice = ParseNumber(cell(rec, cols, "請求商品代"))
		// The statement's tax-inclusive total column; older exports split it
		// into separate payment/billing columns.
		r.PurchaseTotal = firstNumber(
			cell(rec, cols, "支払/請求税込合計"),
			cell(rec, cols, "支払税込合計"),
			cell(rec, cols, "請求税込合計"),
		)
		receipt := cell(rec, cols, "受付番号")
		r.InventoryNumber = optString(receipt)
		if url, ok := opts.AucnetImages[receipt]; ok {
			r.ImageURL = &url
		}
		if fileDate != "" {
			d := fileDate
			r.PurchaseDate = &d
		}
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapYahooAuction(cols map[string]int, records [][]string, opts MapperOptions) []Row {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: cell(rec, cols, "商品名")}
		r.PurchasePrice = ParseNumber(cell(rec, cols, "落札価格"))
		r.PurchaseTotal = r.PurchasePrice
		r.ImageURL = optString(cell(rec, cols, "オークション画像URL"))
		if d := yahooEndDate(cell(rec, cols, "終了日時"), now()); d != "" {
			r.PurchaseDate = &d
		}
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapSecondStreet(cols map[string]int, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		r := Row{ProductName: cell(rec, cols, "商品名")}
		r.BrandName = optString(cell(rec, cols, "ブランド名"))
		r.ImageURL = optString(cell(rec, cols, "画像URL"))
		if total := ParseNumber(cell(rec, cols, "お支払い金額")); total != nil {
			r.PurchaseTotal = total
			// Payments are tax inclusive; back the 10% out for the net price.
			net := total.Div(decimal.NewFromFloat(1.1)).Round(0)
			r.PurchasePrice = &net
		}
		if d := ParseDate(cell(rec, cols, "購入日(YYYY/MM/DD)")); d != "" {
			r.PurchaseDate = &d
		}
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

func (m *Mapper) mapMonobank(cols map[string]int, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		name := joinNonEmpty(" ", cell(rec, cols, "ブランド"), cell(rec, cols, "中分類"), cell(rec, cols, "詳細"))
		r := Row{ProductName: name}
		r.BrandName = optString(cell(rec, cols, "ブランド"))
		r.Category = optString(cell(rec, cols, "カテゴリー"))
		r.PurchaseTotal = ParseNumber(cell(rec, cols, "金額"))
		r.PurchasePrice = r.PurchaseTotal
		if box := joinNonEmpty("-", cell(rec, cols, "箱番"), cell(rec, cols, "枝番")); box != "" {
			r.InventoryNumber = &box
		}
		if d := ParseDate(cell(rec, cols, "取引日")); d != "" {
			r.PurchaseDate = &d
		}
		r.Memo = optString(cell(rec, cols, "備考"))
		m.fillDetected(&r)
		rows = append(rows, r)
	}
	return rows
}

// fillDetected backfills brand and category from the product name when the
// vendor did not supply a column for them.
func (m *Mapper) fillDetected(r *Row) {
	if r.BrandName == nil {
		if b := m.norm.DetectBrand(r.ProductName); b != "" {
			r.BrandName = &b
		}
	}
	if r.Category == nil {
		if c := m.norm.DetectCategory(r.ProductName); c != "" {
			r.Category = &c
		}
	}
}

// aucnetImageRe extracts the receipt number from image file URLs shaped like
// ".../J20250131_123-4_01.jpg".
var aucnetImageRe = regexp.MustCompile(`J\d+_(\d+-\d+)_`)

// ParseAucnetImageIndex builds a receipt-number→URL map from the companion
// image-list CSV that accompanies an Aucnet statement. First URL per receipt
// wins, matching the "image_01 is the main photo" convention.
func ParseAucnetImageIndex(records [][]string) map[string]string {
	index := make(map[string]string)
	for _, rec := range records {
		for _, c := range rec {
			c = strings.TrimSpace(c)
			m := aucnetImageRe.FindStringSubmatch(c)
			if m == nil {
				continue
			}
			if _, seen := index[m[1]]; !seen {
				index[m[1]] = c
			}
		}
	}
	return index
}

// trailingParenRe drops the parenthesized suffix Aucnet appends to brand
// names ("セリーヌ（CELINE）" → "セリーヌ").
var trailingParenRe = regexp.MustCompile(`[（(][^（(]*[）)]\s*$`)

// CleanAucnetBrand normalizes an Aucnet brand cell: collapse whitespace,
// strip the trailing parenthesized alias, and shift full-width alphanumerics
// down to ASCII.
func CleanAucnetBrand(s string) string {
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "　", " ")), " ")
	s = strings.TrimSpace(trailingParenRe.ReplaceAllString(s, ""))
	var b strings.Builder
	for _, r := range s {
		if (r >= '０' && r <= '９') || (r >= 'Ａ' && r <= 'Ｚ') || (r >= 'ａ' && r <= 'ｚ') {
			r -= 0xFEE0
		}
		b.WriteRune(r)
	}
	return b.String()
}

// yahooDateRe matches the year-less "11月24日 23時36分" end-time format.
var yahooDateRe = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)

// yahooEndDate resolves the year-less auction end date against the clock: a
// month later than the current one must belong to last year.
func yahooEndDate(cellValue string, now time.Time) string {
	m := yahooDateRe.FindStringSubmatch(cellValue)
	if m == nil {
		return ParseDate(cellValue)
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	year := now.Year()
	if month > int(now.Month()) {
		year--
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[cleanHeader(h)] = i
	}
	return cols
}

func cell(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(rec[i]), `"`)
}

// firstNumber returns the first cell that parses as a number.
func firstNumber(cells ...string) *decimal.Decimal {
	for _, c := range cells {
		if n := ParseNumber(c); n != nil {
			return n
		}
	}
	return nil
}

// sumNumbers adds every cell that parses, nil when none of them do.
func sumNumbers(cells ...string) *decimal.Decimal {
	var total decimal.Decimal
	found := false
	for _, c := range cells {
		if n := ParseNumber(c); n != nil {
			total = total.Add(*n)
			found = true
		}
	}
	if !found {
		return nil
	}
	return &total
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
