// Package pricing holds the pure money math of the ledger: per-channel
// commission rules, settlement (deposit/profit) derivation, and the single
// field-edit reducer that owns every cross-field cascade. Nothing in this
// package touches the database or the clock directly — the monthly rate table
// and "now" are injected so the functions stay deterministic under test.
package pricing

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Channel names, matched exactly against sale_destination. These mirror the
// platform master; an unrecognized destination yields a nil commission, which
// callers must treat as "unknown", never as zero.
const (
	DestEcoAuc      = "エコオク"
	DestEleAuc      = "エレオク"
	DestMonobank    = "モノバンク"
	DestStarBuyers  = "スターバイヤーズ"
	DestAppre       = "アプレ"
	DestTimeless    = "タイムレス"
	DestYahooFleaMa = "ヤフーフリマ"
	DestPayPay      = "ペイペイ"
	DestRakuma      = "ラクマ"
	DestMercari     = "メルカリ"
	DestYahooAuc    = "ヤフオク"
	DestAucnet      = "オークネット"
	DestEcoTre      = "エコトレ"
	DestJBA         = "JBA"
	DestJPA         = "JPA"
)

// DefaultRakumaRate applies to months with no stored override (percent).
var DefaultRakumaRate = decimal.NewFromInt(10)

// RateTable maps "YYYY-MM" to that month's ラクマ commission rate in percent.
type RateTable map[string]decimal.Decimal

// Calculator computes channel commissions. Zero value is usable: an empty
// rate table falls back to the default rate and Now defaults to time.Now.
type Calculator struct {
	Rates RateTable
	Now   func() time.Time
}

var (
	pct3  = decimal.NewFromFloat(0.03)
	pct5  = decimal.NewFromFloat(0.05)
	pct10 = decimal.NewFromFloat(0.10)
	d100  = decimal.NewFromInt(100)
)

// yearMonthRe accepts "2025-3", "2025/03" and full dates with either separator.
var yearMonthRe = regexp.MustCompile(`(\d{4})[-/](\d{1,2})`)

// Commission returns the channel fee for a sale, or nil when destination or
// price is absent or the destination is not a known channel. All rules round
// half away from zero to whole yen.
func (c Calculator) Commission(destination *string, price *decimal.Decimal, saleDate *string) *decimal.Decimal {
	if destination == nil || *destination == "" || price == nil || price.IsZero() {
		return nil
	}
	p := *price

	switch *destination {
	case DestEcoAuc, DestEleAuc:
		// Tiered flat fee: ≤10,000 → 550; ≤50,000 → 1,100; above → 2,200.
		switch {
		case p.LessThanOrEqual(decimal.NewFromInt(10000)):
			return amount(550)
		case p.LessThanOrEqual(decimal.NewFromInt(50000)):
			return amount(1100)
		default:
			return amount(2200)
		}
	case DestMonobank, DestYahooFleaMa, DestPayPay:
		return round0(p.Mul(pct5))
	case DestStarBuyers:
		return amount(1100)
	case DestAppre:
		return round0(p.Mul(pct3))
	case DestTimeless:
		if p.LessThan(decimal.NewFromInt(10000)) {
			return round0(p.Mul(pct10))
		}
		return round0(p.Mul(pct5))
	case DestRakuma:
		rate := c.rakumaRate(saleDate)
		return round0(p.Mul(rate).Div(d100))
	case DestMercari, DestYahooAuc, DestEcoTre:
		return round0(p.Mul(pct10))
	case DestAucnet:
		// 3% + 330, with a 1,100 floor (770 base + 330).
		base := p.Mul(pct3)
		if base.GreaterThanOrEqual(decimal.NewFromInt(700)) {
			return round0(base.Add(decimal.NewFromInt(330)))
		}
		return amount(1100)
	case DestJBA:
		return round0(p.Mul(pct3).Add(decimal.NewFromInt(550)))
	case DestJPA:
		return amount(0)
	}
	return nil
}

// rakumaRate resolves the monthly rate for the sale date, falling back to the
// current month when the date is absent or unparseable, then to the default.
func (c Calculator) rakumaRate(saleDate *string) decimal.Decimal {
	ym := ""
	if saleDate != nil {
		if m := yearMonthRe.FindStringSubmatch(*saleDate); m != nil {
			month := m[2]
			if len(month) == 1 {
				month = "0" + month
			}
			ym = m[1] + "-" + month
		}
	}
	if ym == "" {
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		ym = now().Format("2006-01")
	}
	if rate, ok := c.Rates[ym]; ok {
		return rate
	}
	return DefaultRakumaRate
}

func amount(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// round0 rounds to whole yen, half away from zero.
func round0(d decimal.Decimal) *decimal.Decimal {
	r := d.Round(0)
	return &r
}
