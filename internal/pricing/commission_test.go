package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string                  { return &s }
func decp(n int64) *decimal.Decimal          { d := decimal.NewFromInt(n); return &d }
func eq(t *testing.T, want int64, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, decimal.NewFromInt(want).String(), got.String())
}

func TestCommission_TieredFlatFee(t *testing.T) {
	calc := Calculator{}

	eq(t, 550, calc.Commission(strp(DestEcoAuc), decp(9000), nil))
	eq(t, 550, calc.Commission(strp(DestEcoAuc), decp(10000), nil))
	eq(t, 1100, calc.Commission(strp(DestEcoAuc), decp(10001), nil))
	eq(t, 1100, calc.Commission(strp(DestEcoAuc), decp(50000), nil))
	eq(t, 2200, calc.Commission(strp(DestEcoAuc), decp(50001), nil))

	// エレオク shares the same tiers
	eq(t, 1100, calc.Commission(strp(DestEleAuc), decp(30000), nil))
}

func TestCommission_PercentChannels(t *testing.T) {
	calc := Calculator{}

	eq(t, 500, calc.Commission(strp(DestMonobank), decp(10000), nil))   // 5%
	eq(t, 300, calc.Commission(strp(DestAppre), decp(10000), nil))      // 3%
	eq(t, 1000, calc.Commission(strp(DestMercari), decp(10000), nil))   // 10%
	eq(t, 1000, calc.Commission(strp(DestYahooAuc), decp(10000), nil))  // 10%
	eq(t, 1100, calc.Commission(strp(DestStarBuyers), decp(99999), nil)) // flat
	eq(t, 0, calc.Commission(strp(DestJPA), decp(10000), nil))
}

func TestCommission_TimelessThreshold(t *testing.T) {
	calc := Calculator{}

	// 10% below 10,000, 5% at and above
	eq(t, 999, calc.Commission(strp(DestTimeless), decp(9990), nil))
	eq(t, 500, calc.Commission(strp(DestTimeless), decp(10000), nil))
}

func TestCommission_AucnetFloor(t *testing.T) {
	calc := Calculator{}

	// 3% + 330 once the base clears 700; 1,100 floor below that
	eq(t, 1100, calc.Commission(strp(DestAucnet), decp(20000), nil)) // base 600 < 700
	eq(t, 1230, calc.Commission(strp(DestAucnet), decp(30000), nil)) // 900 + 330
}

func TestCommission_RakumaMonthlyRate(t *testing.T) {
	calc := Calculator{
		Rates: RateTable{"2025-03": decimal.NewFromInt(8)},
	}

	// Stored override for the sale month
	eq(t, 1600, calc.Commission(strp(DestRakuma), decp(20000), strp("2025-03-15")))
	// No override: default 10%
	eq(t, 2000, calc.Commission(strp(DestRakuma), decp(20000), strp("2025-04-02")))
	// Slash dates and single-digit months resolve to the same key
	eq(t, 1600, calc.Commission(strp(DestRakuma), decp(20000), strp("2025/3/15")))
}

func TestCommission_UnknownDestinationIsNil(t *testing.T) {
	calc := Calculator{}

	assert.Nil(t, calc.Commission(strp("無名の店"), decp(10000), nil))
	assert.Nil(t, calc.Commission(nil, decp(10000), nil))
	assert.Nil(t, calc.Commission(strp(DestMercari), nil, nil))
	assert.Nil(t, calc.Commission(strp(DestMercari), decp(0), nil))
}

func TestDeposit(t *testing.T) {
	d := Deposit(decp(5000), decp(500), decp(200))
	eq(t, 4300, d)

	// Missing costs count as zero
	eq(t, 5000, Deposit(decp(5000), nil, nil))

	// Cleared sale price clears the deposit
	assert.Nil(t, Deposit(nil, decp(500), nil))
	assert.Nil(t, Deposit(decp(0), decp(500), nil))
}

func TestProfit(t *testing.T) {
	saleDate := strp("2025-05-01")

	eq(t, 1300, Profit(decp(4300), decp(3000), nil, saleDate))
	eq(t, 1100, Profit(decp(4300), decp(3000), decp(200), saleDate))

	// No sale date means no realized profit
	assert.Nil(t, Profit(decp(4300), decp(3000), nil, nil))
	assert.Nil(t, Profit(decp(4300), decp(3000), nil, strp("")))
	assert.Nil(t, Profit(decp(4300), decp(3000), nil, strp(returnSentinel)))
	assert.Nil(t, Profit(nil, decp(3000), nil, saleDate))
}

func TestProfitRate(t *testing.T) {
	eq(t, 26, ProfitRate(decp(1300), decp(5000)))
	eq(t, -10, ProfitRate(decp(-500), decp(5000)))

	assert.Nil(t, ProfitRate(nil, decp(5000)))
	assert.Nil(t, ProfitRate(decp(1300), nil))
	assert.Nil(t, ProfitRate(decp(1300), decp(0)))

	// Clamped to the column range
	eq(t, 9999, ProfitRate(decp(10000000), decp(100)))
}
