package csvimport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyJunkRe strips everything vendors wrap around amounts: parentheses
// (both widths), thousands separators, currency marks and percent signs.
var currencyJunkRe = regexp.MustCompile(`[\(（\)）,，￥¥円$%％\s　]`)

// ParseNumber extracts a non-negative amount from a CSV cell. Negative inputs
// (often parenthesized refunds) come back as their absolute value; anything
// that does not parse returns nil.
func ParseNumber(cell string) *decimal.Decimal {
	cleaned := currencyJunkRe.ReplaceAllString(cell, "")
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(cleaned, "-"), 64)
	if err != nil {
		return nil
	}
	d := decimal.NewFromFloat(f).Abs()
	return &d
}

var dateRes = []struct {
	re *regexp.Regexp
}{
	{regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})`)},
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)},
	{regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日`)},
}

// ParseDate normalizes vendor date cells to zero-padded YYYY-MM-DD. Three
// layouts are recognized (slash, dash, 年月日); anything else passes through
// verbatim so sentinel strings and odd formats are not destroyed.
func ParseDate(cell string) string {
	s := strings.TrimSpace(cell)
	for _, d := range dateRes {
		if m := d.re.FindStringSubmatch(s); m != nil {
			return formatYMD(m[1], m[2], m[3])
		}
	}
	return s
}

// fileDateRes matches purchase dates embedded in export file names, tightest
// pattern first so "20250131" is not read out of a longer digit run.
var fileDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`),
	regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`),
	regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),
}

// DateFromFileName pulls a YYYY-MM-DD date out of an upload's file name.
// Used for exports that carry the auction date only in the name. Returns ""
// when nothing in the name is a plausible calendar date.
func DateFromFileName(name string) string {
	for _, re := range fileDateRes {
		for _, m := range re.FindAllStringSubmatch(name, -1) {
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			year, _ := strconv.Atoi(m[1])
			if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
				continue
			}
			return formatYMD(m[1], m[2], m[3])
		}
	}
	return ""
}

func formatYMD(y, m, d string) string {
	mo, _ := strconv.Atoi(m)
	da, _ := strconv.Atoi(d)
	return fmt.Sprintf("%s-%02d-%02d", y, mo, da)
}
