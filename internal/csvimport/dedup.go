package csvimport

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Deduper flags incoming rows that match already-persisted inventory. Two
// independent keys mark a duplicate: the image URL, or the triple of product
// name, purchase date and purchase total. Either hit alone is enough.
type Deduper struct {
	images  map[string]struct{}
	triples map[string]struct{}
}

// ExistingRecord is the slice of a persisted item the deduper needs.
type ExistingRecord struct {
	ProductName   string
	ImageURL      *string
	PurchaseDate  *string
	PurchaseTotal *decimal.Decimal
}

func NewDeduper(existing []ExistingRecord) *Deduper {
	d := &Deduper{
		images:  make(map[string]struct{}, len(existing)),
		triples: make(map[string]struct{}, len(existing)),
	}
	for _, e := range existing {
		if e.ImageURL != nil && *e.ImageURL != "" {
			d.images[*e.ImageURL] = struct{}{}
		}
		if k := tripleKey(e.ProductName, e.PurchaseDate, e.PurchaseTotal); k != "" {
			d.triples[k] = struct{}{}
		}
	}
	return d
}

// IsDuplicate reports whether the row collides with an existing record. It
// does not mutate the sets, so two identical rows within one upload are both
// checked against the same persisted state.
func (d *Deduper) IsDuplicate(r Row) bool {
	if r.ImageURL != nil && *r.ImageURL != "" {
		if _, ok := d.images[*r.ImageURL]; ok {
			return true
		}
	}
	if k := tripleKey(r.ProductName, r.PurchaseDate, r.PurchaseTotal); k != "" {
		if _, ok := d.triples[k]; ok {
			return true
		}
	}
	return false
}

// Split partitions rows into fresh and duplicate sets in input order.
func (d *Deduper) Split(rows []Row) (fresh, dups []Row) {
	for _, r := range rows {
		if d.IsDuplicate(r) {
			dups = append(dups, r)
		} else {
			fresh = append(fresh, r)
		}
	}
	return fresh, dups
}

// tripleKey returns "" when any component is missing, so partial rows never
// collide with each other through empty keys.
func tripleKey(name string, date *string, total *decimal.Decimal) string {
	if name == "" || date == nil || *date == "" || total == nil {
		return ""
	}
	return strings.Join([]string{name, *date, total.String()}, "|")
}
