package dto

import "github.com/shopspring/decimal"

// ─── Inspect phase ───────────────────────────────────────────────────────────

// ImportInspectResponse is the suggestion step of a CSV import: the detected
// dialect, the header that was found, and for unknown layouts the proposed
// header→field mapping plus a row preview. Everything here is editable by the
// user before commit.
type ImportInspectResponse struct {
	Dialect        string            `json:"dialect"`
	HeaderRow      int               `json:"header_row"`
	Header         []string          `json:"header"`
	SuggestedMap   map[string]string `json:"suggested_map,omitempty"`
	PreviewRows    [][]string        `json:"preview_rows,omitempty"`
	TotalDataRows  int               `json:"total_data_rows"`
	DetectedSource *string           `json:"detected_source,omitempty"`
}

// ─── Commit phase ────────────────────────────────────────────────────────────

type ImportCommitRequest struct {
	Dialect        string            `json:"dialect" validate:"required"`
	FileName       string            `json:"file_name"`
	PurchaseSource *string           `json:"purchase_source"`
	PurchaseDate   *string           `json:"purchase_date"`
	Mapping        map[string]string `json:"mapping,omitempty"`
}

// ImportedRowSummary is one line of the user-facing import report.
type ImportedRowSummary struct {
	ProductName   string           `json:"product_name"`
	PurchaseTotal *decimal.Decimal `json:"purchase_total"`
}

type ImportCommitResponse struct {
	Imported    []ImportedRowSummary `json:"imported"`
	Skipped     []ImportedRowSummary `json:"skipped"`
	Succeeded   int                  `json:"succeeded"`
	Failed      int                  `json:"failed"`
	SkippedRows int                  `json:"skipped_rows"`
	InvalidRows int                  `json:"invalid_rows"`
}

// ─── External API ingest ─────────────────────────────────────────────────────

// APIIngestItem is the payload posted by the mail-scraper job for automated
// purchase intake. Supplier maps to purchase_source; external id and source
// together dedup retries of the same message.
type APIIngestItem struct {
	ProductName     string           `json:"product_name" validate:"required,min=1"`
	BrandName       *string          `json:"brand_name"`
	Category        *string          `json:"category"`
	Supplier        *string          `json:"supplier"`
	PurchaseDate    *string          `json:"purchase_date"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	OtherCost       *decimal.Decimal `json:"other_cost"`
	InventoryNumber *string          `json:"inventory_number"`
	ImageURL        *string          `json:"image_url"`
	Status          *string          `json:"status"`
	Memo            *string          `json:"memo"`
	ListingDate     *string          `json:"listing_date"`
	ExternalID      *string          `json:"external_id"`
	ExternalSource  *string          `json:"external_source"`
}

type APIIngestError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type APIIngestResponse struct {
	Inserted int              `json:"inserted"`
	Errors   int              `json:"errors"`
	Details  []APIIngestError `json:"details,omitempty"`
}
