package infra

// pdf.go — 古物台帳 (secondhand-dealer ledger) PDF generation using go-pdf/fpdf.
// One row per acquisition or disposal, with the counterparty details the
// Antique Dealings Act requires. Output goes to storagePath/ledger_{period}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// LedgerRow is one 受入 (acquisition) or 払出 (disposal) line.
type LedgerRow struct {
	Kind         string // "受入" | "払出"
	Date         string
	ProductName  string
	Features     string // brand, inventory number
	Quantity     int
	Amount       string // formatted yen
	Counterparty string // name, address, occupation, or 相手方不明 for anonymous venues
	Verification string
}

const ledgerFontFamily = "ledger"

// GenerateLedgerPDF writes the ledger for one period. fontPath must point at a
// TTF with Japanese glyphs; with an empty path fpdf falls back to Helvetica and
// CJK text will not render.
func GenerateLedgerPDF(rows []LedgerRow, period, storagePath, fontPath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("ledger_%s.pdf", period)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)

	family := "Helvetica"
	if fontPath != "" {
		pdf.AddUTF8Font(ledgerFontFamily, "", fontPath)
		pdf.AddUTF8Font(ledgerFontFamily, "B", fontPath)
		family = ledgerFontFamily
	}

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	colKind := contentW * 0.06
	colDate := contentW * 0.09
	colName := contentW * 0.24
	colFeat := contentW * 0.16
	colQty := contentW * 0.05
	colAmount := contentW * 0.10
	colParty := contentW * 0.21
	colVerify := contentW * 0.09

	header := func() {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(contentW, 8, "古物台帳", "", 1, "C", false, 0, "")
		pdf.SetFont(family, "", 8)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("対象期間: %s", period), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont(family, "B", 7)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(colKind, 6, "区分", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colDate, 6, "年月日", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colName, 6, "品目", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colFeat, 6, "特徴", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colQty, 6, "数量", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colAmount, 6, "代価", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colParty, 6, "相手方", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colVerify, 6, "確認方法", "1", 1, "C", true, 0, "")
	}

	pdf.SetHeaderFunc(func() {})
	pdf.AddPage()
	header()

	pdf.SetFont(family, "", 7)
	for _, row := range rows {
		_, pageH := pdf.GetPageSize()
		if pdf.GetY() > pageH-20 {
			pdf.AddPage()
			header()
			pdf.SetFont(family, "", 7)
		}

		pdf.CellFormat(colKind, 6, row.Kind, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colDate, 6, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colName, 6, truncateRunes(row.ProductName, 26), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colFeat, 6, truncateRunes(row.Features, 17), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 6, fmt.Sprintf("%d", row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colAmount, 6, row.Amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colParty, 6, truncateRunes(row.Counterparty, 23), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colVerify, 6, truncateRunes(row.Verification, 9), "1", 1, "C", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont(family, "", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("計 %d件", len(rows)), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// truncateRunes keeps cell text from overflowing its column.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
