package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/csvimport"
	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
	"github.com/Retrend821/inventory-saas-sub000/internal/worker"
)

// ImportService runs the CSV intake pipeline in two phases (inspect, then
// commit with a user-confirmed mapping) plus the JSON ingest endpoint used by
// the mail-scraper job.
type ImportService interface {
	Inspect(ctx context.Context, fileName string, raw []byte) (*dto.ImportInspectResponse, error)
	Commit(ctx context.Context, raw, imageRaw []byte, req dto.ImportCommitRequest) (*dto.ImportCommitResponse, error)
	Ingest(ctx context.Context, items []dto.APIIngestItem) (*dto.APIIngestResponse, error)
}

type importService struct {
	repo       repository.InventoryRepository
	mapper     *csvimport.Mapper
	dispatcher *worker.Dispatcher
	batchSize  int
	reportTo   string
}

func NewImportService(
	repo repository.InventoryRepository,
	mapper *csvimport.Mapper,
	dispatcher *worker.Dispatcher,
	batchSize int,
	reportTo string,
) ImportService {
	if batchSize < 1 {
		batchSize = 50
	}
	return &importService{
		repo:       repo,
		mapper:     mapper,
		dispatcher: dispatcher,
		batchSize:  batchSize,
		reportTo:   reportTo,
	}
}

const previewRowCount = 5

func (s *importService) Inspect(_ context.Context, fileName string, raw []byte) (*dto.ImportInspectResponse, error) {
	header, records, headerIdx, err := parseCSV(raw)
	if err != nil {
		return nil, err
	}

	dialect := csvimport.DetectDialect(header)
	resp := &dto.ImportInspectResponse{
		Dialect:       string(dialect),
		HeaderRow:     headerIdx,
		Header:        header,
		TotalDataRows: len(records),
	}
	if d := csvimport.DateFromFileName(fileName); d != "" {
		resp.DetectedSource = &d
	}

	if dialect == csvimport.DialectUnknown {
		resp.SuggestedMap = csvimport.AutoMap(header)
		n := previewRowCount
		if n > len(records) {
			n = len(records)
		}
		resp.PreviewRows = records[:n]
	}
	return resp, nil
}

func (s *importService) Commit(ctx context.Context, raw, imageRaw []byte, req dto.ImportCommitRequest) (*dto.ImportCommitResponse, error) {
	header, records, _, err := parseCSV(raw)
	if err != nil {
		return nil, err
	}

	dialect := csvimport.Dialect(req.Dialect)
	var rows []csvimport.Row
	if dialect == csvimport.DialectUnknown {
		if err := validateMapping(req.Mapping); err != nil {
			return nil, err
		}
		rows = s.mapper.MapWithAssignments(header, records, req.Mapping)
	} else {
		opts := csvimport.MapperOptions{FileName: req.FileName}
		if len(imageRaw) > 0 {
			_, imageRecords, _, imgErr := parseCSV(imageRaw)
			if imgErr == nil {
				opts.AucnetImages = csvimport.ParseAucnetImageIndex(imageRecords)
			}
		}
		rows, err = s.mapper.MapRows(dialect, header, records, opts)
		if err != nil {
			return nil, err
		}
	}

	// Row guard: a row needs a name and a positive amount to be importable.
	// Guarded-out rows are not reported per row, only counted.
	valid := rows[:0]
	invalid := 0
	for _, r := range rows {
		if r.ProductName == "" || (amountOf(r) == nil || amountOf(r).IsZero()) {
			invalid++
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return nil, errors.New("取り込める行がありません")
	}

	existing, err := s.existingRecords(ctx)
	if err != nil {
		return nil, err
	}
	fresh, dups := csvimport.NewDeduper(existing).Split(valid)

	resp := &dto.ImportCommitResponse{
		SkippedRows: len(dups),
		InvalidRows: invalid,
	}
	for _, r := range dups {
		resp.Skipped = append(resp.Skipped, rowSummary(r))
	}

	items := make([]model.InventoryItem, 0, len(fresh))
	for _, r := range fresh {
		items = append(items, rowToItem(r, req.PurchaseSource, req.PurchaseDate))
	}

	// Insert in batches so one bad row only fails its batch.
	for start := 0; start < len(items); start += s.batchSize {
		end := start + s.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]
		if err := s.repo.BatchInsert(ctx, batch); err != nil {
			log.Error().Err(err).Int("batch_start", start).Msg("import: batch insert failed")
			resp.Failed += len(batch)
			continue
		}
		resp.Succeeded += len(batch)
		for _, it := range batch {
			resp.Imported = append(resp.Imported, dto.ImportedRowSummary{
				ProductName:   it.ProductName,
				PurchaseTotal: it.PurchaseTotal,
			})
		}
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "import"})
		if s.reportTo != "" {
			_ = s.dispatcher.EnqueueReportEmail(ctx, worker.ReportEmailPayload{
				ToEmail: s.reportTo,
				Subject: fmt.Sprintf("CSVインポート結果: %s", req.FileName),
				Body: fmt.Sprintf("取込 %d件 / 重複スキップ %d件 / 無効 %d件 / 失敗 %d件",
					resp.Succeeded, resp.SkippedRows, resp.InvalidRows, resp.Failed),
			})
		}
	}
	return resp, nil
}

func (s *importService) Ingest(ctx context.Context, items []dto.APIIngestItem) (*dto.APIIngestResponse, error) {
	if len(items) == 0 {
		return nil, errors.New("データがありません")
	}

	resp := &dto.APIIngestResponse{}
	for i, in := range items {
		if in.ProductName == "" {
			resp.Errors++
			resp.Details = append(resp.Details, dto.APIIngestError{Index: i, Error: "product_name is required"})
			continue
		}

		if in.ExternalID != nil && in.ExternalSource != nil {
			if _, err := s.repo.FindByExternalKey(ctx, *in.ExternalSource, *in.ExternalID); err == nil {
				resp.Errors++
				resp.Details = append(resp.Details, dto.APIIngestError{Index: i, Error: "duplicate external_id"})
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}

		item := model.InventoryItem{
			ProductName:    in.ProductName,
			BrandName:      in.BrandName,
			Category:       in.Category,
			PurchaseSource: in.Supplier,
			PurchaseDate:   normalizeSlashes(in.PurchaseDate),
			ListingDate:    normalizeSlashes(in.ListingDate),
			OtherCost:      in.OtherCost,
			ImageURL:       in.ImageURL,
			Memo:           in.Memo,
			Status:         model.StatusInStock,
			ExternalID:     in.ExternalID,
			ExternalSource: in.ExternalSource,
		}
		if in.Status != nil {
			item.Status = *in.Status
		}
		// The scraped price is tax inclusive; store the net alongside it.
		if in.PurchasePrice != nil {
			total := *in.PurchasePrice
			net := total.Div(decimal.NewFromFloat(1.1)).Round(0)
			item.PurchaseTotal = &total
			item.PurchasePrice = &net
		}
		item.InventoryNumber = in.InventoryNumber
		if item.InventoryNumber == nil {
			if num, err := s.nextNumber(ctx, item.PurchaseTotal); err == nil {
				item.InventoryNumber = &num
			}
		}

		if err := s.repo.Create(ctx, &item); err != nil {
			resp.Errors++
			resp.Details = append(resp.Details, dto.APIIngestError{Index: i, Error: err.Error()})
			continue
		}
		resp.Inserted++
	}

	if s.dispatcher != nil && resp.Inserted > 0 {
		_ = s.dispatcher.EnqueueSummarySync(ctx, worker.SummarySyncPayload{Trigger: "import"})
	}
	return resp, nil
}

func (s *importService) nextNumber(ctx context.Context, price *decimal.Decimal) (string, error) {
	max, err := s.repo.MaxInventorySequence(ctx)
	if err != nil {
		return "", err
	}
	p := decimal.Zero
	if price != nil {
		p = *price
	}
	return fmt.Sprintf("%d）%s", max+1, p.Round(0).String()), nil
}

func (s *importService) existingRecords(ctx context.Context) ([]csvimport.ExistingRecord, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing := make([]csvimport.ExistingRecord, 0, len(all))
	for i := range all {
		existing = append(existing, csvimport.ExistingRecord{
			ProductName:   all[i].ProductName,
			ImageURL:      all[i].ImageURL,
			PurchaseDate:  all[i].PurchaseDate,
			PurchaseTotal: all[i].PurchaseTotal,
		})
	}
	return existing, nil
}

// parseCSV decodes the payload, locates the header row, and returns header
// plus data rows.
func parseCSV(raw []byte) (header []string, records [][]string, headerIdx int, err error) {
	text, err := csvimport.DecodeAuto(raw)
	if err != nil {
		return nil, nil, 0, err
	}
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("CSVの解析に失敗しました: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, 0, errors.New("CSVが空です")
	}
	headerIdx = csvimport.FindHeaderRow(rows)
	return rows[headerIdx], rows[headerIdx+1:], headerIdx, nil
}

// validateMapping rejects confirmations where two headers claim one field.
func validateMapping(mapping map[string]string) error {
	if len(mapping) == 0 {
		return errors.New("列の割り当てが指定されていません")
	}
	seen := make(map[string]string, len(mapping))
	for header, field := range mapping {
		if field == "" {
			continue
		}
		if prev, ok := seen[field]; ok {
			return fmt.Errorf("列 %q と %q が同じ項目 %q に割り当てられています", prev, header, field)
		}
		seen[field] = header
	}
	if _, ok := seen["product_name"]; !ok {
		return errors.New("商品名の列が割り当てられていません")
	}
	return nil
}

func amountOf(r csvimport.Row) *decimal.Decimal {
	if r.PurchaseTotal != nil {
		return r.PurchaseTotal
	}
	return r.PurchasePrice
}

func rowSummary(r csvimport.Row) dto.ImportedRowSummary {
	return dto.ImportedRowSummary{ProductName: r.ProductName, PurchaseTotal: amountOf(r)}
}

func rowToItem(r csvimport.Row, source, fallbackDate *string) model.InventoryItem {
	item := model.InventoryItem{
		ProductName:     r.ProductName,
		BrandName:       r.BrandName,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
		InventoryNumber: r.InventoryNumber,
		PurchasePrice:   r.PurchasePrice,
		PurchaseTotal:   r.PurchaseTotal,
		PurchaseDate:    r.PurchaseDate,
		Memo:            r.Memo,
		PurchaseSource:  source,
		Status:          model.StatusInStock,
	}
	if item.PurchaseTotal == nil {
		item.PurchaseTotal = r.PurchasePrice
	}
	if item.PurchaseDate == nil {
		item.PurchaseDate = fallbackDate
	}
	return item
}

func normalizeSlashes(date *string) *string {
	if date == nil {
		return nil
	}
	d := strings.ReplaceAll(*date, "/", "-")
	return &d
}
