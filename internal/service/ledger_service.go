package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Retrend821/inventory-saas-sub000/internal/config"
	"github.com/Retrend821/inventory-saas-sub000/internal/infra"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
)

// LedgerService renders the 古物台帳 PDF for one month: every acquisition and
// disposal in the period, with counterparty details resolved from the master
// lists. Venues flagged anonymous (auction floors, flea-market apps) are
// written as 相手方不明 per the dealer's simplified record-keeping.
type LedgerService interface {
	GeneratePDF(ctx context.Context, period string) (string, error)
}

type ledgerService struct {
	inventory repository.InventoryRepository
	platforms repository.PlatformRepository
	suppliers repository.SupplierRepository
	cfg       *config.Config
}

func NewLedgerService(
	inventory repository.InventoryRepository,
	platforms repository.PlatformRepository,
	suppliers repository.SupplierRepository,
	cfg *config.Config,
) LedgerService {
	return &ledgerService{
		inventory: inventory,
		platforms: platforms,
		suppliers: suppliers,
		cfg:       cfg,
	}
}

var ledgerPeriodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func (s *ledgerService) GeneratePDF(ctx context.Context, period string) (string, error) {
	if !ledgerPeriodRe.MatchString(period) {
		return "", errors.New("対象期間はYYYY-MM形式で指定してください")
	}

	items, err := s.inventory.FindAll(ctx)
	if err != nil {
		return "", err
	}
	parties, err := s.counterparties(ctx)
	if err != nil {
		return "", err
	}

	var rows []infra.LedgerRow
	for i := range items {
		item := &items[i]
		if inPeriod(item.PurchaseDate, period) {
			rows = append(rows, infra.LedgerRow{
				Kind:         "受入",
				Date:         *item.PurchaseDate,
				ProductName:  item.ProductName,
				Features:     ledgerFeatures(item),
				Quantity:     1,
				Amount:       formatYen(item.PurchaseTotal),
				Counterparty: parties.resolve(item.PurchaseSource),
				Verification: parties.verification(item.PurchaseSource),
			})
		}
		if inPeriod(item.SaleDate, period) {
			rows = append(rows, infra.LedgerRow{
				Kind:         "払出",
				Date:         *item.SaleDate,
				ProductName:  item.ProductName,
				Features:     ledgerFeatures(item),
				Quantity:     1,
				Amount:       formatYen(item.SalePrice),
				Counterparty: parties.resolve(item.SaleDestination),
				Verification: parties.verification(item.SaleDestination),
			})
		}
	}
	if len(rows) == 0 {
		return "", errors.New("対象期間に取引がありません")
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	return infra.GenerateLedgerPDF(rows, period, s.cfg.PDFStoragePath, s.cfg.PDFFontPath)
}

// inPeriod matches real YYYY-MM-DD dates against the month prefix. Sentinel
// strings stamped into date columns never match.
func inPeriod(date *string, period string) bool {
	return date != nil && strings.HasPrefix(*date, period+"-")
}

func ledgerFeatures(item *model.InventoryItem) string {
	parts := make([]string, 0, 2)
	if item.BrandName != nil && *item.BrandName != "" {
		parts = append(parts, *item.BrandName)
	}
	if item.InventoryNumber != nil && *item.InventoryNumber != "" {
		parts = append(parts, *item.InventoryNumber)
	}
	return strings.Join(parts, " / ")
}

func formatYen(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return "¥" + d.Round(0).String()
}

// counterpartyIndex resolves a channel or supplier name to ledger details.
type counterpartyIndex struct {
	byName map[string]counterpartyInfo
}

type counterpartyInfo struct {
	label        string
	verification string
}

func (s *ledgerService) counterparties(ctx context.Context) (*counterpartyIndex, error) {
	idx := &counterpartyIndex{byName: make(map[string]counterpartyInfo)}

	platforms, err := s.platforms.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for i := range platforms {
		p := &platforms[i]
		idx.byName[p.Name] = counterpartyInfo{
			label:        counterpartyLabel(p.Name, p.IsAnonymous, p.RepresentativeName, p.Address, p.Occupation),
			verification: strValue(p.VerificationMethod),
		}
	}

	suppliers, err := s.suppliers.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		sp := &suppliers[i]
		idx.byName[sp.Name] = counterpartyInfo{
			label:        counterpartyLabel(sp.Name, sp.IsAnonymous, sp.RepresentativeName, sp.Address, sp.Occupation),
			verification: strValue(sp.VerificationMethod),
		}
	}
	return idx, nil
}

func (idx *counterpartyIndex) resolve(name *string) string {
	if name == nil || *name == "" {
		return "相手方不明"
	}
	if info, ok := idx.byName[*name]; ok {
		return info.label
	}
	return *name
}

func (idx *counterpartyIndex) verification(name *string) string {
	if name == nil {
		return ""
	}
	if info, ok := idx.byName[*name]; ok {
		return info.verification
	}
	return ""
}

func counterpartyLabel(name string, anonymous bool, rep, address, occupation *string) string {
	if anonymous {
		return fmt.Sprintf("%s（相手方不明）", name)
	}
	parts := []string{name}
	if rep != nil && *rep != "" {
		parts = append(parts, *rep)
	}
	if address != nil && *address != "" {
		parts = append(parts, *address)
	}
	if occupation != nil && *occupation != "" {
		parts = append(parts, *occupation)
	}
	return strings.Join(parts, " / ")
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
