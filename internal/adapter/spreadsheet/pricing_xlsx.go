package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const pricingSheetName = "Pricing"

var (
	ErrEmptyWorkbook      = errors.New("workbook has no sheets")
	ErrMissingItemColumn  = errors.New("pricing sheet has no Item Name column")
	ErrInvalidPriceNumber = errors.New("invalid price value")
)

// PricingHeader is the column layout written on export. Import matches headers
// case-insensitively so reordered or partial sheets still load.
var PricingHeader = []string{
	"Item Name",
	"Applicability",
	"Price Type",
	"Final Price",
	"Base Cost",
	"Markup %",
	"Active",
}

const (
	colItemName = iota
	colApplicability
	colPriceType
	colFinalPrice
	colBaseCost
	colMarkup
	colActive
)

var headerAliases = map[string]int{
	"item name":      colItemName,
	"item":           colItemName,
	"name":           colItemName,
	"applicability":  colApplicability,
	"applies":        colApplicability,
	"price type":     colPriceType,
	"type":           colPriceType,
	"unit":           colPriceType,
	"final price":    colFinalPrice,
	"price":          colFinalPrice,
	"base cost":      colBaseCost,
	"cost":           colBaseCost,
	"markup %":       colMarkup,
	"markup":         colMarkup,
	"markup percent": colMarkup,
	"active":         colActive,
	"is active":      colActive,
}

// PricingXLSX converts a builder price catalog to and from an XLSX workbook.
type PricingXLSX struct{}

var _ interfaces.IPricingSpreadsheet = PricingXLSX{}

func NewPricingXLSX() PricingXLSX {
	return PricingXLSX{}
}

func (PricingXLSX) Export(items []entities.PricingItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(pricingSheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetRow(pricingSheetName, "A1", &PricingHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(pricingSheetName, "A1", "G1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(pricingSheetName, "A", "B", 40); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			it.ItemName,
			it.Applicability,
			string(it.PriceType),
			it.FinalPrice,
			it.BaseCost,
			it.MarkupPercent,
			yesNo(it.IsActive),
		}
		if err := f.SetSheetRow(pricingSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Import reads the first sheet (or the "Pricing" sheet when present). Rows
// without an item name are skipped. Validation of the resulting items is left
// to the caller.
func (PricingXLSX) Import(r io.Reader) ([]entities.PricingItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if strings.EqualFold(s, pricingSheetName) {
			sheet = s
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []entities.PricingItem{}, nil
	}

	cols := mapHeader(rows[0])
	if _, ok := cols[colItemName]; !ok {
		return nil, ErrMissingItemColumn
	}

	items := make([]entities.PricingItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		name := strings.TrimSpace(cellAt(row, cols, colItemName))
		if name == "" {
			continue
		}
		item := entities.PricingItem{
			ItemName:      name,
			Applicability: strings.TrimSpace(cellAt(row, cols, colApplicability)),
			PriceType:     parsePriceType(cellAt(row, cols, colPriceType)),
			IsActive:      parseActive(cellAt(row, cols, colActive)),
		}
		if item.FinalPrice, err = parseNumber(cellAt(row, cols, colFinalPrice)); err != nil {
			return nil, fmt.Errorf("row %d final price: %w", i+2, err)
		}
		if item.BaseCost, err = parseNumber(cellAt(row, cols, colBaseCost)); err != nil {
			return nil, fmt.Errorf("row %d base cost: %w", i+2, err)
		}
		if item.MarkupPercent, err = parseNumber(cellAt(row, cols, colMarkup)); err != nil {
			return nil, fmt.Errorf("row %d markup: %w", i+2, err)
		}
		items = append(items, item)
	}
	zap.S().Infof("[builder][spreadsheet] imported sheet=%q items=%d", sheet, len(items))
	return items, nil
}

func mapHeader(header []string) map[int]int {
	cols := make(map[int]int, len(header))
	for idx, h := range header {
		field, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, dup := cols[field]; !dup {
			cols[field] = idx
		}
	}
	return cols
}

func cellAt(row []string, cols map[int]int, field int) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parsePriceType(raw string) entities.PriceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sqm", "m2", "m²", "per sqm", "per m2", "/m2":
		return entities.PriceTypeSqm
	case "percentage", "percent", "%":
		return entities.PriceTypePercentage
	case "fixed", "", "each", "flat":
		return entities.PriceTypeFixed
	}
	return entities.PriceType(strings.ToLower(strings.TrimSpace(raw)))
}

func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriceNumber, raw)
	}
	return v, nil
}

func parseActive(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "no", "n", "false", "0", "inactive":
		return false
	}
	return true
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
