package interfaces

import (
	"estimatepro/internal/domain/entities"
	"io"
)

// IPricingSpreadsheet converts a price catalog to and from an XLSX workbook.
type IPricingSpreadsheet interface {
	Export(items []entities.PricingItem) ([]byte, error)
	Import(r io.Reader) ([]entities.PricingItem, error)
}
