// Package seed holds the starter price catalog copied to every new builder.
package seed

import (
	_ "embed"
	"encoding/json"

	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// DefaultCatalog returns a fresh, rule-annotated copy of the starter catalog.
func DefaultCatalog() []entities.PricingItem {
	var items []entities.PricingItem
	if err := json.Unmarshal(defaultCatalogJSON, &items); err != nil {
		panic("seed: default catalog is not valid json: " + err.Error())
	}
	return pricing.Annotate(items)
}
