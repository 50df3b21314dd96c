// Command estimate prints the estimate breakdown for a pricing catalog and a survey payload.
//
//	estimate -payload survey.json [-catalog pricing.xlsx|pricing.json] [-json]
//
// Without -catalog the starter catalog given to new builders is used.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/spreadsheet"
	"estimatepro/internal/domain/entities"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/seed"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	catalogPath := fs.String("catalog", "", "Pricing catalog (.xlsx or .json with pricing_items); default starter catalog")
	payloadPath := fs.String("payload", "-", "Survey payload JSON file, - for stdin")
	asJSON := fs.Bool("json", false, "Print the full result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := loadCatalog(*catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := pricing.Validate(items); err != nil {
		return err
	}

	payload, err := loadPayload(*payloadPath, stdin)
	if err != nil {
		return fmt.Errorf("load payload: %w", err)
	}

	res := pricing.Calculate(items, payload)
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printBreakdown(stdout, res)
}

func loadCatalog(path string) ([]entities.PricingItem, error) {
	if path == "" {
		return seed.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return spreadsheet.NewPricingXLSX().Import(f)
	case ".json":
		var req request.PricingUpdateRequest
		if err := json.NewDecoder(f).Decode(&req); err != nil {
			return nil, err
		}
		return pricing.Annotate(req.ToCatalog().Items), nil
	default:
		return nil, errors.New("catalog must be .xlsx or .json")
	}
}

func loadPayload(path string, stdin io.Reader) (pricing.Payload, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return pricing.Payload{}, err
		}
		defer f.Close()
		r = f
	}
	var req request.SurveyPayloadRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return pricing.Payload{}, err
	}
	return req.ToPayload(), nil
}

func printBreakdown(w io.Writer, res pricing.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Floor area\t%.2f m²\n", res.Areas.FloorArea)
	fmt.Fprintf(tw, "Wall area\t%.2f m²\n", res.Areas.WallArea)
	fmt.Fprintf(tw, "Total area\t%.2f m²\n", res.Areas.TotalArea)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Tiled area (by level)")
	fmt.Fprintf(tw, "  Budget\t%.2f m²\n", res.TiledAreas.BudgetArea)
	fmt.Fprintf(tw, "  Standard\t%.2f m²\n", res.TiledAreas.StandardArea)
	fmt.Fprintf(tw, "  Premium\t%.2f m²\n", res.TiledAreas.PremiumArea)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ITEM\tTYPE\tQTY\tUNIT\tTOTAL")
	for _, li := range res.LineItems {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\n", li.ItemName, li.PriceType, li.Quantity, li.UnitPrice, li.Total)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Base estimate\t\t\t\t%.2f\n", res.BaseEstimate)
	fmt.Fprintf(tw, "High estimate\t\t\t\t%.2f\n", res.HighEstimate)
	return tw.Flush()
}
