// GlazeCut - window and door configurator, cutting optimiser and
// quotation tool.
//
// Price a design and write its documents:
//
//	glazecut -design job.glazecut -pdf quote.pdf -cutlist cuts.pdf -xlsx bom.xlsx -labels labels.pdf
//
// Build a design from a CSV or Excel item schedule:
//
//	glazecut -import schedule.xlsx -save job.glazecut
//
// Manage the catalogue and templates:
//
//	glazecut -import-series domal.json -backup backup.json -list
//	glazecut -template "3 track slider:2" -compare default
//
// Serve the JSON API:
//
//	glazecut -serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/piwi3910/GlazeCut/internal/bom"
	"github.com/piwi3910/GlazeCut/internal/config"
	"github.com/piwi3910/GlazeCut/internal/costing"
	"github.com/piwi3910/GlazeCut/internal/engine"
	"github.com/piwi3910/GlazeCut/internal/export"
	"github.com/piwi3910/GlazeCut/internal/importer"
	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/piwi3910/GlazeCut/internal/project"
	"github.com/piwi3910/GlazeCut/internal/server"
	"github.com/piwi3910/GlazeCut/internal/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	envFile    string
	designPath string
	importPath string
	savePath   string
	pdfPath    string
	cutlist    string
	xlsxPath   string
	labelsPath string
	compare    string
	serve      bool

	templates     stringList
	saveTemplate  string
	seriesName    string
	importSeries  string
	exportSeries  string
	importCatalog string
	exportCatalog string
	backupPath    string
	restorePath   string
	list          bool
}

func (o options) hasDesignInput() bool {
	return o.designPath != "" || o.importPath != "" || len(o.templates) > 0
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("glazecut", flag.ContinueOnError)
	fs.StringVar(&o.envFile, "env", ".env", "environment file to load")
	fs.StringVar(&o.designPath, "design", "", "design file to load")
	fs.StringVar(&o.importPath, "import", "", "CSV or Excel item schedule to add to the design")
	fs.StringVar(&o.savePath, "save", "", "write the resulting design to this file")
	fs.StringVar(&o.pdfPath, "pdf", "", "write the quotation PDF")
	fs.StringVar(&o.cutlist, "cutlist", "", "write the cutting list PDF")
	fs.StringVar(&o.xlsxPath, "xlsx", "", "write the bill of materials workbook")
	fs.StringVar(&o.labelsPath, "labels", "", "write QR cut labels")
	fs.StringVar(&o.compare, "compare", "", `comma separated bar lengths (mm) to compare, or "default"`)
	fs.BoolVar(&o.serve, "serve", false, "serve the HTTP API")
	fs.Var(&o.templates, "template", "add an item from a saved template, NAME or NAME:QTY (repeatable)")
	fs.StringVar(&o.saveTemplate, "save-template", "", "save the first design item as a template with this name")
	fs.StringVar(&o.seriesName, "series", "", "catalogue series used by -export-series")
	fs.StringVar(&o.importSeries, "import-series", "", "add or replace a profile series from a JSON file")
	fs.StringVar(&o.exportSeries, "export-series", "", "write the -series profile series to a JSON file")
	fs.StringVar(&o.importCatalog, "import-catalog", "", "merge a catalogue JSON file into the catalogue")
	fs.StringVar(&o.exportCatalog, "export-catalog", "", "write the catalogue to a JSON file")
	fs.StringVar(&o.backupPath, "backup", "", "write settings, catalogue and templates to a backup file")
	fs.StringVar(&o.restorePath, "restore", "", "restore settings, catalogue and templates from a backup file")
	fs.BoolVar(&o.list, "list", false, "list catalogue series, glass presets and templates")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if !o.serve && !o.hasDesignInput() && !o.hasLibraryCommand() {
		fs.Usage()
		return o, flag.ErrHelp
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	appCfg, err := project.LoadAppConfig(cfg.AppConfigPath)
	if err != nil {
		return err
	}

	if o.serve {
		return serve(cfg, appCfg)
	}

	if o.hasLibraryCommand() {
		if err := runLibrary(o, cfg, &appCfg, stdout); err != nil {
			return err
		}
	}
	if !o.hasDesignInput() {
		return nil
	}

	d, err := loadDesign(o, appCfg, stdout)
	if err != nil {
		return err
	}
	cutting := appCfg.CuttingSettings()
	materials := bom.Build(d.Items, cutting)

	printQuote(stdout, costing.Quote(d.Settings, d.Items))
	printBOM(stdout, materials)

	if o.compare == "default" {
		printComparison(stdout, engine.CompareScenarios(engine.BuildDefaultScenarios(cutting), allPieces(materials)))
	} else if o.compare != "" {
		lengths, err := parseLengths(o.compare)
		if err != nil {
			return err
		}
		printComparison(stdout, engine.CompareStandardLengths(allPieces(materials), lengths, cutting.KerfWidth))
	}

	outputs := []struct {
		path  string
		write func(string) error
	}{
		{o.pdfPath, func(p string) error { return export.ExportQuotationPDF(p, d) }},
		{o.cutlist, func(p string) error { return export.ExportCutListPDF(p, materials) }},
		{o.xlsxPath, func(p string) error { return export.ExportBOMWorkbook(p, materials) }},
		{o.labelsPath, func(p string) error { return export.ExportLabels(p, materials) }},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := out.write(out.path); err != nil {
			return fmt.Errorf("failed to write %s: %w", out.path, err)
		}
		fmt.Fprintf(stdout, "wrote %s\n", out.path)
	}

	if o.savePath != "" {
		d.Items = costing.WithHardwareCost(d.Items)
		if err := project.Save(o.savePath, d); err != nil {
			return err
		}
		project.AddRecentDesign(&appCfg, o.savePath)
		if err := project.SaveAppConfig(cfg.AppConfigPath, appCfg); err != nil {
			log.Printf("failed to update recent designs: %v", err)
		}
		fmt.Fprintf(stdout, "saved %s\n", o.savePath)
	}
	if o.saveTemplate != "" {
		if err := saveTemplate(d, o.saveTemplate); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved template %s\n", o.saveTemplate)
	}
	return nil
}

// loadDesign reads the design file, or starts a new design from the saved
// defaults, then appends template items and any imported schedule items.
func loadDesign(o options, appCfg model.AppConfig, stdout io.Writer) (model.Design, error) {
	d := model.NewDesign()
	appCfg.ApplyToSettings(&d.Settings)
	if o.designPath != "" {
		var err error
		if d, err = project.Load(o.designPath); err != nil {
			return d, err
		}
	}
	if err := addTemplates(&d, o.templates, appCfg); err != nil {
		return d, err
	}
	if o.importPath == "" {
		return d, nil
	}

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		log.Printf("using built-in catalogue: %v", err)
		catalog = model.DefaultCatalog()
	}
	result := importer.ImportFile(o.importPath, importer.Options{Catalog: catalog, Defaults: appCfg})
	for _, w := range result.Warnings {
		fmt.Fprintf(stdout, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(stdout, "error: %s\n", e)
	}
	if len(result.Items) == 0 {
		return d, fmt.Errorf("no items imported from %s", o.importPath)
	}
	d.Items = append(d.Items, result.Items...)
	fmt.Fprintf(stdout, "imported %d items from %s\n", len(result.Items), o.importPath)
	return d, nil
}

func serve(cfg *config.Config, appCfg model.AppConfig) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		log.Printf("using built-in catalogue: %v", err)
		catalog = model.DefaultCatalog()
	}
	templates, err := project.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	srv := server.New(st, server.Options{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Cutting:   appCfg.CuttingSettings(),
		Catalog:   catalog,
		Templates: templates,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("GlazeCut API listening on %s (designs in %s)", cfg.Addr, cfg.DBPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func parseLengths(s string) ([]float64, error) {
	var lengths []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid bar length %q", part)
		}
		lengths = append(lengths, v)
	}
	if len(lengths) == 0 {
		return nil, fmt.Errorf("no bar lengths to compare")
	}
	return lengths, nil
}

func allPieces(b model.BOM) []float64 {
	var pieces []float64
	for _, s := range b.Series {
		for _, p := range s.Profiles {
			pieces = append(pieces, p.Pieces...)
		}
	}
	return pieces
}

func printQuote(out io.Writer, q costing.Quotation) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Item\tQty\tArea\tRate\tAmount\t")
	for _, l := range q.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%s %s\t%s\t%s\t\n", l.Label, l.Quantity, costing.Display(l.Area), l.AreaUnit,
			costing.Display(l.Rate), costing.DisplayWhole(l.Total))
	}
	currency := q.Settings.Currency
	fmt.Fprintf(tw, "Subtotal\t\t\t\t%s\t\n", costing.DisplayMoney(currency, q.Subtotal))
	if q.DiscountAmount.IsPositive() {
		fmt.Fprintf(tw, "Discount\t\t\t\t-%s\t\n", costing.DisplayMoney(currency, q.DiscountAmount))
	}
	fmt.Fprintf(tw, "GST %g%%\t\t\t\t%s\t\n", q.Settings.GSTPercent, costing.DisplayMoney(currency, q.GSTAmount))
	fmt.Fprintf(tw, "Grand Total\t\t\t\t%s\t\n", costing.DisplayMoney(currency, q.GrandTotal))
	tw.Flush()
}

func printBOM(out io.Writer, b model.BOM) {
	for _, s := range b.Series {
		fmt.Fprintf(out, "\n%s: %d bars, %.2f kg\n", s.SeriesName, s.TotalBars(), s.TotalWeight())
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, p := range s.Profiles {
			var notes []string
			if n := p.OversizedPieces(); n > 0 {
				notes = append(notes, fmt.Sprintf("%d special order", n))
			}
			if len(p.Offcuts) > 0 {
				notes = append(notes, fmt.Sprintf("%d offcuts, %.0f mm", len(p.Offcuts), model.TotalOffcutLength(p.Offcuts)))
			}
			note := strings.Join(notes, ", ")
			fmt.Fprintf(tw, "  %s\t%d pcs\t%d x %.1f mm\t%s\n", p.ProfileKey, len(p.Pieces), p.RequiredBars, p.StandardLength, note)
		}
		for _, g := range s.Glass {
			fmt.Fprintf(tw, "  %s\t%d pcs\t%.2f sq.ft\t\n", g.Description, g.Pieces, g.TotalAreaSqFt)
		}
		for _, h := range s.Hardware {
			fmt.Fprintf(tw, "  %s\t%g\t\t\n", h.Name, h.TotalQuantity)
		}
		tw.Flush()
	}
}

func printComparison(out io.Writer, results []engine.ComparisonResult) {
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Bar length\tBars\tSpecial order\tWaste")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\n", r.Scenario.Name, r.BarsUsed, r.Oversized, r.WastePercent)
	}
	tw.Flush()
}
