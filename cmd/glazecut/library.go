package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/GlazeCut/internal/config"
	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/piwi3910/GlazeCut/internal/project"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func (o options) hasLibraryCommand() bool {
	return o.backupPath != "" || o.restorePath != "" || o.importCatalog != "" ||
		o.exportCatalog != "" || o.importSeries != "" || o.exportSeries != "" || o.list
}

// runLibrary handles the catalogue, template and backup commands. They run
// before any design is priced so a restored or imported catalogue is used.
func runLibrary(o options, cfg *config.Config, appCfg *model.AppConfig, stdout io.Writer) error {
	if o.restorePath != "" {
		if err := restore(o.restorePath, cfg, appCfg); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "restored %s\n", o.restorePath)
	}

	catalog, catalogPath, err := project.LoadOrCreateCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	changed := false

	if o.importCatalog != "" {
		before := len(catalog.Series)
		if catalog, err = project.ImportCatalog(o.importCatalog, catalog); err != nil {
			return fmt.Errorf("failed to import catalogue: %w", err)
		}
		changed = true
		fmt.Fprintf(stdout, "imported %d series from %s\n", len(catalog.Series)-before, o.importCatalog)
	}

	if o.importSeries != "" {
		s, err := project.ImportSeries(o.importSeries)
		if err != nil {
			return fmt.Errorf("failed to import series: %w", err)
		}
		if existing := catalog.FindSeriesByName(s.Name); existing != nil {
			s.ID = existing.ID
		}
		if !catalog.UpdateSeries(s) {
			catalog.Series = append(catalog.Series, s)
		}
		changed = true
		fmt.Fprintf(stdout, "imported series %s\n", s.Name)
	}

	if changed {
		if err := project.SaveCatalog(catalogPath, catalog); err != nil {
			return err
		}
	}

	if o.exportSeries != "" {
		if o.seriesName == "" {
			return errors.New("-export-series needs -series")
		}
		s := catalog.FindSeriesByName(o.seriesName)
		if s == nil {
			return fmt.Errorf("series %q is not in the catalogue", o.seriesName)
		}
		if err := project.ExportSeries(o.exportSeries, *s); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", o.exportSeries)
	}

	if o.exportCatalog != "" {
		if err := project.ExportCatalog(o.exportCatalog, catalog); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", o.exportCatalog)
	}

	templates, err := project.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	if o.backupPath != "" {
		if err := project.ExportAllData(o.backupPath, *appCfg, catalog, templates); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", o.backupPath)
	}

	if o.list {
		printLibrary(stdout, catalog, templates)
	}
	return nil
}

func restore(path string, cfg *config.Config, appCfg *model.AppConfig) error {
	data, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(cfg.AppConfigPath, data.Config); err != nil {
		return err
	}
	if err := project.SaveCatalog(project.DefaultCatalogPath(), data.Catalog); err != nil {
		return err
	}
	if err := project.SaveDefaultTemplates(data.Templates); err != nil {
		return err
	}
	*appCfg = data.Config
	return nil
}

// addTemplates appends one item per -template name. A name may carry a
// quantity as NAME:QTY.
func addTemplates(d *model.Design, names []string, appCfg model.AppConfig) error {
	if len(names) == 0 {
		return nil
	}
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}
	for _, spec := range names {
		name, qty, err := parseTemplateRef(spec)
		if err != nil {
			return err
		}
		t := store.FindByName(name)
		if t == nil {
			return fmt.Errorf("no template named %q", name)
		}
		label := fmt.Sprintf("T%d", len(d.Items)+1)
		d.Items = append(d.Items, t.ToItem(label, qty, appCfg.DefaultRate, appCfg.DefaultAreaUnit))
	}
	return nil
}

func parseTemplateRef(s string) (string, int, error) {
	name, qty := s, 1
	if i := strings.LastIndex(s, ":"); i > 0 {
		if _, err := fmt.Sscanf(s[i+1:], "%d", &qty); err != nil || qty < 1 {
			return "", 0, fmt.Errorf("invalid template quantity in %q", s)
		}
		name = s[:i]
	}
	return name, qty, nil
}

// saveTemplate stores the first item of d as a named template, replacing a
// template of the same name.
func saveTemplate(d model.Design, name string) error {
	if len(d.Items) == 0 {
		return errors.New("design has no items to save as a template")
	}
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return err
	}
	if old := store.FindByName(name); old != nil {
		store.Remove(old.ID)
	}
	first := d.Items[0]
	store.Add(model.NewDesignTemplate(name, first.Label, first.Config))
	return project.SaveDefaultTemplates(store)
}

func printLibrary(out io.Writer, catalog model.Catalog, templates model.TemplateStore) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Series\tProfiles\tHardware")
	for _, name := range catalog.SeriesNames() {
		s := catalog.FindSeriesByName(name)
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s.Name, len(s.Profiles), len(s.Hardware))
	}
	tw.Flush()

	if len(catalog.Glass) > 0 {
		fmt.Fprintln(out)
		for _, g := range catalog.Glass {
			fmt.Fprintf(out, "Glass: %s\n", g.Name)
		}
	}
	if len(templates.Templates) > 0 {
		fmt.Fprintln(out)
		for _, t := range templates.Templates {
			fmt.Fprintf(out, "Template: %s (%s)\n", t.Name, t.Config.Type)
		}
	}
}
