package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/runtime/bootstrap"
	"github.com/de-tools/rental-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/rental-atlas/pkg/services/config"
	"github.com/de-tools/rental-atlas/pkg/services/dataset"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type ReportCmd struct {
	configPath *string
	dataset    string
	engine     string
	start      string
	end        string
	seasons    []string
	weathers   []string
	format     string
	registry   dataset.Registry
	reporters  map[string]export.Reporter
}

// NewReportCmd renders the dashboard for the filter given on the command line.
// reporters are keyed by output format.
func NewReportCmd(configPath *string, registry dataset.Registry, reporters map[string]export.Reporter) *cobra.Command {
	rc := &ReportCmd{
		configPath: configPath,
		registry:   registry,
		reporters:  reporters,
	}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the bike rental dashboard",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.dataset, "dataset", "", "Dataset location, a local path or s3://bucket/key (overrides config)")
	cmd.Flags().StringVar(&rc.engine, "engine", "", "Filter engine: memory or duckdb (overrides config)")
	cmd.Flags().StringVar(&rc.start, "start", "", "First day to include (YYYY-MM-DD, default: first day in the dataset)")
	cmd.Flags().StringVar(&rc.end, "end", "", "Last day to include (YYYY-MM-DD, default: last day in the dataset)")
	cmd.Flags().StringSliceVar(&rc.seasons, "season", nil, "Seasons to include (default: all)")
	cmd.Flags().StringSliceVar(&rc.weathers, "weather", nil, "Weather conditions to include (default: all)")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format: "+strings.Join(rc.formats(), ", "))

	return cmd
}

func (rc *ReportCmd) formats() []string {
	names := make([]string, 0, len(rc.reporters))
	for name := range rc.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q, expected one of: %s", rc.format, strings.Join(rc.formats(), ", "))
	}

	cfg, err := config.LoadConfig(*rc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if rc.dataset != "" {
		cfg.Dataset = rc.dataset
	}
	if rc.engine != "" {
		cfg.Engine = rc.engine
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	ctx := logger.WithContext(cmd.Context())

	app, err := bootstrap.New(ctx, cfg, rc.registry)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close filter engine")
		}
	}()

	f, err := rc.filter(cmd, app.Dashboard.DefaultFilter())
	if err != nil {
		return err
	}

	d, err := app.Dashboard.Render(ctx, f)
	if err != nil {
		return err
	}
	return reporter.Handle(d)
}

// filter overrides the defaults with the flags that were set.
func (rc *ReportCmd) filter(cmd *cobra.Command, defaults domain.Filter) (domain.Filter, error) {
	f := defaults

	var err error
	if f.Start, err = parseDay("start", rc.start, defaults.Start); err != nil {
		return domain.Filter{}, err
	}
	if f.End, err = parseDay("end", rc.end, defaults.End); err != nil {
		return domain.Filter{}, err
	}

	if cmd.Flags().Changed("season") {
		f.Seasons = nonEmpty(rc.seasons)
	}
	if cmd.Flags().Changed("weather") {
		f.Weathers = nonEmpty(rc.weathers)
	}
	return f, nil
}

func parseDay(field, raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &domain.InvalidFilterError{Field: field, Value: raw}
	}
	return t, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
