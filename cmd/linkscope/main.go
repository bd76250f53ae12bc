// Command linkscope analyses professional-network data exports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/linkscope/internal/adapters/driven/config/file"
	"github.com/custodia-labs/linkscope/internal/adapters/driven/export"
	"github.com/custodia-labs/linkscope/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/cli"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/core/services"
	"github.com/custodia-labs/linkscope/internal/normalisers/tabular"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(dirs cli.Dirs) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(dirs.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}

	decoderOpts, err := decoderOptions(configStore)
	if err != nil {
		return nil, nil, err
	}

	dataDir := dirs.DataDir
	if dataDir == "" && dirs.ConfigDir != "" {
		dataDir = filepath.Join(dirs.ConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening snapshot archive: %w", err)
	}
	snapshots := store.SnapshotStore()

	clock := driven.ClockFunc(time.Now)
	reader := export.NewReader(tabular.New(decoderOpts))
	categories := services.NewCategoryService(configStore)
	reports := services.NewReportService(snapshots)

	return &cli.Services{
		Analysis:   services.NewAnalysisService(reader, snapshots, categories, clock),
		Reports:    reports,
		Categories: categories,
		Summary:    services.NewSummaryService(reports, configStore, clock),
	}, store.Close, nil
}

// decoderOptions reads the export CSV delimiter from export.delimiter.
// An unset value keeps the decoder default.
func decoderOptions(cfg driven.ConfigStore) (tabular.Options, error) {
	raw := cfg.GetString(driven.ConfigExportDelimiter)
	if raw == "" {
		return tabular.Options{}, nil
	}
	r, size := utf8.DecodeRuneInString(raw)
	if size != len(raw) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return tabular.Options{}, fmt.Errorf("%w: %s must be a single character other than a quote or newline, got %q",
			domain.ErrInvalidInput, driven.ConfigExportDelimiter, raw)
	}
	return tabular.Options{Delimiter: r}, nil
}
