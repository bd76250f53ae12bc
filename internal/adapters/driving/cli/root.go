// Package cli provides the cobra command tree for linkscope.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
	"github.com/custodia-labs/linkscope/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services wired into the command tree.
var (
	analysisService driving.AnalysisService
	reportService   driving.ReportService
	categoryService driving.CategoryService
	summaryService  driving.SummaryService
)

// Global flags.
var (
	verboseFlag   bool
	configDirFlag string
	dataDirFlag   string
)

// Services groups the driving ports the commands use.
type Services struct {
	Analysis   driving.AnalysisService
	Reports    driving.ReportService
	Categories driving.CategoryService
	Summary    driving.SummaryService
}

// Dirs carries the directory overrides from the global flags.
// Empty values mean the adapter defaults.
type Dirs struct {
	ConfigDir string
	DataDir   string
}

// BootstrapFunc builds the services once flags are parsed.
// The returned close function releases adapter resources.
type BootstrapFunc func(dirs Dirs) (*Services, func() error, error)

var (
	bootstrap BootstrapFunc
	closeFn   func() error
)

var rootCmd = &cobra.Command{
	Use:   "linkscope",
	Short: "Analyse a professional-network data export",
	Long: `linkscope reads the CSV data export of a professional networking account
and turns it into relationship analytics: who you actually talk to, which
connections have gone quiet, where your network works and what you post about.

Every run is archived locally so reports can be revisited and compared.`,
	SilenceUsage:       true,
	PersistentPreRunE:  persistentPreRun,
	PersistentPostRunE: persistentPostRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.linkscope)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "snapshot archive directory (default ~/.linkscope/data)")

	// PersistentPostRunE is skipped when a command fails, so resources
	// still open at that point are released here.
	cobra.OnFinalize(releaseResources)
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	analysisService = s.Analysis
	reportService = s.Reports
	categoryService = s.Categories
	summaryService = s.Summary
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func persistentPreRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if bootstrap == nil || analysisService != nil {
		return nil
	}

	services, closer, err := bootstrap(Dirs{ConfigDir: configDirFlag, DataDir: dataDirFlag})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	closeFn = closer
	return nil
}

func persistentPostRun(_ *cobra.Command, _ []string) error {
	return closeResources()
}

func closeResources() error {
	if closeFn == nil {
		return nil
	}
	err := closeFn()
	closeFn = nil
	return err
}

func releaseResources() {
	if err := closeResources(); err != nil {
		logger.Warn("closing resources: %v", err)
	}
}
