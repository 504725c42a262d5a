package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/internal/core/services"
	"github.com/icr2-tools/trackscan/pkg/config"
	"github.com/icr2-tools/trackscan/pkg/gamedir"
	"github.com/icr2-tools/trackscan/pkg/ui"
)

var (
	// Global app state
	appConfig *config.Config
	game      *gamedir.GameDir

	// Services
	reportService *services.ReportService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackscan",
	Short: "Inspect legacy racing-game track assets",
	Long: ui.StyleTitle.Render("trackscan") + " - Track Asset Analyzer\n\n" +
		"Reads the .3do model and .mip texture files of a track folder,\n" +
		"resolves which textures are actually referenced, and reports\n" +
		"sizes, dimensions and unused files.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	configPath, err := gamedir.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	g, err := gamedir.New(cfg.TracksDir)
	if err != nil {
		return fmt.Errorf("failed to locate tracks directory: %w", err)
	}
	game = g

	reportService = services.NewReportService(cfg.ReportSuffix)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
