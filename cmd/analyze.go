package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/pkg/ui"
)

var (
	analyzeOutput string
	analyzeCopy   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <track>",
	Short: "Analyze a track and write the text report",
	Long: `Analyze the asset files of one track.

Walks the track's .3do model files (including nested model references and
the sky/horizon models), resolves which .mip textures they use, and writes
a report listing model sizes, texture dimensions, unused textures and
totals to <track>` + "_file_analysis.txt" + ` in the current directory.

Unreadable files are noted in the report; a missing track directory
aborts with a non-zero exit status.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Report file path (default <track>_file_analysis.txt)")
	analyzeCmd.Flags().BoolVarP(&analyzeCopy, "copy", "c", false, "Also copy the report to the clipboard")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	track := args[0]

	svc, err := newAnalyzer(track)
	if err != nil {
		return err
	}

	analysis, err := svc.Execute(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := reportService.Render(analysis)

	outPath := analyzeOutput
	if outPath == "" {
		outPath = reportService.Filename(track)
	}
	if err := os.WriteFile(outPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if analyzeCopy {
		// Clipboard is best effort; the report on disk is the deliverable
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy report to clipboard: " + err.Error()))
		} else {
			fmt.Println(ui.FormatInfo("Report copied to clipboard"))
		}
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	fmt.Println(ui.FormatSuccess("Report written to " + abs))
	fmt.Printf("  %s %d models, %d referenced textures, %d unused, %d missing\n",
		ui.FormatMuted(ui.IconTrack+" "+track+":"),
		len(analysis.Models), len(analysis.Referenced), len(analysis.Unused), len(analysis.Missing))

	if len(analysis.Missing) > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d referenced textures are missing on disk", len(analysis.Missing))))
	}

	return nil
}
