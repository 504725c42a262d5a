package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch <track>",
	Short: "Re-analyze a track whenever its files change",
	Long: `Watch a track folder and regenerate the report on changes.

This monitors the track directory for:
  - New or modified .3do and .mip files
  - Deleted or renamed asset files

When changes are detected, the analysis is re-run and the report file is
rewritten. Useful while editing a track in an external tool.

Use --quiet to suppress per-change notifications.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress per-change notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	track := args[0]
	if !game.TrackExists(track) {
		return fmt.Errorf("track directory not found: %s", game.TrackPath(track))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(game.TrackPath(track)); err != nil {
		return fmt.Errorf("failed to watch track directory: %w", err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatTitle(ui.IconTrack + " Watching " + track))
		fmt.Println(ui.FormatMuted("Folder: " + game.TrackPath(track)))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Initial run so the report exists before the first change
	if err := regenerate(track); err != nil {
		fmt.Println(ui.FormatError("Initial analysis failed: " + err.Error()))
	}

	var debounceTimer *time.Timer
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isAssetFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					if !watchQuiet {
						fmt.Println(ui.FormatInfo("Change detected, re-analyzing..."))
					}
					if err := regenerate(track); err != nil {
						if !watchQuiet {
							fmt.Println(ui.FormatError("Analysis failed: " + err.Error()))
						}
						log.Printf("watch: %v", err)
					}
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// regenerate runs the analysis and rewrites the report file.
func regenerate(track string) error {
	svc, err := newAnalyzer(track)
	if err != nil {
		return err
	}

	analysis, err := svc.Execute(getContext())
	if err != nil {
		return err
	}

	report := reportService.Render(analysis)
	if err := os.WriteFile(reportService.Filename(track), []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Report updated (%d models, %d textures, %d unused)",
			len(analysis.Models), len(analysis.Referenced), len(analysis.Unused))))
	}
	return nil
}

// isAssetFile filters watcher events down to the two formats we parse.
func isAssetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".3do" || ext == ".mip"
}
