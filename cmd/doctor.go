package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor <track>",
	Short: "Check the health of a track's asset files",
	Long: `Diagnose issues with a track folder.

Checks for:
  - Tracks directory and track folder presence
  - Root model and sky/horizon models
  - Unreadable model or texture headers
  - Textures referenced but missing on disk`,
	Args: cobra.ExactArgs(1),
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	track := args[0]

	fmt.Println(ui.FormatTitle("🏥 Track Doctor: " + track))
	fmt.Println()

	checkStep("Tracks Directory", func() error {
		if _, err := os.Stat(game.TracksPath); err != nil {
			return fmt.Errorf("not found at %s", game.TracksPath)
		}
		return nil
	})

	checkStep("Track Folder", func() error {
		if !game.TrackExists(track) {
			return fmt.Errorf("missing at %s", game.TrackPath(track))
		}
		return nil
	})

	if !game.TrackExists(track) {
		return
	}

	svc, err := newAnalyzer(track)
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		return
	}

	analysis, err := svc.Execute(getContext())
	if err != nil {
		fmt.Println(ui.FormatError("Analysis failed: " + err.Error()))
		return
	}

	checkStep("Root Model", func() error {
		if len(analysis.Models) == 0 || analysis.Models[0].Missing {
			return fmt.Errorf("%s.3do not found in track folder", track)
		}
		return nil
	})

	checkStep("Extra Models", func() error {
		var missing []string
		for _, m := range analysis.Models[1:] {
			if m.Missing {
				missing = append(missing, m.Name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("not found: %v (the game falls back to defaults)", missing)
		}
		return nil
	})

	checkStep("Model Headers", func() error {
		count := 0
		for _, m := range analysis.Models {
			if m.Err != nil {
				if count == 0 {
					fmt.Println()
				}
				fmt.Printf("    %s: %v\n", m.Name, m.Err)
				count++
			}
		}
		if count > 0 {
			return fmt.Errorf("%d unreadable model headers", count)
		}
		return nil
	})

	checkStep("Texture Headers", func() error {
		count := 0
		for _, t := range analysis.Referenced {
			if t.Err != nil {
				if count == 0 {
					fmt.Println()
				}
				fmt.Printf("    %s: %v\n", t.Name, t.Err)
				count++
			}
		}
		if count > 0 {
			return fmt.Errorf("%d unreadable texture headers", count)
		}
		return nil
	})

	checkStep("Referenced Textures", func() error {
		if len(analysis.Missing) > 0 {
			fmt.Println()
			for _, name := range analysis.Missing {
				fmt.Printf("    %s (referenced, not on disk)\n", name)
			}
			return fmt.Errorf("%d missing textures", len(analysis.Missing))
		}
		return nil
	})

	if len(analysis.Unused) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatInfo(fmt.Sprintf("%d unused textures in the folder (not an error)", len(analysis.Unused))))
	}
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess(ui.IconSuccess), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError(ui.IconError), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
