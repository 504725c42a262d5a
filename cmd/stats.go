package cmd

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/internal/core/domain"
	"github.com/icr2-tools/trackscan/pkg/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats [track]",
	Short: "Show track asset statistics",
	Long: `Analyze a track and display statistics in the terminal.

Includes:
  - Model and texture counts and total sizes
  - Unused and missing texture counts
  - Largest referenced textures`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	track, err := resolveTrack(args)
	if err != nil {
		return err
	}

	svc, err := newAnalyzer(track)
	if err != nil {
		return err
	}

	analysis, err := svc.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle(ui.IconTrack + " " + track + " Asset Statistics"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Models:"), len(analysis.Models))
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Model Size:"), formatBytes(analysis.ModelSizeTotal()))
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Referenced Textures:"), len(analysis.Referenced)+len(analysis.Missing))
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Texture Size:"), formatBytes(analysis.TextureSizeTotal()))
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Unused Textures:"), len(analysis.Unused))
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Missing Textures:"), len(analysis.Missing))
	w.Flush()

	fmt.Println()
	renderLargestTextures(analysis.Referenced)

	if len(analysis.Missing) > 0 {
		fmt.Println(ui.FormatWarning("Missing: " + strings.Join(analysis.Missing, ", ")))
	}

	return nil
}

// renderLargestTextures displays a horizontal bar chart of the biggest
// referenced textures
func renderLargestTextures(textures []domain.Texture) {
	if len(textures) == 0 {
		return
	}

	fmt.Println(ui.StyleHeader.Render("Largest Referenced Textures"))

	sorted := make([]domain.Texture, len(textures))
	copy(sorted, textures)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})

	limit := 5
	if len(sorted) < limit {
		limit = len(sorted)
	}

	maxSize := sorted[0].Size
	if maxSize == 0 {
		return
	}
	barWidth := 20

	for i := 0; i < limit; i++ {
		t := sorted[i]
		length := int(math.Ceil(float64(t.Size) / float64(maxSize) * float64(barWidth)))
		bar := strings.Repeat("█", length)

		fmt.Printf("%s %-14s %s\n",
			ui.StyleAccent.Render(bar),
			t.Name,
			ui.StyleMuted.Render(fmt.Sprintf("%dx%d, %s", t.Width, t.Height, formatBytes(t.Size))),
		)
	}
	fmt.Println()
}
