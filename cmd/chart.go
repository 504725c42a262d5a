package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/pkg/ui"
)

var chartOutput string

var chartCmd = &cobra.Command{
	Use:   "chart <track>",
	Short: "Render an HTML chart of texture sizes",
	Long: `Generate an interactive HTML bar chart of a track's referenced
texture sizes, largest first. Handy for spotting which textures dominate
the track's memory footprint.`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "Chart file path (default <track>_textures.html)")
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	track := args[0]

	svc, err := newAnalyzer(track)
	if err != nil {
		return err
	}

	analysis, err := svc.Execute(ctx)
	if err != nil {
		return err
	}

	if len(analysis.Referenced) == 0 {
		fmt.Println(ui.FormatWarning("No referenced textures to chart for " + track))
		return nil
	}

	textures := make([]struct {
		name string
		size int64
	}, 0, len(analysis.Referenced))
	for _, t := range analysis.Referenced {
		textures = append(textures, struct {
			name string
			size int64
		}{t.Name, t.Size})
	}
	sort.Slice(textures, func(i, j int) bool {
		return textures[i].size > textures[j].size
	})
	if len(textures) > appConfig.ChartMaxBars {
		textures = textures[:appConfig.ChartMaxBars]
	}

	var names []string
	var sizes []opts.BarData
	for _, t := range textures {
		names = append(names, t.name)
		sizes = append(sizes, opts.BarData{Value: t.size})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    track + " referenced texture sizes",
			Subtitle: fmt.Sprintf("%d textures, %s total", len(analysis.Referenced), formatBytes(analysis.TextureSizeTotal())),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "trackscan: " + track,
		}),
	)
	bar.SetXAxis(names).AddSeries("bytes", sizes)

	outPath := chartOutput
	if outPath == "" {
		outPath = track + "_textures.html"
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Chart written to " + outPath))
	return nil
}
