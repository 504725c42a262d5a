package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/internal/adapters/repository"
	"github.com/icr2-tools/trackscan/pkg/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [track]",
	Short: "List the asset files of a track",
	Long: `List the .3do and .mip files present in a track folder with their sizes.

With no argument, opens a fuzzy picker over the tracks directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	track, err := resolveTrack(args)
	if err != nil {
		return err
	}
	if !game.TrackExists(track) {
		return fmt.Errorf("track directory not found: %s", game.TrackPath(track))
	}

	repo := repository.NewTrackRepository(track, game.TrackPath(track))

	models, err := repo.ListModelNames(ctx)
	if err != nil {
		return err
	}
	textures, err := repo.ListTextureNames(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatTitle(ui.IconTrack + " " + track))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "File", Width: 16},
		{Header: "Type", Width: 8},
		{Header: "Size", Width: 10, Align: "right"},
	})

	addRows := func(names []string, kind string) {
		for _, name := range names {
			size, err := repo.Stat(ctx, name)
			sizeStr := "?"
			if err == nil {
				sizeStr = formatBytes(size)
			}
			table.AddRow([]string{name, kind, sizeStr})
		}
	}
	addRows(models, "model")
	addRows(textures, "texture")

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d models, %d textures", len(models), len(textures))))

	return nil
}
