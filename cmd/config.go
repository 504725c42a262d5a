package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/pkg/gamedir"
	"github.com/icr2-tools/trackscan/pkg/ui"
)

var configEdit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the trackscan configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := gamedir.ConfigPath()
		if err != nil {
			return err
		}

		if configEdit {
			// Write current values first so there is something to edit
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := appConfig.Save(path); err != nil {
					return err
				}
			}

			fmt.Println(ui.FormatInfo("Opening config: " + path))

			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = "vi"
			}

			c := exec.Command(editor, path)
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			return c.Run()
		}

		fmt.Println(ui.RenderKeyValue("Config File", path))
		fmt.Println(ui.RenderKeyValue("Tracks Dir", game.TracksPath))
		fmt.Println(ui.RenderKeyValue("Extra Models", strings.Join(appConfig.ExtraModels, ", ")))
		fmt.Println(ui.RenderKeyValue("Report Suffix", appConfig.ReportSuffix))
		fmt.Println(ui.RenderKeyValue("Color Theme", appConfig.ColorTheme))
		fmt.Println(ui.RenderKeyValue("Watch Debounce", fmt.Sprintf("%d ms", appConfig.WatchDebounceMS)))
		fmt.Println(ui.RenderKeyValue("Chart Max Bars", fmt.Sprintf("%d", appConfig.ChartMaxBars)))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVarP(&configEdit, "edit", "e", false, "Open the config file in $EDITOR")
}
