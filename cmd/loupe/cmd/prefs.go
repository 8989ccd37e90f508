package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loupedev/loupe/internal/page"
	"github.com/loupedev/loupe/internal/prefs"
	"github.com/loupedev/loupe/internal/ui"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Open the display preferences panel",
	Long: `Open the interactive display preferences panel. Every change is
applied to the page preview immediately and written back to the
preferences store.`,
	RunE: runPrefsPanel,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences record",
	RunE:  runPrefsShow,
}

var prefsApplyCmd = &cobra.Command{
	Use:   "apply <action>",
	Short: "Apply a single preferences action",
	Long: `Apply one preferences action non-interactively.

Actions:
  increase-text, decrease-text, toggle-theme, toggle-links,
  toggle-readable-font, toggle-images-hidden, reset`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: actionNames(),
	RunE:      runPrefsApply,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences and the system theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.Apply(prefs.ActionReset); err != nil {
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("Preferences reset to defaults"))
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsApplyCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

func actionNames() []string {
	actions := prefs.Actions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return names
}

func runPrefsPanel(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractiveTerminal() {
		return runPrefsShow(cmd, args)
	}

	sample := page.Sample()
	return ui.RunPanel(ui.PanelHooks{
		Dispatch: controller.Apply,
		Record:   controller.Record,
		Theme:    themes.Theme,
		Preview: func(width int) string {
			renderer.SetWidth(width)
			return renderer.Render(sample)
		},
	})
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	rec := controller.Record()

	fmt.Println(ui.Bold.Render("Display preferences"))
	printKV("Text size", fmt.Sprintf("%d", rec.FontSize))
	printKV("Theme", themes.Theme())
	printKV("Highlight links", onOff(rec.HighlightLinks))
	printKV("Readable text", onOff(rec.ReadableFont))
	printKV("Images", onOff(!rec.HideImages))
	return nil
}

func runPrefsApply(cmd *cobra.Command, args []string) error {
	action := prefs.Action(args[0])
	if !action.Valid() {
		return fmt.Errorf("unknown action %q (see 'loupe prefs apply --help')", args[0])
	}
	if err := controller.Apply(action); err != nil {
		return err
	}
	return runPrefsShow(cmd, args)
}

func printKV(key, value string) {
	fmt.Printf("  %s %s\n", ui.MutedStyle.Render(fmt.Sprintf("%-16s", key+":")), value)
}
