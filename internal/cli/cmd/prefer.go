package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/cli/model"
	"github.com/bnema/themeroot/internal/cli/styles"
)

var preferCmd = &cobra.Command{
	Use:   "prefer [dark|light|system]",
	Short: "Set or show the stored theme preference",
	Long: `Store "dark" or "light" for the CLI context, or "system" to remove the
stored value so the OS appearance decides again.

Without an argument an interactive picker opens when attached to a
terminal; otherwise the current mode is printed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "system"},
	RunE:      runPrefer,
}

func init() {
	rootCmd.AddCommand(preferCmd)
}

func runPrefer(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewThemeRenderer(app.Theme)

	if len(args) == 1 {
		mode, err := app.ManagePreferenceUC.SetString(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(renderer.RenderPreferenceSaved(mode, app.Store.ContextID()))
		return nil
	}

	current, err := app.ManagePreferenceUC.Mode(ctx)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Println(current)
		return nil
	}

	final, err := tea.NewProgram(model.NewPickerModel(ctx, app.Theme, app.ManagePreferenceUC, current)).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	picker, ok := final.(model.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected picker model %T", final)
	}
	if err := picker.Err(); err != nil {
		return err
	}
	if mode, saved := picker.Chosen(); saved {
		fmt.Println(renderer.RenderPreferenceSaved(mode, app.Store.ContextID()))
	}
	return nil
}
