package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/infrastructure/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Inspect the inline theme script",
}

var scriptPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the inline head script",
	Long:  `Print the script pages embed in <head> so the marker is set before first paint.`,
	Args:  cobra.NoArgs,
	RunE:  runScriptPrint,
}

var scriptVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the inline script against the Go resolver",
	Long: `Run the inline script in an embedded JavaScript engine for every
combination of stored value, system signal and initial root classes, and
compare each result with the Go resolver.`,
	Args: cobra.NoArgs,
	RunE: runScriptVerify,
}

func init() {
	scriptPrintCmd.Flags().Bool("no-color", false, "disable syntax highlighting")
	scriptCmd.AddCommand(scriptPrintCmd, scriptVerifyCmd)
	rootCmd.AddCommand(scriptCmd)
}

func runScriptPrint(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	rt, err := script.New()
	if err != nil {
		return err
	}

	src := rt.Source()
	if noColor, _ := cmd.Flags().GetBool("no-color"); !noColor && isTerminal(os.Stdout) {
		src = app.Theme.HighlightCode(src, "javascript")
	}
	fmt.Print(src)
	return nil
}

func runScriptVerify(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	rt, err := script.New()
	if err != nil {
		return err
	}

	report := rt.Verify(app.Ctx())
	failures := report.Failures()
	t := app.Theme
	ok := lipgloss.NewStyle().Foreground(t.Success)
	bad := lipgloss.NewStyle().Foreground(t.Error)

	for _, c := range failures {
		detail := fmt.Sprintf("stored=%s system_dark=%v root=%q", c.Stored, c.SystemDark, c.Root.String())
		fmt.Printf("%s %s\n", bad.Render(styles.IconX), t.Normal.Render(detail))
		if c.Err != nil {
			fmt.Printf("    %s\n", t.ErrorStyle.Render(c.Err.Error()))
			continue
		}
		fmt.Printf("    %s %q  %s %q\n", t.Subtle.Render("go"), c.Want.String(), t.Subtle.Render("script"), c.Got.String())
	}

	if len(failures) > 0 {
		return fmt.Errorf("inline script disagrees with the resolver in %d of %d cases", len(failures), len(report.Cases))
	}
	fmt.Printf("%s %s\n", ok.Render(styles.IconCheck),
		t.Normal.Render(fmt.Sprintf("inline script agrees with the resolver in all %d cases", len(report.Cases))))
	return nil
}
