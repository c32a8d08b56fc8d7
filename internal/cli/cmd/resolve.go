package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/document"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the theme decision for the CLI context",
	Long: `Resolve the theme once and print the decision with its inputs.

The root starts from --root (space separated classes) and receives the
marker exactly as a page would.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("json", false, "print the result as JSON")
	resolveCmd.Flags().String("root", "", "initial root classes")
	rootCmd.AddCommand(resolveCmd)
}

// resolveOutput is the JSON form of "resolve".
type resolveOutput struct {
	Decision entity.ThemeDecision `json:"decision"`
	Stored   *string              `json:"stored"`
	System   struct {
		PrefersDark bool   `json:"prefers_dark"`
		Source      string `json:"source"`
	} `json:"system"`
	Root string `json:"root"`
}

func runResolve(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	rootClasses, _ := cmd.Flags().GetString("root")
	root := document.NewMemoryRoot(strings.Fields(rootClasses)...)

	stored, err := app.ManagePreferenceUC.Get(ctx)
	if err != nil {
		return err
	}
	decision := app.ApplyThemeUC.Execute(ctx, root)
	system := app.Resolver.Resolve(ctx)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		var out resolveOutput
		out.Decision = decision
		if stored.Present {
			out.Stored = &stored.Value
		}
		out.System.PrefersDark = system.PrefersDark
		out.System.Source = system.Source
		out.Root = root.String()
		return printJSON(out)
	}

	fmt.Println(styles.NewThemeRenderer(app.Theme).RenderResolve(styles.ResolveView{
		Decision:     decision,
		Stored:       stored,
		SystemDark:   system.PrefersDark,
		SystemSource: system.Source,
		Root:         root.String(),
	}))
	return nil
}
