package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/infrastructure/tailwind"
)

var tailwindCmd = &cobra.Command{
	Use:   "tailwind",
	Short: "Render and check the Tailwind build profiles",
	Long: `The [tailwind] config section holds named build profiles. tailwind.active
names the authoritative one; the others are kept so diverging duplicates
can be reported.`,
}

var tailwindRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a profile to tailwind.config.js",
	Args:  cobra.NoArgs,
	RunE:  runTailwindRender,
}

var tailwindCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report profiles diverging from the active one",
	Long: `Compare every profile with the active one (dark mode strategy, content
globs, sans font stack, plugins) and count the files each content glob of
the active profile matches under --dir. Exits non-zero on divergence.`,
	Args: cobra.NoArgs,
	RunE: runTailwindCheck,
}

func init() {
	tailwindRenderCmd.Flags().StringP("profile", "p", "", "profile to render (default tailwind.active)")
	tailwindRenderCmd.Flags().BoolP("write", "w", false, "write to tailwind.output instead of stdout")
	tailwindCheckCmd.Flags().String("dir", ".", "project directory the content globs are relative to")
	tailwindCmd.AddCommand(tailwindRenderCmd, tailwindCheckCmd)
	rootCmd.AddCommand(tailwindCmd)
}

func runTailwindRender(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	tw := app.Config.Tailwind

	name, _ := cmd.Flags().GetString("profile")
	if name == "" {
		name = tw.Active
	}
	profile, err := tailwind.Select(tw.BuildProfiles(), name)
	if err != nil {
		return err
	}
	out, err := tailwind.RenderString(profile)
	if err != nil {
		return err
	}

	if write, _ := cmd.Flags().GetBool("write"); write {
		if dir := filepath.Dir(tw.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(tw.Output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", tw.Output, err)
		}
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderCreated("Rendered profile "+name+" to", tw.Output))
		return nil
	}

	if isTerminal(os.Stdout) {
		out = app.Theme.HighlightCode(out, "javascript")
	}
	fmt.Print(out)
	return nil
}

func runTailwindCheck(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	tw := app.Config.Tailwind

	result, err := app.CheckBuildConfigUC.Execute(ctx, usecase.CheckBuildConfigInput{
		Active:   tw.Active,
		Profiles: tw.BuildProfiles(),
	})
	if err != nil {
		return err
	}

	renderer := styles.NewTailwindRenderer(app.Theme)
	fmt.Print(renderer.RenderCheck(result))

	dir, _ := cmd.Flags().GetString("dir")
	scan, err := tailwind.ScanContent(os.DirFS(dir), result.Active)
	if err != nil {
		return err
	}
	fmt.Print(renderer.RenderScan(scan))

	if result.HasConflicts() {
		return fmt.Errorf("%d build profile divergence(s)", len(result.Divergences))
	}
	return nil
}
