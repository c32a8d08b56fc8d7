package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/infrastructure/updater"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	versionCmd.Flags().Bool("check", false, "check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo))

	check, _ := cmd.Flags().GetBool("check")
	if !check {
		return nil
	}

	uc := usecase.NewCheckUpdateUseCase(updater.NewGitHubChecker(), app.BuildInfo)
	out, err := uc.Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	fmt.Println()
	fmt.Println(renderer.RenderUpdate(out))
	return nil
}
