package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the themeroot configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List configuration keys with defaults and allowed values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigKeys,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite without asking")
	configShowCmd.Flags().Bool("path", false, "print only the config file path")
	configSchemaCmd.Flags().BoolP("write", "w", false, "write config.schema.json next to the config file")
	configKeysCmd.Flags().Bool("json", false, "print the keys as JSON")
	configCmd.AddCommand(configInitCmd, configShowCmd, configSchemaCmd, configKeysCmd, configEditCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	mgr := app.ConfigManager
	renderer := styles.NewConfigRenderer(app.Theme)
	path := mgr.GetConfigFile()

	force, _ := cmd.Flags().GetBool("force")
	if mgr.FileExists() && !force {
		if !isTerminal(os.Stdin) {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		}
		final, err := tea.NewProgram(styles.NewConfirm(app.Theme, "Overwrite "+path+"?")).Run()
		if err != nil {
			return fmt.Errorf("run confirm: %w", err)
		}
		if confirm, ok := final.(styles.ConfirmModel); !ok || !confirm.Result() {
			fmt.Println(renderer.RenderSkipped(path))
			return nil
		}
	}

	if err := mgr.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Println(renderer.RenderCreated("Wrote", path))

	schemaPath, err := config.WriteSchemaFile(filepath.Dir(path))
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderCreated("Wrote", schemaPath))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	mgr := app.ConfigManager

	if onlyPath, _ := cmd.Flags().GetBool("path"); onlyPath {
		fmt.Println(mgr.GetConfigFile())
		return nil
	}

	data, err := config.EncodeOrdered(app.Config)
	if err != nil {
		return err
	}
	out := string(data)
	if isTerminal(os.Stdout) {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigInfo(mgr.GetConfigFile(), mgr.FileExists()))
		fmt.Println()
		out = app.Theme.HighlightCode(out, "toml")
	}
	fmt.Print(out)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if write, _ := cmd.Flags().GetBool("write"); write {
		path, err := config.WriteSchemaFile(filepath.Dir(app.ConfigManager.GetConfigFile()))
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderCreated("Wrote", path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	out := string(data) + "\n"
	if isTerminal(os.Stdout) {
		out = app.Theme.HighlightCode(out, "json")
	}
	fmt.Print(out)
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.GetConfigSchemaInput{}
	if len(args) == 1 {
		input.Section = args[0]
	}
	out, err := app.GetConfigSchemaUC.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out.Keys)
	}
	fmt.Print(styles.NewConfigRenderer(app.Theme).RenderKeys(out.Keys))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	path := app.ConfigManager.GetConfigFile()

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
