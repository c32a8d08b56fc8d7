package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/infrastructure/document"
)

var applyCmd = &cobra.Command{
	Use:   "apply <file.html|->",
	Short: "Apply the theme marker to an HTML document",
	Long: `Resolve the theme and set the "dark" class on the document's <html>
element. Only the class attribute is touched; every other byte is kept.

The result goes to stdout unless --output or --write is given.

Examples:
  themeroot apply index.html > themed.html
  themeroot apply --write index.html
  cat index.html | themeroot apply -`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("output", "o", "", "write the result to this file")
	applyCmd.Flags().BoolP("write", "w", false, "rewrite the input file in place")
	applyCmd.MarkFlagsMutuallyExclusive("output", "write")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("write")
	if inPlace {
		if input == "-" {
			return fmt.Errorf("--write needs a file, not stdin")
		}
		output = input
	}

	src, err := readInput(input)
	if err != nil {
		return err
	}
	doc, err := document.ParseBytes(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	decision := app.ApplyThemeUC.Execute(ctx, doc)

	if output == "" {
		_, err := doc.WriteTo(os.Stdout)
		return err
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(output); statErr == nil {
		mode = info.Mode().Perm()
	}
	if !doc.Changed() && inPlace {
		fmt.Fprintln(os.Stderr, styles.NewThemeRenderer(app.Theme).RenderApplied(output, decision, false))
		return nil
	}
	if err := os.WriteFile(output, doc.Bytes(), mode); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintln(os.Stderr, styles.NewThemeRenderer(app.Theme).RenderApplied(output, decision, doc.Changed()))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, os.Stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf.Bytes(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
