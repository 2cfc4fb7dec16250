// Command intake-cli generates, renders, and interactively fills legal
// intake forms built from the embedded category taxonomy.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caseflow/go-intake/pkg/builder"
	"github.com/caseflow/go-intake/pkg/render"
	"github.com/caseflow/go-intake/pkg/renderers/html"
	"github.com/caseflow/go-intake/pkg/renderers/jsonout"
	"github.com/caseflow/go-intake/pkg/renderers/tui"
	"github.com/caseflow/go-intake/pkg/submission"
	"github.com/caseflow/go-intake/pkg/taxonomy"
)

var (
	verbose    bool
	outputPath string
	format     string
	indent     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intake-cli",
	Short: "Generate structured legal intake forms",
	Long: `intake-cli builds intake forms for a closed legal taxonomy of 13
practice areas. Forms can be rendered to JSON or HTML, or filled in
interactively at the terminal with per-field validation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "List legal categories, or the subcategories of one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategories,
}

var generateCmd = &cobra.Command{
	Use:   "generate <category> <subcategory>",
	Short: "Generate an intake form and render it",
	Long: `Generates the intake form for a category/subcategory pair and
renders it with the selected renderer.

Example:
  intake-cli generate "Family Law" "Divorce" --format html --output form.html`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

var fillCmd = &cobra.Command{
	Use:   "fill <category> <subcategory>",
	Short: "Fill an intake form interactively",
	Long: `Walks the generated form section by section, prompting for each
field and validating answers as they are entered. The validated answer
set is printed as JSON on completion.`,
	Args: cobra.ExactArgs(2),
	RunE: runFill,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <description...>",
	Short: "Suggest a legal category for a case description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, html)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to a file instead of stdout")
	generateCmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(suggestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCategories(cmd *cobra.Command, args []string) error {
	tax := taxonomy.Default()

	if len(args) == 1 {
		subs := tax.Subcategories(args[0])
		if subs == nil {
			return fmt.Errorf("unknown category %q", args[0])
		}
		for _, sub := range subs {
			fmt.Println(sub)
		}
		return nil
	}

	for _, category := range tax.Categories() {
		fmt.Println(category)
	}
	return nil
}

// newRegistry wires the renderers the CLI can address by --format.
func newRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	registry.MustRegister(htmlRenderer)

	var jsonOptions []jsonout.Option
	if indent {
		jsonOptions = append(jsonOptions, jsonout.WithIndent())
	}
	registry.MustRegister(jsonout.New(jsonOptions...))

	return registry, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	category, subcategory := args[0], args[1]
	logger.Debug("generating form",
		zap.String("category", category),
		zap.String("subcategory", subcategory))

	form, err := builder.New().Build(category, subcategory)
	if err != nil {
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	renderer, err := registry.Get(format)
	if err != nil {
		return fmt.Errorf("unknown format %q (have: %s)", format, strings.Join(registry.List(), ", "))
	}

	payload, err := renderer.Render(cmd.Context(), form)
	if err != nil {
		return fmt.Errorf("render form: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("form written",
			zap.String("path", outputPath),
			zap.String("format", renderer.Name()))
		return nil
	}

	_, err = os.Stdout.Write(append(payload, '\n'))
	return err
}

func runFill(cmd *cobra.Command, args []string) error {
	form, err := builder.New().Build(args[0], args[1])
	if err != nil {
		return err
	}

	session := tui.NewSession()
	answers, err := session.Fill(cmd.Context(), form)
	if err != nil {
		return err
	}

	result := submission.Validate(form, answers)
	if !result.IsValid {
		for field, message := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
		}
		return fmt.Errorf("submission has %d invalid field(s)", len(result.Errors))
	}

	payload, err := json.MarshalIndent(result.Validated, "", "  ")
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	suggestion, ok := taxonomy.Default().Suggest(text)
	if !ok {
		fmt.Println("No category matched the description.")
		return nil
	}

	fmt.Printf("%s (confidence: %s, matched keywords: %d)\n",
		suggestion.Category, suggestion.Confidence, suggestion.Matches)
	for _, sub := range taxonomy.Default().Subcategories(suggestion.Category) {
		fmt.Printf("  - %s\n", sub)
	}
	return nil
}
