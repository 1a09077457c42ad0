package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gerax5/semcore/internal/config"
	"github.com/gerax5/semcore/internal/diagnostics"
	"github.com/gerax5/semcore/internal/ir"
	"github.com/gerax5/semcore/internal/lexer"
	"github.com/gerax5/semcore/internal/parser"
	"github.com/gerax5/semcore/internal/semantic"
)

var (
	jsonOutput bool
	configPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run the scope builder, type checker, and IR emitter over a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as JSON instead of text")
	analyzeCmd.Flags().StringVar(&configPath, "config", ".semcorerc", "path to the optional policy config file")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	runID := uuid.New()
	if verbose {
		fmt.Fprintf(os.Stderr, "run %s: analyzing %s\n", runID, path)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lex := lexer.New(path, string(src))
	p := parser.New(lex)
	file := p.ParseFile(path)

	sink := diagnostics.NewSink()
	for _, perr := range p.Errors {
		sink.Error(lexer.Position{Filename: path}, "%s", perr.Error())
	}

	sb := semantic.NewScopeBuilder(sink)
	sb.Build(file)

	checker := semantic.NewChecker(sb, sink, cfg)
	checker.Check(file)

	diagsList := sink.Sorted()

	if jsonOutput {
		out, err := diagnostics.RenderJSON(diagsList)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Print(diagnostics.RenderWithSource(diagsList, string(src)))
	}

	if sink.HasErrors() {
		os.Exit(1)
	}

	emitter := ir.NewEmitter(sb, checker)
	program := emitter.Emit(file)
	if verbose {
		fmt.Print(program.String())
	}

	return nil
}
