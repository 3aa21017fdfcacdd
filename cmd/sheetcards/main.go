// Package main provides the CLI entry point for sheetcards.
//
// Usage:
//
//	sheetcards <input.xlsx> [output.html]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetcards-go/internal/config"
	"github.com/ukaji3/sheetcards-go/pkg/sheetcards"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errUsage signals that usage has been printed because no input was given.
var errUsage = errors.New("no input file")

type flags struct {
	title      string
	encoding   string
	delimiter  string
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var notFound *sheetcards.FileNotFoundError
	switch {
	case errors.Is(err, errUsage):
	case errors.As(err, &notFound):
		fmt.Fprintf(stderr, "Файл %s не найден.\n", notFound.Path)
	default:
		fmt.Fprintf(stderr, "Ошибка: %v\n", err)
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "sheetcards <путь_к_таблице> [путь_к_html]",
		Short: "Convert the first sheet of a spreadsheet into an HTML page of cards",
		Long: `sheetcards reads the first sheet of an xlsx, xls or csv file and writes
a self-contained HTML page that shows every row as a card.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd)
				return errUsage
			}
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return convert(cmd, &f, args[0], output)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&f.title, "title", "", "Page title (default \"Данные из таблицы\")")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Encoding of csv input and charset of xls input (default utf-8)")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV field delimiter (default \",\", tab for .tsv)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Configuration file (default .sheetcards.yaml or $XDG_CONFIG_HOME/sheetcards/config.yaml)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func printUsage(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Использование: sheetcards <путь_к_таблице> [путь_к_html]")
	fmt.Fprintln(out, "Если путь к html не указан, файл создается рядом с исходной таблицей.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Флаги:")
	fmt.Fprint(out, cmd.LocalFlags().FlagUsages())
}

func convert(cmd *cobra.Command, f *flags, input, output string) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	opts, err := resolveOptions(cmd, f)
	if err != nil {
		return err
	}
	logger.Debug("converting", "input", input, "output", output, "title", opts.Title, "encoding", opts.Encoding)

	res, err := sheetcards.Convert(input, output, opts)
	if err != nil {
		return err
	}
	logger.Debug("document written", "sheet", res.SheetName, "blocks", res.Blocks, "path", res.OutputPath)

	fmt.Fprintf(cmd.OutOrStdout(), "Создан файл %s. Количество блоков: %d\n", res.OutputPath, res.Blocks)
	return nil
}

// resolveOptions merges defaults, the configuration file and flags, in
// increasing order of precedence.
func resolveOptions(cmd *cobra.Command, f *flags) (sheetcards.Options, error) {
	opts := sheetcards.DefaultOptions()

	cf, err := config.Resolve(f.configPath)
	if err != nil {
		return opts, err
	}
	if cf.Title != "" {
		opts.Title = cf.Title
	}
	if cf.Encoding != "" {
		opts.Encoding = cf.Encoding
	}
	if d := cf.DelimiterRune(); d != 0 {
		opts.Delimiter = d
	}

	if cmd.Flags().Changed("title") {
		opts.Title = f.title
	}
	if cmd.Flags().Changed("encoding") {
		opts.Encoding = f.encoding
	}
	if cmd.Flags().Changed("delimiter") {
		d, err := parseDelimiter(f.delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}

	return opts, nil
}

// parseDelimiter accepts a single character or the escape \t.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, config.ErrInvalidDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
