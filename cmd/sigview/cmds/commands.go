// Package cmds builds sigview's command tree.
package cmds

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blend-tea/SigViewer/pkg/logflags"
	"github.com/blend-tea/SigViewer/pkg/sigconfig"
	"github.com/blend-tea/SigViewer/pkg/version"
)

var (
	// log is whether to enable debug logging.
	log bool
	// logOutput is a comma separated list of layers that should log (see
	// the --log-output flag's help text).
	logOutput string

	// asJSON selects JSON output for 'parse' and 'list-functions'.
	asJSON bool
	// verbose turns on per-module rule summaries in 'parse'.
	verbose bool
	// nameFilter restricts 'list-functions' to names containing this substring.
	nameFilter string

	conf *sigconfig.Config
)

const sigviewLongDesc = `sigview parses IDA FLIRT (.sig / .sig.gz) library-signature files.

A FLIRT file encodes a library-recognition database as a tree of byte
patterns whose leaves carry modules: named public functions plus the
auxiliary rules (a CRC over a prefix, a module length, tail-byte and
referenced-function constraints) IDA uses to recognize statically-linked
library code in a stripped binary.

This tool only decodes that database; it does not match signatures
against a target binary.`

// New returns sigview's initialized command tree.
func New() *cobra.Command {
	conf = sigconfig.LoadConfig()
	if conf.Color != nil {
		color.NoColor = !*conf.Color
	}

	root := &cobra.Command{
		Use:           "sigview",
		Short:         "Inspect IDA FLIRT signature files.",
		Long:          sigviewLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable debug logging.")
	root.PersistentFlags().StringVarP(&logOutput, "log-output", "", "",
		"Comma separated list of layers that should log: header, decompress, tree, module, cli.")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return logflags.Setup(log, logOutput, os.Stderr)
	}

	root.AddCommand(parseCommand())
	root.AddCommand(infoCommand())
	root.AddCommand(listFunctionsCommand())
	root.AddCommand(versionCommand())

	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print sigview's version.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.SigViewerVersion.String())
			return nil
		},
	}
}

func parseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .sig/.sig.gz file and print its header and modules.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(os.Stdout, result)
			}
			printResult(os.Stdout, result, verbose)
			if !result.Success {
				return fmt.Errorf("parse failed: %s", result.ErrorMessage)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parse result as JSON.")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include per-module rule summaries.")
	return cmd
}

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print a header summary and counts for a .sig/.sig.gz file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseFile(args[0])
			if err != nil {
				return err
			}
			printInfo(os.Stdout, args[0], result)
			if !result.Success {
				return fmt.Errorf("parse failed: %s", result.ErrorMessage)
			}
			return nil
		},
	}
}

func listFunctionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-functions <file>",
		Short: "List every public function across all modules.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := parseFile(args[0])
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("parse failed: %s", result.ErrorMessage)
			}
			if asJSON {
				return printJSON(os.Stdout, result.AllFunctions())
			}
			printFunctions(os.Stdout, &result, nameFilter)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the function list as JSON.")
	cmd.Flags().StringVar(&nameFilter, "filter", "", "Only list functions whose name contains this substring.")
	return cmd
}
