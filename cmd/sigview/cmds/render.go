package cmds

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/blend-tea/SigViewer/pkg/flirt"
	"github.com/blend-tea/SigViewer/pkg/sigfmt"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printInfo(w io.Writer, path string, result flirt.ParseResult) {
	if !result.Success {
		fmt.Fprintf(w, "%s: %s\n", path, color.RedString(result.ErrorMessage))
		return
	}
	h := result.Header
	fmt.Fprintf(w, "%s: %s\n", path, color.GreenString(result.LibraryName))
	fmt.Fprintf(w, "  version:  %d\n", h.Version)
	fmt.Fprintf(w, "  arch:     %s\n", sigfmt.ArchString(h.Arch))
	fmt.Fprintf(w, "  file:     %s\n", sigfmt.FileTypesString(h.FileTypes))
	fmt.Fprintf(w, "  os:       %s\n", sigfmt.OSTypesString(h.OSTypes))
	fmt.Fprintf(w, "  app:      %s\n", sigfmt.AppTypesString(h.AppTypes))
	fmt.Fprintf(w, "  features: %s\n", sigfmt.FeaturesString(h.Features))
	fmt.Fprintf(w, "  modules:  %s\n", humanize.Comma(int64(len(result.Modules))))
	fmt.Fprintf(w, "  functions: %s\n", humanize.Comma(int64(len(result.AllFunctions()))))
}

func printResult(w io.Writer, result flirt.ParseResult, verbose bool) {
	if !result.Success {
		fmt.Fprintln(w, color.RedString(result.ErrorMessage))
		return
	}
	for i := range result.Modules {
		mod := &result.Modules[i]
		fmt.Fprintf(w, "%s\n", color.CyanString(mod.PatternPathHex()))
		for j, fn := range mod.PublicFunctions {
			if conf != nil && conf.MaxFunctionsListed > 0 && j == conf.MaxFunctionsListed {
				fmt.Fprintf(w, "  ... %d more\n", len(mod.PublicFunctions)-j)
				break
			}
			printFunction(w, fn)
		}
		if verbose {
			fmt.Fprintln(w, mod.RulesSummary())
		}
		fmt.Fprintln(w)
	}
}

func printFunction(w io.Writer, fn flirt.Function) {
	attrs := []string{}
	if fn.IsLocal {
		attrs = append(attrs, "local")
	}
	if fn.IsCollision {
		attrs = append(attrs, "collision")
	}
	suffix := ""
	if len(attrs) > 0 {
		suffix = " [" + strings.Join(attrs, ",") + "]"
	}
	fmt.Fprintf(w, "  %08x  %s%s\n", fn.Offset, color.YellowString(fn.Name), suffix)
}

func printFunctions(w io.Writer, result *flirt.ParseResult, filter string) {
	for _, e := range result.AllFunctions() {
		if filter != "" && !strings.Contains(e.Function.Name, filter) {
			continue
		}
		fmt.Fprintf(w, "%4d  %08x  %s\n", e.ModuleIndex, e.Function.Offset, color.YellowString(e.Function.Name))
	}
}
