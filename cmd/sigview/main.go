// Command sigview parses IDA FLIRT .sig signature files from the command
// line: dumping their header and modules, listing public functions, or
// printing a header summary with module and function counts.
package main

import (
	"fmt"
	"os"

	"github.com/blend-tea/SigViewer/cmd/sigview/cmds"
)

func main() {
	root := cmds.New()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
