package cmds

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blend-tea/SigViewer/pkg/flirt"
	"github.com/blend-tea/SigViewer/pkg/logflags"
)

// parseFile loads path (searching conf.SearchPaths when path isn't found
// as given) and parses it, transparently unwrapping a gzip container
// (spec section 6) before handing the body to flirt.Parse.
func parseFile(path string) (flirt.ParseResult, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return flirt.ParseResult{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return flirt.ParseResult{}, fmt.Errorf("reading %s: %w", resolved, err)
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		if logflags.CLI() {
			logflags.CLILogger().Debugf("%s looks gzip-wrapped, inflating", resolved)
		}
		inflated := flirt.DecompressGzip(data)
		if inflated == nil {
			return flirt.ParseResult{}, fmt.Errorf("%s: not a valid gzip container", resolved)
		}
		data = inflated
	}

	return flirt.Parse(data), nil
}

// resolvePath returns path unchanged if it names an existing file;
// otherwise it tries path under each of conf.SearchPaths, in order.
func resolvePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if conf != nil {
		for _, dir := range conf.SearchPaths {
			candidate := filepath.Join(dir, path)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%s: no such file (and not found in configured search paths)", path)
}
