// Package logflags manages sigview's log-related flags and provides a
// logger for each of the parser's internal stages.
package logflags

import (
	"errors"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

var header = false
var decompress = false
var tree = false
var module = false
var cli = false

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// Header returns true if header decoding should log.
func Header() bool {
	return header
}

// HeaderLogger returns a logger for the header decoder.
func HeaderLogger() *logrus.Entry {
	return makeLogger(header, logrus.Fields{"layer": "header"})
}

// Decompress returns true if the decompression gate should log.
func Decompress() bool {
	return decompress
}

// DecompressLogger returns a logger for the decompression gate.
func DecompressLogger() *logrus.Entry {
	return makeLogger(decompress, logrus.Fields{"layer": "decompress"})
}

// Tree returns true if the pattern-tree walker should log.
func Tree() bool {
	return tree
}

// TreeLogger returns a logger for the pattern-tree walker.
func TreeLogger() *logrus.Entry {
	return makeLogger(tree, logrus.Fields{"layer": "tree"})
}

// Module returns true if the leaf/module decoder should log.
func Module() bool {
	return module
}

// ModuleLogger returns a logger for the leaf/module decoder.
func ModuleLogger() *logrus.Entry {
	return makeLogger(module, logrus.Fields{"layer": "module"})
}

// CLI returns true if the sigview command layer should log.
func CLI() bool {
	return cli
}

// CLILogger returns a logger for the sigview command layer.
func CLILogger() *logrus.Entry {
	return makeLogger(cli, logrus.Fields{"layer": "cli"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the package's log flags based on the contents of logstr, and
// points the standard logger at w (used by any code still using "log"
// directly rather than a layer-specific logrus.Entry).
func Setup(logFlag bool, logstr string, w io.Writer) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	log.SetOutput(w)
	if logstr == "" {
		logstr = "cli"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "header":
			header = true
		case "decompress":
			decompress = true
		case "tree":
			tree = true
		case "module":
			module = true
		case "cli":
			cli = true
		}
	}
	return nil
}
