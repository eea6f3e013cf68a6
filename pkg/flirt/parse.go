package flirt

import "github.com/blend-tea/SigViewer/pkg/logflags"

// IsFlirt reports whether data looks like a FLIRT .sig file: the magic
// "IDASGN" followed by a version byte in 5..10. The version is returned
// regardless of whether it was in range, so callers can report it in an
// error message.
func IsFlirt(data []byte) (ok bool, version uint8) {
	return isFlirt(data)
}

// Parse decodes a complete .sig file body into a ParseResult. Parsing is
// fail-fast (spec section 4.7): the first decode failure sets
// ErrorMessage and returns immediately with Success false and no
// partial modules.
func Parse(data []byte) ParseResult {
	var result ParseResult

	ok, version := isFlirt(data)
	if !ok {
		result.ErrorMessage = "Not a valid FLIRT .sig file"
		if len(data) >= 7 && string(data[:6]) == magic && (version < 5 || version > 10) {
			result.ErrorMessage = unsupportedVersionError(version)
		}
		return result
	}

	c := newCursor(data[7:], version)

	header, libraryName, errMsg := decodeHeader(c)
	if errMsg != "" {
		result.ErrorMessage = errMsg
		return result
	}
	header.Version = version
	result.Header = header
	result.LibraryName = libraryName

	if decOK, errMsg := maybeDecompressBody(c, header); !decOK {
		result.ErrorMessage = errMsg
		return result
	}

	var modules []Module
	treeOK, errMsg := walkTree(c, nil, &modules)
	if !treeOK {
		if errMsg == "" {
			errMsg = "Parse error in signature tree"
		}
		result.ErrorMessage = errMsg
		return result
	}

	if logflags.Tree() {
		logflags.TreeLogger().Debugf("parsed %d module(s) from %q", len(modules), libraryName)
	}

	result.Modules = modules
	result.Success = true
	return result
}
