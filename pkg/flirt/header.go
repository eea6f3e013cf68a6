package flirt

import (
	"fmt"

	"github.com/blend-tea/SigViewer/pkg/logflags"
)

const magic = "IDASGN"

// isFlirt reports whether data starts with the FLIRT magic and a
// supported version byte, and returns the version either way it's
// present so callers can build a version-specific error message.
func isFlirt(data []byte) (ok bool, version uint8) {
	if len(data) < 7 {
		return false, 0
	}
	if string(data[:6]) != magic {
		return false, 0
	}
	v := data[6]
	return v >= 5 && v <= 10, v
}

// decodeHeader reads the fixed v5 header, its version-conditional
// extensions, and the trailing library name (spec section 4.2 / 6). All
// multi-byte integers up to and including ctypesCrc16 are little-endian;
// patternSize and unknownV10 are big-endian, matching the file format's
// mixed endianness (spec design note).
func decodeHeader(c *cursor) (Header, string, string) {
	var h Header
	h.Version = c.version

	if c.remaining() < 30 {
		return h, "", "Truncated v5 header"
	}

	h.Arch = c.byte()
	h.FileTypes = readLE32(c)
	h.OSTypes = readLE16(c)
	h.AppTypes = readLE16(c)
	h.Features = readLE16(c)
	h.OldNFunctions = readLE16(c)
	h.CRC16 = readLE16(c)
	copy(h.CType[:], c.bytes(12))
	h.LibraryNameLen = c.byte()
	h.CTypesCRC16 = readLE16(c)
	if c.bad() {
		return h, "", "Truncated v5 header"
	}

	if h.Version >= 6 {
		if c.remaining() < 4 {
			return h, "", "Truncated v6/v7 header"
		}
		h.NFunctions = readLE32(c)
		if h.Version >= 8 {
			if c.remaining() < 2 {
				return h, "", "Truncated v8/v9 header"
			}
			h.PatternSize = c.u16be()
			if h.Version == 10 {
				if c.remaining() < 2 {
					return h, "", "Truncated v10 header"
				}
				h.UnknownV10 = c.u16be()
			}
		}
	}

	if c.remaining() < int(h.LibraryNameLen) {
		return h, "", "Truncated library name"
	}
	libraryName := string(c.bytes(int(h.LibraryNameLen)))

	if logflags.Header() {
		logflags.HeaderLogger().Debugf("version=%d arch=%d features=%#x library=%q", h.Version, h.Arch, h.Features, libraryName)
	}

	return h, libraryName, ""
}

// readLE16 and readLE32 read little-endian integers directly out of the
// underlying buffer. They're used only for the header's early fields,
// which are little-endian while the rest of the format is big-endian or
// variable-length (spec design note: "endianness is mixed").
func readLE16(c *cursor) uint16 {
	lo := c.byte()
	hi := c.byte()
	return uint16(lo) | uint16(hi)<<8
}

func readLE32(c *cursor) uint32 {
	lo := readLE16(c)
	hi := readLE16(c)
	return uint32(lo) | uint32(hi)<<16
}

func unsupportedVersionError(version uint8) string {
	return fmt.Sprintf("Unsupported FLIRT version %d", version)
}
