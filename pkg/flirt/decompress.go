package flirt

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/blend-tea/SigViewer/pkg/logflags"
)

// maybeDecompressBody replaces c's remaining bytes with the inflated body
// when the header marks it compressed (spec section 4.3), resetting the
// cursor to the start of the new buffer without re-reading the header.
// Version 5 and 6 bodies are raw DEFLATE; version 7 and later are
// zlib-wrapped.
func maybeDecompressBody(c *cursor, h Header) (ok bool, errMsg string) {
	if h.Features&FeatureCompressed == 0 {
		return true, ""
	}

	compressed := c.body[c.pos:]
	var r io.ReadCloser
	var err error
	if h.Version == 5 || h.Version == 6 {
		r = flate.NewReader(bytes.NewReader(compressed))
	} else {
		r, err = zlib.NewReader(bytes.NewReader(compressed))
	}
	if err != nil {
		return false, "FLIRT decompression failed"
	}

	inflated, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return false, "FLIRT decompression failed"
	}

	if logflags.Decompress() {
		logflags.DecompressLogger().Debugf("inflated %d compressed bytes to %d", len(compressed), len(inflated))
	}

	c.body = inflated
	c.pos = 0
	c.eof = false
	c.err = false
	return true, ""
}

// DecompressGzip strips a gzip frame (the .sig.gz container format, spec
// section 6) and returns the decompressed payload. It returns nil on any
// error, including a missing gzip magic, rather than an error value, to
// match the format's "empty on error" contract for this entry point.
func DecompressGzip(data []byte) []byte {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return out
}
