package flirt

import (
	"bytes"
	"compress/gzip"
	"testing"
)

// gzipBytes wraps payload in a gzip container using the standard library's
// own writer, so gzip-entry-point tests exercise DecompressGzip against
// real gzip framing rather than a hand-built approximation of it.
func gzipBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("gzip.Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip.Close: %v", err)
	}
	return buf.Bytes()
}

// v5Header builds a minimal, valid .sig header (magic + version + fixed
// 30-byte v5 tail + the zeroed fields the given version adds + the given
// library name) so tests can focus on the body bytes that follow it.
func v5Header(version byte, features uint16, libraryName string) []byte {
	h := []byte{}
	h = append(h, magic...)
	h = append(h, version)
	h = append(h, 0)                        // arch
	h = append(h, 0, 0, 0, 0)                // file types (LE)
	h = append(h, 0, 0)                      // os types (LE)
	h = append(h, 0, 0)                      // app types (LE)
	h = append(h, byte(features), byte(features>>8)) // features (LE)
	h = append(h, 0, 0)                      // old n functions (LE)
	h = append(h, 0, 0)                      // crc16 (LE)
	h = append(h, make([]byte, 12)...)       // ctype
	h = append(h, byte(len(libraryName)))    // library name len
	h = append(h, 0, 0)                      // ctypes crc16 (LE)

	if version >= 6 {
		h = append(h, 0, 0, 0, 0) // n functions (LE)
		if version >= 8 {
			h = append(h, 0, 0) // pattern size (BE)
			if version == 10 {
				h = append(h, 0, 0) // unknown v10 (BE)
			}
		}
	}

	h = append(h, libraryName...)
	return h
}

// leafOneModuleOneFunction builds an empty-tree leaf (scenario A in spec
// section 8): treeNodes=0, one CRC block, one module, one function named
// "foo" at offset 8, no tail bytes or referenced functions.
func leafOneModuleOneFunction() []byte {
	return []byte{
		0x00,       // treeNodes = 0 -> leaf
		0x04,       // crcLength
		0x12, 0x34, // crc16
		0x05,                   // module length (max2, v5/v8-)
		0x08,                   // function offset delta
		'f', 'o', 'o', 0x00, // name + flags=0x00
	}
}
