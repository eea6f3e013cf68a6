// Package flirt decodes IDA FLIRT (.sig) library-signature files.
//
// A .sig file encodes a radix tree of byte patterns whose leaves carry
// modules: named public functions plus auxiliary rules (a CRC over a
// prefix, an expected module length, tail-byte constraints and
// referenced-function names) used to recognize statically-linked library
// code in a stripped binary. This package only parses the format; it does
// not match signatures against a target binary.
package flirt

import "fmt"

// PatternNode is one edge of the signature tree: a fixed-length byte
// sequence together with a parallel mask marking which positions are
// "any byte" wildcards rather than concrete values.
type PatternNode struct {
	// PatternBytes holds one entry per byte position. Positions marked
	// variant in VariantMask carry the sentinel value 0 and contribute no
	// information; only VariantMask is authoritative.
	PatternBytes []byte
	// VariantMask has the same length as PatternBytes; a true entry marks
	// the byte at that index as a wildcard.
	VariantMask []bool
}

// HexString renders the node the way IDA's own signature tools do: two
// uppercase hex digits per concrete byte, ".." for each wildcard byte.
func (n PatternNode) HexString() string {
	out := make([]byte, 0, len(n.PatternBytes)*2)
	for i, b := range n.PatternBytes {
		if i < len(n.VariantMask) && n.VariantMask[i] {
			out = append(out, '.', '.')
		} else {
			out = append(out, fmt.Sprintf("%02X", b)...)
		}
	}
	return string(out)
}

// Function is one public, local, or referenced-collision entry inside a
// module. Offset is cumulative within the module: each function's offset
// is the previous function's offset plus the delta written in the file.
type Function struct {
	Offset      uint32
	Name        string
	IsLocal     bool
	IsCollision bool
}

// TailByte is a single-byte constraint applied at a fixed offset past the
// end of a module's CRC region, used to disambiguate modules that share
// an identical pattern prefix and CRC.
type TailByte struct {
	Offset uint32
	Value  byte
}

// ReferencedFunction names another function that a module's matcher
// expects to find referenced at Offset. NegativeOffset records that the
// raw name bytes were NUL-terminated in the file, which IDA uses to mean
// the reference is a backward (negative) displacement.
type ReferencedFunction struct {
	Offset         uint32
	Name           string
	NegativeOffset bool
}

// Module is one signature entry: the tree path that leads to it plus its
// matching rules and named functions.
type Module struct {
	// PatternPath is the root-to-leaf sequence of PatternNode; its
	// concatenation is the module's full recognized byte prefix.
	PatternPath []PatternNode
	// CRCLength is the number of bytes, past the pattern prefix, that
	// CRCValue is computed over.
	CRCLength uint8
	// CRCValue is the expected CRC-16 over the CRCLength bytes following
	// the pattern prefix.
	CRCValue uint16
	// Length is the total module length in bytes: pattern bytes, CRC
	// region and any tail bytes.
	Length uint32

	PublicFunctions     []Function
	TailBytes           []TailByte
	ReferencedFunctions []ReferencedFunction
}

// PatternPathHex renders the full root-to-leaf pattern as a
// space-separated sequence of per-node hex strings.
func (m Module) PatternPathHex() string {
	out := ""
	for _, n := range m.PatternPath {
		if out != "" {
			out += " "
		}
		out += n.HexString()
	}
	return out
}

// RulesSummary renders a short human-readable description of a module's
// matching rules, used by the CLI's verbose listing.
func (m Module) RulesSummary() string {
	s := fmt.Sprintf("CRC: len=%d val=%04x\nModule length: %d", m.CRCLength, m.CRCValue, m.Length)
	if len(m.TailBytes) > 0 {
		s += "\nTail bytes:"
		for _, tb := range m.TailBytes {
			s += fmt.Sprintf(" (%x: %02x)", tb.Offset, tb.Value)
		}
	}
	if len(m.ReferencedFunctions) > 0 {
		s += "\nREF"
		for _, rf := range m.ReferencedFunctions {
			s += fmt.Sprintf(" %x:%s", rf.Offset, rf.Name)
		}
	}
	return s
}

// Header is the fixed and version-conditional metadata that precedes a
// .sig file's pattern tree. See spec section 6 for the exact byte layout.
type Header struct {
	Version        uint8
	Arch           uint8
	FileTypes      uint32
	OSTypes        uint16
	AppTypes       uint16
	Features       uint16
	OldNFunctions  uint16
	CRC16          uint16
	CType          [12]byte
	LibraryNameLen uint8
	CTypesCRC16    uint16
	NFunctions     uint32 // version >= 6
	PatternSize    uint16 // version >= 8
	UnknownV10     uint16 // version == 10
}

// FeatureCompressed is the Header.Features bit that marks the body as
// compressed (spec section 4.3).
const FeatureCompressed = 0x10

// ParseResult is the outcome of a single Parse call: either a full
// header, library name and depth-first module list, or an error message.
type ParseResult struct {
	Success      bool
	ErrorMessage string
	LibraryName  string
	Header       Header
	Modules      []Module
}

// FunctionEntry is one row of the flattened, module-indexed function
// listing produced by AllFunctions.
type FunctionEntry struct {
	ModuleIndex int
	Module      *Module
	Function    *Function
}

// AllFunctions flattens every module's public functions into a single
// ordered list, tagging each with the index of its owning module. It is
// a pure view over already-parsed data, used by listing/search UIs.
func (r *ParseResult) AllFunctions() []FunctionEntry {
	var list []FunctionEntry
	for mi := range r.Modules {
		mod := &r.Modules[mi]
		for fi := range mod.PublicFunctions {
			list = append(list, FunctionEntry{
				ModuleIndex: mi,
				Module:      mod,
				Function:    &mod.PublicFunctions[fi],
			})
		}
	}
	return list
}
