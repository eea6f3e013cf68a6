// Package sigfmt renders the bit-field values of a parsed FLIRT header as
// human-readable strings. It implements only the data-model level of the
// original viewer's display helpers (arch/os/filetype/app/feature enum
// bits); the dockable-panel presentation built on top of them is out of
// scope for this repository.
package sigfmt

import (
	"fmt"
	"strings"
)

// ArchString names the architecture byte of a FLIRT header.
func ArchString(arch uint8) string {
	switch arch {
	case 0:
		return "386"
	case 7:
		return "68K"
	case 12:
		return "MIPS"
	case 13:
		return "ARM"
	case 15:
		return "PPC"
	case 18:
		return "SH"
	case 19:
		return "NET"
	case 23:
		return "SPARC"
	case 31:
		return "IA64"
	case 58:
		return "MSP430"
	case 60:
		return "DALVIK"
	default:
		return fmt.Sprintf("ARCH_%d", arch)
	}
}

// FileTypesString lists the bits set in a header's file-types field.
func FileTypesString(ft uint32) string {
	var s []string
	if ft&0x04 != 0 {
		s = append(s, "BIN")
	}
	if ft&0x400 != 0 {
		s = append(s, "COFF")
	}
	if ft&0x800 != 0 {
		s = append(s, "PE")
	}
	if ft&0x4000 != 0 {
		s = append(s, "ELF")
	}
	if len(s) == 0 {
		return fmt.Sprintf("0x%08x", ft)
	}
	return strings.Join(s, ",")
}

// OSTypesString lists the bits set in a header's os-types field.
func OSTypesString(ot uint16) string {
	var s []string
	if ot&0x01 != 0 {
		s = append(s, "MSDOS")
	}
	if ot&0x02 != 0 {
		s = append(s, "WIN")
	}
	if ot&0x10 != 0 {
		s = append(s, "UNIX")
	}
	if len(s) == 0 {
		return fmt.Sprintf("0x%04x", ot)
	}
	return strings.Join(s, ",")
}

// AppTypesString lists the bits set in a header's app-types field.
func AppTypesString(at uint16) string {
	var s []string
	if at&0x04 != 0 {
		s = append(s, "EXE")
	}
	if at&0x08 != 0 {
		s = append(s, "DLL")
	}
	if at&0x100 != 0 {
		s = append(s, "32_BIT")
	}
	if at&0x200 != 0 {
		s = append(s, "64_BIT")
	}
	if len(s) == 0 {
		return fmt.Sprintf("0x%04x", at)
	}
	return strings.Join(s, ",")
}

// FeaturesString lists the bits set in a header's features field.
func FeaturesString(f uint16) string {
	var s []string
	if f&0x10 != 0 {
		s = append(s, "COMPRESSED")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ",")
}
