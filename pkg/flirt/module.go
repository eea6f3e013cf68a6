package flirt

import "github.com/blend-tea/SigViewer/pkg/logflags"

// Module flag bits, read from the byte that terminates each public
// function's name (spec section 4.6 / 6).
const (
	flagMorePublicNames        = 0x01
	flagReadTailBytes          = 0x02
	flagReadReferencedFuncs    = 0x04
	flagMoreModulesWithSameCRC = 0x08
	flagMoreModules            = 0x10
)

// Function attribute bits, read from the byte preceding a function name
// when that byte is below 0x20 (spec section 6).
const (
	functionLocal     = 0x02
	functionCollision = 0x08
)

const nameMax = 1024

// decodeLeaf decodes one leaf position: a run of CRC blocks, each
// containing a run of modules that share that block's (crcLength,
// crc16) pair (spec section 4.6). Every emitted module takes path as its
// PatternPath; path is the per-child snapshot walkTree builds by value,
// so modules from the same leaf share it and no other leaf aliases it.
func decodeLeaf(c *cursor, path []PatternNode, modules *[]Module) (ok bool, errMsg string) {
	var flags uint8

	for {
		crcLength := c.byte()
		if c.bad() {
			return false, "Unexpected EOF in tree"
		}
		crc16 := c.u16be()
		if c.bad() {
			return false, "Unexpected EOF in tree"
		}

		for {
			mod := Module{
				PatternPath: path,
				CRCLength:   crcLength,
				CRCValue:    crc16,
			}

			if c.version >= 9 {
				mod.Length = c.multi()
			} else {
				mod.Length = uint32(c.max2())
			}
			if c.bad() {
				return false, "Unexpected EOF in tree"
			}

			var funcsOK bool
			funcsOK, flags = decodePublicFunctions(c, &mod)
			if !funcsOK {
				return false, "Parse error in signature tree"
			}

			if flags&flagReadTailBytes != 0 {
				if !decodeTailBytes(c, &mod) {
					return false, "Parse error in signature tree"
				}
			}
			if flags&flagReadReferencedFuncs != 0 {
				if !decodeReferencedFunctions(c, &mod) {
					return false, "Parse error in signature tree"
				}
			}

			if logflags.Module() {
				logflags.ModuleLogger().Debugf("module with %d function(s), crc=%04x len=%d", len(mod.PublicFunctions), crc16, mod.Length)
			}

			*modules = append(*modules, mod)

			if flags&flagMoreModulesWithSameCRC == 0 {
				break
			}
		}

		if flags&flagMoreModules == 0 {
			break
		}
	}

	return true, ""
}

// decodePublicFunctions decodes the run of public functions terminating
// in a module-continuation flags byte (spec section 4.6.1). offset
// accumulates across the whole run: each function's reported offset is
// the running sum of the deltas written in the file, not reset between
// functions.
func decodePublicFunctions(c *cursor, mod *Module) (ok bool, flags uint8) {
	var offset uint32

	for {
		offset += c.versionedOffset()
		if c.bad() {
			return false, 0
		}

		var fn Function

		b := c.byte()
		if c.bad() {
			return false, 0
		}
		if b < 0x20 {
			if b&functionLocal != 0 {
				fn.IsLocal = true
			}
			if b&functionCollision != 0 {
				fn.IsCollision = true
			}
			b = c.byte()
			if c.bad() {
				return false, 0
			}
		}

		var name []byte
		for b >= 0x20 && len(name) < nameMax {
			name = append(name, b)
			b = c.byte()
			if c.bad() {
				return false, 0
			}
		}

		fn.Offset = offset
		fn.Name = string(name)
		mod.PublicFunctions = append(mod.PublicFunctions, fn)

		flags = b
		if flags&flagMorePublicNames == 0 {
			break
		}
	}

	return true, flags
}

// decodeTailBytes decodes the module's tail-byte constraints (spec
// section 4.6.2): one (offset, value) pair in versions before 8, a
// counted run from version 8 on.
func decodeTailBytes(c *cursor, mod *Module) bool {
	count := 1
	if c.version >= 8 {
		count = int(c.byte())
		if c.bad() {
			return false
		}
	}

	for i := 0; i < count; i++ {
		tb := TailByte{Offset: c.versionedOffset()}
		if c.bad() {
			return false
		}
		tb.Value = c.byte()
		if c.bad() {
			return false
		}
		mod.TailBytes = append(mod.TailBytes, tb)
	}
	return true
}

// decodeReferencedFunctions decodes the module's referenced-function
// constraints (spec section 4.6.3).
func decodeReferencedFunctions(c *cursor, mod *Module) bool {
	count := 1
	if c.version >= 8 {
		count = int(c.byte())
		if c.bad() {
			return false
		}
	}

	for i := 0; i < count; i++ {
		rf := ReferencedFunction{Offset: c.versionedOffset()}
		if c.bad() {
			return false
		}

		nameLen := uint32(c.byte())
		if c.bad() {
			return false
		}
		if nameLen == 0 {
			nameLen = c.multi()
			if c.bad() {
				return false
			}
		}
		if nameLen >= nameMax {
			return false
		}

		raw := c.bytes(int(nameLen))
		if c.bad() {
			return false
		}

		if len(raw) > 0 && raw[len(raw)-1] == 0x00 {
			rf.NegativeOffset = true
			raw = raw[:len(raw)-1]
		}
		rf.Name = string(raw)

		mod.ReferencedFunctions = append(mod.ReferencedFunctions, rf)
	}
	return true
}
