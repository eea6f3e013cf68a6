package flirt

// decodeNode reads one pattern-tree edge (spec section 4.5): a length
// byte, a variant bit-mask whose width depends on that length, and then
// one concrete byte per non-variant position.
func decodeNode(c *cursor) (PatternNode, bool) {
	var node PatternNode

	nodeLen := c.byte()
	if c.bad() {
		return node, false
	}
	if nodeLen < 1 || nodeLen > 63 {
		c.fail()
		return node, false
	}

	var mask uint64
	switch {
	case nodeLen < 16:
		mask = uint64(c.max2())
	case nodeLen <= 32:
		mask = uint64(c.multi())
	default: // 33..63
		hi := uint64(c.multi())
		lo := uint64(c.multi())
		mask = hi<<32 | lo
	}
	if c.bad() {
		return node, false
	}

	node.PatternBytes = make([]byte, nodeLen)
	node.VariantMask = make([]bool, nodeLen)

	// Bit (nodeLen-1) corresponds to byte index 0, decreasing by one per
	// byte (spec section 4.5 step 2).
	bit := uint64(1) << (nodeLen - 1)
	for i := 0; i < int(nodeLen); i++ {
		if mask&bit != 0 {
			node.VariantMask[i] = true
			// PatternBytes[i] stays at its zero-value sentinel.
		} else {
			if c.bad() {
				return node, false
			}
			node.PatternBytes[i] = c.byte()
			if c.bad() {
				return node, false
			}
		}
		bit >>= 1
	}

	return node, true
}
