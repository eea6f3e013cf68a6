package flirt

// cursor is a saturating byte-stream reader over an in-memory .sig body.
// Every primitive is safe to call past the end of the buffer: it sets eof
// and returns the zero value instead of panicking, so a decoder can defer
// its eof/err check to whatever point the format calls for one (see spec
// section 4.7) instead of guarding every single read.
type cursor struct {
	body    []byte
	pos     int
	version uint8
	eof     bool
	err     bool
}

func newCursor(body []byte, version uint8) *cursor {
	return &cursor{body: body, version: version}
}

// bad reports whether the cursor has hit end of stream or a hard error;
// decoders check this at the points spec section 4.7 calls out as
// decision points.
func (c *cursor) bad() bool {
	return c.eof || c.err
}

// fail marks the cursor as errored so that further reads keep returning
// zero values instead of silently continuing to decode.
func (c *cursor) fail() {
	c.err = true
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.body) {
		return 0
	}
	return len(c.body) - c.pos
}

// byte reads a single byte, or 0 with eof set if the stream is exhausted.
func (c *cursor) byte() uint8 {
	if c.bad() || c.pos >= len(c.body) {
		c.eof = true
		return 0
	}
	b := c.body[c.pos]
	c.pos++
	return b
}

// u16be reads a big-endian 16-bit value.
func (c *cursor) u16be() uint16 {
	hi := c.byte()
	lo := c.byte()
	return uint16(hi)<<8 | uint16(lo)
}

// u32be reads a big-endian 32-bit value.
func (c *cursor) u32be() uint32 {
	hi := c.u16be()
	lo := c.u16be()
	return uint32(hi)<<16 | uint32(lo)
}

// max2 decodes the format's 1-or-2-byte variable-length integer (spec
// section 4.1): if the top bit of the first byte is clear the value is
// that byte; otherwise the low 7 bits of the first byte, shifted up by
// one more byte, form a 15-bit value.
func (c *cursor) max2() uint16 {
	b := c.byte()
	if b&0x80 == 0 {
		return uint16(b)
	}
	return (uint16(b&0x7f) << 8) | uint16(c.byte())
}

// multi decodes the format's 1/2/4-byte variable-length integer (spec
// section 4.1), classified by the leading byte's top bits.
func (c *cursor) multi() uint32 {
	b := c.byte()
	switch {
	case b&0x80 == 0:
		return uint32(b)
	case b&0xc0 != 0xc0:
		return (uint32(b&0x7f) << 8) | uint32(c.byte())
	case b&0xe0 != 0xe0:
		v := uint32(b&0x3f) << 24
		v |= uint32(c.byte()) << 16
		v |= uint32(c.u16be())
		return v
	default:
		// The leading byte only served to classify this branch; the value
		// itself is the following 4 bytes, big-endian.
		return c.u32be()
	}
}

// versionedOffset reads a module-relative delta or absolute offset using
// whichever variable-length encoding this file's version calls for
// (spec sections 4.6.1-4.6.3): multi for version >= 9, max2 otherwise.
func (c *cursor) versionedOffset() uint32 {
	if c.version >= 9 {
		return c.multi()
	}
	return uint32(c.max2())
}

// bytes reads n literal bytes, or nil with eof set on a short read.
func (c *cursor) bytes(n int) []byte {
	if c.bad() || c.remaining() < n {
		c.eof = true
		return nil
	}
	b := c.body[c.pos : c.pos+n]
	c.pos += n
	return b
}
