package flirt

import "testing"

func TestDecodeNodeRejectsZeroLength(t *testing.T) {
	c := newCursor([]byte{0x00}, 5)
	if _, ok := decodeNode(c); ok {
		t.Fatalf("expected nodeLen=0 to be rejected")
	}
	if !c.err {
		t.Fatalf("expected cursor to be marked errored")
	}
}

func TestDecodeNodeRejectsLengthAbove63(t *testing.T) {
	c := newCursor([]byte{64}, 5)
	if _, ok := decodeNode(c); ok {
		t.Fatalf("expected nodeLen=64 to be rejected")
	}
}

// TestDecodeNodeAllConcrete decodes a 4-byte node with a zero mask: every
// position should be concrete, none variant.
func TestDecodeNodeAllConcrete(t *testing.T) {
	c := newCursor([]byte{0x04, 0x00, 0xAA, 0xBB, 0xCC, 0xDD}, 5)
	node, ok := decodeNode(c)
	if !ok {
		t.Fatalf("decodeNode failed")
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	for i, b := range want {
		if node.VariantMask[i] {
			t.Errorf("byte %d: unexpectedly marked variant", i)
		}
		if node.PatternBytes[i] != b {
			t.Errorf("byte %d = %#x, want %#x", i, node.PatternBytes[i], b)
		}
	}
	if got := node.HexString(); got != "AABBCCDD" {
		t.Errorf("HexString() = %q, want %q", got, "AABBCCDD")
	}
}

// TestDecodeNodeVariantMaskGeometry checks that mask bit k maps to byte
// index nodeLen-1-k: for nodeLen=4 and mask=0b0101 (bits 0 and 2 set),
// byte indices 3 and 1 should be variant, 0 and 2 concrete.
func TestDecodeNodeVariantMaskGeometry(t *testing.T) {
	// nodeLen=4 (< 16) so the mask is read via max2: single byte 0b0101.
	c := newCursor([]byte{0x04, 0x05, 0xAA, 0xBB}, 5)
	node, ok := decodeNode(c)
	if !ok {
		t.Fatalf("decodeNode failed")
	}
	wantVariant := []bool{false, true, false, true}
	for i, want := range wantVariant {
		if node.VariantMask[i] != want {
			t.Errorf("VariantMask[%d] = %v, want %v", i, node.VariantMask[i], want)
		}
	}
	if got := node.HexString(); got != "AA..BB.." {
		t.Errorf("HexString() = %q, want %q", got, "AA..BB..")
	}
}

// TestDecodeNodeWideMask exercises the nodeLen in 16..32 branch, which
// reads the mask via a single multi() call instead of max2().
func TestDecodeNodeWideMask(t *testing.T) {
	nodeLen := byte(17)
	// mask = 1 (only the lowest bit, i.e. the last byte position, is
	// variant); multi() encodes 1 as a single byte.
	data := []byte{nodeLen, 0x01}
	data = append(data, make([]byte, 16)...) // 16 concrete bytes to supply
	c := newCursor(data, 5)
	node, ok := decodeNode(c)
	if !ok {
		t.Fatalf("decodeNode failed")
	}
	if len(node.PatternBytes) != 17 {
		t.Fatalf("got %d bytes, want 17", len(node.PatternBytes))
	}
	for i := 0; i < 16; i++ {
		if node.VariantMask[i] {
			t.Errorf("byte %d: unexpectedly variant", i)
		}
	}
	if !node.VariantMask[16] {
		t.Errorf("byte 16: expected variant (mask bit 0)")
	}
}
