package flirt

import "testing"

// TestDecodeReferencedFunctionsNegativeOffset checks that a trailing NUL in
// the raw name bytes is stripped and recorded as NegativeOffset, per the
// format's backward-reference convention.
func TestDecodeReferencedFunctionsNegativeOffset(t *testing.T) {
	data := []byte{
		0x10,                        // offset (max2, version < 9)
		4,                           // nameLen
		'c', 'a', 'l', 0x00,         // name with trailing NUL -> negative offset
	}
	c := newCursor(data, 5)
	mod := &Module{}
	if !decodeReferencedFunctions(c, mod) {
		t.Fatalf("decodeReferencedFunctions failed")
	}
	if len(mod.ReferencedFunctions) != 1 {
		t.Fatalf("got %d referenced functions, want 1", len(mod.ReferencedFunctions))
	}
	rf := mod.ReferencedFunctions[0]
	if rf.Name != "cal" || !rf.NegativeOffset {
		t.Errorf("rf = (%q, negative=%v), want (\"cal\", true)", rf.Name, rf.NegativeOffset)
	}
	if rf.Offset != 0x10 {
		t.Errorf("rf.Offset = %#x, want 0x10", rf.Offset)
	}
}

func TestDecodeReferencedFunctionsPositiveOffset(t *testing.T) {
	data := []byte{0x20, 3, 'f', 'o', 'o'}
	c := newCursor(data, 5)
	mod := &Module{}
	if !decodeReferencedFunctions(c, mod) {
		t.Fatalf("decodeReferencedFunctions failed")
	}
	rf := mod.ReferencedFunctions[0]
	if rf.Name != "foo" || rf.NegativeOffset {
		t.Errorf("rf = (%q, negative=%v), want (\"foo\", false)", rf.Name, rf.NegativeOffset)
	}
}

// TestDecodeReferencedFunctionsCountedRunV8 checks that version >= 8 reads a
// leading count byte before the per-entry records.
func TestDecodeReferencedFunctionsCountedRunV8(t *testing.T) {
	data := []byte{
		2,          // count
		0x01, 2, 'a', 'b', // entry 1
		0x02, 2, 'c', 'd', // entry 2
	}
	c := newCursor(data, 9)
	mod := &Module{}
	if !decodeReferencedFunctions(c, mod) {
		t.Fatalf("decodeReferencedFunctions failed")
	}
	if len(mod.ReferencedFunctions) != 2 {
		t.Fatalf("got %d referenced functions, want 2", len(mod.ReferencedFunctions))
	}
	if mod.ReferencedFunctions[0].Name != "ab" || mod.ReferencedFunctions[1].Name != "cd" {
		t.Errorf("names = %q, %q, want \"ab\", \"cd\"",
			mod.ReferencedFunctions[0].Name, mod.ReferencedFunctions[1].Name)
	}
}

func TestDecodeTailBytesSingleBeforeV8(t *testing.T) {
	data := []byte{0x05, 0xFE}
	c := newCursor(data, 5)
	mod := &Module{}
	if !decodeTailBytes(c, mod) {
		t.Fatalf("decodeTailBytes failed")
	}
	if len(mod.TailBytes) != 1 {
		t.Fatalf("got %d tail bytes, want 1", len(mod.TailBytes))
	}
	if mod.TailBytes[0].Offset != 5 || mod.TailBytes[0].Value != 0xFE {
		t.Errorf("tail byte = %+v, want offset=5 value=0xFE", mod.TailBytes[0])
	}
}

func TestDecodeTailBytesCountedRunV8(t *testing.T) {
	data := []byte{
		2,          // count
		0x01, 0xAA,
		0x02, 0xBB,
	}
	c := newCursor(data, 8)
	mod := &Module{}
	if !decodeTailBytes(c, mod) {
		t.Fatalf("decodeTailBytes failed")
	}
	if len(mod.TailBytes) != 2 {
		t.Fatalf("got %d tail bytes, want 2", len(mod.TailBytes))
	}
}

// TestModuleRulesSummaryOmitsEmptyRules checks that RulesSummary only
// mentions tail bytes / referenced functions when the module actually has
// them, matching the flag-fidelity property (empty list iff flag bit unset).
func TestModuleRulesSummaryOmitsEmptyRules(t *testing.T) {
	mod := Module{CRCLength: 4, CRCValue: 0x1234, Length: 10}
	s := mod.RulesSummary()
	if contains(s, "Tail bytes") || contains(s, "REF") {
		t.Errorf("RulesSummary() = %q, expected no tail/ref sections for an empty module", s)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
