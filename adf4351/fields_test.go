package adf4351

import "testing"

var probeWords = []uint32{0x00000000, 0xFFFFFFFF, 0xA5A5A5A5, 0x5A5A5A5A}

func TestFieldRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x555, 0xFFF, 0xFFFF, 0xFFFFFFFF}
	for _, f := range allFields {
		for _, word := range probeWords {
			for _, v := range values {
				got := f.Get(f.Put(word, v))
				if got != v&f.Mask() {
					t.Errorf("field %+v: Get(Put(0x%08X, 0x%X)) = 0x%X, want 0x%X",
						f, word, v, got, v&f.Mask())
				}
			}
		}
	}
}

func TestFieldPutPreservesNeighbors(t *testing.T) {
	for _, f := range allFields {
		outside := ^(f.Mask() << f.offset)
		for _, word := range probeWords {
			for _, v := range []uint32{0, 0xFFFFFFFF} {
				got := f.Put(word, v)
				if got&outside != word&outside {
					t.Errorf("field %+v: Put(0x%08X, 0x%X) disturbed outside bits: 0x%08X",
						f, word, v, got)
				}
			}
		}
	}
}

func TestFieldTableDisjoint(t *testing.T) {
	// No two fields of the same register may overlap, and none may
	// reach into the 3-bit address tag.
	var cover [registerCount]uint32
	for _, f := range allFields {
		bits := f.Mask() << f.offset
		if bits&addressMask != 0 {
			t.Errorf("field %+v overlaps the address tag", f)
		}
		if cover[f.reg]&bits != 0 {
			t.Errorf("field %+v overlaps another field of R%d", f, f.reg)
		}
		cover[f.reg] |= bits
	}
}

func TestAddressInvariant(t *testing.T) {
	rs := NewRegisterSet()
	for _, f := range allFields {
		rs = rs.Set(f, 0xFFFFFFFF)
		for r := Register(0); r < registerCount; r++ {
			if rs.Word(r)&addressMask != uint32(r) {
				t.Errorf("after setting %+v, R%d address tag = %d",
					f, r, rs.Word(r)&addressMask)
			}
		}
	}
}
