package adf4351

import "testing"

func TestNewRegisterSetDefaults(t *testing.T) {
	rs := NewRegisterSet()
	for r := Register(0); r < registerCount; r++ {
		if rs.Word(r) != uint32(r) {
			t.Errorf("default R%d = 0x%08X, want bare address tag", r, rs.Word(r))
		}
	}
}

func TestWordsWireOrder(t *testing.T) {
	rs, err := Plan(25_000_000, 432_000_000, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %s", err)
	}
	words := rs.Words()
	for i, w := range words {
		want := uint32(registerCount - 1 - i)
		if w&addressMask != want {
			t.Errorf("wire word %d has address tag %d, want %d", i, w&addressMask, want)
		}
	}
}

func TestSetLeavesOriginalUntouched(t *testing.T) {
	a := NewRegisterSet()
	b := a.Set(FieldInt, 100)
	if a.Get(FieldInt) != 0 {
		t.Errorf("Set mutated the original snapshot: INT = %d", a.Get(FieldInt))
	}
	if b.Get(FieldInt) != 100 {
		t.Errorf("Set lost the value: INT = %d", b.Get(FieldInt))
	}
}

func TestRCounterClamp(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0, 1}, {1, 1}, {512, 512}, {1023, 1023}, {2000, 1023},
	}
	for _, c := range cases {
		rs := NewRegisterSet().SetRCounter(c.in)
		if got := rs.Get(FieldRCounter); got != c.want {
			t.Errorf("SetRCounter(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestModClamp(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0, 2}, {1, 2}, {2, 2}, {4000, 4000}, {4095, 4095}, {9999, 4095},
	}
	for _, c := range cases {
		rs := NewRegisterSet().SetMod(c.in)
		if got := rs.Get(FieldMod); got != c.want {
			t.Errorf("SetMod(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFracClampedBelowMod(t *testing.T) {
	rs := NewRegisterSet().SetMod(4000).SetFrac(4500)
	if got := rs.Get(FieldFrac); got != 3999 {
		t.Errorf("SetFrac(4500) with MOD 4000 = %d, want 3999", got)
	}
}

func TestIntFloorPerPrescaler(t *testing.T) {
	rs45 := NewRegisterSet().Set(FieldPrescaler, uint32(Prescaler45)).SetInt(5)
	if got := rs45.Get(FieldInt); got != 23 {
		t.Errorf("4/5 prescaler INT floor: got %d, want 23", got)
	}

	rs89 := NewRegisterSet().Set(FieldPrescaler, uint32(Prescaler89)).SetInt(30)
	if got := rs89.Get(FieldInt); got != 75 {
		t.Errorf("8/9 prescaler INT floor: got %d, want 75", got)
	}

	rs := NewRegisterSet().Set(FieldPrescaler, uint32(Prescaler89)).SetInt(120)
	if got := rs.Get(FieldInt); got != 120 {
		t.Errorf("INT above floor must pass through: got %d, want 120", got)
	}
}

func TestRFDividerSelectClamp(t *testing.T) {
	rs := NewRegisterSet().SetRFDividerSelect(7)
	if got := rs.Get(FieldRFDividerSelect); got != 6 {
		t.Errorf("SetRFDividerSelect(7) = %d, want 6", got)
	}
	if got := rs.RFDivider(); got != 64 {
		t.Errorf("RFDivider = %d, want 64", got)
	}
}

func TestBandSelectClockDivClamp(t *testing.T) {
	cases := []struct{ in, want uint32 }{
		{0, 1}, {200, 200}, {255, 255}, {400, 255},
	}
	for _, c := range cases {
		rs := NewRegisterSet().SetBandSelectClockDiv(c.in)
		if got := rs.Get(FieldBandSelectClockDiv); got != c.want {
			t.Errorf("SetBandSelectClockDiv(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
