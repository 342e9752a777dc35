package adf4351

import "fmt"

// Prescaler selects the dual-modulus feedback prescaler range.
type Prescaler uint32

const (
	// Prescaler45 is the 4/5 prescaler, valid up to 3.6 GHz, INT >= 23.
	Prescaler45 Prescaler = 0
	// Prescaler89 is the 8/9 prescaler, required above 3.6 GHz, INT >= 75.
	Prescaler89 Prescaler = 1
)

// LockDetectPinMode selects the behavior of the LD pin (register 5).
type LockDetectPinMode uint32

const (
	LockDetectPinLow     LockDetectPinMode = 0
	LockDetectPinDigital LockDetectPinMode = 1
	LockDetectPinHigh    LockDetectPinMode = 3
)

// RegisterSet holds the six ADF4351 configuration words. It is a plain
// value: setters return a new snapshot and the set carries no device
// handle. The zero value is not valid; use NewRegisterSet, which seeds
// each word with its 3-bit address tag.
//
// After power-up the part requires one write to each of R5 through R0,
// in that order, before the output becomes active.
type RegisterSet [registerCount]uint32

// NewRegisterSet returns a register set with every field zero and each
// word's low three bits holding its register address.
func NewRegisterSet() RegisterSet {
	var rs RegisterSet
	for r := range rs {
		rs[r] = uint32(r)
	}
	return rs
}

// Get reads one field from the set.
func (rs RegisterSet) Get(f Field) uint32 {
	return f.Get(rs[f.reg])
}

// Set returns a copy of the set with one field replaced. The word's
// address tag is reasserted so no field write can corrupt it.
func (rs RegisterSet) Set(f Field, value uint32) RegisterSet {
	rs[f.reg] = f.Put(rs[f.reg], value)&^addressMask | uint32(f.reg)
	return rs
}

// Word returns the 32-bit device word for one register.
func (rs RegisterSet) Word(r Register) uint32 {
	return rs[r]
}

// Words returns the six words in hardware write order: R5 first, R0
// last. The chip latches each word into the register named by its
// address tag, and only a write to register 0 starts a new VCO band
// select and phase resync, so register 0 must always be written last.
func (rs RegisterSet) Words() [registerCount]uint32 {
	var w [registerCount]uint32
	for i := range w {
		w[i] = rs[registerCount-1-i]
	}
	return w
}

// String renders the set in wire order for diagnostics.
func (rs RegisterSet) String() string {
	s := ""
	for i, w := range rs.Words() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("R%d=0x%08X", registerCount-1-i, w)
	}
	return s
}

// SetInt sets the integer feedback value, clamped to the minimum the
// currently selected prescaler allows (23 for 4/5, 75 for 8/9). Select
// the prescaler before setting INT.
func (rs RegisterSet) SetInt(n uint32) RegisterSet {
	floor := uint32(minIntPrescaler45)
	if Prescaler(rs.Get(FieldPrescaler)) == Prescaler89 {
		floor = minIntPrescaler89
	}
	if n < floor {
		n = floor
	}
	return rs.Set(FieldInt, n)
}

// SetFrac sets the fractional numerator, clamped below the configured
// modulus. Set MOD before FRAC.
func (rs RegisterSet) SetFrac(frac uint32) RegisterSet {
	if mod := rs.Get(FieldMod); mod >= 2 && frac >= mod {
		frac = mod - 1
	}
	return rs.Set(FieldFrac, frac)
}

// SetMod sets the fractional modulus, clamped to its legal range of
// 2 to 4095.
func (rs RegisterSet) SetMod(mod uint32) RegisterSet {
	if mod < 2 {
		mod = 2
	}
	if mod > FieldMod.Mask() {
		mod = FieldMod.Mask()
	}
	return rs.Set(FieldMod, mod)
}

// SetRCounter sets the 10-bit reference divider, clamped to 1..1023.
func (rs RegisterSet) SetRCounter(r uint32) RegisterSet {
	if r < 1 {
		r = 1
	}
	if r > FieldRCounter.Mask() {
		r = FieldRCounter.Mask()
	}
	return rs.Set(FieldRCounter, r)
}

// SetRFDividerSelect sets the output divider stage count; the divider
// is 2^stages, capped at divide-by-64.
func (rs RegisterSet) SetRFDividerSelect(stages uint32) RegisterSet {
	if stages > maxDividerStages {
		stages = maxDividerStages
	}
	return rs.Set(FieldRFDividerSelect, stages)
}

// SetBandSelectClockDiv sets the band select logic clock divider,
// clamped to 1..255.
func (rs RegisterSet) SetBandSelectClockDiv(div uint32) RegisterSet {
	if div < 1 {
		div = 1
	}
	if div > FieldBandSelectClockDiv.Mask() {
		div = FieldBandSelectClockDiv.Mask()
	}
	return rs.Set(FieldBandSelectClockDiv, div)
}

// RFDivider returns the configured output divider as a plain value
// (1, 2, 4, ... 64).
func (rs RegisterSet) RFDivider() uint32 {
	return 1 << rs.Get(FieldRFDividerSelect)
}
