// Package adf4351 drives the Analog Devices ADF4351 wideband
// fractional-N frequency synthesizer. It computes the six 32-bit
// configuration words for a desired output frequency, recovers the
// actual output frequency from a populated register set, and shifts
// the words out over SPI in the order the chip requires (R5 first,
// R0 last).
package adf4351

// Register identifies one of the six configuration registers. The
// identifier doubles as the 3-bit address tag held in bits [2:0] of
// the register word.
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5

	registerCount = 6
)

// addressMask covers the 3-bit address tag in every register word.
const addressMask = 0x7

// Field describes one logical bitfield: the register that owns it,
// the position of its lowest bit and its width in bits. The register
// tag travels with the descriptor, so a field cannot be applied to a
// foreign register.
type Field struct {
	reg    Register
	offset uint8
	width  uint8
}

// Register returns the register that owns the field.
func (f Field) Register() Register {
	return f.reg
}

// Mask returns the field's right-justified bit mask.
func (f Field) Mask() uint32 {
	return ^(^uint32(0) << f.width)
}

// Get extracts the field from a register word, right-justified.
func (f Field) Get(word uint32) uint32 {
	return (word >> f.offset) & f.Mask()
}

// Put returns the word with only this field's bits replaced. Values
// wider than the field are silently truncated to the field width;
// callers that need hard limits clamp before encoding.
func (f Field) Put(word, value uint32) uint32 {
	return word&^(f.Mask()<<f.offset) | (value&f.Mask())<<f.offset
}

// Canonical bit layout of the ADF4351 register map. This table is the
// single source of truth for field positions: the encoder, the decoder
// and the planner all go through it.
var (
	// Register 0
	FieldFrac = Field{R0, 3, 12}  // fractional numerator
	FieldInt  = Field{R0, 15, 16} // integer feedback value

	// Register 1
	FieldMod         = Field{R1, 3, 12}  // fractional modulus
	FieldPhase       = Field{R1, 15, 12} // phase word
	FieldPrescaler   = Field{R1, 27, 1}  // 0 = 4/5, 1 = 8/9
	FieldPhaseAdjust = Field{R1, 28, 1}

	// Register 2
	FieldCounterReset = Field{R2, 3, 1}
	FieldCPThreeState = Field{R2, 4, 1}
	FieldPowerDown    = Field{R2, 5, 1}
	FieldPDPolarity   = Field{R2, 6, 1} // 1 = positive
	FieldLDP          = Field{R2, 7, 1} // 0 = 10ns, 1 = 6ns
	FieldLDF          = Field{R2, 8, 1} // 0 = frac-N, 1 = int-N
	FieldCPCurrent    = Field{R2, 9, 4}
	FieldDoubleBuffer = Field{R2, 13, 1}
	FieldRCounter     = Field{R2, 14, 10}
	FieldRDiv2        = Field{R2, 24, 1}
	FieldRefDoubler   = Field{R2, 25, 1}
	FieldMuxout       = Field{R2, 26, 3}
	FieldNoiseMode    = Field{R2, 29, 2}

	// Register 3
	FieldClockDivider        = Field{R3, 3, 12}
	FieldClockDividerMode    = Field{R3, 15, 2}
	FieldCSR                 = Field{R3, 18, 1}
	FieldChargeCancel        = Field{R3, 21, 1}
	FieldAntiBacklashWidth   = Field{R3, 22, 1} // 0 = 6ns, 1 = 3ns
	FieldBandSelectClockMode = Field{R3, 23, 1}

	// Register 4
	FieldOutputPower        = Field{R4, 3, 2}
	FieldRFOutputEnable     = Field{R4, 5, 1}
	FieldAuxOutputPower     = Field{R4, 6, 2}
	FieldAuxOutputEnable    = Field{R4, 8, 1}
	FieldAuxOutputSelect    = Field{R4, 9, 1}
	FieldMuteTillLock       = Field{R4, 10, 1}
	FieldVCOPowerDown       = Field{R4, 11, 1}
	FieldBandSelectClockDiv = Field{R4, 12, 8}
	FieldRFDividerSelect    = Field{R4, 20, 3} // output divider = 2^value
	FieldFeedbackSelect     = Field{R4, 23, 1} // 1 = fundamental

	// Register 5
	FieldLockDetectPin = Field{R5, 22, 2}
)

// allFields lists every descriptor in the canonical layout, used for
// introspection and exhaustive testing.
var allFields = []Field{
	FieldFrac, FieldInt,
	FieldMod, FieldPhase, FieldPrescaler, FieldPhaseAdjust,
	FieldCounterReset, FieldCPThreeState, FieldPowerDown, FieldPDPolarity,
	FieldLDP, FieldLDF, FieldCPCurrent, FieldDoubleBuffer, FieldRCounter,
	FieldRDiv2, FieldRefDoubler, FieldMuxout, FieldNoiseMode,
	FieldClockDivider, FieldClockDividerMode, FieldCSR, FieldChargeCancel,
	FieldAntiBacklashWidth, FieldBandSelectClockMode,
	FieldOutputPower, FieldRFOutputEnable, FieldAuxOutputPower,
	FieldAuxOutputEnable, FieldAuxOutputSelect, FieldMuteTillLock,
	FieldVCOPowerDown, FieldBandSelectClockDiv, FieldRFDividerSelect,
	FieldFeedbackSelect,
	FieldLockDetectPin,
}
