package adf4351

// Options collects the static, caller-owned register settings: fields
// that shape hardware behavior (loop filter drive, lock detect, output
// stages) but are never derived by the frequency planner. The planner
// only overwrites INT, FRAC, RF divider, prescaler and the
// fractional-mode feedback fields.
//
// The struct is yaml-tagged so it can sit directly in a config file.
type Options struct {
	// Modulus is the fractional modulus MOD, 2..4095. Zero selects
	// DefaultModulus.
	Modulus uint32 `yaml:"modulus"`

	// RCounter is the 10-bit reference divider, 1..1023. Zero lets the
	// planner derive the whole reference path (doubler, divide-by-2
	// and R) by policy; any other value pins the path to RCounter,
	// RefDoubler and RefDiv2 exactly as given.
	RCounter   uint32 `yaml:"r_counter"`
	RefDoubler bool   `yaml:"ref_doubler"`
	RefDiv2    bool   `yaml:"ref_div2"`

	// DoubleBuffer delays application of the R4 divider bits until the
	// next register 0 write, keeping divider changes atomic chip-side.
	DoubleBuffer bool `yaml:"double_buffer"`

	// ChargePumpCurrent is the 4-bit charge pump current code.
	ChargePumpCurrent uint32 `yaml:"charge_pump_current"`

	// PDPolarityNegative selects negative phase detector polarity,
	// needed only with an inverting active loop filter.
	PDPolarityNegative bool `yaml:"pd_polarity_negative"`

	// LockDetectPin selects the LD pin mode.
	LockDetectPin LockDetectPinMode `yaml:"lock_detect_pin"`

	// BandSelectClockDiv divides the R counter output for the band
	// select logic, 1..255.
	BandSelectClockDiv uint32 `yaml:"band_select_clock_div"`

	// ClockDivider is the 12-bit fast-lock/resync timeout counter.
	ClockDivider uint32 `yaml:"clock_divider"`

	// Output stage control. Power codes are the 2-bit register values
	// (-4, -1, +2, +5 dBm).
	OutputEnable    bool   `yaml:"output_enable"`
	OutputPower     uint32 `yaml:"output_power"`
	AuxOutputEnable bool   `yaml:"aux_output_enable"`
	AuxOutputPower  uint32 `yaml:"aux_output_power"`

	// MuteTillLock shuts the RF output stage down until digital lock
	// detect reports lock.
	MuteTillLock bool `yaml:"mute_till_lock"`
}

// DefaultOptions returns the settings the original driver programs for
// a passive loop filter and fractional-N operation: maximum charge
// pump current, double buffering on, both outputs enabled at -1 dBm,
// digital lock detect on the LD pin.
func DefaultOptions() Options {
	return Options{
		Modulus:            DefaultModulus,
		ChargePumpCurrent:  0b111,
		DoubleBuffer:       true,
		LockDetectPin:      LockDetectPinDigital,
		BandSelectClockDiv: 200,
		ClockDivider:       150,
		OutputEnable:       true,
		OutputPower:        0b01,
		AuxOutputEnable:    true,
		AuxOutputPower:     0b01,
	}
}

// apply writes the static fields into a register set. Frequency-
// determining fields are left alone except for the reference path,
// which is written only when RCounter pins it.
func (o Options) apply(rs RegisterSet) RegisterSet {
	mod := o.Modulus
	if mod == 0 {
		mod = DefaultModulus
	}
	rs = rs.SetMod(mod)

	if o.RCounter != 0 {
		rs = rs.SetRCounter(o.RCounter).
			Set(FieldRefDoubler, bit(o.RefDoubler)).
			Set(FieldRDiv2, bit(o.RefDiv2))
	}

	rs = rs.Set(FieldDoubleBuffer, bit(o.DoubleBuffer)).
		Set(FieldCPCurrent, o.ChargePumpCurrent).
		Set(FieldPDPolarity, bit(!o.PDPolarityNegative)).
		Set(FieldLockDetectPin, uint32(o.LockDetectPin)).
		SetBandSelectClockDiv(o.BandSelectClockDiv).
		Set(FieldClockDivider, o.ClockDivider).
		Set(FieldRFOutputEnable, bit(o.OutputEnable)).
		Set(FieldOutputPower, o.OutputPower).
		Set(FieldAuxOutputEnable, bit(o.AuxOutputEnable)).
		Set(FieldAuxOutputPower, o.AuxOutputPower).
		Set(FieldMuteTillLock, bit(o.MuteTillLock))

	return rs
}

func bit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
