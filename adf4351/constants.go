package adf4351

// Frequency limits of the ADF4351, all in Hz.
const (
	// REFin input range. The upper bound is exclusive.
	RefInFreqMin uint32 = 10_000_000
	RefInFreqMax uint32 = 250_000_000

	// Maximum phase detector frequency in fractional-N mode.
	PFDFreqFracNMax uint32 = 32_000_000

	// PFD frequencies at or below this value keep INT above the 4/5
	// prescaler minimum of 23 across the whole VCO range, so the
	// reference-path policy aims for it.
	pfdFreqFracNEasyMax uint32 = 29_000_000

	// Absolute PFD ceiling (integer-N, band select disabled). The
	// fractional-N limit is tighter and enforced by policy.
	PFDFreqIntNMax uint32 = 90_000_000

	// Fundamental VCO range, before the output dividers.
	VCOFreqMin uint64 = 2_200_000_000
	VCOFreqMax uint64 = 4_400_000_000

	// Output range: divide-by-64 off the bottom of the VCO range up
	// to the undivided VCO maximum. The upper bound is exclusive.
	OutFreqMin uint64 = VCOFreqMin / 64
	OutFreqMax uint64 = VCOFreqMax

	// Above this output frequency the 8/9 prescaler is mandatory.
	outFreqPrescaler45Max uint64 = 3_600_000_000
)

// Feedback and divider limits.
const (
	// DefaultModulus is used by the planner when no modulus has been
	// configured. MOD 4000 gives channel steps of fPFD/4000 at the VCO.
	DefaultModulus = 4000

	// Minimum INT values imposed by the dual-modulus prescaler.
	minIntPrescaler45 = 23
	minIntPrescaler89 = 75

	// The RF output divider is 2^stages with at most six stages
	// (divide-by-64).
	maxDividerStages = 6
)
