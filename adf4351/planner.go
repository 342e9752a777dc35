package adf4351

import "fmt"

// PFDFrequency computes the phase detector frequency in Hz from a
// register set's own reference-path fields:
//
//	fPFD = REFin x (1 + D) / R / (1 + T)
//
// where D is the reference doubler bit, R the 10-bit reference
// divider and T the divide-by-2 bit. Working from the register set
// rather than planner state lets it validate an arbitrary populated
// set. The 90 MHz ceiling checked here is the absolute integer-N
// limit; fractional-N policy keeps fPFD much lower.
func PFDFrequency(refInHz uint32, rs RegisterSet) (uint32, error) {
	if refInHz < RefInFreqMin || refInHz >= RefInFreqMax {
		return 0, fmt.Errorf("%w: REFin %d Hz outside [%d, %d)",
			ErrInvalidReferenceFrequency, refInHz, RefInFreqMin, RefInFreqMax)
	}

	r := rs.Get(FieldRCounter)
	if r == 0 {
		return 0, fmt.Errorf("%w: R counter not programmed", ErrInvalidReferenceFrequency)
	}

	fpfd := uint64(refInHz) *
		(1 + uint64(rs.Get(FieldRefDoubler))) /
		uint64(r) /
		(1 + uint64(rs.Get(FieldRDiv2)))
	if fpfd > uint64(PFDFreqIntNMax) {
		return 0, fmt.Errorf("%w: fPFD %d Hz above %d Hz ceiling",
			ErrInvalidReferenceFrequency, fpfd, PFDFreqIntNMax)
	}
	return uint32(fpfd), nil
}

// Tune derives the frequency-determining fields for a target output
// frequency and returns the updated register set. The reference path
// and modulus already programmed into the set are taken as given;
// static fields are untouched apart from the fractional-N feedback
// settings (fundamental feedback, frac-N lock detect function, 10 ns
// lock detect precision, 6 ns anti-backlash width).
//
// The achievable channel step is fPFD/MOD/divider Hz; the programmed
// frequency is within one step below the target.
func Tune(rs RegisterSet, refInHz uint32, outHz uint64) (RegisterSet, error) {
	if outHz < OutFreqMin || outHz >= OutFreqMax {
		return rs, fmt.Errorf("%w: %d Hz outside [%d, %d)",
			ErrInvalidOutputFrequency, outHz, OutFreqMin, OutFreqMax)
	}

	fpfd, err := PFDFrequency(refInHz, rs)
	if err != nil {
		return rs, err
	}

	prescaler := Prescaler45
	if outHz > outFreqPrescaler45Max {
		prescaler = Prescaler89
	}

	// Double the candidate VCO frequency until it reaches the
	// fundamental range. The VCO range is wider than an octave, so
	// the first divider that lands inside it is the only one.
	vcoHz := outHz
	stages := uint32(0)
	for vcoHz < VCOFreqMin {
		vcoHz *= 2
		stages++
	}

	mod := rs.Get(FieldMod)
	if mod < 2 {
		mod = DefaultModulus
		rs = rs.SetMod(mod)
	}

	// RFout = (INT + FRAC/MOD) x fPFD / divider, so
	// INT + FRAC/MOD = vco/fPFD, scaled by MOD to stay integral.
	// vco*MOD tops out around 4.4e9 * 4095, well inside uint64.
	nscaled := vcoHz * uint64(mod) / uint64(fpfd)
	n := uint32(nscaled / uint64(mod))
	frac := uint32(nscaled % uint64(mod))

	rs = rs.Set(FieldPrescaler, uint32(prescaler)).
		SetInt(n).
		SetFrac(frac).
		SetRFDividerSelect(stages).
		Set(FieldFeedbackSelect, 1). // fundamental; Tune's math assumes it
		Set(FieldLDF, 0).
		Set(FieldLDP, 0).
		Set(FieldAntiBacklashWidth, 0)
	return rs, nil
}

// Plan builds a complete register set for an output frequency: default
// set, static options, reference path, then Tune. It is a pure
// function of its arguments; a rejected plan leaves nothing behind.
func Plan(refInHz uint32, outHz uint64, opts Options) (RegisterSet, error) {
	rs := opts.apply(NewRegisterSet())

	// Reference path policy when the options leave it open: doubler
	// and divide-by-2 both on so the PFD sees a clean 50% duty cycle,
	// R scaled up only when the raw reference alone would push fPFD
	// past the fractional-N practical ceiling.
	if rs.Get(FieldRCounter) == 0 {
		if refInHz < RefInFreqMin || refInHz >= RefInFreqMax {
			return RegisterSet{}, fmt.Errorf("%w: REFin %d Hz outside [%d, %d)",
				ErrInvalidReferenceFrequency, refInHz, RefInFreqMin, RefInFreqMax)
		}
		r := uint32(1)
		if refInHz > pfdFreqFracNEasyMax {
			r = 2 * refInHz / pfdFreqFracNEasyMax
		}
		rs = rs.Set(FieldRefDoubler, 1).
			Set(FieldRDiv2, 1).
			SetRCounter(r)
	}

	tuned, err := Tune(rs, refInHz, outHz)
	if err != nil {
		return RegisterSet{}, err
	}
	return tuned, nil
}

// ActualFrequency inverts the synthesis: it reconstructs the output
// frequency a populated register set produces, in Hz,
//
//	RFout = (INT x fPFD + FRAC x fPFD / MOD) / divider
//
// using integer arithmetic throughout. For a set produced by Plan or
// Tune the result equals the target exactly whenever the target was
// representable with the chosen modulus and divider.
func ActualFrequency(refInHz uint32, rs RegisterSet) (uint64, error) {
	fpfd, err := PFDFrequency(refInHz, rs)
	if err != nil {
		return 0, err
	}

	mod := rs.Get(FieldMod)
	if mod < 2 {
		return 0, fmt.Errorf("%w: modulus not programmed", ErrInvalidOutputFrequency)
	}

	n := uint64(rs.Get(FieldInt))
	frac := uint64(rs.Get(FieldFrac))
	out := (n*uint64(fpfd) + frac*uint64(fpfd)/uint64(mod)) / uint64(rs.RFDivider())
	if out < OutFreqMin || out >= OutFreqMax {
		return 0, fmt.Errorf("%w: register set yields %d Hz", ErrInvalidOutputFrequency, out)
	}
	return out, nil
}
