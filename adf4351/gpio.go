package adf4351

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// PinController drives the two control pins the synthesizer needs
// beyond the SPI bus: CE (chip enable, powers the part up or down) and
// LE (load enable; a rising edge latches the shift register into the
// register addressed by its low three bits).
type PinController interface {
	SetChipEnable(high bool) error
	SetLoadEnable(high bool) error
	Close() error
}

// GPIOController is the gpiocdev-backed PinController.
type GPIOController struct {
	chip     *gpiocdev.Chip
	ceLine   *gpiocdev.Line
	leLine   *gpiocdev.Line
	chipPath string
	cePin    int
	lePin    int
}

// NewGPIOController requests the CE and LE lines as outputs. Both
// start low: device disabled, latch idle.
func NewGPIOController(chipPath string, cePin, lePin int) (*GPIOController, error) {
	chip, err := gpiocdev.NewChip(chipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open GPIO chip %s: %w", chipPath, err)
	}

	controller := &GPIOController{
		chip:     chip,
		chipPath: chipPath,
		cePin:    cePin,
		lePin:    lePin,
	}

	ceLine, err := chip.RequestLine(
		cePin,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("adf4351-ce"),
	)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("failed to request CE pin %d: %w", cePin, err)
	}
	controller.ceLine = ceLine

	leLine, err := chip.RequestLine(
		lePin,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("adf4351-le"),
	)
	if err != nil {
		ceLine.Close()
		chip.Close()
		return nil, fmt.Errorf("failed to request LE pin %d: %w", lePin, err)
	}
	controller.leLine = leLine

	return controller, nil
}

// Close releases both lines and the chip.
func (g *GPIOController) Close() error {
	var errs []error

	if g.leLine != nil {
		if err := g.leLine.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close LE line: %w", err))
		}
		g.leLine = nil
	}

	if g.ceLine != nil {
		if err := g.ceLine.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close CE line: %w", err))
		}
		g.ceLine = nil
	}

	if g.chip != nil {
		if err := g.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close GPIO chip: %w", err))
		}
		g.chip = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing GPIO: %v", errs)
	}

	return nil
}

// SetChipEnable drives the CE pin. High powers the part up; low powers
// it down and puts the charge pump into three-state mode.
func (g *GPIOController) SetChipEnable(high bool) error {
	if g.ceLine == nil {
		return fmt.Errorf("%w: CE line not initialized", ErrPin)
	}
	if err := g.ceLine.SetValue(boolValue(high)); err != nil {
		return fmt.Errorf("%w: CE set %v: %v", ErrPin, high, err)
	}
	return nil
}

// SetLoadEnable drives the LE pin.
func (g *GPIOController) SetLoadEnable(high bool) error {
	if g.leLine == nil {
		return fmt.Errorf("%w: LE line not initialized", ErrPin)
	}
	if err := g.leLine.SetValue(boolValue(high)); err != nil {
		return fmt.Errorf("%w: LE set %v: %v", ErrPin, high, err)
	}
	return nil
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
