package adf4351

import (
	"fmt"
	"time"
)

// LE pulse timing around each word, per the original driver: settle
// after the SPI transmission, hold LE high, settle after release.
const (
	preLatchDelay  = 5 * time.Microsecond
	latchHoldDelay = 10 * time.Microsecond
	postLatchDelay = 5 * time.Microsecond
)

// Device is the synthesizer behind a word bus and a pin controller.
// All operations are blocking and single-threaded; the device offers
// no transactional update across its six registers, so a failed write
// sequence leaves it partially updated and the only recovery is a full
// rewrite.
type Device struct {
	bus  WordBus
	pins PinController
}

// NewDevice wraps an open bus and pin controller. The Device takes
// ownership of both; Close releases them.
func NewDevice(bus WordBus, pins PinController) *Device {
	return &Device{bus: bus, pins: pins}
}

// Open connects to the synthesizer over a named SPI port and GPIO
// chip.
func Open(spiDevice string, spiSpeed uint32, gpioChip string, cePin, lePin int) (*Device, error) {
	bus, err := NewSPIDevice(spiDevice, spiSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SPI: %w", err)
	}

	pins, err := NewGPIOController(gpioChip, cePin, lePin)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to initialize GPIO: %w", err)
	}

	return NewDevice(bus, pins), nil
}

// Close releases the bus and pins.
func (d *Device) Close() error {
	var errs []error

	if d.bus != nil {
		if err := d.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("bus close error: %w", err))
		}
	}

	if d.pins != nil {
		if err := d.pins.Close(); err != nil {
			errs = append(errs, fmt.Errorf("pin close error: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	return nil
}

// Enable drives CE high, powering the part up subject to the power-
// down register bits.
func (d *Device) Enable() error {
	return d.pins.SetChipEnable(true)
}

// Disable drives CE low, powering the part down.
func (d *Device) Disable() error {
	return d.pins.SetChipEnable(false)
}

// WriteRegister shifts one word out and latches it. The chip routes
// the word to the register named by its low three address bits on the
// rising LE edge.
func (d *Device) WriteRegister(word uint32) error {
	if err := d.bus.WriteWord(word); err != nil {
		return err
	}

	time.Sleep(preLatchDelay)
	if err := d.pins.SetLoadEnable(true); err != nil {
		return err
	}
	time.Sleep(latchHoldDelay)
	if err := d.pins.SetLoadEnable(false); err != nil {
		return err
	}
	time.Sleep(postLatchDelay)

	return nil
}

// WriteRegisterSet writes all six words in the mandatory descending
// order, R5 through R0. The order must not be relaxed: each register
// latches independently by address tag and only the final register 0
// write triggers the VCO band select and phase resync. The first
// failure aborts the sequence and is returned as is; no retry is
// attempted here.
func (d *Device) WriteRegisterSet(rs RegisterSet) error {
	for _, word := range rs.Words() {
		if err := d.WriteRegister(word); err != nil {
			return fmt.Errorf("failed to write register %d: %w", word&addressMask, err)
		}
	}
	return nil
}
