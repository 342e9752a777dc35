package adf4351

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// WordBus shifts 32-bit register words out to the synthesizer. The
// chip clocks data in MSB first on each rising clock edge; a word is
// therefore transmitted as four bytes, most significant byte first.
type WordBus interface {
	WriteWord(word uint32) error
	Close() error
}

// SPIDevice is the periph.io-backed WordBus.
type SPIDevice struct {
	conn   spi.Conn
	port   spi.PortCloser
	device string
	speed  physic.Frequency
}

// NewSPIDevice opens an SPI port for the synthesizer's DATA/CLK pins.
// The ADF4351 requires SPI mode 0 (CPOL=0, CPHA=0).
func NewSPIDevice(device string, speed uint32) (*SPIDevice, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	port, err := spireg.Open(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI device %s: %w", device, err)
	}

	conn, err := port.Connect(physic.Frequency(speed)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to connect to SPI device: %w", err)
	}

	return &SPIDevice{
		conn:   conn,
		port:   port,
		device: device,
		speed:  physic.Frequency(speed) * physic.Hertz,
	}, nil
}

// Close closes the SPI port.
func (s *SPIDevice) Close() error {
	if s.port != nil {
		return s.port.Close()
	}
	return nil
}

// WriteWord shifts one register word into the chip's 32-bit shift
// register, MSB first. The word is not latched until the LE pulse.
func (s *SPIDevice) WriteWord(word uint32) error {
	if s.conn == nil {
		return fmt.Errorf("%w: SPI device not open", ErrBus)
	}

	tx := []byte{
		byte(word >> 24),
		byte(word >> 16),
		byte(word >> 8),
		byte(word),
	}
	rx := make([]byte, len(tx))

	if err := s.conn.Tx(tx, rx); err != nil {
		return fmt.Errorf("%w: 0x%08X: %v", ErrBus, word, err)
	}
	return nil
}

// DeviceInfo describes the open port for diagnostics.
func (s *SPIDevice) DeviceInfo() string {
	if s.conn == nil {
		return fmt.Sprintf("Device: %s (closed)", s.device)
	}
	return fmt.Sprintf("Device: %s, Speed: %s", s.device, s.speed)
}
