package plugins

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/linht/synth-manager/adf4351"
)

// SynthPlugin controls the ADF4351 frequency synthesizer.
// Uses transient connections - initializes and releases for each operation
type SynthPlugin struct {
	config SynthConfig

	mu     sync.Mutex
	lastRS adf4351.RegisterSet
	tuned  bool
}

// SynthConfig holds the synthesizer configuration
type SynthConfig struct {
	ADF4351 struct {
		SPIDevice string `yaml:"spi_device"`
		SPISpeed  uint32 `yaml:"spi_speed"`
		GPIOChip  string `yaml:"gpio_chip"`
		CEPin     int    `yaml:"ce_pin"`
		LEPin     int    `yaml:"le_pin"`
		// RefFreq is the REFin frequency in Hz (e.g. a 25 MHz TCXO)
		RefFreq uint32 `yaml:"ref_freq"`

		Options adf4351.Options `yaml:"options"`
	} `yaml:"adf4351"`
}

// NewSynthPlugin creates a new synthesizer plugin instance
func NewSynthPlugin(cfg SynthConfig) (*SynthPlugin, error) {
	// Set defaults if not configured
	if cfg.ADF4351.SPISpeed == 0 {
		cfg.ADF4351.SPISpeed = 500000 // Default 500 kHz
	}
	if cfg.ADF4351.RefFreq == 0 {
		cfg.ADF4351.RefFreq = 25000000 // Default 25 MHz TCXO
	}
	if cfg.ADF4351.Options == (adf4351.Options{}) {
		cfg.ADF4351.Options = adf4351.DefaultOptions()
	}

	slog.Info("Synth plugin initializing",
		"spi_device", cfg.ADF4351.SPIDevice,
		"spi_speed", cfg.ADF4351.SPISpeed,
		"gpio_chip", cfg.ADF4351.GPIOChip,
		"ce_pin", cfg.ADF4351.CEPin,
		"le_pin", cfg.ADF4351.LEPin,
		"ref_freq", cfg.ADF4351.RefFreq)

	return &SynthPlugin{
		config: cfg,
	}, nil
}

// Name returns the plugin identifier
func (p *SynthPlugin) Name() string {
	return "synth"
}

// RegisterRoutes adds the plugin's HTTP routes
func (p *SynthPlugin) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/synth")

	// Pure planning, no hardware access
	api.Get("/plan", p.handlePlan)

	// Device control endpoints
	api.Post("/frequency", p.handleSetFrequency)
	api.Get("/frequency", p.handleGetFrequency)
	api.Get("/registers", p.handleGetRegisters)
	api.Post("/enable", p.handleEnable)
	api.Post("/disable", p.handleDisable)
	api.Get("/status", p.handleStatus)

	slog.Info("Synth plugin routes registered")
}

// Shutdown performs cleanup
func (p *SynthPlugin) Shutdown() error {
	// No persistent resources to clean up
	return nil
}

// withDevice executes a function with a temporary device connection
func (p *SynthPlugin) withDevice(fn func(*adf4351.Device) error) error {
	cfg := p.config.ADF4351
	dev, err := adf4351.Open(cfg.SPIDevice, cfg.SPISpeed, cfg.GPIOChip, cfg.CEPin, cfg.LEPin)
	if err != nil {
		return err
	}
	defer dev.Close()

	return fn(dev)
}

// planSummary renders a plan for API responses
func (p *SynthPlugin) planSummary(rs adf4351.RegisterSet) map[string]interface{} {
	ref := p.config.ADF4351.RefFreq

	words := rs.Words()
	hexWords := make([]string, len(words))
	for i, w := range words {
		hexWords[i] = fmt.Sprintf("0x%08X", w)
	}

	summary := map[string]interface{}{
		"words":      hexWords, // R5 first, hardware write order
		"int":        rs.Get(adf4351.FieldInt),
		"frac":       rs.Get(adf4351.FieldFrac),
		"mod":        rs.Get(adf4351.FieldMod),
		"rf_divider": rs.RFDivider(),
		"prescaler":  rs.Get(adf4351.FieldPrescaler),
	}

	if fpfd, err := adf4351.PFDFrequency(ref, rs); err == nil {
		summary["pfd_freq"] = fpfd
	}
	if actual, err := adf4351.ActualFrequency(ref, rs); err == nil {
		summary["actual_freq"] = actual
	}

	return summary
}

func (p *SynthPlugin) handlePlan(c *fiber.Ctx) error {
	hz, err := strconv.ParseUint(c.Query("hz"), 10, 64)
	if err != nil {
		return SendErrorMessage(c, 400, "Invalid or missing hz query parameter")
	}

	rs, err := adf4351.Plan(p.config.ADF4351.RefFreq, hz, p.config.ADF4351.Options)
	if err != nil {
		return SendError(c, 422, err)
	}

	return SendSuccess(c, p.planSummary(rs), "")
}

func (p *SynthPlugin) handleSetFrequency(c *fiber.Ctx) error {
	var req struct {
		Frequency uint64 `json:"frequency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return SendErrorMessage(c, 400, "Invalid request body")
	}

	rs, err := adf4351.Plan(p.config.ADF4351.RefFreq, req.Frequency, p.config.ADF4351.Options)
	if err != nil {
		return SendError(c, 422, err)
	}

	err = p.withDevice(func(dev *adf4351.Device) error {
		if err := dev.Enable(); err != nil {
			return err
		}
		return dev.WriteRegisterSet(rs)
	})
	if err != nil {
		slog.Error("Failed to write register set", "error", err)
		return SendError(c, 500, err)
	}

	p.mu.Lock()
	p.lastRS = rs
	p.tuned = true
	p.mu.Unlock()

	slog.Info("Frequency set", "frequency", req.Frequency)
	return SendSuccess(c, p.planSummary(rs), "Frequency set successfully")
}

func (p *SynthPlugin) handleGetFrequency(c *fiber.Ctx) error {
	p.mu.Lock()
	rs, tuned := p.lastRS, p.tuned
	p.mu.Unlock()

	if !tuned {
		return SendErrorMessage(c, 404, "No frequency has been programmed")
	}

	actual, err := adf4351.ActualFrequency(p.config.ADF4351.RefFreq, rs)
	if err != nil {
		return SendError(c, 500, err)
	}

	return SendSuccess(c, map[string]interface{}{
		"frequency": actual,
	}, "")
}

func (p *SynthPlugin) handleGetRegisters(c *fiber.Ctx) error {
	p.mu.Lock()
	rs, tuned := p.lastRS, p.tuned
	p.mu.Unlock()

	if !tuned {
		return SendErrorMessage(c, 404, "No frequency has been programmed")
	}

	return SendSuccess(c, p.planSummary(rs), "")
}

func (p *SynthPlugin) handleEnable(c *fiber.Ctx) error {
	err := p.withDevice(func(dev *adf4351.Device) error {
		return dev.Enable()
	})
	if err != nil {
		slog.Error("Failed to enable synthesizer", "error", err)
		return SendError(c, 500, err)
	}

	slog.Info("Synthesizer enabled")
	return SendSuccess(c, nil, "Synthesizer enabled")
}

func (p *SynthPlugin) handleDisable(c *fiber.Ctx) error {
	err := p.withDevice(func(dev *adf4351.Device) error {
		return dev.Disable()
	})
	if err != nil {
		slog.Error("Failed to disable synthesizer", "error", err)
		return SendError(c, 500, err)
	}

	slog.Info("Synthesizer disabled")
	return SendSuccess(c, nil, "Synthesizer disabled")
}

func (p *SynthPlugin) handleStatus(c *fiber.Ctx) error {
	cfg := p.config.ADF4351

	p.mu.Lock()
	tuned := p.tuned
	p.mu.Unlock()

	return SendSuccess(c, map[string]interface{}{
		"spi_device": cfg.SPIDevice,
		"gpio_chip":  cfg.GPIOChip,
		"ref_freq":   cfg.RefFreq,
		"out_min":    adf4351.OutFreqMin,
		"out_max":    adf4351.OutFreqMax,
		"tuned":      tuned,
	}, "")
}

// Register the plugin
func init() {
	Register("synth", func(config interface{}) (Plugin, error) {
		cfg, ok := config.(SynthConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config for synth plugin")
		}
		return NewSynthPlugin(cfg)
	})
}
