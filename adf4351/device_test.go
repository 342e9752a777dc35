package adf4351

import (
	"errors"
	"fmt"
	"testing"
)

// recorder captures the interleaved bus and pin activity so tests can
// check word order against latch pulses.
type recorder struct {
	events []string
}

type fakeBus struct {
	rec      *recorder
	words    []uint32
	failWord int // 1-based index of the write that fails, 0 = never
}

func (b *fakeBus) WriteWord(word uint32) error {
	if b.failWord != 0 && len(b.words)+1 == b.failWord {
		return fmt.Errorf("%w: simulated", ErrBus)
	}
	b.words = append(b.words, word)
	b.rec.events = append(b.rec.events, fmt.Sprintf("word %d", word&addressMask))
	return nil
}

func (b *fakeBus) Close() error { return nil }

type fakePins struct {
	rec *recorder
}

func (p *fakePins) SetChipEnable(high bool) error {
	p.rec.events = append(p.rec.events, fmt.Sprintf("ce %v", high))
	return nil
}

func (p *fakePins) SetLoadEnable(high bool) error {
	p.rec.events = append(p.rec.events, fmt.Sprintf("le %v", high))
	return nil
}

func (p *fakePins) Close() error { return nil }

func TestWriteRegisterSetOrderAndLatching(t *testing.T) {
	rec := &recorder{}
	bus := &fakeBus{rec: rec}
	dev := NewDevice(bus, &fakePins{rec: rec})

	rs, err := Plan(25_000_000, 63_000_000, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %s", err)
	}
	if err := dev.WriteRegisterSet(rs); err != nil {
		t.Fatalf("WriteRegisterSet failed: %s", err)
	}

	if len(bus.words) != registerCount {
		t.Fatalf("wrote %d words, want %d", len(bus.words), registerCount)
	}
	for i, w := range bus.words {
		want := uint32(registerCount - 1 - i)
		if w&addressMask != want {
			t.Errorf("write %d went to register %d, want %d", i, w&addressMask, want)
		}
	}

	// Every word must be followed by its own LE pulse before the next
	// word goes out.
	var want []string
	for r := registerCount - 1; r >= 0; r-- {
		want = append(want, fmt.Sprintf("word %d", r), "le true", "le false")
	}
	if len(rec.events) != len(want) {
		t.Fatalf("event count = %d, want %d: %v", len(rec.events), len(want), rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestWriteRegisterSetAbortsOnBusError(t *testing.T) {
	rec := &recorder{}
	bus := &fakeBus{rec: rec, failWord: 3}
	dev := NewDevice(bus, &fakePins{rec: rec})

	rs, err := Plan(25_000_000, 63_000_000, DefaultOptions())
	if err != nil {
		t.Fatalf("Plan failed: %s", err)
	}

	err = dev.WriteRegisterSet(rs)
	if !errors.Is(err, ErrBus) {
		t.Fatalf("error = %v, want ErrBus", err)
	}
	if len(bus.words) != 2 {
		t.Errorf("wrote %d words after failure, want 2 (no retry, no continuation)", len(bus.words))
	}
}

func TestEnableDisable(t *testing.T) {
	rec := &recorder{}
	dev := NewDevice(&fakeBus{rec: rec}, &fakePins{rec: rec})

	if err := dev.Enable(); err != nil {
		t.Fatalf("Enable failed: %s", err)
	}
	if err := dev.Disable(); err != nil {
		t.Fatalf("Disable failed: %s", err)
	}
	if len(rec.events) != 2 || rec.events[0] != "ce true" || rec.events[1] != "ce false" {
		t.Errorf("CE events = %v", rec.events)
	}
}
