//go:build linux

package display

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// PowerSwitch drives the GPIO line that enables the strip's supply.
type PowerSwitch struct {
	line *gpiocdev.Line
}

// NewPowerSwitch requests offset on chip as an output, initially off.
func NewPowerSwitch(chip string, offset int) (*PowerSwitch, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("display: power line %s:%d: %w", chip, offset, err)
	}
	return &PowerSwitch{line: line}, nil
}

// On enables the supply.
func (p *PowerSwitch) On() error { return p.line.SetValue(1) }

// Close switches the supply off and releases the line.
func (p *PowerSwitch) Close() error {
	return errors.Join(p.line.SetValue(0), p.line.Close())
}
