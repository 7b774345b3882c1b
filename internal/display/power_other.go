//go:build !linux

package display

import "fmt"

// PowerSwitch needs the Linux GPIO character device.
type PowerSwitch struct{}

// NewPowerSwitch always fails off Linux.
func NewPowerSwitch(chip string, offset int) (*PowerSwitch, error) {
	return nil, fmt.Errorf("display: power line: %w", ErrUnsupported)
}

func (p *PowerSwitch) On() error    { return ErrUnsupported }
func (p *PowerSwitch) Close() error { return nil }
