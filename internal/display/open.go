package display

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ledmatrix/internal/render"
)

// ErrUnsupported is returned for sinks not compiled into this binary or not
// available on this platform.
var ErrUnsupported = errors.New("display: unsupported")

// Sink kinds.
const (
	KindTerminal = "terminal"
	KindStrip    = "ws281x"
	KindSnapshot = "snapshot"
	KindNull     = "null"
)

// Kinds lists the accepted sink names.
var Kinds = []string{KindTerminal, KindStrip, KindSnapshot, KindNull}

// Device is an open sink that must be closed on exit.
type Device interface {
	render.Sink
	io.Closer
}

// Options selects and configures a sink.
type Options struct {
	Kind   string
	Layout render.Layout
	Out    io.Writer // terminal output, stdout when nil

	Brightness int
	GPIOPin    int

	// PowerLine < 0 means the strip is always powered.
	PowerChip string
	PowerLine int

	SnapshotDir   string
	SnapshotScale int
	SnapshotEvery int
}

// Open creates the sink described by o.
func Open(o Options) (Device, error) {
	var (
		dev Device
		err error
	)
	switch o.Kind {
	case KindTerminal, "":
		out := o.Out
		if out == nil {
			out = os.Stdout
		}
		dev = NewTerminal(out, o.Layout)
	case KindStrip:
		dev, err = NewStrip(o.Layout.Cells(), o.GPIOPin, o.Brightness)
	case KindSnapshot:
		dev, err = NewSnapshot(o.SnapshotDir, o.Layout, o.SnapshotScale, o.SnapshotEvery)
	case KindNull:
		dev = NewBuffer(o.Layout.Cells())
	default:
		return nil, fmt.Errorf("display: unknown sink %q", o.Kind)
	}
	if err != nil {
		return nil, err
	}
	if o.PowerLine < 0 {
		return dev, nil
	}
	return Powered(dev, o.PowerChip, o.PowerLine)
}

type powered struct {
	Device
	power *PowerSwitch
}

// Powered switches the supply on for dev and off again when it is closed.
func Powered(dev Device, chip string, line int) (Device, error) {
	sw, err := NewPowerSwitch(chip, line)
	if err != nil {
		return nil, errors.Join(err, dev.Close())
	}
	if err := sw.On(); err != nil {
		return nil, errors.Join(fmt.Errorf("display: power on: %w", err), sw.Close(), dev.Close())
	}
	return &powered{Device: dev, power: sw}, nil
}

func (p *powered) Close() error {
	return errors.Join(p.Device.Close(), p.power.Close())
}
