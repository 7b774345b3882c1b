//go:build ws281x

package display

import (
	"fmt"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"

	"ledmatrix/internal/render"
)

// Strip drives a WS281x LED strip through the rpi_ws281x library.
type Strip struct {
	dev  *ws2811.WS2811
	leds []uint32
}

// NewStrip initializes count LEDs on the given GPIO pin. brightness is the
// global 0-255 scale applied by the driver.
func NewStrip(count, pin, brightness int) (*Strip, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].LedCount = count
	opt.Channels[0].GpioPin = pin
	opt.Channels[0].Brightness = brightness

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("display: ws281x: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("display: ws281x init: %w", err)
	}
	return &Strip{dev: dev, leds: dev.Leds(0)}, nil
}

// SetPixel stages c at strip index i.
func (s *Strip) SetPixel(i int, c render.RGB) {
	if i < 0 || i >= len(s.leds) {
		return
	}
	s.leds[i] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Show pushes the staged colors to the strip.
func (s *Strip) Show() error {
	if err := s.dev.Render(); err != nil {
		return fmt.Errorf("display: ws281x render: %w", err)
	}
	return nil
}

// Close releases the driver.
func (s *Strip) Close() error {
	s.dev.Fini()
	return nil
}
