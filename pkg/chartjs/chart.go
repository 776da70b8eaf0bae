package chartjs

import (
	"errors"
	"fmt"
	"sync"
)

// Canvas is a chart mount point. Draw binds an encoded configuration to the
// canvas and must fail while another chart is still bound; Clear unbinds it.
type Canvas interface {
	ID() string
	Draw(spec []byte) error
	Clear()
}

// Chart is a configuration bound to a canvas.
type Chart struct {
	mu        sync.Mutex
	canvas    Canvas
	config    Config
	destroyed bool
}

// New encodes cfg and draws it on canvas.
func New(canvas Canvas, cfg Config) (*Chart, error) {
	if canvas == nil {
		return nil, errors.New("chartjs: nil canvas")
	}

	spec, err := cfg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("chartjs: encode %s: %w", canvas.ID(), err)
	}

	if err := canvas.Draw(spec); err != nil {
		return nil, fmt.Errorf("chartjs: draw %s: %w", canvas.ID(), err)
	}

	return &Chart{canvas: canvas, config: cfg}, nil
}

func (c *Chart) Config() Config {
	return c.config
}

func (c *Chart) MountID() string {
	return c.canvas.ID()
}

// Destroy releases the canvas. Calling it twice is a no-op.
func (c *Chart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.destroyed = true
	c.canvas.Clear()
}

func (c *Chart) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}
