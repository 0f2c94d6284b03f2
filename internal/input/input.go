// Package input implements a standard NES controller port: an 8-bit
// shift register loaded from the host keyboard on strobe and drained
// one bit per read.
// Grounded on console/controller.go.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Button order matches the shift-register bit order read off real
// hardware: A, B, Select, Start, Up, Down, Left, Right.
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var defaultKeys = [8]ebiten.Key{
	ebiten.KeyA,     // A
	ebiten.KeyB,     // B
	ebiten.KeySpace, // Select
	ebiten.KeyEnter, // Start
	ebiten.KeyUp,    // Up
	ebiten.KeyDown,  // Down
	ebiten.KeyLeft,  // Left
	ebiten.KeyRight, // Right
}

// Controller is a keyboard-polled NES controller.
type Controller struct {
	keys    [8]ebiten.Key
	strobe  bool
	buttons uint8
	idx     uint8
}

// New returns a controller using the standard key bindings.
func New() *Controller {
	return &Controller{keys: defaultKeys}
}

// Write handles a strobe write ($4016). While strobe stays high the
// controller continuously re-polls button 0; on the falling edge the
// button snapshot is frozen and reads begin walking it bit by bit.
func (c *Controller) Write(val uint8) {
	if val&1 != 0 {
		c.strobe = true
		c.poll()
		c.idx = 0
		return
	}
	c.strobe = false
}

// Read returns the next bit of the latched button state. Past the 8th
// read, hardware returns 1.
func (c *Controller) Read() uint8 {
	if c.strobe {
		c.poll()
		return c.buttons & 1
	}
	if c.idx > 7 {
		return 1
	}
	bit := (c.buttons >> c.idx) & 1
	c.idx++
	return bit
}

func (c *Controller) poll() {
	var b uint8
	for i, key := range c.keys {
		if ebiten.IsKeyPressed(key) {
			b |= 1 << i
		}
	}
	c.buttons = b
}
