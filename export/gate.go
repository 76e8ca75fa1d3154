package export

import "sync/atomic"

// CaptureGate coordinates capture requests across the capture/export
// boundary without locking. An export request arms the gate; the render loop
// consumes it once at the start of its next pass and performs a capture if
// it was armed. A request arriving while an export is in flight simply
// leaves the gate armed for the following pass.
type CaptureGate struct {
	armed atomic.Bool
}

// Arm requests a capture on the next render pass. Arming an already armed
// gate coalesces with the pending request.
func (g *CaptureGate) Arm() { g.armed.Store(true) }

// Consume disarms the gate and reports whether it was armed.
func (g *CaptureGate) Consume() bool { return g.armed.Swap(false) }

// Armed reports the gate state without consuming it.
func (g *CaptureGate) Armed() bool { return g.armed.Load() }
