package catchaos

// Key is a raw key the sampler understands.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyJump
)

// Direction is a horizontal move intent.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Intent is the input state consumed by one tick.
type Intent struct {
	Left  bool // Move-left held
	Right bool // Move-right held
	Jump  bool // A jump edge arrived since the previous tick
}

// Sampler turns key-down/key-up events into a persistent intent.
// Holds are level triggered; jump is edge triggered, one jump per key-down.
type Sampler struct {
	left        bool
	right       bool
	jumpHeld    bool
	jumpPending bool
}

// KeyDown records a key press. Unknown keys are ignored.
func (s *Sampler) KeyDown(k Key) {
	switch k {
	case KeyLeft:
		s.left = true
	case KeyRight:
		s.right = true
	case KeyJump:
		if !s.jumpHeld {
			s.jumpPending = true
		}
		s.jumpHeld = true
	}
}

// KeyUp records a key release. It always clears the key's own hold flag.
func (s *Sampler) KeyUp(k Key) {
	switch k {
	case KeyLeft:
		s.left = false
	case KeyRight:
		s.right = false
	case KeyJump:
		s.jumpHeld = false
	}
}

// SetMove sets a hold flag directly.
func (s *Sampler) SetMove(d Direction, held bool) {
	switch d {
	case DirLeft:
		s.left = held
	case DirRight:
		s.right = held
	}
}

// RequestJump fires the jump trigger without touching the jump hold state.
func (s *Sampler) RequestJump() {
	s.jumpPending = true
}

// Sample returns the current intent and consumes the pending jump.
func (s *Sampler) Sample() Intent {
	in := Intent{
		Left:  s.left,
		Right: s.right,
		Jump:  s.jumpPending,
	}
	s.jumpPending = false
	return in
}

// Reset drops holds and any pending jump. The physical jump-key state is
// kept so a key still held from before the reset does not count as a new edge.
func (s *Sampler) Reset() {
	s.left = false
	s.right = false
	s.jumpPending = false
}

// noteJumpHeld marks the jump key as physically down without queuing a jump.
func (s *Sampler) noteJumpHeld() {
	s.jumpHeld = true
}
