package component

// Ticks per animation frame.
const (
	PlayerFrameTicks      = 3
	EnemyAttackFrameTicks = 5
	EffectFrameTicks      = 3
)

// Frame counts shared by every actor.
const (
	PlayerAttackFrames = 4
	PlayerDamageFrames = 4
)

// TimedAction is a fixed-length wait measured in ticks: Frames frames of
// TicksPerFrame ticks each.
type TimedAction struct {
	Frames        int
	TicksPerFrame int
	Frame         int
	counter       int
}

// NewTimedAction returns a sequence positioned on its first frame.
func NewTimedAction(frames, ticksPerFrame int) TimedAction {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return TimedAction{Frames: frames, TicksPerFrame: ticksPerFrame}
}

// Advance moves the sequence forward by one tick and reports whether the
// frame index has reached the sequence length.
func (a *TimedAction) Advance() bool {
	if a.Done() {
		return true
	}
	a.counter++
	if a.counter >= a.TicksPerFrame {
		a.counter = 0
		a.Frame++
	}
	return a.Done()
}

// Done reports whether every frame has been shown.
func (a TimedAction) Done() bool { return a.Frame >= a.Frames }

// AnimState is the behaviour/animation tag of an actor.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimAttacking
	AnimDamaged
	AnimDying
)

func (s AnimState) String() string {
	switch s {
	case AnimAttacking:
		return "attacking"
	case AnimDamaged:
		return "damaged"
	case AnimDying:
		return "dying"
	default:
		return "alive"
	}
}

// Animation pairs a state with the timed action that ends it.
type Animation struct {
	State  AnimState
	Action TimedAction
}

// Play switches to state s for frames frames of ticksPerFrame ticks.
func (a *Animation) Play(s AnimState, frames, ticksPerFrame int) {
	a.State = s
	a.Action = NewTimedAction(frames, ticksPerFrame)
}

// Step advances one tick. It returns true when the running sequence is
// complete. Attacking and damaged sequences fall back to idle on completion;
// dying stays dying so the owner can be removed.
func (a *Animation) Step() bool {
	if a.State == AnimIdle {
		return false
	}
	if !a.Action.Advance() {
		return false
	}
	if a.State != AnimDying {
		a.State = AnimIdle
		a.Action = TimedAction{}
	}
	return true
}

// Finished reports a completed dying sequence.
func (a Animation) Finished() bool {
	return a.State == AnimDying && a.Action.Done()
}

// Frame returns the current frame index for the presentation.
func (a Animation) Frame() int { return a.Action.Frame }
