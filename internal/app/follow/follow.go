package follow

import (
	"context"

	"github.com/looplab/fsm"

	"metroems/internal/config/logger"
)

// FSM states
const (
	Following = "following"
	Paused    = "paused"
)

// FSM events
const (
	Detach = "detach"
	Attach = "attach"
	Jump   = "jump"
)

// Command is the scroll effect a consumer must apply
type Command int

// Scroll commands
const (
	None Command = iota
	ScrollToBottom
)

// Controller decides whether buffer mutations scroll the view to the bottom.
// Scroll position and buffer mutation are independent inputs.
type Controller struct {
	machine   *fsm.FSM
	threshold int
	log       logger.Logger
}

// NewController creates a controller in the following state
func NewController(threshold int, log logger.Logger) *Controller {
	c := &Controller{
		threshold: threshold,
		log:       log,
	}

	c.machine = fsm.NewFSM(
		Following,
		fsm.Events{
			{Name: Detach, Src: []string{Following}, Dst: Paused},
			{Name: Attach, Src: []string{Paused}, Dst: Following},
			{Name: Jump, Src: []string{Paused}, Dst: Following},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("FOLLOW %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)

	return c
}

// State returns the current follow state
func (c *Controller) State() string {
	return c.machine.Current()
}

// IsFollowing reports whether mutations scroll to the bottom
func (c *Controller) IsFollowing() bool {
	return c.machine.Is(Following)
}

// Scrolled feeds the distance in pixels between the scroll position and the bottom
func (c *Controller) Scrolled(distance int) {
	if distance > c.threshold {
		c.fire(Detach)
		return
	}

	c.fire(Attach)
}

// Mutated reports a buffer change and returns the resulting scroll command
func (c *Controller) Mutated() Command {
	if c.IsFollowing() {
		return ScrollToBottom
	}

	return None
}

// JumpToBottom resumes following regardless of state and always scrolls
func (c *Controller) JumpToBottom() Command {
	c.fire(Jump)

	return ScrollToBottom
}

func (c *Controller) fire(event string) {
	if !c.machine.Can(event) {
		return
	}

	if err := c.machine.Event(context.Background(), event); err != nil {
		c.log.Debug().Err(err).Msgf("Follow event '%s' rejected", event)
	}
}
