package gallery

import (
	"github.com/five82/skyview/internal/apod"
)

// Transition is a pure state update. Methods such as State.Prev can be used
// directly as method expressions.
type Transition func(State) State

// Controller is the single owner of the presentation State. User input goes
// through Apply, which keeps the history collaborator in step; locations
// coming back from history go through Restore, which does not push.
type Controller struct {
	state   State
	history History
}

// NewController starts from NewState. history may be nil.
func NewController(history History) *Controller {
	return &Controller{state: NewState(), history: history}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Apply runs t and records a history entry if navigation changed.
func (c *Controller) Apply(t Transition) State {
	before := c.state.nav
	c.state = t(c.state)
	c.sync(before, c.state.nav)
	return c.state
}

// Restore moves to the state described by path without pushing history.
func (c *Controller) Restore(path string) State {
	c.state = c.state.Navigate(ResolveFromLocation(path))
	return c.state
}

// OnFetchResult feeds a fetch outcome in. A failure leaves the state alone
// and is returned for display.
func (c *Controller) OnFetchResult(records []apod.Record, err error) error {
	if err != nil {
		return err
	}
	c.Apply(func(s State) State { return s.WithCollection(records) })
	return nil
}

// Select opens key.
func (c *Controller) Select(key string) State {
	return c.Apply(func(s State) State { return s.Select(key) })
}

// Search changes the title filter.
func (c *Controller) Search(text string) State {
	return c.Apply(func(s State) State { return s.WithSearch(text) })
}

func (c *Controller) sync(before, after Nav) {
	if c.history == nil || before == after {
		return
	}
	if after.Location() == c.history.Location() {
		return
	}
	switch after.Mode {
	case ModeOpen, ModeNotFound:
		c.history.PushDetail(after.Key)
	default:
		c.history.PushList()
	}
}
