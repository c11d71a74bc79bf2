package parallax

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Well-known state names.
const (
	StateRunning = "running"
	StateJumping = "jumping"
)

// Character is a finite-state machine over a fixed set of named states.
// Rendering and input are delegated to the current state, whose returned
// transitions are applied through SetState.
type Character struct {
	ID   uuid.UUID
	Name string

	current string
	states  map[string]State

	sink EventSink
	tick uint64
}

// NewCharacter returns a character in state initial. The states map is
// copied and fixed from then on.
func NewCharacter(name, initial string, states map[string]State) (*Character, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%w: character %q has no states", ErrInvalidConfig, name)
	}
	fixed := make(map[string]State, len(states))
	for k, st := range states {
		if st == nil {
			return nil, fmt.Errorf("%w: character %q state %q is nil", ErrInvalidConfig, name, k)
		}
		fixed[k] = st
	}
	if _, ok := fixed[initial]; !ok {
		return nil, fmt.Errorf("%w: character %q initial state %q", ErrUnknownState, name, initial)
	}
	return &Character{
		ID:      uuid.New(),
		Name:    name,
		current: initial,
		states:  fixed,
	}, nil
}

// CurrentState returns the name of the active state.
func (c *Character) CurrentState() string { return c.current }

// State returns the state registered under name.
func (c *Character) State(name string) (State, bool) {
	st, ok := c.states[name]
	return st, ok
}

// StateNames returns the registered state names in sorted order.
func (c *Character) StateNames() []string {
	names := make([]string, 0, len(c.states))
	for k := range c.states {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetState switches to the named state. Unknown names leave the character
// unchanged and return an error wrapping ErrUnknownState.
func (c *Character) SetState(name string) error {
	if _, ok := c.states[name]; !ok {
		return fmt.Errorf("%w: character %q has no state %q", ErrUnknownState, c.Name, name)
	}
	from := c.current
	c.current = name
	if c.sink != nil {
		c.sink.EmitStateChange(StateChangeEvent{
			CharacterID: c.ID,
			Character:   c.Name,
			From:        from,
			To:          name,
			Tick:        c.tick,
		})
	}
	return nil
}

// Render implements Entity.
func (c *Character) Render(dst Surface) error {
	c.tick++
	return c.apply(c.states[c.current].Render(dst))
}

// HandleKeydown implements Entity.
func (c *Character) HandleKeydown(key Key) error {
	return c.apply(c.states[c.current].HandleKeydown(key))
}

// SetEventSink sets the receiver of state change events. Nil disables them.
func (c *Character) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *Character) apply(t Transition) error {
	if !t.Changes() {
		return nil
	}
	return c.SetState(t.To)
}
