package component

import (
	"fmt"
	"strings"
)

// TriggerMode selects which event activates the effect.
type TriggerMode int

const (
	TriggerHover TriggerMode = iota
	TriggerClick
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerClick:
		return "click"
	default:
		return "hover"
	}
}

// ParseTriggerMode accepts "hover" and "click". An empty string is hover.
func ParseTriggerMode(s string) (TriggerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hover":
		return TriggerHover, nil
	case "click":
		return TriggerClick, nil
	default:
		return TriggerHover, fmt.Errorf("component: unknown trigger mode %q", s)
	}
}

type ActivationState int

const (
	StateIdle ActivationState = iota
	StateActive
)

func (s ActivationState) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// TriggerEvent is an input event that may activate the effect.
type TriggerEvent int

const (
	TriggerEventHoverEnter TriggerEvent = iota + 1
	TriggerEventClick
)

// Activation is the idle -> active state machine of one activation cycle.
type Activation struct {
	Mode  TriggerMode
	State ActivationState
}

// Fire applies an event. It reports true only for the single transition from
// idle to active; every other event is a no-op.
func (a *Activation) Fire(ev TriggerEvent) bool {
	if a == nil || a.State != StateIdle {
		return false
	}
	switch {
	case a.Mode == TriggerHover && ev == TriggerEventHoverEnter:
	case a.Mode == TriggerClick && ev == TriggerEventClick:
	default:
		return false
	}
	a.State = StateActive
	return true
}

// Reset returns the machine to idle for a new activation cycle.
func (a *Activation) Reset() {
	if a == nil {
		return
	}
	a.State = StateIdle
}

func (a *Activation) Active() bool {
	return a != nil && a.State == StateActive
}

var ActivationComponent = NewComponent[Activation]()
