package component

import "testing"

func TestActivationFire(t *testing.T) {
	tests := []struct {
		name   string
		mode   TriggerMode
		events []TriggerEvent
		fired  []bool
		final  ActivationState
	}{
		{
			name:   "hover_activates_once",
			mode:   TriggerHover,
			events: []TriggerEvent{TriggerEventHoverEnter, TriggerEventHoverEnter, TriggerEventClick},
			fired:  []bool{true, false, false},
			final:  StateActive,
		},
		{
			name:   "click_ignored_in_hover_mode",
			mode:   TriggerHover,
			events: []TriggerEvent{TriggerEventClick, TriggerEventClick},
			fired:  []bool{false, false},
			final:  StateIdle,
		},
		{
			name:   "click_mode",
			mode:   TriggerClick,
			events: []TriggerEvent{TriggerEventHoverEnter, TriggerEventClick, TriggerEventClick},
			fired:  []bool{false, true, false},
			final:  StateActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activation{Mode: tt.mode}
			for i, ev := range tt.events {
				if got := a.Fire(ev); got != tt.fired[i] {
					t.Fatalf("event %d: Fire = %v, want %v", i, got, tt.fired[i])
				}
			}
			if a.State != tt.final {
				t.Fatalf("final state = %s, want %s", a.State, tt.final)
			}
		})
	}
}

func TestActivationReset(t *testing.T) {
	a := &Activation{Mode: TriggerClick}
	if !a.Fire(TriggerEventClick) {
		t.Fatal("expected first click to activate")
	}
	a.Reset()
	if a.Active() {
		t.Fatal("expected idle after reset")
	}
	if !a.Fire(TriggerEventClick) {
		t.Fatal("expected a new cycle to activate again")
	}

	var nilAct *Activation
	if nilAct.Fire(TriggerEventClick) || nilAct.Active() {
		t.Fatal("nil activation must be inert")
	}
}

func TestParseTriggerMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TriggerMode
		wantErr bool
	}{
		{"", TriggerHover, false},
		{"hover", TriggerHover, false},
		{" Click ", TriggerClick, false},
		{"tap", TriggerHover, true},
	}
	for _, tt := range tests {
		got, err := ParseTriggerMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseTriggerMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseTriggerMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestElementPosition(t *testing.T) {
	e := &Element{FlowX: 10, FlowY: 20, Width: 40, Height: 10}
	e.Position()
	if !e.Positioned || e.X != 30 || e.Y != 25 {
		t.Fatalf("unexpected element after Position: %+v", e)
	}
	e.X = 99
	e.Position()
	if e.X != 99 {
		t.Fatalf("Position must not reset an already positioned element")
	}
}
