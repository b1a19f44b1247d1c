package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestDefaultFallingTextSpec(t *testing.T) {
	spec, err := DefaultFallingTextSpec()
	if err != nil {
		t.Fatalf("DefaultFallingTextSpec: %v", err)
	}
	if spec.Trigger != "hover" {
		t.Fatalf("trigger = %q, want hover", spec.Trigger)
	}
	if spec.Gravity != 0.56 {
		t.Fatalf("gravity = %v, want 0.56", spec.Gravity)
	}
	if spec.FontSize != "2rem" {
		t.Fatalf("fontSize = %q, want 2rem", spec.FontSize)
	}
	if spec.PointerStiffness != 0.9 {
		t.Fatalf("stiffness = %v, want 0.9", spec.PointerStiffness)
	}
	if spec.BackgroundColor != "transparent" || spec.HighlightColor != "#5227FF" {
		t.Fatalf("colors = %q %q", spec.BackgroundColor, spec.HighlightColor)
	}
	if spec.Wireframes || !spec.Walls {
		t.Fatalf("wireframes=%v walls=%v", spec.Wireframes, spec.Walls)
	}
	if spec.Text == "" || len(spec.HighlightWords) == 0 {
		t.Fatalf("expected default text and highlights")
	}
}

func TestParseFallingTextSpecKeepsDefaults(t *testing.T) {
	spec, err := ParseFallingTextSpec([]byte("text: Hello world\ntrigger: click\ngravity: 1.2\n"))
	if err != nil {
		t.Fatalf("ParseFallingTextSpec: %v", err)
	}
	if spec.Text != "Hello world" || spec.Trigger != "click" || spec.Gravity != 1.2 {
		t.Fatalf("overrides not applied: %+v", spec)
	}
	if spec.FontSize != "2rem" || spec.JitterChance != 0.05 || spec.Wiggle != 1.5 {
		t.Fatalf("defaults lost: %+v", spec)
	}
}

func TestParseFallingTextSpecSyntaxError(t *testing.T) {
	if _, err := ParseFallingTextSpec([]byte("text: [unclosed\n")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadFallingTextSpecFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("text: from disk\nwireframes: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec, err := LoadFallingTextSpec(path)
	if err != nil {
		t.Fatalf("LoadFallingTextSpec: %v", err)
	}
	if spec.Text != "from disk" || !spec.Wireframes {
		t.Fatalf("unexpected spec: %+v", spec)
	}
}

func TestLoadFallingTextSpecMissing(t *testing.T) {
	if _, err := LoadFallingTextSpec(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"liveliness.tengo", "scripts/liveliness.tengo", "prefabs/scripts/liveliness.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q): empty", name)
		}
	}
}

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"yaml write", fsnotify.Event{Name: "prefabs/falling_text.yaml", Op: fsnotify.Write}, true},
		{"yml create", fsnotify.Event{Name: "a.YML", Op: fsnotify.Create}, true},
		{"script rename", fsnotify.Event{Name: "scripts/liveliness.tengo", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "falling_text.yaml", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
		{"lua script", fsnotify.Event{Name: "old.lua", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevantEvent(tt.ev); got != tt.want {
				t.Fatalf("relevantEvent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebouncer(t *testing.T) {
	d := debouncer{window: 100 * time.Millisecond, last: make(map[string]time.Time)}
	start := time.Unix(1000, 0)
	if !d.allow("a.yaml", start) {
		t.Fatalf("first event should pass")
	}
	if d.allow("a.yaml", start.Add(50*time.Millisecond)) {
		t.Fatalf("burst event should be dropped")
	}
	if !d.allow("b.yaml", start.Add(50*time.Millisecond)) {
		t.Fatalf("other file should pass")
	}
	if !d.allow("a.yaml", start.Add(200*time.Millisecond)) {
		t.Fatalf("event after window should pass")
	}
}
