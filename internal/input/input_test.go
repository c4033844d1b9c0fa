package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedFiresOncePerPress(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !m.JustPressed(ActionTogglePause) {
		t.Fatal("expected JustPressed after press event")
	}
	if !m.IsActive(ActionTogglePause) {
		t.Fatal("expected IsActive after press event")
	}

	// Frame boundary clears the edge; the key is still held
	m.PostUpdate()
	if m.JustPressed(ActionTogglePause) {
		t.Error("JustPressed must not persist across frames")
	}
	if !m.IsActive(ActionTogglePause) {
		t.Error("IsActive must persist while held")
	}

	// Key repeat while held is not a new press edge
	m.HandleKeyEvent(glfw.KeySpace, glfw.Repeat)
	if m.JustPressed(ActionTogglePause) {
		t.Error("repeat event must not retrigger JustPressed")
	}
}

func TestReleaseThenPressRetriggers(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	m.PostUpdate()

	m.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	if !m.JustReleased(ActionTogglePause) {
		t.Fatal("expected JustReleased after release event")
	}
	m.PostUpdate()

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !m.JustPressed(ActionTogglePause) {
		t.Error("expected JustPressed on second press")
	}
}

func TestArrowKeysAliasMovement(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Error("arrow up should activate forward movement")
	}

	m.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Error("W should activate forward movement")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if m.IsActive(a) || m.JustPressed(a) {
			t.Fatalf("unbound key activated action %d", a)
		}
	}
}

func TestUnbindKey(t *testing.T) {
	m := NewManager()
	m.UnbindKey(glfw.KeySpace)

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if m.IsActive(ActionTogglePause) {
		t.Error("unbound key must not activate its former action")
	}
}
