package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionTogglePause
	ActionToggleOverlay
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Manager tracks keyboard state and maps physical keys to logical actions.
// Press/release edges are detected per event, so a held key yields exactly
// one JustPressed per physical press.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a Manager with the default bindings: WASD plus the
// arrow keys for movement, Space pauses the animation, V toggles the stats
// overlay, Escape quits.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.BindKey(glfw.KeyDown, ActionMoveBackward)
	m.BindKey(glfw.KeyLeft, ActionMoveLeft)
	m.BindKey(glfw.KeyRight, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionTogglePause)
	m.BindKey(glfw.KeyV, ActionToggleOverlay)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys can be
// bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// Call this from the GLFW key callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, exists := m.keyToActions[key]
	m.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	m.mu.Lock()
	for _, act := range actions {
		// Detect edges immediately when the event arrives
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !isPressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = isPressed
	}
	m.mu.Unlock()
}

// PostUpdate must be called at the end of each frame to clear edge flags.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
