package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical command, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSpeedBoost
	ActionToggleWireframe
	ActionQuit
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys to logical actions and tracks per-frame
// pressed/just-pressed state plus mouse deltas.
type Manager struct {
	mu sync.RWMutex

	// One key can map to multiple actions.
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	mouseX, mouseY       float64
	mouseDX, mouseDY     float64
	pendingDX, pendingDY float64
	mouseInitialized     bool
}

// NewManager returns a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftControl, ActionMoveDown)
	m.BindKey(glfw.KeyLeftShift, ActionSpeedBoost)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys can map to
// the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent updates action state from a key event. Edges are detected
// as events arrive, not at frame boundaries.
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

// HandleCursorEvent accumulates mouse movement. The first event only seeds
// the position so the opening frame does not see a huge delta.
func (m *Manager) HandleCursorEvent(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mouseInitialized {
		m.mouseX, m.mouseY = x, y
		m.mouseInitialized = true
		return
	}
	m.pendingDX += x - m.mouseX
	// Screen y grows downward.
	m.pendingDY += m.mouseY - y
	m.mouseX, m.mouseY = x, y
}

// InstallCallbacks wires the manager into the window's key and cursor
// callbacks. Call once during setup.
func (m *Manager) InstallCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		m.HandleCursorEvent(x, y)
	})
}

// PostUpdate rolls frame state over: edge flags reset and accumulated mouse
// deltas become the next frame's readings. Call once at the end of each
// frame, after all input checks.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.justPressed {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.mouseDX, m.mouseDY = m.pendingDX, m.pendingDY
	m.pendingDX, m.pendingDY = 0, 0
}

// IsActive reports whether the action is currently held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed reports whether the action went down this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether the action went up this frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}

// MouseDelta returns the cursor movement committed by the last PostUpdate.
func (m *Manager) MouseDelta() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mouseDX, m.mouseDY
}
