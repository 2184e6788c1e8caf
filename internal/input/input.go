package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionOrbitLeft Action = iota
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionRebuild
	ActionToggleGround
	ActionMoonPhase
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Manager maps physical keys to actions and tracks held and
// just-pressed state per frame
type Manager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a Manager with the default viewer bindings
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.BindKey(glfw.KeyLeft, ActionOrbitLeft)
	m.BindKey(glfw.KeyA, ActionOrbitLeft)
	m.BindKey(glfw.KeyRight, ActionOrbitRight)
	m.BindKey(glfw.KeyD, ActionOrbitRight)
	m.BindKey(glfw.KeyUp, ActionOrbitUp)
	m.BindKey(glfw.KeyW, ActionOrbitUp)
	m.BindKey(glfw.KeyDown, ActionOrbitDown)
	m.BindKey(glfw.KeyS, ActionOrbitDown)
	m.BindKey(glfw.KeyEqual, ActionZoomIn)
	m.BindKey(glfw.KeyMinus, ActionZoomOut)
	m.BindKey(glfw.KeyR, ActionRebuild)
	m.BindKey(glfw.KeyT, ActionToggleGround)
	m.BindKey(glfw.KeyM, ActionMoonPhase)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action
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

// HandleKeyEvent records a key event; call it from the key callback
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range m.keyToActions[key] {
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		m.currentState[act] = pressed
	}
}

// SetKeyCallback routes the window's key events to the manager
func (m *Manager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the just-pressed flags; call it once per frame
// after all input checks
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.justPressed[:])
}

// IsActive returns true while the action is held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}
