package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionScreenshot
	ActionCount // Sentinel value for array sizing
)

// Manager maps physical keys and buttons to actions and tracks press edges
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewManager creates a manager with Esc bound to quit and the left button to screenshot
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindMouseButton(glfw.MouseButtonLeft, ActionScreenshot)
	return m
}

// BindKey binds a physical key to an action
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to an action
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// Attach installs key and mouse callbacks on the window
func (m *Manager) Attach(w *glfw.Window) {
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.mu.RLock()
		actions := m.keyToActions[key]
		m.mu.RUnlock()
		m.update(actions, action == glfw.Press || action == glfw.Repeat)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		m.mu.RLock()
		actions := m.mouseButtonToActions[button]
		m.mu.RUnlock()
		m.update(actions, action == glfw.Press)
	})
}

func (m *Manager) update(actions []Action, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, act := range actions {
		// Detect edges immediately when the event arrives
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		m.currentState[act] = pressed
	}
}

// JustPressed reports whether the action was pressed since the last PostUpdate
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// PostUpdate clears edge flags. Call at the end of each frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.justPressed[:])
}
