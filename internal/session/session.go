// Package session persists lightweight per-file editor state (cursor,
// selection, scroll position) between runs. The session lives as a
// JSON document manipulated in place, so unknown fields written by
// newer versions survive a load/save cycle.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FileState is the remembered state of one file.
type FileState struct {
	Cursor       int
	Selection    int
	HasSelection bool
	Top          int
	Left         int
}

// Manager loads and saves the session document.
type Manager struct {
	path  string
	data  string
	dirty bool
}

// NewManager creates a manager for the session file at path. An empty
// path resolves to the default location under the user state
// directory. A missing or unreadable session file starts fresh.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return nil, err
		}
	}
	m := &Manager{path: path, data: "{}"}
	if raw, err := os.ReadFile(path); err == nil && gjson.ValidBytes(raw) {
		m.data = string(raw)
	}
	return m, nil
}

func defaultPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "textcore", "session.json"), nil
}

// escapeKey neutralizes the path-syntax metacharacters of a file path
// used as a JSON key.
func escapeKey(key string) string {
	r := strings.NewReplacer(`\`, `\\`, `.`, `\.`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `*`, `\*`, `?`, `\?`)
	return r.Replace(key)
}

// FileState returns the remembered state for an absolute path.
func (m *Manager) FileState(absPath string) (FileState, bool) {
	node := gjson.Get(m.data, "files."+escapeKey(absPath))
	if !node.Exists() {
		return FileState{}, false
	}
	return FileState{
		Cursor:       int(node.Get("cursor").Int()),
		Selection:    int(node.Get("selection").Int()),
		HasSelection: node.Get("has_selection").Bool(),
		Top:          int(node.Get("top").Int()),
		Left:         int(node.Get("left").Int()),
	}, true
}

// SetFileState records the state for an absolute path and marks it as
// the active file.
func (m *Manager) SetFileState(absPath string, st FileState) {
	key := "files." + escapeKey(absPath)
	m.data, _ = sjson.Set(m.data, key+".cursor", st.Cursor)
	m.data, _ = sjson.Set(m.data, key+".selection", st.Selection)
	m.data, _ = sjson.Set(m.data, key+".has_selection", st.HasSelection)
	m.data, _ = sjson.Set(m.data, key+".top", st.Top)
	m.data, _ = sjson.Set(m.data, key+".left", st.Left)
	m.data, _ = sjson.Set(m.data, "active_file", absPath)
	m.dirty = true
}

// ActiveFile returns the most recently recorded file path.
func (m *Manager) ActiveFile() string {
	return gjson.Get(m.data, "active_file").String()
}

// Save writes the session document when anything changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	m.data, _ = sjson.Set(m.data, "saved_at", time.Now().Format(time.RFC3339))
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(m.path, []byte(m.data), 0o644); err != nil {
		return err
	}
	m.dirty = false
	return nil
}
