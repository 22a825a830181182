package prefabs

import (
	"path/filepath"
	"time"
)

// SpecFiles lists every spec LoadTuning reads.
var SpecFiles = []string{PlayerFile, EnemyFile, CameraFile, WeatherFile}

// ModTracker remembers the disk override mod times so a watcher event that
// did not change a file's content can be skipped.
type ModTracker struct {
	seen map[string]time.Time
}

func NewModTracker() *ModTracker {
	return &ModTracker{seen: make(map[string]time.Time)}
}

// Prime records the current mod times of names without reporting them.
func (m *ModTracker) Prime(names ...string) {
	for _, name := range names {
		m.Changed(name)
	}
}

// Changed reports whether the override for name (a bare file name or a
// path under the disk directory) was created, modified or removed since the
// last call.
func (m *ModTracker) Changed(name string) bool {
	clean := filepath.Base(name)
	prev, seen := m.seen[clean]
	mt, ok := ModTime(clean)
	if !ok {
		if seen {
			delete(m.seen, clean)
			return true
		}
		return false
	}
	m.seen[clean] = mt
	return !seen || !mt.Equal(prev)
}
