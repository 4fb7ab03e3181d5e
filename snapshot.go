package scrollkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshotter is implemented by documents that can serialize their current
// state (markup with the animated values applied).
type Snapshotter interface {
	WriteSnapshot(w io.Writer) error
}

// Snapshot queues a labeled capture of the document, taken after the current
// frame's tick and written to SnapshotDir with a timestamped file name.
// Documents that do not implement Snapshotter are skipped.
func (e *Engine) Snapshot(label string) {
	e.snapshotQueue = append(e.snapshotQueue, label)
}

// flushSnapshots writes every queued capture. Called at the end of a frame.
func (e *Engine) flushSnapshots() {
	if len(e.snapshotQueue) == 0 {
		return
	}
	defer func() { e.snapshotQueue = e.snapshotQueue[:0] }()

	snap, ok := e.doc.(Snapshotter)
	if !ok {
		return
	}
	if err := os.MkdirAll(e.SnapshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollkit] snapshot: mkdir %s: %v\n", e.SnapshotDir, err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range e.snapshotQueue {
		path := filepath.Join(e.SnapshotDir, fmt.Sprintf("%s_%s.html", stamp, sanitizeLabel(label)))
		if err := writeSnapshot(path, snap); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[scrollkit] snapshot: %v\n", err)
		}
	}
}

func writeSnapshot(path string, snap Snapshotter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := snap.WriteSnapshot(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names.
func sanitizeLabel(label string) string {
	if label == "" {
		return "snapshot"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
}
