package scrollkit

import (
	"fmt"
	"os"
	"time"

	"github.com/xlab/treeprint"
)

// debugStats holds per-tick timing and instruction metrics.
// Only populated when Engine.debug is true.
type debugStats struct {
	readTime         time.Duration
	applyTime        time.Duration
	instructionCount int
	trackerCount     int
}

// debugLog prints timing and instruction stats to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollkit] read: %v | apply: %v | total: %v\n",
		stats.readTime, stats.applyTime, stats.readTime+stats.applyTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollkit] trackers: %d | instructions: %d\n",
		stats.trackerCount, stats.instructionCount)
}

// debugCheckChildCount warns on stderr if a tracker has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(p *ScrollParent) {
	if len(p.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollkit] warning: tracker has %d children (threshold %d)\n",
			len(p.children), debugMaxChildCount)
	}
}

// Dump renders the registered trackers and their targets as a tree:
//
//	.
//	└── tracker trigger=0 last=0.25
//	    ├── target style.opacity
//	    └── tracker trigger=0.5 last=before
func (e *Engine) Dump() string {
	tree := treeprint.New()
	for _, p := range e.registry {
		if p.parent != nil {
			continue // printed under its enclosing tracker
		}
		dumpTracker(tree, p)
	}
	return tree.String()
}

func dumpTracker(tree treeprint.Tree, p *ScrollParent) {
	branch := tree.AddBranch(fmt.Sprintf("tracker trigger=%g top=%g bottom=%g last=%s",
		p.Trigger, p.TopOffset, p.BottomOffset, p.last))
	for _, c := range p.children {
		switch c := c.(type) {
		case *ScrollParent:
			dumpTracker(branch, c)
		case *ScrollObject:
			branch.AddNode(fmt.Sprintf("target %v last=%s", c.Paths(), c.last))
		}
	}
}
