// Command scrollsim runs scroll-linked animations headless: it parses a page,
// applies a layout, replays a scroll script and prints the resulting markup.
//
//	scrollsim -html page.html -layout layout.yaml -script scroll.yaml -dump
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/scrollkit"
	"github.com/phanxgames/scrollkit/dom"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "scrollsim: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	html      string
	layout    string
	script    string
	frames    int
	scrollY   float64
	snapshots string
	dump      bool
	debug     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("scrollsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.html, "html", "", "page to animate (required)")
	fs.StringVar(&o.layout, "layout", "", "YAML layout with element boxes")
	fs.StringVar(&o.script, "script", "", "YAML or JSON scroll script")
	fs.IntVar(&o.frames, "frames", 600, "maximum number of frames to run")
	fs.Float64Var(&o.scrollY, "scroll", 0, "page offset before the first frame")
	fs.StringVar(&o.snapshots, "snapshots", "snapshots", "directory for script snapshots")
	fs.BoolVar(&o.dump, "dump", false, "print the tracker tree to stderr")
	fs.BoolVar(&o.debug, "debug", false, "print per-frame stats to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.html == "" {
		return o, fmt.Errorf("-html is required")
	}
	if o.frames < 1 {
		return o, fmt.Errorf("-frames must be positive, got %d", o.frames)
	}
	return o, nil
}

// inputs are the files scrollsim reads before the first frame.
type inputs struct {
	doc    *dom.Document
	layout *dom.Layout
	runner *scrollkit.ScriptRunner
}

// load reads the page, the layout and the script concurrently.
func load(o options) (inputs, error) {
	var in inputs
	var g errgroup.Group
	g.Go(func() error {
		f, err := os.Open(o.html)
		if err != nil {
			return fmt.Errorf("open page: %w", err)
		}
		defer f.Close()
		in.doc, err = dom.Parse(f)
		return err
	})
	if o.layout != "" {
		g.Go(func() error {
			f, err := os.Open(o.layout)
			if err != nil {
				return fmt.Errorf("open layout: %w", err)
			}
			defer f.Close()
			in.layout, err = dom.LoadLayout(f)
			return err
		})
	}
	if o.script != "" {
		g.Go(func() error {
			data, err := os.ReadFile(o.script)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			in.runner, err = scrollkit.LoadScrollScript(data)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return inputs{}, err
	}
	return in, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	in, err := load(o)
	if err != nil {
		return err
	}
	if in.layout != nil {
		if err := in.layout.Apply(in.doc); err != nil {
			return err
		}
	}
	if o.scrollY != 0 {
		in.doc.SetScrollY(o.scrollY)
	}

	queue := scrollkit.NewFrameQueue()
	engine := scrollkit.NewEngine(in.doc, queue)
	engine.SnapshotDir = o.snapshots
	engine.SetDebugMode(o.debug)
	if in.runner != nil {
		engine.SetScriptRunner(in.runner)
	}
	engine.Add(in.doc.Body(), true)

	for i := 0; i < o.frames && queue.Pending() > 0; i++ {
		queue.Step()
		if in.runner == nil || in.runner.Done() {
			break
		}
	}
	if in.runner != nil && !in.runner.Done() {
		fmt.Fprintf(stderr, "scrollsim: script unfinished after %d frames\n", o.frames)
	}

	if o.dump {
		fmt.Fprint(stderr, engine.Dump())
	}
	return in.doc.Render(stdout)
}
