package dom

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/scrollkit"
)

// Layout assigns boxes to elements selected by XPath. A layout file looks
// like:
//
//	viewport: {width: 800, height: 600}
//	scrollY: 0
//	boxes:
//	  - select: //section[@id='hero']
//	    top: 0
//	    height: 1200
//	  - select: //div[@class='list']
//	    top: 1200
//	    height: 400
//	    scrollHeight: 2000
type Layout struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	ScrollY float64 `yaml:"scrollY"`
	Boxes   []Box   `yaml:"boxes"`
}

// Box is the layout of every element matching Select. Client and scroll
// sizes default to a visible box that does not scroll: the viewport width
// and the box height.
type Box struct {
	Select       string   `yaml:"select"`
	Top          float64  `yaml:"top"`
	Height       float64  `yaml:"height"`
	ClientWidth  *float64 `yaml:"clientWidth,omitempty"`
	ClientHeight *float64 `yaml:"clientHeight,omitempty"`
	ScrollWidth  *float64 `yaml:"scrollWidth,omitempty"`
	ScrollHeight *float64 `yaml:"scrollHeight,omitempty"`
	ScrollTop    float64  `yaml:"scrollTop,omitempty"`
}

// LoadLayout parses a YAML (or JSON) layout.
func LoadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for i, b := range l.Boxes {
		if b.Select == "" {
			return nil, fmt.Errorf("parse layout: box %d: missing select", i)
		}
	}
	return &l, nil
}

// Apply sizes the viewport, sets the page offset and assigns every box. It
// fails on an invalid expression or one that matches no element.
func (l *Layout) Apply(d *Document) error {
	d.SetViewport(l.Viewport.Width, l.Viewport.Height)
	for i, b := range l.Boxes {
		els, err := d.Query(b.Select)
		if err != nil {
			return fmt.Errorf("apply layout: box %d: %w", i, err)
		}
		if len(els) == 0 {
			return fmt.Errorf("apply layout: box %d: %q matches no element", i, b.Select)
		}
		m := b.metrics(d)
		for _, el := range els {
			el.SetMetrics(m)
		}
	}
	d.SetScrollY(l.ScrollY)
	return nil
}

func (b Box) metrics(d *Document) scrollkit.Metrics {
	m := scrollkit.Metrics{
		OffsetTop:    b.Top,
		OffsetHeight: b.Height,
		ClientWidth:  d.ViewportWidth(),
		ClientHeight: b.Height,
		ScrollTop:    b.ScrollTop,
	}
	if b.ClientWidth != nil {
		m.ClientWidth = *b.ClientWidth
	}
	if b.ClientHeight != nil {
		m.ClientHeight = *b.ClientHeight
	}
	m.ScrollWidth = m.ClientWidth
	m.ScrollHeight = m.ClientHeight
	if b.ScrollWidth != nil {
		m.ScrollWidth = *b.ScrollWidth
	}
	if b.ScrollHeight != nil {
		m.ScrollHeight = *b.ScrollHeight
	}
	return m
}
