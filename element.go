package scrollkit

// Target is an object whose named properties keyframes write to. Property
// paths such as "style.opacity" are resolved by calling Property for every
// segment but the last and SetProperty for the last one.
//
// Implementations must return an untyped nil from Property when name does not
// resolve, otherwise the engine sees a non-nil interface and writes into it.
type Target interface {
	Property(name string) Target
	SetProperty(name, value string)
}

// Invoker is implemented by targets that accept method-style keyframes
// (property paths ending in "()"). args are the rendered template split on
// commas with empty entries dropped.
type Invoker interface {
	Invoke(name string, pos Position, args []string)
}

// Element is one node of the tracked document. Element values are used as map
// keys, so implementations should be pointer types.
type Element interface {
	Target

	// ParentElement returns the parent element or an untyped nil at the top.
	ParentElement() Element
	// Children returns the element children in document order.
	Children() []Element
	// Attributes returns the element's attributes in document order.
	Attributes() []Attribute
	// Metrics returns the current layout box.
	Metrics() Metrics
}

// Document is the page the engine tracks.
type Document interface {
	// Root returns the document element (<html>).
	Root() Element
	// Body returns the <body> element. Elements outside of it are not live.
	Body() Element
	// PageYOffset returns the vertical scroll offset of the viewport.
	PageYOffset() float64
	// ViewportHeight returns the client height of the document element.
	ViewportHeight() float64
}

// ScrollTarget is a document whose vertical offset can be driven
// programmatically (synthetic scrolling, scripts, smooth scrolling).
type ScrollTarget interface {
	ScrollY() float64
	SetScrollY(y float64)
}
