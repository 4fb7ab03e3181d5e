package dom

import "github.com/phanxgames/scrollkit"

// Object is a plain property holder for values that are not markup, such as
// the state of a canvas or a media element driven by keyframes.
type Object struct {
	values   map[string]string
	children map[string]*Object
	handlers map[string]Handler
}

// NewObject returns an empty holder.
func NewObject() *Object {
	return &Object{values: make(map[string]string)}
}

// Get returns the value last assigned to name.
func (o *Object) Get(name string) string {
	return o.values[name]
}

// Child returns the nested holder name, creating it.
func (o *Object) Child(name string) *Object {
	if o.children == nil {
		o.children = make(map[string]*Object)
	}
	c := o.children[name]
	if c == nil {
		c = NewObject()
		o.children[name] = c
	}
	return c
}

// Handle registers fn as the method name.
func (o *Object) Handle(name string, fn Handler) {
	if o.handlers == nil {
		o.handlers = make(map[string]Handler)
	}
	o.handlers[name] = fn
}

func (o *Object) Property(name string) scrollkit.Target {
	if c := o.children[name]; c != nil {
		return c
	}
	return nil
}

func (o *Object) SetProperty(name, value string) {
	o.values[name] = value
}

func (o *Object) Invoke(name string, pos scrollkit.Position, args []string) {
	if fn := o.handlers[name]; fn != nil {
		fn(pos, args)
	}
}
