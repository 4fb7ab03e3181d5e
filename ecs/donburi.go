package ecs

import (
	"github.com/phanxgames/scrollkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Assignment is a property write decoded from an applied instruction.
type Assignment struct {
	Target   scrollkit.Target
	Property string
	Value    string
}

// Invocation is a method call decoded from an applied instruction.
type Invocation struct {
	Target   scrollkit.Target
	Method   string
	Position scrollkit.Position
	Args     []string
}

var (
	// InstructionEventType carries every instruction the sink accepts.
	InstructionEventType = events.NewEventType[scrollkit.Instruction]()
	// AssignEventType carries accepted property writes.
	AssignEventType = events.NewEventType[Assignment]()
	// InvokeEventType carries accepted method calls.
	InvokeEventType = events.NewEventType[Invocation]()
)

// SinkOption configures a sink created by NewDonburiSink.
type SinkOption func(*donburiSink)

// WithKinds accepts only instructions of the given kinds.
func WithKinds(kinds ...scrollkit.InstructionKind) SinkOption {
	return func(s *donburiSink) {
		s.kinds = make(map[scrollkit.InstructionKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
}

// WithNames accepts only instructions writing or calling one of names
// (the last path segment, e.g. "opacity" for "style.opacity").
func WithNames(names ...string) SinkOption {
	return func(s *donburiSink) {
		s.names = make(map[string]bool, len(names))
		for _, n := range names {
			s.names[n] = true
		}
	}
}

type donburiSink struct {
	world donburi.World
	kinds map[scrollkit.InstructionKind]bool // nil accepts all
	names map[string]bool                   // nil accepts all
}

// NewDonburiSink creates an InstructionSink backed by a Donburi world.
// Each accepted instruction is published to InstructionEventType and to
// AssignEventType or InvokeEventType by kind. Consume them with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World, opts ...SinkOption) scrollkit.InstructionSink {
	s := &donburiSink{world: world}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiSink) accepts(in scrollkit.Instruction) bool {
	if s.kinds != nil && !s.kinds[in.Kind] {
		return false
	}
	return s.names == nil || s.names[in.Name]
}

func (s *donburiSink) EmitInstruction(in scrollkit.Instruction) {
	if !s.accepts(in) {
		return
	}
	InstructionEventType.Publish(s.world, in)
	switch in.Kind {
	case scrollkit.InstructionAssign:
		AssignEventType.Publish(s.world, Assignment{Target: in.Target, Property: in.Name, Value: in.Value})
	case scrollkit.InstructionInvoke:
		InvokeEventType.Publish(s.world, Invocation{Target: in.Target, Method: in.Name, Position: in.Position, Args: in.Args})
	}
}
