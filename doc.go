// Package scrollkit drives scroll-linked property animation.
//
// Elements declare keyframes in markup with data-scroll-* attributes. As the
// page (or any scroll container) moves, every animated property is
// recomputed from its keyframes and written back once per frame.
//
// # Quick start
//
// The engine works against any document that implements [Document] and
// [Element]. The dom subpackage provides one built on golang.org/x/net/html:
//
//	doc, _ := dom.ParseString(`<body>
//		<div data-scroll-style.opacity-0="0" data-scroll-style.opacity-1="1"></div>
//	</body>`)
//	queue := scrollkit.NewFrameQueue()
//	engine := scrollkit.NewEngine(doc, queue)
//	engine.Add(doc.Body(), true)
//
//	doc.SetScrollY(400)
//	queue.Step() // one animation frame
//
// For a window driven by the mouse wheel use [Run], which steps the queue from
// an ebiten game loop.
//
// # Attribute grammar
//
//	data-scroll-parent               element becomes a tracker for its subtree
//	data-scroll-trigger="0.5"        activation line, ratio of viewport height
//	data-scroll-top="100"            pixels added above the tracked box
//	data-scroll-bottom="100"         pixels added below the tracked box
//	data-scroll-ease="inOutQuad"     easing between this element's keyframes
//	data-scroll-<path>-<frame>="v"   keyframe; frame is a number, before,
//	                                 after or extrapolate
//	data-scroll-<path>()             declares <path> as a method call
//
// HTML lower-cases attribute names, so property paths escape capitals:
// "_c" reads as "C" and "__" as "_" (data-scroll-style.background_color-0).
//
// # Positions
//
// A tracker maps its element's box to [0, 1]: 0 when the top edge (minus
// the top offset) reaches the trigger line, 1 when the bottom edge (plus the
// bottom offset) does. Outside of that range the position is [Before] or
// [After]. Templates are interpolated token by token when every keyframe of
// a property has the same shape ("translateX(0px)", "translateX(100px)");
// otherwise the property steps from keyframe to keyframe.
//
// # Frames
//
// Each frame reads every tracker position, collects [Instruction] values,
// then applies them in one batch. The loop is scheduled through a
// [Scheduler] while at least one tracker is registered and cancelled when
// the last one goes away.
package scrollkit
