// Package motion declares element animations as plain configuration.
//
// A Config describes where an element starts (Initial), where it animates
// to (Animate, or WhileInView once it scrolls into the viewport), the
// Transition curve, and an optional set of named Variants that children
// inherit from their parent so a container can orchestrate them with
// StaggerChildren and DelayChildren.
//
// Configs are attached to elements as the "Motion" client hook:
//
//	vdom.Div(
//	    motion.Config{
//	        Initial:     &motion.State{Opacity: motion.To(0), Y: motion.To(20)},
//	        WhileInView: &motion.State{Opacity: motion.To(1), Y: motion.To(0)},
//	        Transition:  &motion.Transition{Duration: 0.7},
//	        Viewport:    &motion.Viewport{Once: true, Margin: "-100px"},
//	    }.Attr(),
//	)
//
// The browser runtime performs interpolation and scheduling. Nothing in this
// package measures time.
package motion
