// Package vdom provides the virtual node tree used to describe markup.
//
// Components build a tree of VNodes with variadic element factories and
// hand it to the render package, which turns it into HTML:
//
//	Section(Class("w-full"),
//	    H2(Text("Title")),
//	    Div(Class("grid"), Range(items, card)),
//	)
//
// Arguments to an element factory may be attributes (Attr, []Attr), child
// nodes (*VNode, []*VNode), plain strings (shorthand for Text) or nil, which
// is ignored so optional attributes can be written inline.
package vdom
