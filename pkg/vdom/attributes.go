package vdom

import (
	"sort"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Repeated Class attributes on one element accumulate.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Styles sets the style attribute from a property map.
// Properties are emitted in sorted order so output is deterministic.
func Styles(props map[string]string) Attr {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+props[k])
	}
	return attr("style", strings.Join(parts, "; "))
}

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Defer sets the boolean defer attribute.
func Defer() Attr { return attr("defer", true) }

// SVG presentation attributes

func ViewBox(v string) Attr        { return attr("viewBox", v) }
func Width(v string) Attr          { return attr("width", v) }
func Height(v string) Attr         { return attr("height", v) }
func Fill(v string) Attr           { return attr("fill", v) }
func Stroke(v string) Attr         { return attr("stroke", v) }
func StrokeWidth(v string) Attr    { return attr("stroke-width", v) }
func StrokeLinecap(v string) Attr  { return attr("stroke-linecap", v) }
func StrokeLinejoin(v string) Attr { return attr("stroke-linejoin", v) }
func Xmlns(v string) Attr          { return attr("xmlns", v) }
