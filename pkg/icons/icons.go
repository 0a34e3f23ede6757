// Package icons resolves a small fixed set of lucide glyphs by name.
//
// Glyph bodies are static SVG markup (lucide, ISC license) rendered as
// trusted raw content inside an <svg> element.
package icons

import "github.com/moklet-dev/twibbon/pkg/vdom"

// Glyph is an opaque reference to a renderable icon.
type Glyph struct {
	name string
	body string
}

// Name returns the lucide name of the glyph.
func (g Glyph) Name() string { return g.name }

// Render returns the glyph as an <svg> element carrying the given classes.
// The icon is decorative and hidden from assistive technology.
func (g Glyph) Render(classes ...string) *vdom.VNode {
	return vdom.Svg(
		vdom.Xmlns("http://www.w3.org/2000/svg"),
		vdom.Width("24"),
		vdom.Height("24"),
		vdom.ViewBox("0 0 24 24"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth("2"),
		vdom.StrokeLinecap("round"),
		vdom.StrokeLinejoin("round"),
		vdom.AriaHidden(true),
		vdom.Class(classes...),
		vdom.Data("icon", g.name),
		vdom.Raw(g.body),
	)
}

var (
	BadgeCheck = Glyph{
		name: "badge-check",
		body: `<path d="M3.85 8.62a4 4 0 0 1 4.78-4.77 4 4 0 0 1 6.74 0 4 4 0 0 1 4.78 4.78 4 4 0 0 1 0 6.74 4 4 0 0 1-4.77 4.78 4 4 0 0 1-6.75 0 4 4 0 0 1-4.78-4.77 4 4 0 0 1 0-6.76Z"/><path d="m9 12 2 2 4-4"/>`,
	}
	Shield = Glyph{
		name: "shield",
		body: `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>`,
	}
	MousePointerClick = Glyph{
		name: "mouse-pointer-click",
		body: `<path d="m9 9 5 12 1.8-5.2L21 14Z"/><path d="M7.2 2.2 8 5.1"/><path d="m5.1 8-2.9-.8"/><path d="M14 4.1 12 6"/><path d="m6 12-1.9 2"/>`,
	}
	ImagePlus = Glyph{
		name: "image-plus",
		body: `<path d="M16 5h6"/><path d="M19 2v6"/><path d="M21 11.5V19a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h7.5"/><path d="m21 15-3.086-3.086a2 2 0 0 0-2.828 0L6 21"/><circle cx="9" cy="9" r="2"/>`,
	}
	Smartphone = Glyph{
		name: "smartphone",
		body: `<rect width="14" height="20" x="5" y="2" rx="2" ry="2"/><path d="M12 18h.01"/>`,
	}
)

var byName = map[string]Glyph{
	BadgeCheck.name:        BadgeCheck,
	Shield.name:            Shield,
	MousePointerClick.name: MousePointerClick,
	ImagePlus.name:         ImagePlus,
	Smartphone.name:        Smartphone,
}

// Lookup resolves a glyph by its lucide name.
// Unknown names return the zero Glyph and false.
func Lookup(name string) (Glyph, bool) {
	g, ok := byName[name]
	return g, ok
}
