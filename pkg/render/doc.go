// Package render provides server-side rendering of vdom trees to HTML.
//
// The renderer converts VNode trees into HTML strings or streams:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void element handling (meta, link, br, ...)
//   - Boolean attribute handling (defer, async, ...)
//   - Full document rendering with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	err := renderer.RenderToWriter(w, node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:  bodyNode,
//	    Title: "Moklet Twibbon",
//	}
//	err := renderer.RenderPage(w, page)
//
// # Security
//
// Text content is escaped. Raw nodes are written verbatim and must only
// carry trusted, compile-time markup such as icon glyphs.
package render
