package render

import (
	"io"

	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string

	// Meta contains named meta tags for the page
	Meta []MetaTag

	// HeadScripts are emitted in the head, before any stylesheet-dependent
	// content. Used for the Tailwind runtime and its theme.
	HeadScripts []ScriptTag

	// Scripts are emitted at the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a named meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content, emitted unescaped
}

// Document builds the html element for page.
func Document(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	return vdom.Html(vdom.Lang(lang),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.If(page.Title != "", vdom.Title(vdom.Text(page.Title))),
			vdom.Range(page.Meta, func(m MetaTag, _ int) *vdom.VNode {
				return vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content))
			}),
			vdom.Range(page.HeadScripts, scriptNode),
		),
		vdom.Body(
			page.Body,
			vdom.Range(page.Scripts, scriptNode),
		),
	)
}

func scriptNode(s ScriptTag, _ int) *vdom.VNode {
	var src any
	if s.Src != "" {
		src = vdom.Src(s.Src)
	}
	var body any
	if s.Inline != "" {
		body = vdom.Raw(s.Inline)
	}
	return vdom.Script(src, deferAttr(s.Defer), body)
}

func deferAttr(on bool) any {
	if !on {
		return nil
	}
	return vdom.Defer()
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := writeString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, Document(page)); err != nil {
		return err
	}
	if r.config.Pretty {
		return nil
	}
	return writeString(w, "\n")
}
