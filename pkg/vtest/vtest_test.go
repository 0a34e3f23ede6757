package vtest

import (
	"testing"

	"github.com/moklet-dev/twibbon/pkg/vdom"
)

func TestFindAndTextContent(t *testing.T) {
	root := vdom.Section(
		vdom.H2(vdom.Text("Heading")),
		vdom.Div(vdom.P(vdom.Text("one")), vdom.P(vdom.Text("two"))),
	)

	ps := Find(root, func(n *vdom.VNode) bool { return n.Tag == "p" })
	if len(ps) != 2 {
		t.Fatalf("Find(p) len = %d, want 2", len(ps))
	}
	if got := TextContent(root); got != "Headingonetwo" {
		t.Errorf("TextContent = %q", got)
	}

	var visited int
	Walk(root, func(n *vdom.VNode) bool {
		visited++
		return n.Tag != "div"
	})
	// section, h2, text, div
	if visited != 4 {
		t.Errorf("visited = %d, want 4", visited)
	}
}

func TestRenderToString(t *testing.T) {
	node := vdom.P(vdom.Class("x"), vdom.Text("a < b"))
	if got := RenderToString(node); got != `<p class="x">a &lt; b</p>` {
		t.Errorf("got %q", got)
	}
	if got := RenderToString(&vdom.VNode{Kind: vdom.VKind(42)}); got != "" {
		t.Errorf("render error should yield empty string, got %q", got)
	}
	ExpectContains(t, node, "a &lt; b")
}
