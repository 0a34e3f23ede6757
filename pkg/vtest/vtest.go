// Package vtest provides helpers for asserting on VNode trees in tests.
//
//	cards := vtest.Find(root, func(n *vdom.VNode) bool { return n.Tag == "article" })
//	vtest.ExpectContains(t, root, "Custom Frames")
package vtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/moklet-dev/twibbon/pkg/render"
	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n *vdom.VNode, fn func(*vdom.VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Find returns every node under root (root included) for which match is true.
func Find(root *vdom.VNode, match func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	Walk(root, func(n *vdom.VNode) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of every text node under n.
func TextContent(n *vdom.VNode) string {
	var sb strings.Builder
	Walk(n, func(c *vdom.VNode) bool {
		if c.Kind == vdom.KindText {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}

// RenderToString renders node with the default renderer.
// A render error yields the empty string.
func RenderToString(node *vdom.VNode) string {
	var buf bytes.Buffer
	if err := render.NewRenderer(render.RendererConfig{}).RenderToWriter(&buf, node); err != nil {
		return ""
	}
	return buf.String()
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
