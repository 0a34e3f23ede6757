package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/moklet-dev/twibbon/app/components/features"
	"github.com/moklet-dev/twibbon/internal/config"
	"github.com/moklet-dev/twibbon/pkg/render"
)

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

func renderPage(t *testing.T, cfg *config.Config, rt Runtime) string {
	t.Helper()
	var buf bytes.Buffer
	page := Page(cfg, rt, features.WithRand(zeroRand{}))
	if err := render.NewRenderer(render.RendererConfig{}).RenderPage(&buf, page); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	return buf.String()
}

func TestPageLinkedRuntime(t *testing.T) {
	cfg := config.New()
	cfg.Description = "Create twibbons"

	html := renderPage(t, cfg, RuntimeLinked)
	for _, want := range []string{
		"<title>Moklet Twibbon</title>",
		`<meta content="Create twibbons" name="description">`,
		`<script src="https://cdn.tailwindcss.com"></script>`,
		`<script defer src="/_twibbon/motion.js"></script>`,
		"Why Choose Moklet Twibbon",
		`<section class="w-full py-24`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageInlineRuntime(t *testing.T) {
	html := renderPage(t, config.New(), RuntimeInline)

	if strings.Contains(html, RuntimePath) {
		t.Error("inline page must not reference the runtime path")
	}
	if !strings.Contains(html, "IntersectionObserver") {
		t.Error("inline page should embed the runtime")
	}
	if strings.Contains(html, `name="description"`) {
		t.Error("empty description should not emit a meta tag")
	}
}
