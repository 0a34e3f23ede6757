// Package app assembles the landing page around its components.
package app

import (
	"github.com/moklet-dev/twibbon/app/components/features"
	clientdist "github.com/moklet-dev/twibbon/client/dist"
	"github.com/moklet-dev/twibbon/internal/config"
	"github.com/moklet-dev/twibbon/pkg/render"
	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// RuntimePath is where the preview server serves the motion runtime.
const RuntimePath = "/_twibbon/motion.js"

// Runtime selects how the page loads the motion runtime.
type Runtime int

const (
	// RuntimeLinked references RuntimePath; used by the preview server.
	RuntimeLinked Runtime = iota
	// RuntimeInline embeds the runtime; used for standalone files.
	RuntimeInline
)

// tailwindTheme maps the primary-* tokens used by the badge gradients.
const tailwindTheme = `tailwind.config={theme:{extend:{colors:{primary:{500:"#ef4444",700:"#b91c1c"}}}}}`

// Page returns the full document for the landing page.
func Page(cfg *config.Config, runtime Runtime, opts ...features.Option) render.PageData {
	page := render.PageData{
		Title: cfg.Title,
		Lang:  cfg.Lang,
		Body: vdom.Main(vdom.Class("min-h-screen"),
			features.Section(opts...),
		),
		HeadScripts: []render.ScriptTag{
			{Src: cfg.Tailwind.CDN},
			{Inline: tailwindTheme},
		},
	}
	if cfg.Description != "" {
		page.Meta = append(page.Meta, render.MetaTag{Name: "description", Content: cfg.Description})
	}

	switch runtime {
	case RuntimeInline:
		page.Scripts = append(page.Scripts, render.ScriptTag{Inline: string(clientdist.MotionJS)})
	default:
		page.Scripts = append(page.Scripts, render.ScriptTag{Src: RuntimePath, Defer: true})
	}
	return page
}
