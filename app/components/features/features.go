// Package features renders the "Why Choose Moklet Twibbon" section of the
// landing page: a heading, a subheading and a grid of feature cards with
// entrance, pulse and particle animations.
package features

import "github.com/moklet-dev/twibbon/pkg/icons"

// Feature is one card of the section.
type Feature struct {
	Title       string
	Description string
	Icon        icons.Glyph
	// Color is the style token for the badge gradient.
	Color string
}

const (
	// Heading is the section title.
	Heading = "Why Choose Moklet Twibbon"
	// Subheading is the line under the title.
	Subheading = "Our platform offers several advantages over other twibbon creators"
)

const badgeGradient = "bg-gradient-to-br from-primary-500 to-primary-700"

// Features returns the five cards in display order.
// Each call returns a fresh slice.
func Features() []Feature {
	return []Feature{
		{
			Title:       "100% Free, No Watermarks",
			Description: "Unlike other services, we don't add watermarks to your twibbons. Your campaigns remain professional and clean.",
			Icon:        icons.BadgeCheck,
			Color:       badgeGradient,
		},
		{
			Title:       "Fully Client-side",
			Description: "Logic occurs on the client's browser without relying on a backend server, your data doesn't leave your device at all.",
			Icon:        icons.Shield,
			Color:       badgeGradient,
		},
		{
			Title:       "Easy to Use",
			Description: "Our intuitive interface makes it simple to create twibbons in just a few clicks, no design skills required.",
			Icon:        icons.MousePointerClick,
			Color:       badgeGradient,
		},
		{
			Title:       "Custom Frames",
			Description: "Upload your own frame designs to create unique campaign visuals that stand out.",
			Icon:        icons.ImagePlus,
			Color:       badgeGradient,
		},
		{
			Title:       "High Quality Output",
			Description: "Get high-resolution images perfect for sharing on any social media platform.",
			Icon:        icons.Smartphone,
			Color:       badgeGradient,
		},
	}
}
