package features

import (
	"math/rand/v2"
	"strconv"

	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// ParticlesPerCard is the number of dots drawn around each icon badge.
const ParticlesPerCard = 3

// Particle positions are percentages of the badge box.
const (
	ParticleMin  = 20.0
	ParticleSpan = 60.0
	// ParticleDrift is the full width of the horizontal and vertical drift, in px.
	ParticleDrift = 20.0
)

// Rand is a source of uniform values in [0, 1).
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

type options struct {
	rand Rand
}

// Option customizes a Section render.
type Option func(*options)

// WithRand replaces the random source used for particle placement.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// Component returns the section as a vdom component.
func Component(opts ...Option) vdom.Component {
	return vdom.Func(func() *vdom.VNode { return Section(opts...) })
}

// Section renders the features section.
//
// Particle positions are sampled on every call; nothing is memoized.
func Section(opts ...Option) *vdom.VNode {
	o := options{rand: globalRand{}}
	for _, opt := range opts {
		opt(&o)
	}

	return vdom.Section(
		vdom.Class("w-full py-24 px-4 md:px-8 bg-gradient-to-b from-neutral-50 to-white"),
		vdom.ID("features"),
		vdom.Div(vdom.Class("max-w-6xl mx-auto"),
			vdom.Div(vdom.Class("text-center mb-16"), headerMotion().Attr(),
				vdom.H2(vdom.Class("text-3xl md:text-4xl font-bold mb-4"), headingMotion().Attr(),
					vdom.Text(Heading),
				),
				vdom.P(vdom.Class("text-lg text-neutral-600 max-w-2xl mx-auto"), subheadingMotion().Attr(),
					vdom.Text(Subheading),
				),
			),
			vdom.Div(vdom.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				vdom.Data("grid", "features"),
				gridMotion().Attr(),
				vdom.Range(Features(), func(f Feature, i int) *vdom.VNode {
					return card(f, i, o.rand)
				}),
			),
		),
	)
}

func card(f Feature, index int, r Rand) *vdom.VNode {
	return vdom.Div(
		vdom.Key(index),
		vdom.Class("bg-white rounded-xl p-6 border border-neutral-100 shadow-sm"),
		vdom.Data("card", strconv.Itoa(index)),
		cardMotion().Attr(),
		vdom.Div(vdom.Class("flex items-start gap-5"),
			vdom.Div(vdom.Class("relative"),
				vdom.Div(
					vdom.Class("w-14 h-14", f.Color, "rounded-xl flex items-center justify-center text-white"),
					vdom.Data("part", "badge"),
					badgeMotion().Attr(),
					f.Icon.Render("w-6 h-6"),
				),
				vdom.Div(
					vdom.Class("absolute inset-0", f.Color, "rounded-xl"),
					vdom.Data("part", "pulse"),
					pulseMotion().Attr(),
				),
				vdom.Repeat(ParticlesPerCard, func(dot int) *vdom.VNode {
					return particle(index, dot, r)
				}),
			),
			vdom.Div(vdom.Class("flex-1"),
				vdom.H3(vdom.Class("text-xl font-semibold mb-2"), vdom.Text(f.Title)),
				vdom.P(vdom.Class("text-neutral-600"), vdom.Text(f.Description)),
			),
		),
	)
}

func particle(card, dot int, r Rand) *vdom.VNode {
	top := ParticleMin + r.Float64()*ParticleSpan
	left := ParticleMin + r.Float64()*ParticleSpan
	dx := (r.Float64() - 0.5) * ParticleDrift
	dy := (r.Float64() - 0.5) * ParticleDrift

	return vdom.Div(
		vdom.Key(dot),
		vdom.Class("absolute w-1.5 h-1.5 rounded-full bg-white"),
		vdom.Data("part", "particle"),
		vdom.Styles(map[string]string{
			"top":  percent(top),
			"left": percent(left),
		}),
		particleMotion(card, dot, dx, dy).Attr(),
	)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
