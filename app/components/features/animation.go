package features

import "github.com/moklet-dev/twibbon/pkg/motion"

// onceInView replays nothing after the first entrance.
var onceInView = &motion.Viewport{Once: true, Margin: "-100px"}

func fadeUp(delay, duration float64, viewport *motion.Viewport) motion.Config {
	return motion.Config{
		Initial:     &motion.State{Opacity: motion.To(0), Y: motion.To(20)},
		WhileInView: &motion.State{Opacity: motion.To(1), Y: motion.To(0)},
		Transition:  &motion.Transition{Delay: delay, Duration: duration},
		Viewport:    viewport,
	}
}

func headerMotion() motion.Config {
	return fadeUp(0, 0.7, onceInView)
}

func headingMotion() motion.Config {
	return fadeUp(0.3, 0.5, &motion.Viewport{Once: true})
}

func subheadingMotion() motion.Config {
	return fadeUp(0.4, 0.5, &motion.Viewport{Once: true})
}

// gridMotion orchestrates the cards: each child starts StaggerChildren
// seconds after the previous one.
func gridMotion() motion.Config {
	return motion.Config{
		Variants: motion.Variants{
			motion.Hidden: {Target: motion.State{Opacity: motion.To(0)}},
			motion.Visible: {
				Target: motion.State{Opacity: motion.To(1)},
				Transition: &motion.Transition{
					StaggerChildren: 0.1,
					DelayChildren:   0.3,
				},
			},
		},
		InitialVariant:     motion.Hidden,
		WhileInViewVariant: motion.Visible,
		Viewport:           onceInView,
	}
}

func cardMotion() motion.Config {
	return motion.Config{
		Variants: motion.Variants{
			motion.Hidden: {Target: motion.State{Opacity: motion.To(0), Y: motion.To(20)}},
			motion.Visible: {
				Target:     motion.State{Opacity: motion.To(1), Y: motion.To(0)},
				Transition: &motion.Transition{Type: motion.Spring, Stiffness: 50, Damping: 10},
			},
		},
	}
}

func badgeMotion() motion.Config {
	return motion.Config{
		Variants: motion.Variants{
			motion.Hidden: {Target: motion.State{Opacity: motion.To(0), Scale: motion.To(0.5), Rotate: motion.To(-10)}},
			motion.Visible: {
				Target:     motion.State{Opacity: motion.To(1), Scale: motion.To(1), Rotate: motion.To(0)},
				Transition: &motion.Transition{Type: motion.Spring, Stiffness: 100, Delay: 0.2},
			},
		},
	}
}

func pulseMotion() motion.Config {
	return motion.Config{
		Variants: motion.Variants{
			motion.Hidden: {Target: motion.State{Scale: motion.To(0.8), Opacity: motion.To(0)}},
			motion.Visible: {
				Target: motion.State{
					Scale:   motion.Keyframes(0.8, 1.2, 0.8),
					Opacity: motion.Keyframes(0, 0.5, 0),
				},
				Transition: &motion.Transition{
					Repeat:   motion.Infinite,
					Duration: 2,
					Ease:     motion.EaseInOut,
					Delay:    1,
				},
			},
		},
	}
}

// particleMotion loops a dot through fade, scale and a small drift.
// Offsets per card and per dot keep neighbouring dots out of phase.
func particleMotion(card, dot int, driftX, driftY float64) motion.Config {
	return motion.Config{
		Initial: &motion.State{Opacity: motion.To(0), Scale: motion.To(0)},
		Animate: &motion.State{
			Opacity: motion.Keyframes(0, 0.8, 0),
			Scale:   motion.Keyframes(0, 1, 0),
			X:       motion.Keyframes(0, driftX),
			Y:       motion.Keyframes(0, driftY),
		},
		Transition: &motion.Transition{
			Duration:    1.5,
			Delay:       particleDelay(card, dot),
			Repeat:      motion.Infinite,
			RepeatDelay: 3,
		},
	}
}

func particleDelay(card, dot int) float64 {
	return 1 + float64(card)*0.2 + float64(dot)*0.3
}
