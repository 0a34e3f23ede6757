package motion

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moklet-dev/twibbon/pkg/hooks"
	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// HookName is the client hook that interprets a Config.
const HookName = "Motion"

// Infinite repeats an animation forever.
const Infinite = -1

// Variant labels shared by containers and their children.
const (
	Hidden  = "hidden"
	Visible = "visible"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("motion: invalid config")

// TransitionType selects the interpolation model.
type TransitionType string

const (
	Spring TransitionType = "spring"
	Tween  TransitionType = "tween"
)

// Ease names an easing curve for tween transitions.
type Ease string

const (
	Linear    Ease = "linear"
	EaseIn    Ease = "easeIn"
	EaseOut   Ease = "easeOut"
	EaseInOut Ease = "easeInOut"
)

// Transition describes how an element moves between states.
// All times are in seconds.
type Transition struct {
	Type      TransitionType `json:"type,omitempty"`
	Stiffness float64        `json:"stiffness,omitempty"`
	Damping   float64        `json:"damping,omitempty"`
	Duration  float64        `json:"duration,omitempty"`
	Delay     float64        `json:"delay,omitempty"`
	Ease      Ease           `json:"ease,omitempty"`

	// Repeat is the number of extra iterations; Infinite loops forever.
	Repeat      int     `json:"repeat,omitempty"`
	RepeatDelay float64 `json:"repeatDelay,omitempty"`

	// Orchestration of children that inherit variants.
	StaggerChildren float64 `json:"staggerChildren,omitempty"`
	DelayChildren   float64 `json:"delayChildren,omitempty"`
}

// Validate checks the transition for values no runtime can honor.
func (t Transition) Validate() error {
	switch t.Type {
	case "", Spring, Tween:
	default:
		return fmt.Errorf("%w: unknown transition type %q", ErrInvalid, t.Type)
	}
	switch t.Ease {
	case "", Linear, EaseIn, EaseOut, EaseInOut:
	default:
		return fmt.Errorf("%w: unknown ease %q", ErrInvalid, t.Ease)
	}
	for name, v := range map[string]float64{
		"stiffness":       t.Stiffness,
		"damping":         t.Damping,
		"duration":        t.Duration,
		"delay":           t.Delay,
		"repeatDelay":     t.RepeatDelay,
		"staggerChildren": t.StaggerChildren,
		"delayChildren":   t.DelayChildren,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalid, name)
		}
	}
	if t.Repeat < Infinite {
		return fmt.Errorf("%w: repeat %d", ErrInvalid, t.Repeat)
	}
	return nil
}

// Viewport controls in-view triggering.
type Viewport struct {
	// Once stops the element from replaying when it re-enters the viewport.
	Once bool `json:"once"`
	// Margin grows or shrinks the viewport used for detection (CSS margin syntax).
	Margin string `json:"margin,omitempty"`
}

// Variant is a named target state with its own transition.
type Variant struct {
	Target     State       `json:"target"`
	Transition *Transition `json:"transition,omitempty"`
}

// Variants maps labels to states.
type Variants map[string]Variant

// Config is the full animation declaration for one element.
//
// Elements that declare Variants but no labels inherit the labels of the
// nearest ancestor Config that sets them.
type Config struct {
	Initial     *State      `json:"initial,omitempty"`
	Animate     *State      `json:"animate,omitempty"`
	WhileInView *State      `json:"whileInView,omitempty"`
	Transition  *Transition `json:"transition,omitempty"`
	Viewport    *Viewport   `json:"viewport,omitempty"`

	Variants           Variants `json:"variants,omitempty"`
	InitialVariant     string   `json:"initialVariant,omitempty"`
	AnimateVariant     string   `json:"animateVariant,omitempty"`
	WhileInViewVariant string   `json:"whileInViewVariant,omitempty"`
}

// InView reports whether the config is triggered by entering the viewport.
func (c Config) InView() bool {
	return c.WhileInView != nil || c.WhileInViewVariant != ""
}

// Validate checks every transition and that labels refer to declared variants.
func (c Config) Validate() error {
	if c.Transition != nil {
		if err := c.Transition.Validate(); err != nil {
			return err
		}
	}
	for name, v := range c.Variants {
		if v.Transition == nil {
			continue
		}
		if err := v.Transition.Validate(); err != nil {
			return fmt.Errorf("variant %q: %w", name, err)
		}
	}
	if len(c.Variants) > 0 {
		for _, label := range []string{c.InitialVariant, c.AnimateVariant, c.WhileInViewVariant} {
			if label == "" {
				continue
			}
			if _, ok := c.Variants[label]; !ok {
				return fmt.Errorf("%w: undeclared variant %q", ErrInvalid, label)
			}
		}
	}
	if c.Viewport != nil && !c.InView() {
		return fmt.Errorf("%w: viewport set without an in-view target", ErrInvalid)
	}
	return nil
}

// Attr encodes the config as a Motion hook attribute.
func (c Config) Attr() vdom.Attr {
	return hooks.Hook(HookName, c)
}

// Decode parses a hook attribute value produced by Attr.
func Decode(value string) (Config, error) {
	name, raw, err := hooks.Decode(value)
	if err != nil {
		return Config{}, err
	}
	if name != HookName {
		return Config{}, fmt.Errorf("motion: hook %q is not %s", name, HookName)
	}
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("motion: decode: %w", err)
	}
	return c, nil
}

// Of returns the Motion config declared on n.
func Of(n *vdom.VNode) (Config, bool) {
	v, ok := hooks.Of(n)
	if !ok {
		return Config{}, false
	}
	c, err := Decode(v)
	if err != nil {
		return Config{}, false
	}
	return c, true
}
