package motion

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/moklet-dev/twibbon/pkg/vdom"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"unset", Value{}, "null"},
		{"single", To(0.5), "0.5"},
		{"keyframes", Keyframes(0, 1.2, 0), "[0,1.2,0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestValueUnmarshal(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte("[0, 0.8, 0]"), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(v) != 3 || v[1] != 0.8 {
		t.Errorf("frames = %v", v)
	}
	if err := json.Unmarshal([]byte(`"x"`), &v); err == nil {
		t.Error("expected error for string value")
	}
}

func TestKeyframesCopiesInput(t *testing.T) {
	in := []float64{1, 2}
	v := Keyframes(in...)
	in[0] = 9
	if v[0] != 1 {
		t.Error("Keyframes must not alias its input")
	}
	if !v.IsSet() || (Value{}).IsSet() {
		t.Error("IsSet must track whether any frame is present")
	}
}

func TestStateOmitsUnset(t *testing.T) {
	b, err := json.Marshal(State{Opacity: To(0), Y: To(20)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"opacity":0,"y":20}` {
		t.Errorf("got %s", b)
	}

	var s State
	if err := json.Unmarshal([]byte(`{"scale":[0.8,1.2,0.8],"rotate":-10}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(s.Rotate) != 1 || s.Rotate[0] != -10 || len(s.Scale) != 3 || s.Opacity.IsSet() {
		t.Errorf("decoded state = %+v", s)
	}
	if err := json.Unmarshal([]byte(`{"skew":1}`), &s); err == nil {
		t.Error("expected error for unknown property")
	}
}

func TestTransitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		tr      Transition
		wantErr bool
	}{
		{"zero", Transition{}, false},
		{"spring", Transition{Type: Spring, Stiffness: 50, Damping: 10}, false},
		{"infinite", Transition{Repeat: Infinite, Duration: 2, Ease: EaseInOut}, false},
		{"linear", Transition{Ease: Linear}, false},
		{"ease in", Transition{Ease: EaseIn}, false},
		{"ease out", Transition{Ease: EaseOut}, false},
		{"unknown type", Transition{Type: "bounce"}, true},
		{"unknown ease", Transition{Ease: "cubic"}, true},
		{"negative delay", Transition{Delay: -1}, true},
		{"negative stagger", Transition{StaggerChildren: -0.1}, true},
		{"repeat below infinite", Transition{Repeat: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	variants := Variants{
		Hidden:  {Target: State{Opacity: To(0)}},
		Visible: {Target: State{Opacity: To(1)}, Transition: &Transition{StaggerChildren: 0.1}},
	}

	valid := Config{
		Variants:           variants,
		InitialVariant:     Hidden,
		WhileInViewVariant: Visible,
		Viewport:           &Viewport{Once: true},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	inherited := Config{Variants: variants}
	if err := inherited.Validate(); err != nil {
		t.Fatalf("child config rejected: %v", err)
	}

	bad := []Config{
		{Variants: variants, InitialVariant: "missing"},
		{Viewport: &Viewport{Once: true}, Animate: &State{}},
		{Transition: &Transition{Duration: -1}},
		{Variants: Variants{Visible: {Transition: &Transition{Type: "x"}}}},
	}
	for i, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("bad[%d]: err = %v, want ErrInvalid", i, err)
		}
	}
}

func TestAttrRoundTrip(t *testing.T) {
	cfg := Config{
		Initial:     &State{Opacity: To(0), Y: To(20)},
		WhileInView: &State{Opacity: To(1), Y: To(0)},
		Transition:  &Transition{Delay: 0.3, Duration: 0.5},
		Viewport:    &Viewport{Once: true, Margin: "-100px"},
	}

	node := vdom.H2(cfg.Attr())
	got, ok := Of(node)
	if !ok {
		t.Fatal("Of found no config")
	}
	if !got.InView() || !got.Viewport.Once || got.Viewport.Margin != "-100px" {
		t.Errorf("viewport lost: %+v", got.Viewport)
	}
	if got.Transition.Delay != 0.3 || got.Transition.Duration != 0.5 {
		t.Errorf("transition lost: %+v", got.Transition)
	}
	if got.Initial.Y[0] != 20 || got.WhileInView.Opacity[0] != 1 {
		t.Errorf("states lost: %+v %+v", got.Initial, got.WhileInView)
	}
	if got.Animate != nil {
		t.Error("unset Animate should stay nil")
	}
}

func TestDecodeRejectsOtherHooks(t *testing.T) {
	if _, err := Decode(`Tooltip:{}`); err == nil || !strings.Contains(err.Error(), "Motion") {
		t.Errorf("err = %v", err)
	}
	if _, ok := Of(vdom.Div(vdom.Attr{Key: "v-hook", Value: "Motion:[]"})); ok {
		t.Error("array config should not decode")
	}
}
