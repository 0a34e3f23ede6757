package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElementArguments(t *testing.T) {
	var optional *VNode
	node := Div(
		nil,
		ID("main"),
		[]Attr{Data("role", "grid"), {}},
		H2(),
		[]*VNode{P(), nil},
		optional,
		"plain",
	)

	if node.Tag != "div" {
		t.Errorf("Tag = %q, want div", node.Tag)
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v, want main", node.Props["id"])
	}
	if node.Props["data-role"] != "grid" {
		t.Errorf("data-role = %v, want grid", node.Props["data-role"])
	}
	if len(node.Children) != 3 {
		t.Fatalf("Children len = %d, want 3", len(node.Children))
	}
	if node.Children[2].Kind != KindText || node.Children[2].Text != "plain" {
		t.Errorf("string argument did not become a text node: %+v", node.Children[2])
	}
}

func TestClassAccumulates(t *testing.T) {
	node := Div(Class("a", "b"), Class("c"), Class())
	if got := node.Props["class"]; got != "a b c" {
		t.Errorf("class = %q, want %q", got, "a b c")
	}
}

func TestKeyIsLiftedOutOfProps(t *testing.T) {
	node := Div(Key(3))
	if node.Key != "3" {
		t.Errorf("Key = %q, want 3", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not remain in Props")
	}
}

func TestStylesSorted(t *testing.T) {
	attr := Styles(map[string]string{"top": "20%", "left": "40%"})
	if attr.Value != "left: 40%; top: 20%" {
		t.Errorf("style = %q", attr.Value)
	}
}

func TestComponentArgumentIsRendered(t *testing.T) {
	comp := Func(func() *VNode { return P(Text("inner")) })
	node := Div(comp)
	if len(node.Children) != 1 || node.Children[0].Tag != "p" {
		t.Fatalf("component not rendered into children: %+v", node.Children)
	}
}

func TestRangeAndRepeat(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Range(items, func(s string, i int) *VNode {
		if i == 1 {
			return nil
		}
		return Text(s)
	})
	if len(nodes) != 2 {
		t.Errorf("Range len = %d, want 2", len(nodes))
	}

	if got := Repeat(0, func(int) *VNode { return Div() }); got != nil {
		t.Errorf("Repeat(0) = %v, want nil", got)
	}
	if got := Repeat(3, func(int) *VNode { return Div() }); len(got) != 3 {
		t.Errorf("Repeat(3) len = %d, want 3", len(got))
	}
}

func TestIf(t *testing.T) {
	n := Div()
	if If(true, n) != n {
		t.Error("If(true) should return node")
	}
	if If(false, n) != nil {
		t.Error("If(false) should return nil")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("meta") {
		t.Error("meta should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}
