// Package hooks encodes client hooks onto elements.
//
// A hook names a behavior implemented by the browser runtime and carries
// its configuration as JSON in a single attribute:
//
//	<div v-hook="Motion:{&quot;initial&quot;:...}">
//
// The server never runs the behavior; it only declares it.
package hooks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moklet-dev/twibbon/pkg/vdom"
)

// AttrKey is the attribute that carries a hook declaration.
const AttrKey = "v-hook"

// Hook creates a hook attribute for an element.
// The config is serialized to JSON immediately so that a config that
// cannot be encoded shows up as "null" rather than as broken markup.
func Hook(name string, config any) vdom.Attr {
	b, err := json.Marshal(config)
	if err != nil {
		b = []byte("null")
	}
	return vdom.Attr{
		Key:   AttrKey,
		Value: name + ":" + string(b),
	}
}

// Decode splits a hook attribute value into its name and raw JSON config.
func Decode(value string) (name string, config json.RawMessage, err error) {
	i := strings.IndexByte(value, ':')
	if i <= 0 {
		return "", nil, fmt.Errorf("hooks: malformed hook value %q", value)
	}
	raw := json.RawMessage(value[i+1:])
	if !json.Valid(raw) {
		return "", nil, fmt.Errorf("hooks: invalid config for hook %q", value[:i])
	}
	return value[:i], raw, nil
}

// Of returns the hook value declared on n, if any.
func Of(n *vdom.VNode) (string, bool) {
	if n == nil || n.Props == nil {
		return "", false
	}
	v, ok := n.Props[AttrKey].(string)
	return v, ok
}
