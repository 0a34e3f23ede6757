package clientdist

import _ "embed"

// MotionJS is the browser runtime for Motion hooks.
//
// It is served at "/_twibbon/motion.js" and inlined into published pages.
//
//go:embed motion.js
var MotionJS []byte
