package catalog

import _ "embed"

// builtinData is a compact default catalog compiled into the binary so
// a fresh install works before any emoji.json is provisioned. It is
// only consulted when WithBuiltin is set and no on-disk file exists.
//
//go:embed data/emoji.json
var builtinData string
