package el

import "github.com/vango-dev/htmlr/pkg/markup"

// Type aliases for the markup primitives used by the helpers.
type Node = markup.Node
type Attrs = markup.Attrs
type Builder = markup.Builder
type Void = markup.Void
type Token = markup.Token
type Tokens = markup.Tokens
