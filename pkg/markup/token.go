package markup

import "github.com/google/uuid"

// Token marks a point in a tree that is filled in at render time. Tokens
// compare by identity: two calls to NewToken with the same name yield
// different tokens.
type Token struct {
	id   uuid.UUID
	name string
}

// NewToken issues a new placeholder token. The name is only used for
// diagnostics.
func NewToken(name string) Token {
	return Token{id: uuid.New(), name: name}
}

// Name returns the diagnostic name given to NewToken.
func (t Token) Name() string {
	return t.name
}

// IsZero reports whether t is the zero Token, which NewToken never returns.
func (t Token) IsZero() bool {
	return t.id == uuid.Nil
}

// String returns the token's name prefixed with "$".
func (t Token) String() string {
	return "$" + t.name
}

// Tokens maps placeholder tokens to the content rendered in their place.
// Supported values are string, *Node, Void, Builder, func() *Node,
// gomponents.Node and slices of these. A missing token or a falsy value (nil,
// false, 0, "", a nil pointer or an empty slice) renders as nothing.
type Tokens map[Token]any
