package document

import (
	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// MemoryRoot is a root token set held in memory.
type MemoryRoot struct {
	tokens entity.TokenList
}

var _ port.RootTokens = (*MemoryRoot)(nil)

// NewMemoryRoot returns a root starting with a copy of tokens.
func NewMemoryRoot(tokens ...string) *MemoryRoot {
	return &MemoryRoot{tokens: append(entity.TokenList{}, tokens...)}
}

// Tokens implements port.RootTokens.
func (m *MemoryRoot) Tokens() entity.TokenList {
	return append(entity.TokenList{}, m.tokens...)
}

// SetTokens implements port.RootTokens.
func (m *MemoryRoot) SetTokens(tokens entity.TokenList) {
	m.tokens = append(entity.TokenList{}, tokens...)
}

func (m *MemoryRoot) String() string {
	return m.tokens.String()
}
