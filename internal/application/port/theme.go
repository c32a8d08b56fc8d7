package port

//go:generate mockgen -source=theme.go -destination=mocks/mock_theme.go -package=mock_port

import (
	"context"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// PreferenceStore is the persisted key-value preference port.
// Implementations are scoped to one browsing context.
type PreferenceStore interface {
	// Lookup returns the stored value and whether the key exists.
	Lookup(ctx context.Context, key string) (value string, ok bool, err error)

	// Store creates or overwrites a value.
	Store(ctx context.Context, key, value string) error

	// Remove deletes a value. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// AppearanceQuery answers media queries about the host appearance,
// e.g. "(prefers-color-scheme: dark)". Unknown queries do not match.
type AppearanceQuery interface {
	Matches(ctx context.Context, query string) bool
}

// RootTokens is the class token set of a document root.
type RootTokens interface {
	Tokens() entity.TokenList
	SetTokens(tokens entity.TokenList)
}
