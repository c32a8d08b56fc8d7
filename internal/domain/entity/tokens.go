package entity

import (
	"slices"
	"strings"
)

// TokenList is the ordered set of class tokens on a document root.
// Operations never mutate the receiver.
type TokenList []string

// ParseTokenList splits a class attribute on ASCII whitespace.
func ParseTokenList(attr string) TokenList {
	fields := strings.Fields(attr)
	if len(fields) == 0 {
		return TokenList{}
	}
	return TokenList(fields)
}

// Contains reports whether token is a member.
func (l TokenList) Contains(token string) bool {
	return slices.Contains(l, token)
}

// Add returns the list with token inserted at the front.
// If token is already a member the list is returned unchanged.
func (l TokenList) Add(token string) TokenList {
	if token == "" || l.Contains(token) {
		return l
	}
	out := make(TokenList, 0, len(l)+1)
	out = append(out, token)
	return append(out, l...)
}

// Remove returns the list without token, keeping the order of the rest.
// Removing an absent token returns the list unchanged.
func (l TokenList) Remove(token string) TokenList {
	idx := slices.Index(l, token)
	if idx < 0 {
		return l
	}
	out := make(TokenList, 0, len(l)-1)
	for _, t := range l {
		if t != token {
			out = append(out, t)
		}
	}
	return out
}

// String renders the list as a class attribute value.
func (l TokenList) String() string {
	return strings.Join(l, " ")
}
