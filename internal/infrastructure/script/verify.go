package script

import (
	"context"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/document"
	"github.com/bnema/themeroot/internal/infrastructure/storage"
)

// Case is one input combination and what each resolver made of it.
type Case struct {
	Stored     entity.StoredPreference
	SystemDark bool
	Root       entity.TokenList

	Want entity.TokenList
	Got  entity.TokenList
	Err  error
}

// OK reports whether the script matched the Go resolver.
func (c Case) OK() bool {
	return c.Err == nil && c.Want.String() == c.Got.String()
}

// Report is the outcome of Verify.
type Report struct {
	Cases []Case
}

// Failures returns the cases where the script and the resolver disagree.
func (r Report) Failures() []Case {
	var out []Case
	for _, c := range r.Cases {
		if !c.OK() {
			out = append(out, c)
		}
	}
	return out
}

// VerifyStored lists the stored values Verify exercises.
func VerifyStored() []entity.StoredPreference {
	return []entity.StoredPreference{
		entity.NoPreference(),
		entity.StoredValue("dark"),
		entity.StoredValue("light"),
		entity.StoredValue(""),
		entity.StoredValue("Dark"),
		entity.StoredValue("auto"),
	}
}

// VerifyRoots lists the initial root token lists Verify exercises.
func VerifyRoots() []entity.TokenList {
	return []entity.TokenList{
		{},
		{"foo", "bar"},
		{entity.DarkMarker},
		{"foo", entity.DarkMarker, "bar"},
	}
}

type fixedQuery bool

func (q fixedQuery) Matches(_ context.Context, query string) bool {
	return query == entity.PrefersDarkQuery && bool(q)
}

// Verify runs the script over every stored value, system signal and
// initial root, and compares each outcome with entity.ResolveTheme.
func (r *Runtime) Verify(ctx context.Context) Report {
	var report Report
	for _, stored := range VerifyStored() {
		for _, systemDark := range []bool{false, true} {
			for _, tokens := range VerifyRoots() {
				report.Cases = append(report.Cases, r.verifyOne(ctx, stored, systemDark, tokens))
			}
		}
	}
	return report
}

func (r *Runtime) verifyOne(ctx context.Context, stored entity.StoredPreference, systemDark bool, tokens entity.TokenList) Case {
	c := Case{Stored: stored, SystemDark: systemDark, Root: tokens}
	c.Want = entity.ResolveTheme(stored, systemDark).Apply(append(entity.TokenList{}, tokens...))

	seed := map[string]string{}
	if stored.Present {
		seed[entity.ThemeStorageKey] = stored.Value
	}
	root := document.NewMemoryRoot(tokens...)
	c.Err = r.Run(ctx, storage.NewMapStore(seed), fixedQuery(systemDark), root)
	c.Got = root.Tokens()
	return c
}
