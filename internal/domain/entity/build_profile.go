package entity

import (
	"slices"
	"strings"
)

// DarkModeStrategy describes how the stylesheet build recognizes dark mode.
// Strategy is always set ("class" or "media"); Selector is the optional
// attribute-selector variant paired with it.
type DarkModeStrategy struct {
	Strategy string
	Selector string
}

// Combined reports whether the strategy pairs a class with a selector.
func (s DarkModeStrategy) Combined() bool {
	return s.Selector != ""
}

func (s DarkModeStrategy) String() string {
	if s.Combined() {
		return "[" + s.Strategy + ", " + s.Selector + "]"
	}
	return s.Strategy
}

// BuildProfile is one declarative stylesheet build configuration.
// It is consumed by external tooling; nothing here interprets it.
type BuildProfile struct {
	Name     string
	DarkMode DarkModeStrategy
	Content  []string
	// FontSans is prepended to the framework's default sans stack.
	FontSans []string
	Plugins  []string
}

// ProfileDivergence is one field on which two profiles disagree.
type ProfileDivergence struct {
	Profile string
	Field   string
	Want    string
	Got     string
}

// Diverge lists the fields on which other differs from p.
// Content globs are compared as sets; plugins and fonts keep their order
// because load order matters to the build.
func (p BuildProfile) Diverge(other BuildProfile) []ProfileDivergence {
	var out []ProfileDivergence
	add := func(field, want, got string) {
		out = append(out, ProfileDivergence{Profile: other.Name, Field: field, Want: want, Got: got})
	}

	if p.DarkMode != other.DarkMode {
		add("dark_mode", p.DarkMode.String(), other.DarkMode.String())
	}
	if !sameSet(p.Content, other.Content) {
		add("content", strings.Join(p.Content, ", "), strings.Join(other.Content, ", "))
	}
	if !slices.Equal(p.FontSans, other.FontSans) {
		add("font_sans", strings.Join(p.FontSans, ", "), strings.Join(other.FontSans, ", "))
	}
	if !slices.Equal(p.Plugins, other.Plugins) {
		add("plugins", strings.Join(p.Plugins, ", "), strings.Join(other.Plugins, ", "))
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
