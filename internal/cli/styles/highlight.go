package styles

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightCode colors source for a terminal. lexer is a chroma lexer name
// such as "javascript" or "toml". On failure source is returned as is.
func (t *Theme) HighlightCode(source, lexer string) string {
	var sb strings.Builder
	if err := quick.Highlight(&sb, source, lexer, "terminal256", t.ChromaStyle()); err != nil {
		return source
	}
	return sb.String()
}
