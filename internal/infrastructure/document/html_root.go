// Package document exposes the class tokens of an HTML document's root element.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// ErrNoRootElement is returned when no <html> start tag precedes the content.
var ErrNoRootElement = errors.New("document has no <html> root element")

// HTMLRoot holds a document split around its <html> start tag. Only the
// class attribute of that tag is ever rewritten.
type HTMLRoot struct {
	before      []byte
	rawTag      []byte
	after       []byte
	attrs       []html.Attribute
	selfClosing bool
	hadClass    bool
	tokens      entity.TokenList
	dirty       bool
}

var _ port.RootTokens = (*HTMLRoot)(nil)

// Parse reads a whole document and locates its root element.
func Parse(r io.Reader) (*HTMLRoot, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseBytes(src)
}

// ParseBytes locates the root element of src. src is not retained.
// The tokenizer lowercases names in its buffer, so untouched bytes are
// always sliced from src.
func ParseBytes(src []byte) (*HTMLRoot, error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	offset := 0
	for {
		tt := z.Next()
		raw := z.Raw()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil, ErrNoRootElement
			}
			return nil, fmt.Errorf("tokenize document: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Html {
				return nil, ErrNoRootElement
			}
			root := &HTMLRoot{
				before:      bytes.Clone(src[:offset]),
				rawTag:      bytes.Clone(src[offset : offset+len(raw)]),
				after:       bytes.Clone(src[offset+len(raw):]),
				attrs:       tok.Attr,
				selfClosing: tt == html.SelfClosingTagToken,
				tokens:      entity.TokenList{},
			}
			for _, a := range tok.Attr {
				if a.Namespace == "" && a.Key == "class" {
					root.hadClass = true
					root.tokens = entity.ParseTokenList(a.Val)
					break
				}
			}
			return root, nil
		case html.TextToken:
			if len(bytes.TrimSpace(raw)) > 0 {
				return nil, ErrNoRootElement
			}
		case html.EndTagToken:
			return nil, ErrNoRootElement
		}
		offset += len(raw)
	}
}

// Tokens implements port.RootTokens.
func (h *HTMLRoot) Tokens() entity.TokenList {
	out := make(entity.TokenList, len(h.tokens))
	copy(out, h.tokens)
	return out
}

// SetTokens implements port.RootTokens.
func (h *HTMLRoot) SetTokens(tokens entity.TokenList) {
	h.tokens = make(entity.TokenList, len(tokens))
	copy(h.tokens, tokens)
	h.dirty = true
}

// Changed reports whether the root tag will be re-rendered.
func (h *HTMLRoot) Changed() bool {
	return h.dirty
}

// WriteTo writes the document with the current class tokens.
func (h *HTMLRoot) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range [][]byte{h.before, h.renderTag(), h.after} {
		n, err := w.Write(part)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns the rewritten document.
func (h *HTMLRoot) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = h.WriteTo(&buf)
	return buf.Bytes()
}

func (h *HTMLRoot) renderTag() []byte {
	if !h.dirty {
		return h.rawTag
	}

	var b strings.Builder
	b.WriteString("<html")
	wroteClass := false
	for _, a := range h.attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if a.Namespace == "" && a.Key == "class" {
			if wroteClass {
				continue
			}
			wroteClass = true
			writeAttr(&b, "class", h.tokens.String(), true)
			continue
		}
		writeAttr(&b, key, a.Val, false)
	}
	if !wroteClass && len(h.tokens) > 0 {
		writeAttr(&b, "class", h.tokens.String(), true)
	}
	if h.selfClosing {
		b.WriteString("/")
	}
	b.WriteString(">")
	return []byte(b.String())
}

func writeAttr(b *strings.Builder, key, val string, quoteEmpty bool) {
	b.WriteByte(' ')
	b.WriteString(key)
	if val == "" && !quoteEmpty {
		return
	}
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(val))
	b.WriteByte('"')
}
