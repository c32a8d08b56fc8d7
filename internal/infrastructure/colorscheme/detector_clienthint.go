package colorscheme

import (
	"context"
	"strings"
)

const (
	detectorNameClientHint = "client-hint"
	priorityClientHint     = 100

	// ClientHintHeader is the request header carrying the browser's
	// prefers-color-scheme value.
	ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"
)

type clientHintKey struct{}

// WithClientHint stores the raw client hint header value of a request.
func WithClientHint(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, clientHintKey{}, value)
}

// ClientHintDetector reads the color scheme the browser sent with the
// current request. It only answers when the hint was present.
type ClientHintDetector struct{}

// NewClientHintDetector creates a new client hint detector.
func NewClientHintDetector() *ClientHintDetector {
	return &ClientHintDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*ClientHintDetector) Name() string {
	return detectorNameClientHint
}

// Priority implements port.ColorSchemeDetector.
func (*ClientHintDetector) Priority() int {
	return priorityClientHint
}

// Available implements port.ColorSchemeDetector.
func (*ClientHintDetector) Available() bool {
	return true
}

// Detect implements port.ColorSchemeDetector.
// Header values are structured-field strings, e.g. `"dark"`.
func (*ClientHintDetector) Detect(ctx context.Context) (prefersDark, ok bool) {
	raw, _ := ctx.Value(clientHintKey{}).(string)
	switch strings.ToLower(strings.Trim(strings.TrimSpace(raw), `"`)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}
