package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	in := "[theme]\nbackend = \"sqlite\"\n\n[appearance]\ncolor_scheme = \"default\"\n"
	out := sortTOMLSections(in)

	assert.Less(t, strings.Index(out, "[appearance]"), strings.Index(out, "[theme]"))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestEncodeOrdered(t *testing.T) {
	data, err := EncodeOrdered(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[server]")
	assert.Contains(t, out, "[tailwind.profiles.legacy]")
	assert.Less(t, strings.Index(out, "[appearance]"), strings.Index(out, "[server]"))

	_, err = EncodeOrdered(nil)
	require.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, SchemaID)
	assert.Contains(t, out, `"color_scheme"`)
	assert.Contains(t, out, `"prefer-dark"`)
}
