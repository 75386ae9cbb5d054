package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cocacola", Slugify("Coca-Cola"))
	assert.Equal(t, "benjerrys", Slugify("Ben & Jerry's"))
	assert.Equal(t, "loral", Slugify("  L'Oréal  ")) // accents are stripped, not transliterated
	assert.Equal(t, "7eleven", Slugify("7-Eleven"))
}

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "2025-11-02T00:00:00Z", FormatEpoch(1762041600000))
}

func TestCheckFileExt(t *testing.T) {
	ext, ok := CheckFileExt("logo.png", []string{"png", "jpg"})
	require.True(t, ok)
	assert.Equal(t, ".png", ext)

	_, ok = CheckFileExt("logo.exe", []string{"png", "jpg"})
	assert.False(t, ok)

	_, ok = CheckFileExt("logo", []string{"png"})
	assert.False(t, ok)
}

func TestSanitizeTrimsStrings(t *testing.T) {
	type form struct {
		Name string
		Tags []string
		Kept int
	}

	f := &form{Name: "  Nexola ", Tags: []string{" a", "b "}, Kept: 3}
	Sanitize(f)

	assert.Equal(t, "Nexola", f.Name)
	assert.Equal(t, []string{"a", "b"}, f.Tags)
	assert.Equal(t, 3, f.Kept)
}
