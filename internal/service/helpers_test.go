package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSlug(t *testing.T) {
	valid := []string{"summer-rates", "a", "2024-season-recap", "loft"}
	for _, s := range valid {
		assert.True(t, ValidSlug(s), s)
	}

	invalid := []string{"", "Summer-Rates", "double--hyphen", "-leading", "trailing-", "with space", "über"}
	for _, s := range invalid {
		assert.False(t, ValidSlug(s), s)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Rates in Lisbon!":   "summer-rates-in-lisbon",
		"  Padded  Title  ":         "padded-title",
		"Already-a-slug":            "already-a-slug",
		"2024 Season Recap":         "2024-season-recap",
		"!!!":                       "",
		"Crème Brûlée & the Coast!": "cr-me-br-l-e-the-coast",
	}

	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), title)
	}
}

func TestObjectNameFromURL(t *testing.T) {
	assert.Equal(t, "abc-123.jpg", objectNameFromURL("https://cdn.stayhaven.test/properties/abc-123.jpg"))
	assert.Equal(t, "", objectNameFromURL("https://cdn.stayhaven.test/properties/"))
	assert.Equal(t, "", objectNameFromURL("no-slashes"))
}
