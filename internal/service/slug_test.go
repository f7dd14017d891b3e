package service_test

import (
	"strings"
	"testing"

	"inkwell/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":                  "hello-world",
		"  Crème brûlée, façile!  ":    "creme-brulee-facile",
		"Go 1.25 -- what's new?":       "go-1-25-what-s-new",
		"Über straße":                  "uber-straße",
		"!!!":                          "post",
		"":                             "post",
		"multiple   spaces\tand\ntabs": "multiple-spaces-and-tabs",
	}
	for in, want := range cases {
		require.Equal(t, want, service.Slugify(in), in)
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := service.Slugify(strings.Repeat("word ", 40))
	require.LessOrEqual(t, len(slug), 80)
	require.False(t, strings.HasSuffix(slug, "-"))
}
