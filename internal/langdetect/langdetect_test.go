package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/langdetect"
)

func TestDetectISO6391(t *testing.T) {
	require.Equal(t, "en", langdetect.DetectISO6391("The quick brown fox jumps over the lazy dog while the farmer watches."))
	require.Equal(t, "de", langdetect.DetectISO6391("Der schnelle braune Fuchs springt über den faulen Hund und der Bauer schaut zu."))
	require.Equal(t, "fr", langdetect.DetectISO6391("Le renard brun rapide saute par-dessus le chien paresseux pendant que le fermier regarde."))
}

func TestDetectISO6391_TooShort(t *testing.T) {
	require.Equal(t, "", langdetect.DetectISO6391(""))
	require.Equal(t, "", langdetect.DetectISO6391("  hi 12345  "))
}

func TestIsSupported(t *testing.T) {
	require.True(t, langdetect.IsSupported("EN"))
	require.True(t, langdetect.IsSupported("ja"))
	require.False(t, langdetect.IsSupported("xx"))
	require.Contains(t, langdetect.Supported(), "de")
}
