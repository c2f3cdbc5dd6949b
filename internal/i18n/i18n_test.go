package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	require.Equal(t, language.French, Parse("fr"))
	require.Equal(t, language.French, Parse("fr-CA"))
	require.Equal(t, language.English, Parse("en-GB"))
	require.Equal(t, language.English, Parse("ja"))
	require.Equal(t, language.English, Parse("not a tag!"))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Bubble Sort", Title(language.English, "bubble_sort"))
	require.Equal(t, "Tri à bulles", Title(language.French, "bubble_sort"))
	require.Equal(t, "Tri rapide", Title(language.French, "quick"))
	require.Equal(t, "tous", Title(language.French, "all"))
	require.Equal(t, "nope", Title(language.French, "nope"))
}

func TestLabel(t *testing.T) {
	require.Equal(t, "Tri fusion (O(n·log2(n)))", Label(language.French, "merge_sort"))
}

func TestPrinter(t *testing.T) {
	p := Printer(language.French)
	require.Equal(t, "image 3/10", p.Sprintf("frame %d/%d", 3, 10))

	p = Printer(language.English)
	require.Equal(t, "frame 3/10", p.Sprintf("frame %d/%d", 3, 10))
}

func TestDataset(t *testing.T) {
	require.Equal(t, "presque trié", Dataset(language.French, "almost-sorted"))
	require.Equal(t, "random", Dataset(language.English, "random"))
}
