package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("no headings yields a single pseudo-chapter", func(t *testing.T) {
		text := "un paragraphe sans structure\nsur deux lignes"
		chapters := Split(text)

		require.Len(t, chapters, 1)
		assert.Equal(t, FallbackTitle, chapters[0].Title)
		assert.Equal(t, 7, chapters[0].WordCount)
	})

	t.Run("empty text still yields the pseudo-chapter", func(t *testing.T) {
		chapters := Split("")
		require.Len(t, chapters, 1)
		assert.Equal(t, FallbackTitle, chapters[0].Title)
	})

	t.Run("chapitre headings split in order", func(t *testing.T) {
		text := "Chapitre 1 : Introduction\ncontenu du premier chapitre\n" +
			"Chapitre 2 : Les bases\ncontenu du second chapitre\n"
		chapters := Split(text)

		require.Len(t, chapters, 2)
		assert.Equal(t, "1 - Introduction", chapters[0].Title)
		assert.Equal(t, "contenu du premier chapitre", chapters[0].Content)
		assert.Equal(t, "2 - Les bases", chapters[1].Title)
	})

	t.Run("roman numerals and partie headings", func(t *testing.T) {
		text := "Partie II - Analyse\ndu contenu ici\n"
		chapters := Split(text)
		require.Len(t, chapters, 1)
		assert.Equal(t, "II - Analyse", chapters[0].Title)
	})

	t.Run("numbered headings", func(t *testing.T) {
		text := "1.2 : Compléments\ntexte de la section\n"
		chapters := Split(text)
		require.Len(t, chapters, 1)
		assert.Equal(t, "1.2 - Compléments", chapters[0].Title)
	})

	t.Run("standalone capitalized heading needs a blank next line", func(t *testing.T) {
		withBlank := "Les fondamentaux\n\ncontenu qui suit le titre\n"
		chapters := Split(withBlank)
		require.Len(t, chapters, 1)
		assert.Equal(t, "Les fondamentaux", chapters[0].Title)

		// Same line glued to the next one is body text, not a heading.
		noBlank := "Les fondamentaux\ncontenu qui suit directement\n"
		chapters = Split(noBlank)
		require.Len(t, chapters, 1)
		assert.Equal(t, FallbackTitle, chapters[0].Title)
	})

	t.Run("heading without trailing content is dropped", func(t *testing.T) {
		text := "Chapitre 1 : Introduction\ndu contenu\nChapitre 2 : Vide"
		chapters := Split(text)
		require.Len(t, chapters, 1)
		assert.Equal(t, "1 - Introduction", chapters[0].Title)
	})

	t.Run("content before the first heading is dropped", func(t *testing.T) {
		text := "préambule hors chapitre\nChapitre 1 : Début\nvrai contenu\n"
		chapters := Split(text)
		require.Len(t, chapters, 1)
		assert.NotContains(t, chapters[0].Content, "préambule")
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		// "Chapitre 3 : Titre" also looks like a standalone heading when
		// followed by a blank line; the chapitre rule must take it first.
		text := "Chapitre 3 : Titre\n\ncontenu\n"
		chapters := Split(text)
		require.Len(t, chapters, 1)
		assert.Equal(t, "3 - Titre", chapters[0].Title)
	})
}
