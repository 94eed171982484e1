package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMandatorySections(t *testing.T) {
	mandatory := []string{"introduction", "objectifs", "contenu principal", "conclusion"}

	t.Run("all sections found by synonyms", func(t *testing.T) {
		text := "Avant-propos du module. Les buts visés. Chapitre 1. Synthèse finale."
		check := CheckMandatorySections(text, mandatory)
		assert.Equal(t, mandatory, check.FoundSections)
		assert.Empty(t, check.MissingSections)
		assert.Equal(t, 100.00, check.CompletionRate)
	})

	t.Run("partial coverage", func(t *testing.T) {
		text := "Introduction au module. Chapitre 1 : les bases."
		check := CheckMandatorySections(text, mandatory)
		assert.Equal(t, []string{"introduction", "contenu principal"}, check.FoundSections)
		assert.Equal(t, []string{"objectifs", "conclusion"}, check.MissingSections)
		assert.Equal(t, 50.00, check.CompletionRate)
	})

	t.Run("unknown section name matches literally", func(t *testing.T) {
		check := CheckMandatorySections("le glossaire se trouve en annexe", []string{"glossaire"})
		assert.Equal(t, []string{"glossaire"}, check.FoundSections)
	})

	t.Run("empty mandatory list", func(t *testing.T) {
		check := CheckMandatorySections("texte", nil)
		assert.Equal(t, 0.0, check.CompletionRate)
		assert.Empty(t, check.FoundSections)
	})
}

func TestCountElements(t *testing.T) {
	text := `Exemple 1 : une addition simple.
Exemple 2 : une soustraction.
Exercice 1 à faire chez soi.
Question 3 : expliquer la différence.
Un travail pratique complète le chapitre.`

	count := CountElements(text)
	assert.Equal(t, 2, count.ExamplesCount)
	assert.Equal(t, 3, count.ExercisesCount)

	t.Run("no pedagogical elements", func(t *testing.T) {
		count := CountElements("du texte sans rien de particulier")
		assert.Zero(t, count.ExamplesCount)
		assert.Zero(t, count.ExercisesCount)
	})
}
