package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaudit/course-auditor/internal/report"
)

func TestDecodeCriterionResult(t *testing.T) {
	t.Run("complete response", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{
			"score": 4.5,
			"commentaire": "bon niveau",
			"preuves": ["page 3"],
			"forces": ["structure claire"],
			"faiblesses": ["peu d'exercices"],
			"recommandations": ["ajouter des TP"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 4.5, res.Score)
		assert.Equal(t, "bon niveau", res.Commentaire)
		assert.Equal(t, []string{"page 3"}, res.Preuves)
	})

	t.Run("missing fields get safe defaults", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{"score": 3}`))
		require.NoError(t, err)
		assert.Equal(t, 3.0, res.Score)
		assert.Empty(t, res.Commentaire)
		assert.NotNil(t, res.Forces)
		assert.Empty(t, res.Forces)
	})

	t.Run("score as string is parsed", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{"score": " 4 ", "commentaire": "x"}`))
		require.NoError(t, err)
		assert.Equal(t, 4.0, res.Score)
	})

	t.Run("non-numeric score defaults to zero", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{"score": "quatre"}`))
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Score)
	})

	t.Run("out-of-range scores are clamped", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{"score": 9}`))
		require.NoError(t, err)
		assert.Equal(t, 5.0, res.Score)

		res, err = decodeCriterionResult([]byte(`{"score": -3}`))
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Score)
	})

	t.Run("non-object body fails", func(t *testing.T) {
		_, err := decodeCriterionResult([]byte(`pas un objet`))
		assert.Error(t, err)
	})

	t.Run("mixed-type list keeps only usable items", func(t *testing.T) {
		res, err := decodeCriterionResult([]byte(`{"score": 2, "forces": ["a", 3, {"x":1}, true]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "3", "true"}, res.Forces)
	})
}

func TestDecodeChapterConformity(t *testing.T) {
	t.Run("complete response", func(t *testing.T) {
		res, err := decodeChapterConformity([]byte(`{
			"objectifs": {"present": true, "clairs": true, "score": 4, "commentaire": "ok"},
			"competences": {"definies": true, "explicites": false, "score": 3, "commentaire": "ok"},
			"contenu": {"structure": true, "progression": true, "adapte": true, "score": 5, "commentaire": "ok"},
			"references": {"presentes": false, "pertinentes": false, "score": 1, "commentaire": "absentes"},
			"volume": {"approprie": true, "equilibre_cours_td_tp": false, "score": 3, "commentaire": "ok"},
			"score_global": 3.5,
			"conformite": "partiellement_conforme",
			"recommandations": ["ajouter une bibliographie"]
		}`))
		require.NoError(t, err)
		assert.True(t, res.Objectifs.Present)
		assert.False(t, res.References.Presentes)
		assert.Equal(t, 3.5, res.ScoreGlobal)
		assert.Equal(t, report.PartiellementConforme, res.Conformite)
	})

	t.Run("unknown conformity becomes non_conforme", func(t *testing.T) {
		res, err := decodeChapterConformity([]byte(`{"conformite": "excellent"}`))
		require.NoError(t, err)
		assert.Equal(t, report.NonConforme, res.Conformite)
	})

	t.Run("missing dimensions default to zero scores", func(t *testing.T) {
		res, err := decodeChapterConformity([]byte(`{"conformite": "conforme"}`))
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Objectifs.Score)
		assert.Equal(t, 0.0, res.Volume.Score)
		assert.False(t, res.Contenu.Structure)
	})
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-1))
	assert.Equal(t, 2.5, clampScore(2.5))
	assert.Equal(t, 5.0, clampScore(12))
}
