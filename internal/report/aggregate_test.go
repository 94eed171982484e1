package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaudit/course-auditor/internal/rubric"
)

func loadTestRubric(t *testing.T) *rubric.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grille.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"metadata": {"version": "1.0"},
		"criteria": {
			"objectifs": {"name": "Objectifs", "weight": 60},
			"contenu": {"name": "Contenu", "weight": 40}
		},
		"grading_scale": {
			"A": {"min_score": 85, "max_score": 100},
			"E": {"min_score": 0, "max_score": 84.99}
		}
	}`), 0o644))
	s, err := rubric.Load(path)
	require.NoError(t, err)
	return s
}

func TestFinalScore(t *testing.T) {
	store := loadTestRubric(t)

	t.Run("weighted 60/40 with scores 5 and 0", func(t *testing.T) {
		scores := map[string]CriterionResult{
			"objectifs": {Score: 5},
			"contenu":   {Score: 0},
		}
		assert.Equal(t, 60.00, FinalScore(scores, store))
	})

	t.Run("all criteria at maximum", func(t *testing.T) {
		scores := map[string]CriterionResult{
			"objectifs": {Score: 5},
			"contenu":   {Score: 5},
		}
		assert.Equal(t, 100.00, FinalScore(scores, store))
	})

	t.Run("criteria unknown to the rubric contribute nothing", func(t *testing.T) {
		scores := map[string]CriterionResult{
			"objectifs": {Score: 5},
			"contenu":   {Score: 0},
			"fantome":   {Score: 5},
		}
		assert.Equal(t, 60.00, FinalScore(scores, store))
	})

	t.Run("no usable weight yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, FinalScore(map[string]CriterionResult{"fantome": {Score: 5}}, store))
		assert.Equal(t, 0.0, FinalScore(map[string]CriterionResult{}, store))
	})

	t.Run("monotonic in any single score", func(t *testing.T) {
		low := FinalScore(map[string]CriterionResult{
			"objectifs": {Score: 2}, "contenu": {Score: 3},
		}, store)
		high := FinalScore(map[string]CriterionResult{
			"objectifs": {Score: 4}, "contenu": {Score: 3},
		}, store)
		assert.Greater(t, high, low)
	})
}

func TestChapterFinalScore(t *testing.T) {
	t.Run("three of four conforme", func(t *testing.T) {
		chapters := []ChapterConformity{
			{Conformite: Conforme},
			{Conformite: Conforme},
			{Conformite: Conforme},
			{Conformite: NonConforme},
		}
		assert.Equal(t, 75.00, ChapterFinalScore(chapters))
	})

	t.Run("no chapters", func(t *testing.T) {
		assert.Equal(t, 0.0, ChapterFinalScore(nil))
	})

	t.Run("partiellement_conforme does not count as conforme", func(t *testing.T) {
		chapters := []ChapterConformity{
			{Conformite: Conforme},
			{Conformite: PartiellementConforme},
		}
		assert.Equal(t, 50.00, ChapterFinalScore(chapters))
	})
}

func TestConformitySummary(t *testing.T) {
	summary := ConformitySummary([]ChapterConformity{
		{Conformite: Conforme},
		{Conformite: PartiellementConforme},
		{Conformite: Conforme},
	})
	assert.Equal(t, 2, summary[Conforme])
	assert.Equal(t, 1, summary[PartiellementConforme])
	assert.Equal(t, 0, summary[NonConforme])

	t.Run("all classes present even when empty", func(t *testing.T) {
		summary := ConformitySummary(nil)
		assert.Len(t, summary, 3)
	})
}

func TestCriteriaAverages(t *testing.T) {
	chapters := []ChapterConformity{
		{
			ScoreGlobal: 4,
			Objectifs:   ObjectifsResult{Score: 4},
			Volume:      VolumeResult{Score: 2},
		},
		{
			ScoreGlobal: 3,
			Objectifs:   ObjectifsResult{Score: 3},
			Volume:      VolumeResult{Score: 3},
		},
		// Degraded chapter: excluded from averages.
		{ScoreGlobal: 0, Objectifs: ObjectifsResult{Score: 0}},
	}
	averages := CriteriaAverages(chapters)
	assert.Equal(t, 3.5, averages["objectifs"])
	assert.Equal(t, 2.5, averages["volume"])

	t.Run("no valid chapters", func(t *testing.T) {
		averages := CriteriaAverages([]ChapterConformity{{ScoreGlobal: 0}})
		for _, k := range DimensionKeys {
			assert.Equal(t, 0.0, averages[k])
		}
	})
}

func TestSynthesizeRecommendations(t *testing.T) {
	scores := map[string]CriterionResult{
		"a": {
			Forces:          []string{"plan clair", "exemples variés"},
			Faiblesses:      []string{"pas de corrigés"},
			Recommandations: []string{"ajouter des corrigés"},
		},
		"b": {
			Forces:          []string{"plan clair"}, // duplicate
			Faiblesses:      []string{"bibliographie absente"},
			Recommandations: []string{"ajouter des corrigés", "citer des sources"},
		},
	}

	recs := SynthesizeRecommendations(scores, 60)
	assert.Equal(t, []string{"plan clair", "exemples variés"}, recs.Forces)
	assert.Equal(t, []string{"pas de corrigés", "bibliographie absente"}, recs.Faiblesses)
	assert.Equal(t, []string{"ajouter des corrigés", "citer des sources"}, recs.RecommandationsDetaillees)
	assert.Equal(t, PriorityRecommendations(60), recs.RecommandationsPrioritaires)

	t.Run("lists are capped", func(t *testing.T) {
		many := map[string]CriterionResult{}
		for i := 0; i < 4; i++ {
			many[string(rune('a'+i))] = CriterionResult{
				Forces: []string{
					"f" + string(rune('0'+i)) + "a",
					"f" + string(rune('0'+i)) + "b",
				},
			}
		}
		recs := SynthesizeRecommendations(many, 60)
		assert.Len(t, recs.Forces, 5)
	})
}

func TestPriorityRecommendations(t *testing.T) {
	t.Run("band boundaries", func(t *testing.T) {
		assert.Contains(t, PriorityRecommendations(39.99)[0], "Refonte complète")
		assert.Contains(t, PriorityRecommendations(40)[0], "structure générale")
		assert.Contains(t, PriorityRecommendations(54.99)[0], "structure générale")
		assert.Contains(t, PriorityRecommendations(55)[0], "exemples concrets")
		assert.Contains(t, PriorityRecommendations(69.99)[0], "exemples concrets")
		assert.Contains(t, PriorityRecommendations(70)[0], "Optimisation")
		assert.Contains(t, PriorityRecommendations(100)[0], "Optimisation")
	})
}

func TestBuildSynthesis(t *testing.T) {
	chapters := []ChapterConformity{
		{ChapterInfo: ChapterInfo{Title: "Intro"}, Conformite: Conforme},
		{ChapterInfo: ChapterInfo{Title: "Bases"}, Conformite: Conforme},
		{
			ChapterInfo:     ChapterInfo{Title: "Annexe"},
			Conformite:      NonConforme,
			Recommandations: []string{"revoir l'annexe"},
		},
	}
	summary := ConformitySummary(chapters)
	averages := map[string]float64{
		"objectifs": 4, "competences": 3.2, "contenu": 4,
		"references": 1.5, "volume": 2.9,
	}

	syn := BuildSynthesis(chapters, summary, averages)
	assert.Equal(t, Conforme, syn.OverallConformity)
	assert.Equal(t, []string{`Chapitre "Annexe" non conforme`}, syn.CriticalIssues)
	assert.Contains(t, syn.PriorityRecommendations, "revoir l'annexe")
	assert.Equal(t, []string{"references", "volume"}, syn.ImprovementAreas)

	t.Run("majority not conforme", func(t *testing.T) {
		chapters := []ChapterConformity{
			{Conformite: Conforme},
			{Conformite: PartiellementConforme},
			{Conformite: NonConforme},
		}
		syn := BuildSynthesis(chapters, ConformitySummary(chapters), map[string]float64{})
		assert.Equal(t, PartiellementConforme, syn.OverallConformity)
	})

	t.Run("all non conforme", func(t *testing.T) {
		chapters := []ChapterConformity{{Conformite: NonConforme}}
		syn := BuildSynthesis(chapters, ConformitySummary(chapters), map[string]float64{})
		assert.Equal(t, NonConforme, syn.OverallConformity)
	})
}

func TestPrioritizeRecommendations(t *testing.T) {
	chapters := []ChapterConformity{
		{ChapterInfo: ChapterInfo{Title: "Intro"}, Recommandations: []string{"clarifier les objectifs"}},
	}

	recs := PrioritizeRecommendations(chapters, 40)
	require.Len(t, recs, 1)
	assert.Equal(t, "high", recs[0].Priority)

	assert.Equal(t, "medium", PrioritizeRecommendations(chapters, 60)[0].Priority)
	assert.Equal(t, "low", PrioritizeRecommendations(chapters, 80)[0].Priority)
}
