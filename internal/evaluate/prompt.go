package evaluate

import (
	"strings"
	"unicode/utf8"

	"github.com/edaudit/course-auditor/internal/rubric"
	"github.com/edaudit/course-auditor/internal/segment"
)

// Input character budgets. Evaluation requests keep a text prefix to respect
// provider request-size limits.
const (
	maxCriterionChars = 4000
	maxChapterChars   = 3000
)

// BuildCriterionSystemPrompt composes the system message, specialized when a
// subject expert is active.
func BuildCriterionSystemPrompt(subjectName string) string {
	if subjectName != "" {
		return "Tu es un expert en évaluation pédagogique spécialisé en " + subjectName + ". Réponds uniquement en JSON valide."
	}
	return "Tu es un expert en évaluation pédagogique. Réponds uniquement en JSON valide."
}

// BuildCriterionUserPrompt renders the evaluation request for one criterion
// against the (truncated) document text.
func BuildCriterionUserPrompt(c rubric.Criterion, keywords []string, text, expertContext string) string {
	var b strings.Builder
	b.WriteString("Tu es chargé d'évaluer un contenu éducatif selon le critère suivant :\n\n")
	b.WriteString("CRITÈRE : " + c.Name + "\n")
	b.WriteString("DESCRIPTION : " + c.Description + "\n")
	b.WriteString("INDICATEURS À ÉVALUER :\n")
	for _, ind := range c.Indicators {
		b.WriteString("- " + ind + "\n")
	}
	if len(keywords) > 0 {
		b.WriteString("\nMOTS-CLÉS À RECHERCHER :\n")
		b.WriteString(strings.Join(keywords, ", "))
		b.WriteString("\n")
	}
	if expertContext != "" {
		b.WriteString(expertContext)
		b.WriteString("\n")
	}
	b.WriteString("\nCONTENU À ANALYSER :\n")
	b.WriteString(truncate(text, maxCriterionChars))
	b.WriteString("\n\nINSTRUCTIONS :\n")
	b.WriteString("1. Évalue ce contenu selon les indicateurs listés\n")
	b.WriteString("2. Attribue une note de 0 à 5 (5 = excellent, 0 = absent/très insuffisant)\n")
	b.WriteString("3. Fournis un commentaire détaillé justifiant ta note\n")
	b.WriteString("4. Identifie des extraits du texte comme preuves (citations courtes)\n")
	b.WriteString("5. Liste les forces et faiblesses identifiées\n")
	b.WriteString("6. Propose des recommandations d'amélioration\n")
	b.WriteString("\nRÉPONSE ATTENDUE (FORMAT JSON) :\n")
	b.WriteString(`{
  "score": 0,
  "commentaire": "analyse détaillée",
  "preuves": ["extrait1", "extrait2"],
  "forces": ["force1", "force2"],
  "faiblesses": ["faiblesse1", "faiblesse2"],
  "recommandations": ["recommandation1", "recommandation2"]
}`)
	return b.String()
}

// BuildChapterUserPrompt renders the conformity request for one chapter.
func BuildChapterUserPrompt(ch segment.Chapter) string {
	var b strings.Builder
	b.WriteString("Tu es un expert en pédagogie. Analyse ce chapitre de cours pour vérifier sa conformité pédagogique.\n\n")
	b.WriteString("CHAPITRE : " + ch.Title + "\n")
	b.WriteString("CONTENU :\n")
	b.WriteString(truncate(ch.Content, maxChapterChars))
	b.WriteString("\n\nCRITÈRES À VÉRIFIER :\n")
	b.WriteString("1. OBJECTIFS : Le chapitre définit-il clairement ses objectifs d'apprentissage ?\n")
	b.WriteString("2. COMPÉTENCES : Les compétences à acquérir sont-elles explicites ?\n")
	b.WriteString("3. CONTENU : Le contenu est-il structuré, progressif et adapté ?\n")
	b.WriteString("4. RÉFÉRENCES : Y a-t-il des références bibliographiques ou ressources ?\n")
	b.WriteString("5. VOLUME : Le volume de contenu est-il approprié (cours/TD/TP) ?\n")
	b.WriteString("\nRÉPONSE ATTENDUE (FORMAT JSON) :\n")
	b.WriteString(`{
  "objectifs": {"present": false, "clairs": false, "score": 0, "commentaire": "analyse détaillée"},
  "competences": {"definies": false, "explicites": false, "score": 0, "commentaire": "analyse détaillée"},
  "contenu": {"structure": false, "progression": false, "adapte": false, "score": 0, "commentaire": "analyse détaillée"},
  "references": {"presentes": false, "pertinentes": false, "score": 0, "commentaire": "analyse détaillée"},
  "volume": {"approprie": false, "equilibre_cours_td_tp": false, "score": 0, "commentaire": "analyse détaillée"},
  "score_global": 0,
  "conformite": "conforme | partiellement_conforme | non_conforme",
  "recommandations": ["recommandation1", "recommandation2"]
}`)
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back up so the cut never lands inside a multi-byte rune.
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
