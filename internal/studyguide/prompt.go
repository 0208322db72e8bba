package studyguide

import "fmt"

func buildPrompt(excerpt, discipline, level string) string {
	return fmt.Sprintf(`En tant qu'expert en %s pour le niveau %s, génère un résumé intelligent et structuré du document suivant.

ANALYSE REQUISE :
1. Résumé par section/chapitre (si le document a des chapitres)
2. Mind map : concepts principaux et leurs relations
3. Timeline : dates importantes pour les documents historiques ou chronologiques
4. Glossaire : termes techniques avec explications claires
5. Flashcards : paires question/réponse pour la révision
6. Analyse du document : type, niveau de difficulté, mots-clés, concepts connexes, temps de lecture, statistiques

Document :
%s

IMPORTANT : Retourne UNIQUEMENT un objet JSON valide, sans texte avant ou après, avec les clés
resume_general, sections, mindmap, timeline, glossaire, flashcards, analyse, definitions,
theoremes_formules, concepts_cles, liens_cours.`, discipline, level, excerpt)
}
