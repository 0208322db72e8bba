package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `Tu es un professeur de l'enseignement supérieur qui prépare des évaluations à partir de supports de cours.

Règles :
- Les questions portent uniquement sur le contenu fourni.
- Pour un QCM, "correct_answer" reprend exactement le texte d'une des options.
- Pour une question ouverte, "options" est un tableau vide et "correct_answer" est une réponse de référence rédigée.
- Chaque question a une explication détaillée, un nombre de points et une compétence.
- Retourne UNIQUEMENT un objet JSON valide, sans texte avant ou après.`

// buildUserMessage constructs the quiz request from the course excerpt and options.
func buildUserMessage(excerpt string, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "En tant que professeur de %s, crée un quiz de type \"%s\" avec %d questions de difficulté \"%s\".\n",
		opts.Discipline, opts.QuizType, opts.Count, opts.Difficulty)
	if opts.Level != "" {
		fmt.Fprintf(&b, "Niveau des étudiants : %s\n", opts.Level)
	}
	if opts.EvalMode != "" {
		fmt.Fprintf(&b, "Contexte d'évaluation : %s\n", opts.EvalMode)
	}

	b.WriteString("\nContenu du cours :\n")
	b.WriteString(excerpt)

	b.WriteString(`

Le quiz doit inclure :
- Des questions pertinentes et académiques
- Des choix de réponse plausibles pour les QCM
- Des explications détaillées pour chaque réponse

Format JSON requis :
{"questions": [{"id": 1, "type": "qcm", "question": "...", "options": ["Option A", "Option B", "Option C", "Option D"], "correct_answer": "Option A", "explication": "...", "points": 2, "competence": "Compréhension"}]}

Types de compétences : Compréhension, Application, Analyse, Mémorisation`)

	return b.String()
}
