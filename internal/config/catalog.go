package config

import (
	"slices"
	"strings"

	"github.com/abhisek/mentorai/internal/quiz"
)

// Option lists offered by the CLI and sent as prompt context.
var (
	Profiles = []string{"Étudiant", "Enseignant", "Chercheur"}

	Disciplines = []string{
		"Informatique",
		"Mathématiques",
		"Physique",
		"Chimie",
		"Biologie",
		"Économie",
		"Droit",
		"Médecine",
		"Ingénierie",
		"Sciences Humaines",
	}

	Levels = []string{"L1", "L2", "L3", "M1", "M2", "Doctorat"}

	QuizTypes = []string{
		"QCM Examen",
		"Questions de cours",
		"Exercices d'application",
		"Questions de synthèse",
		"Préparation TD/TP",
		"Révision finale",
	}

	EvalModes = []string{
		"Mode Contrôle Continu",
		"Mode Examen Final",
		"Mode Rattrapage",
		"Mode Auto-évaluation",
	}

	Difficulties = []string{
		"Niveau TD (facile)",
		"Niveau Partiel (moyen)",
		"Niveau Examen Final (difficile)",
	}

	Schemes = quiz.SchemeNames()
)

var catalogs = map[string]*[]string{
	"profile":    &Profiles,
	"discipline": &Disciplines,
	"level":      &Levels,
	"quiztype":   &QuizTypes,
	"evalmode":   &EvalModes,
	"difficulty": &Difficulties,
	"scheme":     &Schemes,
}

// Catalog returns the named option list, or nil.
func Catalog(name string) []string {
	if c, ok := catalogs[name]; ok {
		return *c
	}
	return nil
}

// Match resolves value against the named catalog, ignoring case and
// surrounding space, and returns the canonical entry.
func Match(name, value string) (string, bool) {
	value = strings.TrimSpace(value)
	i := slices.IndexFunc(Catalog(name), func(s string) bool {
		return strings.EqualFold(s, value)
	})
	if i < 0 {
		return "", false
	}
	return Catalog(name)[i], true
}
