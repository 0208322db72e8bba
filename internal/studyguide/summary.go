// Package studyguide produces structured revision summaries of course
// documents.
package studyguide

// Summary is a structured digest of a document. JSON keys follow the
// French schema the model is prompted with.
type Summary struct {
	Overview    string      `json:"resume_general"`
	Sections    []Section   `json:"sections"`
	MindMap     MindMap     `json:"mindmap"`
	Timeline    []Event     `json:"timeline"`
	Glossary    []Term      `json:"glossaire"`
	Flashcards  []Flashcard `json:"flashcards"`
	Analysis    Analysis    `json:"analyse"`
	Definitions []string    `json:"definitions"`
	Formulas    []string    `json:"theoremes_formules"`
	KeyConcepts []string    `json:"concepts_cles"`
	CourseLinks []string    `json:"liens_cours"`
}

type Section struct {
	Title   string `json:"titre"`
	Content string `json:"contenu"`
}

type MindMap struct {
	Concepts  []string   `json:"concepts_principaux"`
	Relations []Relation `json:"relations"`
}

type Relation struct {
	From string `json:"de"`
	To   string `json:"vers"`
	Type string `json:"type"`
}

type Event struct {
	Date       string `json:"date"`
	Event      string `json:"evenement"`
	Importance string `json:"importance"`
}

type Term struct {
	Term       string `json:"terme"`
	Definition string `json:"definition"`
	Example    string `json:"exemple"`
}

type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"reponse"`
	Difficulty string `json:"difficulte"`
}

type Analysis struct {
	DocumentType    string   `json:"type_document"`
	Difficulty      string   `json:"niveau_difficulte"`
	Keywords        []string `json:"mots_cles"`
	RelatedConcepts []string `json:"concepts_connexes"`
	ReadingMinutes  int      `json:"temps_lecture_min"`
	Stats           Stats    `json:"statistiques"`
}

type Stats struct {
	EstimatedPages int `json:"nb_pages_estime"`
	Words          int `json:"nb_mots"`
	UniqueConcepts int `json:"nb_concepts_uniques"`
}

// DefaultSummary is shown when generation fails.
func DefaultSummary() *Summary {
	return &Summary{
		Overview:   "Résumé en cours de génération...",
		Sections:   []Section{},
		MindMap:    MindMap{Concepts: []string{}, Relations: []Relation{}},
		Timeline:   []Event{},
		Glossary:   []Term{},
		Flashcards: []Flashcard{},
		Analysis: Analysis{
			DocumentType:    "non déterminé",
			Difficulty:      "intermediaire",
			Keywords:        []string{},
			RelatedConcepts: []string{},
		},
		Definitions: []string{},
		Formulas:    []string{},
		KeyConcepts: []string{},
		CourseLinks: []string{},
	}
}
