package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/quiz"
)

func TestQuizRepo_SaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()
	created := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)

	def, err := quiz.NewDefinition("quiz_1", []quiz.Question{
		{Kind: quiz.KindMultipleChoice, Prompt: "Capitale de la France ?", Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris"},
		{Kind: quiz.KindOpen, Prompt: "Définir la photosynthèse", CorrectAnswer: "conversion lumière énergie chimique", Points: 2, Competency: "Biologie"},
	}, quiz.WithScheme(quiz.SchemePartial), quiz.WithMeta("bio.txt", "Mixte", "Moyen", "Formative"), quiz.WithCreatedAt(created))
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}

	if err := repo.SaveQuiz(ctx, def); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetQuiz(ctx, "quiz_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Scheme != quiz.SchemePartial || got.Len() != 2 || got.Questions[1].Points != 2 {
		t.Fatalf("definition not round-tripped: %+v", got)
	}

	// Saving again replaces the row instead of failing.
	def.Document = "bio-v2.txt"
	if err := repo.SaveQuiz(ctx, def); err != nil {
		t.Fatalf("resave: %v", err)
	}

	list, err := repo.ListQuizzes(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Document != "bio-v2.txt" || list[0].Questions != 2 {
		t.Fatalf("unexpected list %+v", list)
	}

	missing, err := repo.GetQuiz(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for a missing quiz, got %v, %v", missing, err)
	}
}

func TestDocumentRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()
	at := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)

	doc := &document.Document{Name: "cours.txt", Type: "txt", Text: "La cellule est l'unité du vivant.", WordCount: 6, CharCount: 33, PageCount: 1, UploadedAt: at}
	if err := repo.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc.Text = "Version révisée."
	doc.WordCount = 2
	if err := repo.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.SaveDocument(ctx, &document.Document{Name: "notes.md", Type: "md", Text: "x", UploadedAt: at.Add(time.Hour)}); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.GetDocument(ctx, "cours.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Text != "Version révisée." || got.WordCount != 2 {
		t.Fatalf("upsert did not replace: %+v", got)
	}

	list, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "cours.txt" || list[0].Text != "" {
		t.Fatalf("unexpected list %+v", list)
	}

	removed, err := repo.DeleteDocument(ctx, "cours.txt")
	if err != nil || !removed {
		t.Fatalf("delete: %v, removed=%v", err, removed)
	}
	removed, err = repo.DeleteDocument(ctx, "cours.txt")
	if err != nil || removed {
		t.Fatalf("second delete should report nothing removed: %v, %v", err, removed)
	}
	if d, _ := repo.GetDocument(ctx, "cours.txt"); d != nil {
		t.Fatal("document still present after delete")
	}
}

func TestProfileRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if p != (ProfileData{}) {
		t.Fatalf("expected zero profile, got %+v", p)
	}

	for _, level := range []string{"L1", "M2"} {
		if err := repo.SaveProfile(ctx, ProfileData{Role: "Étudiant", Discipline: "Biologie", Level: level}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	p, err = repo.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Level != "M2" || p.Discipline != "Biologie" || p.UpdatedAt.IsZero() {
		t.Fatalf("unexpected profile %+v", p)
	}
}
