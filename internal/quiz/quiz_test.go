package quiz

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func sampleQuestions() []Question {
	return []Question{
		{Kind: KindMultipleChoice, Prompt: "Capital of France?", Options: []string{"Paris", "London", "Berlin", "Madrid"}, CorrectAnswer: "Paris", Points: 2, Competency: "Mémorisation"},
		{Kind: KindOpen, Prompt: "What does the mitochondria do?", CorrectAnswer: "mitochondria produces energy cellular"},
		{Kind: KindMultipleChoice, Prompt: "2 + 2?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4", Points: -1},
	}
}

func TestNewDefinition_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	d, err := NewDefinition("quiz-1", sampleQuestions(), WithCreatedAt(now))
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}

	if d.Scheme != SchemeBinary {
		t.Errorf("Scheme = %v, want binary", d.Scheme)
	}
	if d.TimeLimit != 6*time.Minute {
		t.Errorf("TimeLimit = %v, want 6m", d.TimeLimit)
	}
	if !d.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", d.CreatedAt, now)
	}

	for i, q := range d.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d ID = %d, want %d", i, q.ID, i+1)
		}
	}
	if got := d.Questions[1].Points; got != DefaultPoints {
		t.Errorf("missing points defaulted to %v, want %v", got, DefaultPoints)
	}
	if got := d.Questions[2].Points; got != DefaultPoints {
		t.Errorf("negative points defaulted to %v, want %v", got, DefaultPoints)
	}
	if got := d.Questions[1].Competency; got != DefaultCompetency {
		t.Errorf("competency = %q, want %q", got, DefaultCompetency)
	}
	if got := d.TotalPoints(); got != 4 {
		t.Errorf("TotalPoints = %v, want 4", got)
	}
}

func TestNewDefinition_Empty(t *testing.T) {
	_, err := NewDefinition("quiz-1", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNewDefinition_GeneratesID(t *testing.T) {
	d, err := NewDefinition("", sampleQuestions())
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}
	if len(d.ID) != len("quiz_20060102_150405_")+8 {
		t.Errorf("unexpected generated ID %q", d.ID)
	}
}

func TestQuestionIndex(t *testing.T) {
	d, _ := NewDefinition("q", sampleQuestions())
	if _, err := d.Question(3); !errors.Is(err, ErrQuestionIndex) {
		t.Errorf("Question(3) err = %v, want ErrQuestionIndex", err)
	}
	if _, err := d.Question(-1); !errors.Is(err, ErrQuestionIndex) {
		t.Errorf("Question(-1) err = %v, want ErrQuestionIndex", err)
	}
	q, err := d.Question(0)
	if err != nil || q.Prompt != "Capital of France?" {
		t.Errorf("Question(0) = %+v, %v", q, err)
	}
}

func TestShuffle_PreservesCorrectAnswer(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		d, _ := NewDefinition("q", sampleQuestions())
		before := map[int]Question{}
		for _, q := range d.Questions {
			before[q.ID] = q
		}

		d.Shuffle(rand.New(rand.NewPCG(seed, seed+1)), true, true)

		if len(d.Questions) != len(before) {
			t.Fatalf("seed %d: question count changed", seed)
		}
		for _, q := range d.Questions {
			orig := before[q.ID]
			if q.CorrectAnswer != orig.CorrectAnswer {
				t.Errorf("seed %d: question %d correct answer %q, want %q", seed, q.ID, q.CorrectAnswer, orig.CorrectAnswer)
			}
			if q.IsMultipleChoice() && !containsExact(q.Options, q.CorrectAnswer) {
				t.Errorf("seed %d: question %d correct answer missing from options %v", seed, q.ID, q.Options)
			}
			if len(q.Options) != len(orig.Options) {
				t.Errorf("seed %d: question %d option count changed", seed, q.ID)
			}
		}
	}
}

func TestShuffle_AppliedOnce(t *testing.T) {
	d, _ := NewDefinition("q", sampleQuestions())
	d.Shuffle(rand.New(rand.NewPCG(1, 2)), true, true)
	order := make([]int, len(d.Questions))
	for i, q := range d.Questions {
		order[i] = q.ID
	}
	opts := append([]string(nil), d.Questions[0].Options...)

	d.Shuffle(rand.New(rand.NewPCG(99, 100)), true, true)
	for i, q := range d.Questions {
		if q.ID != order[i] {
			t.Fatalf("second shuffle changed question order")
		}
	}
	for i, o := range d.Questions[0].Options {
		if o != opts[i] {
			t.Fatalf("second shuffle changed option order")
		}
	}
}

func TestCheckContract(t *testing.T) {
	qs := []Question{
		{Kind: KindMultipleChoice, Prompt: "a", Options: []string{"x", "y"}, CorrectAnswer: "z"},
		{Kind: KindMultipleChoice, Prompt: "b", Options: []string{"x"}, CorrectAnswer: "x"},
		{Kind: KindOpen, Prompt: "c", CorrectAnswer: "anything"},
		{Kind: KindMultipleChoice, Prompt: "d", Options: []string{"x", "y"}, CorrectAnswer: "y"},
	}
	d, _ := NewDefinition("q", qs)
	if errs := d.CheckContract(); len(errs) != 2 {
		t.Errorf("CheckContract returned %d errors, want 2: %v", len(errs), errs)
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in   string
		want Scheme
		err  bool
	}{
		{"binary", SchemeBinary, false},
		{"Binaire (0 ou max points)", SchemeBinary, false},
		{"Points négatifs", SchemeNegative, false},
		{"NEGATIVE", SchemeNegative, false},
		{"Partiel", SchemePartial, false},
		{" partial ", SchemePartial, false},
		{"bonus", SchemeBinary, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScheme(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownScheme) {
					t.Fatalf("err = %v, want ErrUnknownScheme", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"qcm":             KindMultipleChoice,
		"QCM":             KindMultipleChoice,
		"multiple_choice": KindMultipleChoice,
		"open":            KindOpen,
		"ouverte":         KindOpen,
		"":                KindOpen,
	}
	for in, want := range tests {
		if got := ParseKind(in); got != want {
			t.Errorf("ParseKind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefinitionJSONRoundTrip(t *testing.T) {
	d, _ := NewDefinition("q", sampleQuestions(), WithScheme(SchemePartial))
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Definition
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Scheme != SchemePartial {
		t.Errorf("Scheme = %v, want partial", got.Scheme)
	}
	if got.Questions[0].Kind != KindMultipleChoice {
		t.Errorf("Kind = %q, want multiple_choice", got.Questions[0].Kind)
	}
}

func TestAnswerSet(t *testing.T) {
	a := AnswerSet{}
	a.Set(0, "Paris")
	a.Set(1, "   ")
	if a.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", a.Answered())
	}
	if _, ok := a.Get(1); ok {
		t.Error("blank answer should not be recorded")
	}
	a.Clear(0)
	if a.Answered() != 0 {
		t.Errorf("Answered after Clear = %d, want 0", a.Answered())
	}
}
