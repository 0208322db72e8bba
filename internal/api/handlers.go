package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/abhisek/mentorai/internal/analytics"
	"github.com/abhisek/mentorai/internal/grading"
	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/store"
)

type scoreReq struct {
	Answers map[string]string `json:"answers"`
}

type startReq struct {
	QuizID string `json:"quiz_id" validate:"required"`
}

type answerReq struct {
	Answer string `json:"answer"`
}

type scoreResp struct {
	Result    quiz.Result               `json:"result"`
	Breakdown []grading.QuestionOutcome `json:"breakdown"`
	Warning   string                    `json:"warning,omitempty"`
}

type statsResp struct {
	Statistics   analytics.Stats               `json:"statistics"`
	Competencies []analytics.CompetencyAverage `json:"competencies"`
	Mentions     map[string]int                `json:"mentions"`
	Projection   []float64                     `json:"projection"`
}

func (s *Server) listQuizzes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := s.Quizzes.ListQuizzes(r.Context(), limit)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if list == nil {
		list = []store.QuizSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) loadQuiz(r *http.Request) (*quiz.Definition, error) {
	id := chi.URLParam(r, "id")
	def, err := s.Quizzes.GetQuiz(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("quiz %q: %w", id, store.ErrNotFound)
	}
	return def, nil
}

func (s *Server) getQuiz(w http.ResponseWriter, r *http.Request) {
	def, err := s.loadQuiz(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if r.URL.Query().Get("reveal") != "1" {
		def = hideAnswers(def)
	}
	writeJSON(w, http.StatusOK, def)
}

// hideAnswers returns a copy of def without answers or explanations.
func hideAnswers(def *quiz.Definition) *quiz.Definition {
	out := *def
	out.Questions = make([]quiz.Question, len(def.Questions))
	for i, q := range def.Questions {
		q.CorrectAnswer = ""
		q.Explanation = ""
		out.Questions[i] = q
	}
	return &out
}

func (s *Server) scoreQuiz(w http.ResponseWriter, r *http.Request) {
	def, err := s.loadQuiz(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	var req scoreReq
	if !decode(w, r, &req) {
		return
	}

	answers := quiz.AnswerSet{}
	for k, v := range req.Answers {
		i, err := strconv.Atoi(k)
		if err != nil {
			writeErr(w, http.StatusBadRequest, fmt.Sprintf("answer key %q is not a question index", k))
			return
		}
		if _, err := def.Question(i); err != nil {
			writeDomainErr(w, err)
			return
		}
		answers.Set(i, v)
	}

	eng := s.engine()
	res := eng.Score(def, answers)
	res.CompletedAt = s.now()
	resp := scoreResp{Result: res, Breakdown: eng.Breakdown(def, answers)}
	if err := s.Results.AppendResult(r.Context(), res); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("quiz_id", def.ID).Msg("result not saved")
		resp.Warning = "result not saved: " + err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if !decode(w, r, &req) {
		return
	}
	def, err := s.Quizzes.GetQuiz(r.Context(), req.QuizID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if def == nil {
		writeDomainErr(w, fmt.Errorf("quiz %q: %w", req.QuizID, store.ErrNotFound))
		return
	}
	st, err := s.Sessions.Start(def)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) sessionStatus(w http.ResponseWriter, _ *http.Request) {
	st, err := s.Sessions.Status()
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	var req answerReq
	if !decode(w, r, &req) {
		return
	}
	st, err := s.Sessions.Answer(i, req.Answer)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	sub, err := s.Sessions.Submit(r.Context())
	if sub == nil {
		writeDomainErr(w, err)
		return
	}
	resp := scoreResp{Result: sub.Result, Breakdown: sub.Breakdown}
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("quiz_id", sub.Result.QuizID).Msg("result not saved")
		resp.Warning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) abandonSession(w http.ResponseWriter, _ *http.Request) {
	if err := s.Sessions.Abandon(); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listResults(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := s.Results.ListResults(r.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if recs == nil {
		recs = []store.ResultRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	history, err := s.Results.History(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	projection := analytics.Projection(history, ProjectionSteps)
	if projection == nil {
		projection = []float64{}
	}
	writeJSON(w, http.StatusOK, statsResp{
		Statistics:   analytics.Statistics(history),
		Competencies: analytics.CompetencyAverages(history),
		Mentions:     analytics.MentionDistribution(history),
		Projection:   projection,
	})
}
