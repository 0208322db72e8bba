// Package api serves quizzes, the active session and the result history
// over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/abhisek/mentorai/internal/grading"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/store"
)

// ProjectionSteps is how many future scores /stats projects.
const ProjectionSteps = 3

// Server holds the handler dependencies.
type Server struct {
	Quizzes  store.QuizRepo
	Results  store.ResultRepo
	Sessions *session.Manager
	Engine   *grading.Engine
	Logger   zerolog.Logger
	Now      func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) engine() *grading.Engine {
	if s.Engine != nil {
		return s.Engine
	}
	return grading.NewEngine()
}

// Routes returns the API router.
func Routes(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, requestLogger(s.Logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/quizzes", func(r chi.Router) {
		r.Get("/", s.listQuizzes)
		r.Get("/{id}", s.getQuiz)
		r.Post("/{id}/score", s.scoreQuiz)
	})

	r.Route("/session", func(r chi.Router) {
		r.Post("/", s.startSession)
		r.Get("/", s.sessionStatus)
		r.Delete("/", s.abandonSession)
		r.Put("/answers/{index}", s.answer)
		r.Post("/submit", s.submit)
	})

	r.Get("/results", s.listResults)
	r.Get("/stats", s.stats)
	return r
}

// requestLogger logs each request and puts the logger in the request
// context for handlers.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			l := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()

			next.ServeHTTP(ww, r.WithContext(l.WithContext(r.Context())))

			l.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("http request")
		})
	}
}
