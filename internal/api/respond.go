package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/store"
	"github.com/abhisek/mentorai/internal/validate"
)

type errResp struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}

// writeDomainErr maps known errors to a status code.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, session.ErrNoActiveQuiz):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrQuizInProgress), errors.Is(err, session.ErrTimeExpired):
		writeErr(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrQuestionIndex), errors.Is(err, quiz.ErrNoQuestions):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

// decode reads a JSON body into dst and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{
			Error:  validate.Message(err),
			Fields: validate.TranslateErrors(err),
		})
		return false
	}
	return true
}
