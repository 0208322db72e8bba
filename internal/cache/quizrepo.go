package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/store"
)

// QuizRepo is a read-through cache in front of a store.QuizRepo. The HTTP
// API reads the same quiz for every scoring request.
type QuizRepo struct {
	store.QuizRepo
	cache Cache
	ttl   time.Duration
	sf    singleflight.Group
}

// NewQuizRepo wraps inner with c.
func NewQuizRepo(inner store.QuizRepo, c Cache, ttl time.Duration) *QuizRepo {
	return &QuizRepo{QuizRepo: inner, cache: c, ttl: ttl}
}

func quizKey(id string) string {
	return "quiz:" + id
}

func (r *QuizRepo) GetQuiz(ctx context.Context, id string) (*quiz.Definition, error) {
	log := zerolog.Ctx(ctx)
	key := quizKey(id)

	if def, ok := r.cached(ctx, key); ok {
		return def, nil
	}

	v, err, _ := r.sf.Do(id, func() (any, error) {
		// Re-check in case another caller filled it.
		if def, ok := r.cached(ctx, key); ok {
			return def, nil
		}

		def, err := r.QuizRepo.GetQuiz(ctx, id)
		if err != nil || def == nil {
			return def, err
		}
		if payload, err := json.Marshal(def); err == nil {
			if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
				log.Warn().Err(err).Str("quiz_id", id).Msg("quiz cache write failed")
			}
		}
		return def, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*quiz.Definition), nil
}

// SaveQuiz writes through and drops the cached copy.
func (r *QuizRepo) SaveQuiz(ctx context.Context, def *quiz.Definition) error {
	if err := r.QuizRepo.SaveQuiz(ctx, def); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, quizKey(def.ID)); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("quiz_id", def.ID).Msg("quiz cache invalidation failed")
	}
	return nil
}

func (r *QuizRepo) cached(ctx context.Context, key string) (*quiz.Definition, bool) {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("quiz cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var def quiz.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, false
	}
	return &def, true
}
