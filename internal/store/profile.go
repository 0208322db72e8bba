package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// profileID is the key of the single profile row.
const profileID = 1

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) SaveProfile(ctx context.Context, p ProfileData) error {
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	query, args := builder().
		Insert(profileTable.Name).
		Columns("id", "role", "discipline", "level", "updated_at").
		Values(profileID, p.Role, p.Discipline, p.Level, updated.UTC()).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) LoadProfile(ctx context.Context) (ProfileData, error) {
	query, args := builder().
		Select("role", "discipline", "level", "updated_at").
		From(entsql.Table(profileTable.Name)).
		Where(entsql.EQ("id", profileID)).
		Query()

	var p ProfileData
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.Role, &p.Discipline, &p.Level, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileData{}, nil
	}
	if err != nil {
		return ProfileData{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
