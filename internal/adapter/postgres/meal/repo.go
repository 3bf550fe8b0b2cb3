// Package meal implements the meal entry repository using PostgreSQL.
package meal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

const table = "meals"

var columns = []string{
	"id",
	"user_id",
	"meal_date",
	"meal_type::text AS meal_type",
	"description",
	"grams::text AS grams",
	"energy_per100::float8 AS energy_per100",
	"protein_per100::float8 AS protein_per100",
	"fat_per100::float8 AS fat_per100",
	"carb_per100::float8 AS carb_per100",
	"created_at",
}

// Repo provides meal entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	MealDate      time.Time `db:"meal_date"`
	MealType      string    `db:"meal_type"`
	Description   string    `db:"description"`
	Grams         string    `db:"grams"`
	EnergyPer100  *float64  `db:"energy_per100"`
	ProteinPer100 *float64  `db:"protein_per100"`
	FatPer100     *float64  `db:"fat_per100"`
	CarbPer100    *float64  `db:"carb_per100"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r row) toDomain() (domain.MealEntry, error) {
	grams, err := decimal.NewFromString(r.Grams)
	if err != nil {
		return domain.MealEntry{}, fmt.Errorf("meal_entry %s: parse grams %q: %w", r.ID, r.Grams, err)
	}
	return domain.MealEntry{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.MealDate,
		MealType:    domain.MealType(r.MealType),
		Description: r.Description,
		Grams:       grams,
		Profile: domain.NutrientProfile{
			EnergyPer100:  r.EnergyPer100,
			ProteinPer100: r.ProteinPer100,
			FatPer100:     r.FatPer100,
			CarbPer100:    r.CarbPer100,
		},
		CreatedAt: r.CreatedAt,
	}, nil
}

// Create inserts a new entry. The database assigns id and created_at.
func (r *Repo) Create(ctx context.Context, e domain.NewMealEntry) (*domain.MealEntry, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(
			"user_id", "meal_date", "meal_type", "description", "grams",
			"energy_per100", "protein_per100", "fat_per100", "carb_per100",
		).
		Values(
			e.UserID,
			e.Date.Format(domain.DateLayout),
			sq.Expr("?::text::meal_type", e.MealType.String()),
			e.Description,
			sq.Expr("?::text::numeric", e.Grams.String()),
			e.Profile.EnergyPer100,
			e.Profile.ProteinPer100,
			e.Profile.FatPer100,
			e.Profile.CarbPer100,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert meal_entry: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meal_entry", e.UserID)
	}

	entry, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByDate returns the user's entries for a date ordered by meal type
// enumeration order, then created_at, then id.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "meal_date": date.Format(domain.DateLayout)}).
		// Qualified so the enum column, not the text alias, drives the order.
		OrderBy("meals.meal_type ASC", "created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select meal_entries: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meal_entries", userID)
	}

	entries := make([]domain.MealEntry, 0, len(rows))
	for _, rw := range rows {
		e, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete removes an entry if it belongs to userID and reports whether a
// row was removed.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	query := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": entryID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete meal_entry: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "meal_entry", entryID)
	}

	return tag.RowsAffected() > 0, nil
}
