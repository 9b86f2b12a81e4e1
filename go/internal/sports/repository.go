package sports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/db"
	"github.com/mcdev12/leagueoffice/go/internal/sqlutil"
)

const sportNameConstraint = "sports_name_key"

// Repository implements sport data access operations
type Repository struct {
	queries db.Querier
}

// NewRepository creates a new sports repository
func NewRepository(queries db.Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// CreateSport persists a sport and its catalog
func (r *Repository) CreateSport(ctx context.Context, sport models.Sport) (*models.Sport, error) {
	positions, err := json.Marshal(nonNilPositions(sport.Positions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode positions: %w", err)
	}

	row, err := r.queries.CreateSport(ctx, db.CreateSportParams{
		Name:        sport.Name,
		Description: sport.Description,
		StatsKind:   string(sport.StatsKind),
		Positions:   positions,
	})
	if err != nil {
		if sqlutil.IsUniqueViolationOf(err, sportNameConstraint) {
			return nil, apperrors.DuplicateName(sport.Name)
		}
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}
	return dbSportToModel(row)
}

// GetSport retrieves a sport by ID
func (r *Repository) GetSport(ctx context.Context, id uuid.UUID) (*models.Sport, error) {
	row, err := r.queries.GetSport(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("sport", id.String())
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	return dbSportToModel(row)
}

// GetSportByName retrieves a sport by its exact trimmed name
func (r *Repository) GetSportByName(ctx context.Context, name string) (*models.Sport, error) {
	row, err := r.queries.GetSportByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("sport", name)
		}
		return nil, fmt.Errorf("failed to get sport by name: %w", err)
	}
	return dbSportToModel(row)
}

// ListSports retrieves all sports ordered by name
func (r *Repository) ListSports(ctx context.Context) ([]models.Sport, error) {
	rows, err := r.queries.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}

	sports := make([]models.Sport, 0, len(rows))
	for _, row := range rows {
		sport, err := dbSportToModel(row)
		if err != nil {
			return nil, err
		}
		sports = append(sports, *sport)
	}
	return sports, nil
}

// UpdateSport replaces a sport's fields and catalog
func (r *Repository) UpdateSport(ctx context.Context, sport models.Sport) (*models.Sport, error) {
	positions, err := json.Marshal(nonNilPositions(sport.Positions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode positions: %w", err)
	}

	row, err := r.queries.UpdateSport(ctx, db.UpdateSportParams{
		ID:          sport.ID,
		Name:        sport.Name,
		Description: sport.Description,
		StatsKind:   string(sport.StatsKind),
		Positions:   positions,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("sport", sport.ID.String())
		}
		if sqlutil.IsUniqueViolationOf(err, sportNameConstraint) {
			return nil, apperrors.DuplicateName(sport.Name)
		}
		return nil, fmt.Errorf("failed to update sport: %w", err)
	}
	return dbSportToModel(row)
}

// DeleteSport deletes a sport by ID
func (r *Repository) DeleteSport(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteSport(ctx, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return apperrors.New(apperrors.CodeHasDependents, "sport is still referenced by teams")
		}
		return fmt.Errorf("failed to delete sport: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("sport", id.String())
	}
	return nil
}

// CountTeams returns how many teams reference the sport
func (r *Repository) CountTeams(ctx context.Context, sportID uuid.UUID) (int64, error) {
	n, err := r.queries.CountTeamsBySport(ctx, sportID)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams for sport: %w", err)
	}
	return n, nil
}

// CountSports returns the size of the catalog
func (r *Repository) CountSports(ctx context.Context) (int64, error) {
	n, err := r.queries.CountSports(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sports: %w", err)
	}
	return n, nil
}

// CountPlayersWithPosition returns how many players of the sport's teams hold
// the position
func (r *Repository) CountPlayersWithPosition(ctx context.Context, sportID uuid.UUID, positionID string) (int64, error) {
	n, err := r.queries.CountPlayersWithPosition(ctx, db.CountPlayersWithPositionParams{
		SportID:    sportID,
		PositionID: positionID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count players with position: %w", err)
	}
	return n, nil
}

func nonNilPositions(positions []models.Position) []models.Position {
	if positions == nil {
		return []models.Position{}
	}
	return positions
}

// dbSportToModel converts a database sport to domain model
func dbSportToModel(row db.Sport) (*models.Sport, error) {
	var positions []models.Position
	if len(row.Positions) > 0 {
		if err := json.Unmarshal(row.Positions, &positions); err != nil {
			return nil, fmt.Errorf("failed to decode positions of sport %s: %w", row.ID, err)
		}
	}
	return &models.Sport{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		StatsKind:   models.StatsKind(row.StatsKind),
		Positions:   nonNilPositions(positions),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
