package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sqlutil"
	"github.com/mcdev12/leagueoffice/go/internal/teams/db"
)

// Repository handles all team-related database operations
type Repository struct {
	db      *sql.DB
	queries db.Querier
}

// NewRepository creates a new teams repository
func NewRepository(queries db.Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	row, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		SportID:     team.SportID,
		Name:        team.Name,
		Colors:      team.Colors,
		Logo:        team.Logo,
		Coach:       sqlutil.ToSqlString(team.Coach),
		Location:    sqlutil.ToSqlString(team.Location),
		FoundedYear: sqlutil.ToSqlInt32(team.FoundedYear),
		Description: sqlutil.ToSqlString(team.Description),
		Category:    sqlutil.ToSqlString(team.Category),
		IsActive:    team.IsActive,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.InvalidSport(team.SportID.String())
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return dbTeamToModel(row), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("team", id.String())
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return dbTeamToModel(row), nil
}

// ListTeams retrieves all teams, newest first
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return dbTeamsToModels(rows), nil
}

// ListTeamsBySport retrieves all teams for a specific sport
func (r *Repository) ListTeamsBySport(ctx context.Context, sportID uuid.UUID) ([]models.Team, error) {
	rows, err := r.queries.ListTeamsBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by sport: %w", err)
	}
	return dbTeamsToModels(rows), nil
}

// UpdateTeam writes every mutable column of team
func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	row, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:            team.ID,
		SportID:       team.SportID,
		Name:          team.Name,
		Colors:        team.Colors,
		Logo:          team.Logo,
		Coach:         sqlutil.ToSqlString(team.Coach),
		Location:      sqlutil.ToSqlString(team.Location),
		FoundedYear:   sqlutil.ToSqlInt32(team.FoundedYear),
		Description:   sqlutil.ToSqlString(team.Description),
		Category:      sqlutil.ToSqlString(team.Category),
		GamesWon:      int32(team.GamesWon),
		GamesLost:     int32(team.GamesLost),
		GamesDrawn:    int32(team.GamesDrawn),
		GamesPlayed:   int32(team.GamesPlayed),
		GoalsFor:      int32(team.GoalsFor),
		GoalsAgainst:  int32(team.GoalsAgainst),
		TotalWarnings: int32(team.TotalWarnings),
		IsActive:      team.IsActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("team", team.ID.String())
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.InvalidSport(team.SportID.String())
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return dbTeamToModel(row), nil
}

// DeleteTeam deletes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteTeam(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.New(apperrors.CodeHasDependents, "team is still referenced by players")
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("team", id.String())
	}
	return nil
}

// CountPlayers returns how many players reference the team
func (r *Repository) CountPlayers(ctx context.Context, teamID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPlayersByTeam(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to count players of team: %w", err)
	}
	return n, nil
}

// CountTeams returns the number of registered teams and how many are active
func (r *Repository) CountTeams(ctx context.Context) (total, active int64, err error) {
	row, err := r.queries.CountTeams(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return row.Total, row.Active, nil
}

// ForceDeleteTeam removes the team's players, its sequence row and the team
// in one transaction and returns the number of players removed.
func (r *Repository) ForceDeleteTeam(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := sqlutil.Run(ctx, r.db, newTxQueries, func(q *db.Queries) error {
		n, err := q.DeletePlayersByTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete players of team: %w", err)
		}
		deleted = n

		if err := q.DeleteTeamSequence(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team sequence: %w", err)
		}

		rows, err := q.DeleteTeam(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("team", id.String())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func newTxQueries(tx *sql.Tx) *db.Queries {
	return db.New(tx)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func dbTeamsToModels(rows []db.Team) []models.Team {
	teams := make([]models.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, *dbTeamToModel(row))
	}
	return teams
}

// dbTeamToModel converts a database team to domain model
func dbTeamToModel(row db.Team) *models.Team {
	colors := row.Colors
	if colors == nil {
		colors = []string{}
	}
	return &models.Team{
		ID:          row.ID,
		SportID:     row.SportID,
		Name:        row.Name,
		Colors:      colors,
		Logo:        row.Logo,
		Coach:       sqlutil.FromSqlStringPtr(row.Coach),
		Location:    sqlutil.FromSqlStringPtr(row.Location),
		FoundedYear: sqlutil.FromSqlInt32(row.FoundedYear),
		Description: sqlutil.FromSqlStringPtr(row.Description),
		Category:    sqlutil.FromSqlStringPtr(row.Category),
		TeamCounters: models.TeamCounters{
			GamesWon:      int(row.GamesWon),
			GamesLost:     int(row.GamesLost),
			GamesDrawn:    int(row.GamesDrawn),
			GamesPlayed:   int(row.GamesPlayed),
			GoalsFor:      int(row.GoalsFor),
			GoalsAgainst:  int(row.GoalsAgainst),
			TotalWarnings: int(row.TotalWarnings),
		},
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
