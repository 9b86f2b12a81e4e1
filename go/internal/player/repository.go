package player

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/player/db"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
	"github.com/mcdev12/leagueoffice/go/internal/sqlutil"
)

const (
	emailConstraint          = "players_email_key"
	identificationConstraint = "players_identification_key"
	folioConstraint          = "players_registration_folio_key"

	registerSavepoint = "register_player"
)

// FolioFunc returns the folio for a registration given its team ordinal. It
// is called again with retry set after a folio collision.
type FolioFunc func(ordinal int, retry bool) string

// PlayerQuery narrows a player listing at the database level.
type PlayerQuery struct {
	TeamID     *uuid.UUID
	SportID    *uuid.UUID
	PositionID string
}

// Repository handles all player-related database operations
type Repository struct {
	db      *sql.DB
	queries db.Querier
}

// NewRepository creates a new player repository
func NewRepository(queries db.Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreatePlayer registers a player in one transaction: it takes the next team
// ordinal, builds the folio and inserts the row. A folio collision is retried
// once from a savepoint with the fallback folio.
func (r *Repository) CreatePlayer(ctx context.Context, player models.Player, folio FolioFunc) (*models.Player, error) {
	params, err := createParams(player)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	qtx := db.New(tx)

	ordinal, err := qtx.NextTeamSequence(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to take team sequence: %w", err)
	}
	params.TeamInternalID = ordinal
	params.RegistrationFolio = sql.NullString{String: folio(int(ordinal), false), Valid: true}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+registerSavepoint); err != nil {
		return nil, fmt.Errorf("failed to set savepoint: %w", err)
	}

	row, err := qtx.CreatePlayer(ctx, params)
	if err != nil && sqlutil.IsUniqueViolationOf(err, folioConstraint) {
		log.Warn().
			Str("team_id", player.TeamID.String()).
			Str("folio", params.RegistrationFolio.String).
			Msg("registration folio collision, retrying with timestamp")

		if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+registerSavepoint); err != nil {
			return nil, fmt.Errorf("failed to roll back to savepoint: %w", err)
		}
		params.RegistrationFolio = sql.NullString{String: folio(int(ordinal), true), Valid: true}

		row, err = qtx.CreatePlayer(ctx, params)
		if err != nil && sqlutil.IsUniqueViolationOf(err, folioConstraint) {
			log.Error().
				Str("team_id", player.TeamID.String()).
				Str("folio", params.RegistrationFolio.String).
				Msg("registration folio collided twice")
			return nil, apperrors.FolioGenerationFailed(err)
		}
	}
	if err != nil {
		return nil, mapWriteError(err, player)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return dbPlayerToDomain(row)
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("player", id.String())
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToDomain(row)
}

// UpdatePlayer writes every mutable column of player
func (r *Repository) UpdatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	positions, err := json.Marshal(player.Positions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode positions: %w", err)
	}
	stats, err := base.EncodeStats(player.Stats)
	if err != nil {
		return nil, err
	}
	injuries, err := encodeInjuries(player.Injuries)
	if err != nil {
		return nil, err
	}

	row, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		ID:             player.ID,
		FirstName:      player.FirstName,
		LastName:       player.LastName,
		Email:          player.Email,
		Phone:          sqlutil.ToSqlString(player.Phone),
		BirthDate:      player.BirthDate,
		Gender:         sqlutil.ToSqlString(player.Gender),
		BirthCity:      sqlutil.ToSqlString(player.BirthCity),
		Identification: sqlutil.ToSqlString(player.Identification),
		Nickname:       sqlutil.ToSqlString(player.Nickname),
		Photo:          sqlutil.ToSqlString(player.Photo),
		HeightCm:       sqlutil.ToSqlInt32(player.HeightCm),
		WeightKg:       sqlutil.ToSqlInt32(player.WeightKg),
		JerseyNumber:   sqlutil.ToSqlInt32(player.JerseyNumber),
		DominantFoot:   sqlutil.ToSqlString(player.DominantFoot),
		Experience:     sqlutil.ToSqlString(player.Experience),
		YearsInSport:   sqlutil.ToSqlInt32(player.YearsInSport),
		Positions:      positions,
		Stats:          sqlutil.ToNullRawMessage(stats),
		Injuries:       injuries,
		IsActive:       player.IsActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("player", player.ID.String())
		}
		return nil, mapWriteError(err, player)
	}
	return dbPlayerToDomain(row)
}

// DeletePlayer deletes a player by ID
func (r *Repository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("player", id.String())
	}
	return nil
}

// ListPlayers retrieves players matching the query, ordered by name
func (r *Repository) ListPlayers(ctx context.Context, q PlayerQuery) ([]models.Player, error) {
	params := db.ListPlayersParams{
		TeamID:  sqlutil.ToNullUUID(q.TeamID),
		SportID: sqlutil.ToNullUUID(q.SportID),
	}
	if q.PositionID != "" {
		params.PositionID = sql.NullString{String: q.PositionID, Valid: true}
	}

	rows, err := r.queries.ListPlayers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return dbPlayersToDomain(rows)
}

// ListPlayersByTeam retrieves a team's players ordered by internal id
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	rows, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	return dbPlayersToDomain(rows)
}

// CountPlayers returns the number of registered players and how many are active
func (r *Repository) CountPlayers(ctx context.Context) (total, active int64, err error) {
	row, err := r.queries.CountPlayers(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count players: %w", err)
	}
	return row.Total, row.Active, nil
}

// mapWriteError translates unique violations into duplicate errors
func mapWriteError(err error, player models.Player) error {
	constraint, ok := sqlutil.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("failed to write player: %w", err)
	}
	switch constraint {
	case emailConstraint:
		return apperrors.DuplicateEmail(player.Email)
	case identificationConstraint:
		ident := ""
		if player.Identification != nil {
			ident = *player.Identification
		}
		return apperrors.DuplicateIdentification(ident)
	case folioConstraint:
		folio := ""
		if player.RegistrationFolio != nil {
			folio = *player.RegistrationFolio
		}
		return apperrors.DuplicateFolio(folio)
	default:
		return fmt.Errorf("failed to write player: %w", err)
	}
}

func createParams(player models.Player) (db.CreatePlayerParams, error) {
	positions, err := json.Marshal(player.Positions)
	if err != nil {
		return db.CreatePlayerParams{}, fmt.Errorf("failed to encode positions: %w", err)
	}
	stats, err := base.EncodeStats(player.Stats)
	if err != nil {
		return db.CreatePlayerParams{}, err
	}
	injuries, err := encodeInjuries(player.Injuries)
	if err != nil {
		return db.CreatePlayerParams{}, err
	}

	return db.CreatePlayerParams{
		TeamID:         player.TeamID,
		FirstName:      player.FirstName,
		LastName:       player.LastName,
		Email:          player.Email,
		Phone:          sqlutil.ToSqlString(player.Phone),
		BirthDate:      player.BirthDate,
		Gender:         sqlutil.ToSqlString(player.Gender),
		BirthCity:      sqlutil.ToSqlString(player.BirthCity),
		Identification: sqlutil.ToSqlString(player.Identification),
		Nickname:       sqlutil.ToSqlString(player.Nickname),
		Photo:          sqlutil.ToSqlString(player.Photo),
		HeightCm:       sqlutil.ToSqlInt32(player.HeightCm),
		WeightKg:       sqlutil.ToSqlInt32(player.WeightKg),
		JerseyNumber:   sqlutil.ToSqlInt32(player.JerseyNumber),
		DominantFoot:   sqlutil.ToSqlString(player.DominantFoot),
		Experience:     sqlutil.ToSqlString(player.Experience),
		YearsInSport:   sqlutil.ToSqlInt32(player.YearsInSport),
		Positions:      positions,
		Stats:          sqlutil.ToNullRawMessage(stats),
		Injuries:       injuries,
		IsActive:       player.IsActive,
	}, nil
}

// encodeInjuries stores a missing history as an empty array.
func encodeInjuries(injuries []models.Injury) (json.RawMessage, error) {
	if injuries == nil {
		injuries = []models.Injury{}
	}
	raw, err := json.Marshal(injuries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode injuries: %w", err)
	}
	return raw, nil
}

func dbPlayersToDomain(rows []db.Player) ([]models.Player, error) {
	players := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		p, err := dbPlayerToDomain(row)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, nil
}

// dbPlayerToDomain converts a database player to domain model
func dbPlayerToDomain(row db.Player) (*models.Player, error) {
	positions := []models.PlayerPosition{}
	if len(row.Positions) > 0 {
		if err := json.Unmarshal(row.Positions, &positions); err != nil {
			return nil, fmt.Errorf("failed to decode positions of player %s: %w", row.ID, err)
		}
	}
	stats, err := base.DecodeStoredStats(sqlutil.FromNullRawMessage(row.Stats))
	if err != nil {
		return nil, fmt.Errorf("failed to decode stats of player %s: %w", row.ID, err)
	}
	injuries := []models.Injury{}
	if len(row.Injuries) > 0 {
		if err := json.Unmarshal(row.Injuries, &injuries); err != nil {
			return nil, fmt.Errorf("failed to decode injuries of player %s: %w", row.ID, err)
		}
	}

	return &models.Player{
		ID:                row.ID,
		TeamID:            row.TeamID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		Email:             row.Email,
		Phone:             sqlutil.FromSqlStringPtr(row.Phone),
		BirthDate:         row.BirthDate,
		Gender:            sqlutil.FromSqlStringPtr(row.Gender),
		BirthCity:         sqlutil.FromSqlStringPtr(row.BirthCity),
		Identification:    sqlutil.FromSqlStringPtr(row.Identification),
		Nickname:          sqlutil.FromSqlStringPtr(row.Nickname),
		Photo:             sqlutil.FromSqlStringPtr(row.Photo),
		HeightCm:          sqlutil.FromSqlInt32(row.HeightCm),
		WeightKg:          sqlutil.FromSqlInt32(row.WeightKg),
		JerseyNumber:      sqlutil.FromSqlInt32(row.JerseyNumber),
		DominantFoot:      sqlutil.FromSqlStringPtr(row.DominantFoot),
		Experience:        sqlutil.FromSqlStringPtr(row.Experience),
		YearsInSport:      sqlutil.FromSqlInt32(row.YearsInSport),
		Positions:         positions,
		TeamInternalID:    int(row.TeamInternalID),
		RegistrationFolio: sqlutil.FromSqlStringPtr(row.RegistrationFolio),
		Stats:             stats,
		Injuries:          injuries,
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
