package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsBySport(ctx context.Context, sportID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CountPlayers(ctx context.Context, teamID uuid.UUID) (int64, error)
	ForceDeleteTeam(ctx context.Context, id uuid.UUID) (int64, error)
}

// SportApp resolves the sport a team belongs to
type SportApp interface {
	GetSport(ctx context.Context, id uuid.UUID) (*models.Sport, error)
}

// App handles teams business logic
type App struct {
	repo   TeamsRepository
	sports SportApp
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, sports SportApp) *App {
	return &App{
		repo:   repo,
		sports: sports,
	}
}

// CreateTeam creates a new team with validation. Counters start at zero.
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.InvalidInput("name", "team name is required")
	}
	colors := normalizeColors(req.Colors)
	if len(colors) == 0 {
		return nil, apperrors.InvalidInput("colors", "at least one color is required")
	}
	if err := validateFoundedYear(req.FoundedYear); err != nil {
		return nil, err
	}

	sport, err := a.resolveSport(ctx, req.SportID)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	team, err := a.repo.CreateTeam(ctx, models.Team{
		SportID:     sport.ID,
		Name:        name,
		Colors:      colors,
		Logo:        strings.TrimSpace(req.Logo),
		Coach:       req.Coach,
		Location:    req.Location,
		FoundedYear: req.FoundedYear,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Sport = sport

	log.Info().
		Str("team_id", team.ID.String()).
		Str("name", team.Name).
		Str("sport", sport.Name).
		Msg("created team")
	return team, nil
}

// GetTeam retrieves a team with its sport resolved
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	sport, err := a.sports.GetSport(ctx, team.SportID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sport of team %s: %w", id, err)
	}
	team.Sport = sport
	return team, nil
}

// ListTeams retrieves teams matching filter, newest first
func (a *App) ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error) {
	var (
		teams []models.Team
		err   error
	)
	if filter.SportID != nil {
		teams, err = a.repo.ListTeamsBySport(ctx, *filter.SportID)
	} else {
		teams, err = a.repo.ListTeams(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(filter.Name))

	out := make([]models.Team, 0, len(teams))
	for _, team := range teams {
		if filter.IsActive != nil && team.IsActive != *filter.IsActive {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(team.Name), needle) {
			continue
		}
		out = append(out, team)
	}

	if err := a.attachSports(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeamsBySport retrieves all teams of a sport that must exist
func (a *App) ListTeamsBySport(ctx context.Context, sportID uuid.UUID) ([]models.Team, error) {
	sport, err := a.sports.GetSport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}

	teams, err := a.repo.ListTeamsBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by sport: %w", err)
	}
	for i := range teams {
		teams[i].Sport = sport
	}
	return teams, nil
}

// UpdateTeam applies a partial update
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.InvalidInput("name", "team name is required")
		}
		team.Name = name
	}
	if req.Colors != nil {
		colors := normalizeColors(req.Colors)
		if len(colors) == 0 {
			return nil, apperrors.InvalidInput("colors", "at least one color is required")
		}
		team.Colors = colors
	}
	if req.FoundedYear != nil {
		if err := validateFoundedYear(req.FoundedYear); err != nil {
			return nil, err
		}
		team.FoundedYear = req.FoundedYear
	}
	if err := applyCounters(&team.TeamCounters, req); err != nil {
		return nil, err
	}
	if req.Logo != nil {
		team.Logo = strings.TrimSpace(*req.Logo)
	}
	if req.Coach != nil {
		team.Coach = req.Coach
	}
	if req.Location != nil {
		team.Location = req.Location
	}
	if req.Description != nil {
		team.Description = req.Description
	}
	if req.Category != nil {
		team.Category = req.Category
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	sportID := team.SportID
	if req.SportID != nil {
		sportID = *req.SportID
	}
	sport, err := a.resolveSport(ctx, sportID)
	if err != nil {
		return nil, err
	}
	if sport.ID != team.SportID {
		// Player positions are validated against the sport catalog, so a
		// team with players keeps its sport.
		n, err := a.repo.CountPlayers(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check team players: %w", err)
		}
		if n > 0 {
			return nil, apperrors.TeamHasPlayers(n)
		}
		team.SportID = sport.ID
	}

	updated, err := a.repo.UpdateTeam(ctx, *team)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	updated.Sport = sport

	log.Info().Str("team_id", id.String()).Str("name", updated.Name).Msg("updated team")
	return updated, nil
}

// DeleteTeam deletes a team that has no players
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}

	n, err := a.repo.CountPlayers(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check team players: %w", err)
	}
	if n > 0 {
		return apperrors.TeamHasPlayers(n)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team_id", id.String()).Str("name", team.Name).Msg("deleted team")
	return nil
}

// ForceDeleteTeam deletes a team together with all of its players
func (a *App) ForceDeleteTeam(ctx context.Context, id uuid.UUID) (*ForceDeleteResult, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	deleted, err := a.repo.ForceDeleteTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to force delete team: %w", err)
	}

	log.Warn().
		Str("team_id", id.String()).
		Str("name", team.Name).
		Int64("deleted_players", deleted).
		Msg("force deleted team")
	return &ForceDeleteResult{DeletedPlayers: deleted}, nil
}

// resolveSport looks up a sport referenced by a team payload. A missing sport
// is reported as InvalidSport.
func (a *App) resolveSport(ctx context.Context, sportID uuid.UUID) (*models.Sport, error) {
	if sportID == uuid.Nil {
		return nil, apperrors.InvalidInput("sport", "sport is required")
	}
	sport, err := a.sports.GetSport(ctx, sportID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, apperrors.InvalidSport(sportID.String())
		}
		return nil, fmt.Errorf("failed to resolve sport: %w", err)
	}
	return sport, nil
}

func (a *App) attachSports(ctx context.Context, teams []models.Team) error {
	resolved := make(map[uuid.UUID]*models.Sport)
	for i := range teams {
		sport, ok := resolved[teams[i].SportID]
		if !ok {
			var err error
			sport, err = a.sports.GetSport(ctx, teams[i].SportID)
			if err != nil {
				return fmt.Errorf("failed to resolve sport of team %s: %w", teams[i].ID, err)
			}
			resolved[teams[i].SportID] = sport
		}
		teams[i].Sport = sport
	}
	return nil
}

// normalizeColors trims, drops blanks and removes duplicates keeping order.
func normalizeColors(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func validateFoundedYear(year *int) error {
	if year != nil && *year < 0 {
		return apperrors.InvalidInput("foundedYear", "founded year cannot be negative")
	}
	return nil
}

func applyCounters(c *models.TeamCounters, req UpdateTeamRequest) error {
	fields := []struct {
		name string
		val  *int
		dst  *int
	}{
		{"gamesWon", req.GamesWon, &c.GamesWon},
		{"gamesLost", req.GamesLost, &c.GamesLost},
		{"gamesDrawn", req.GamesDrawn, &c.GamesDrawn},
		{"gamesPlayed", req.GamesPlayed, &c.GamesPlayed},
		{"goalsFor", req.GoalsFor, &c.GoalsFor},
		{"goalsAgainst", req.GoalsAgainst, &c.GoalsAgainst},
		{"totalWarnings", req.TotalWarnings, &c.TotalWarnings},
	}
	for _, f := range fields {
		if f.val == nil {
			continue
		}
		if *f.val < 0 {
			return apperrors.InvalidInput(f.name, f.name+" cannot be negative")
		}
		*f.dst = *f.val
	}
	return nil
}
