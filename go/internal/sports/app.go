package sports

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

const maxAbbreviationLen = 5

// SportsRepository defines what the app layer needs from the repository
type SportsRepository interface {
	CreateSport(ctx context.Context, sport models.Sport) (*models.Sport, error)
	GetSport(ctx context.Context, id uuid.UUID) (*models.Sport, error)
	GetSportByName(ctx context.Context, name string) (*models.Sport, error)
	ListSports(ctx context.Context) ([]models.Sport, error)
	UpdateSport(ctx context.Context, sport models.Sport) (*models.Sport, error)
	DeleteSport(ctx context.Context, id uuid.UUID) error
	CountTeams(ctx context.Context, sportID uuid.UUID) (int64, error)
	CountPlayersWithPosition(ctx context.Context, sportID uuid.UUID, positionID string) (int64, error)
}

// SportCache is a best-effort store of sport documents keyed by id.
type SportCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Sport, bool)
	Set(ctx context.Context, sport *models.Sport)
	Invalidate(ctx context.Context, id uuid.UUID)
}

// App handles sports business logic
type App struct {
	repo    SportsRepository
	cache   SportCache
	plugins map[string]base.SportPlugin
	newID   func() string
}

// NewApp creates a new sports App. A nil cache disables caching.
func NewApp(repo SportsRepository, cache SportCache, plugins map[string]base.SportPlugin) *App {
	if cache == nil {
		cache = NoopCache{}
	}
	return &App{
		repo:    repo,
		cache:   cache,
		plugins: plugins,
		newID:   func() string { return uuid.NewString() },
	}
}

// CreateSport validates and stores a new sport. Every submitted position gets
// a fresh id.
func (a *App) CreateSport(ctx context.Context, req CreateSportRequest) (*models.Sport, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.InvalidInput("name", "sport name is required")
	}
	kind, err := a.resolveStatsKind(req.StatsKind)
	if err != nil {
		return nil, err
	}

	positions := make([]models.Position, 0, len(req.Positions))
	for i, in := range req.Positions {
		pos, err := normalizePosition(i, in)
		if err != nil {
			return nil, err
		}
		pos.ID = a.newID()
		positions = append(positions, pos)
	}

	if err := a.ensureNameAvailable(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	sport, err := a.repo.CreateSport(ctx, models.Sport{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		StatsKind:   kind,
		Positions:   positions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}

	log.Info().
		Str("sport_id", sport.ID.String()).
		Str("name", sport.Name).
		Int("positions", len(sport.Positions)).
		Msg("created sport")
	return sport, nil
}

// GetSport retrieves a sport by ID, reading through the cache
func (a *App) GetSport(ctx context.Context, id uuid.UUID) (*models.Sport, error) {
	if sport, ok := a.cache.Get(ctx, id); ok {
		return sport, nil
	}

	sport, err := a.repo.GetSport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	a.cache.Set(ctx, sport)
	return sport, nil
}

// ListSports retrieves all sports
func (a *App) ListSports(ctx context.Context) ([]models.Sport, error) {
	sports, err := a.repo.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	return sports, nil
}

// GetPositions returns the sport's position catalog, empty when it has none
func (a *App) GetPositions(ctx context.Context, sportID uuid.UUID) ([]models.Position, error) {
	sport, err := a.GetSport(ctx, sportID)
	if err != nil {
		return nil, err
	}
	return sport.Catalog().Positions(), nil
}

// UpdateSport fully replaces a sport. Positions submitted with an existing id
// keep it; removing a position that players still hold is refused.
func (a *App) UpdateSport(ctx context.Context, id uuid.UUID, req UpdateSportRequest) (*models.Sport, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.InvalidInput("name", "sport name is required")
	}
	kind, err := a.resolveStatsKind(req.StatsKind)
	if err != nil {
		return nil, err
	}

	current, err := a.repo.GetSport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	catalog := current.Catalog()

	positions := make([]models.Position, 0, len(req.Positions))
	seen := make(map[string]struct{}, len(req.Positions))
	for i, in := range req.Positions {
		pos, err := normalizePosition(i, in)
		if err != nil {
			return nil, err
		}
		if pos.ID == "" {
			pos.ID = a.newID()
		} else if !catalog.Has(pos.ID) {
			return nil, apperrors.InvalidInput("positions", fmt.Sprintf("position %s does not belong to sport %s", pos.ID, current.Name))
		}
		if _, dup := seen[pos.ID]; dup {
			return nil, apperrors.InvalidInput("positions", fmt.Sprintf("position %s is listed more than once", pos.ID))
		}
		seen[pos.ID] = struct{}{}
		positions = append(positions, pos)
	}

	for _, removed := range catalog.Removed(models.NewPositionCatalog(positions)) {
		n, err := a.repo.CountPlayersWithPosition(ctx, id, removed.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check position usage: %w", err)
		}
		if n > 0 {
			return nil, apperrors.PositionInUse(removed.Name, n)
		}
	}

	if err := a.ensureNameAvailable(ctx, name, id); err != nil {
		return nil, err
	}

	sport, err := a.repo.UpdateSport(ctx, models.Sport{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		StatsKind:   kind,
		Positions:   positions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update sport: %w", err)
	}
	a.cache.Invalidate(ctx, id)

	log.Info().Str("sport_id", id.String()).Str("name", sport.Name).Msg("updated sport")
	return sport, nil
}

// DeleteSport deletes a sport that no team references
func (a *App) DeleteSport(ctx context.Context, id uuid.UUID) error {
	sport, err := a.repo.GetSport(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get sport: %w", err)
	}

	teams, err := a.repo.CountTeams(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check sport usage: %w", err)
	}
	if teams > 0 {
		return apperrors.SportHasTeams(teams)
	}

	if err := a.repo.DeleteSport(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sport: %w", err)
	}
	a.cache.Invalidate(ctx, id)

	log.Info().Str("sport_id", id.String()).Str("name", sport.Name).Msg("deleted sport")
	return nil
}

// ensureNameAvailable fails with DuplicateName when a sport other than self
// already uses name.
func (a *App) ensureNameAvailable(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := a.repo.GetSportByName(ctx, name)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check sport name: %w", err)
	}
	if existing.ID != self {
		return apperrors.DuplicateName(name)
	}
	return nil
}

func (a *App) resolveStatsKind(kind models.StatsKind) (models.StatsKind, error) {
	if kind == "" {
		return models.StatsKindGeneric, nil
	}
	if _, ok := a.plugins[string(kind)]; !ok {
		return "", apperrors.InvalidInput("statsKind", fmt.Sprintf("stats kind %q is not enabled", kind))
	}
	return kind, nil
}

func normalizePosition(i int, in PositionInput) (models.Position, error) {
	field := fmt.Sprintf("positions[%d]", i)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Position{}, apperrors.InvalidInput(field+".name", "position name is required")
	}

	abbr := cases.Upper(language.Und).String(strings.TrimSpace(in.Abbreviation))
	if n := utf8.RuneCountInString(abbr); n == 0 || n > maxAbbreviationLen {
		return models.Position{}, apperrors.InvalidInput(field+".abbreviation",
			fmt.Sprintf("abbreviation must be 1 to %d characters", maxAbbreviationLen))
	}

	return models.Position{
		ID:           strings.TrimSpace(in.ID),
		Name:         name,
		Abbreviation: abbr,
		Description:  strings.TrimSpace(in.Description),
	}, nil
}
