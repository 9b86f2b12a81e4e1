package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
	"github.com/mcdev12/leagueoffice/go/internal/sports/base"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player models.Player, folio FolioFunc) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	UpdatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	ListPlayers(ctx context.Context, q PlayerQuery) ([]models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
}

// TeamApp resolves teams together with their sport
type TeamApp interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeamsBySport(ctx context.Context, sportID uuid.UUID) ([]models.Team, error)
}

// RegistrationNotifier queues the confirmation for a committed registration.
type RegistrationNotifier interface {
	NotifyRegistered(ctx context.Context, player *models.Player, team *models.Team) error
}

// App handles player business logic
type App struct {
	repo     PlayerRepository
	teams    TeamApp
	notifier RegistrationNotifier
	plugins  map[string]base.SportPlugin
	folios   *FolioGenerator
	clock    clockwork.Clock
}

// NewApp creates a new player App. A nil notifier disables registration
// notifications.
func NewApp(
	repo PlayerRepository,
	teams TeamApp,
	notifier RegistrationNotifier,
	plugins map[string]base.SportPlugin,
	clock clockwork.Clock,
) *App {
	return &App{
		repo:     repo,
		teams:    teams,
		notifier: notifier,
		plugins:  plugins,
		folios:   NewFolioGenerator(clock),
		clock:    clock,
	}
}

// CreatePlayer validates and registers a player, then queues the
// registration notification. A notification failure never undoes the
// registration; it is reported in the result.
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*RegistrationResult, error) {
	if req.TeamID == uuid.Nil {
		return nil, apperrors.InvalidInput("team", "team is required")
	}
	player, err := buildPlayer(req, a.clock.Now())
	if err != nil {
		return nil, err
	}

	team, err := a.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, apperrors.MissingReference("team", req.TeamID.String())
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	if player.Positions, err = ValidatePositions(team.Sport, player.Positions); err != nil {
		return nil, err
	}
	if player.Stats, err = a.decodeStats(team.Sport, req.Stats); err != nil {
		return nil, err
	}

	created, err := a.repo.CreatePlayer(ctx, player, a.folios.For(team.Name, player.FirstName))
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	created.Team = team

	log.Info().
		Str("player_id", created.ID.String()).
		Str("team_id", team.ID.String()).
		Int("team_internal_id", created.TeamInternalID).
		Str("folio", deref(created.RegistrationFolio)).
		Msg("registered player")

	return &RegistrationResult{
		Player:       created,
		Notification: a.notify(ctx, created, team),
	}, nil
}

func (a *App) notify(ctx context.Context, player *models.Player, team *models.Team) NotificationStatus {
	if a.notifier == nil {
		return NotificationStatus{Warning: "registration notifications are disabled"}
	}
	if err := a.notifier.NotifyRegistered(ctx, player, team); err != nil {
		log.Warn().Err(err).Str("player_id", player.ID.String()).Msg("failed to queue registration notification")
		return NotificationStatus{Warning: "player registered but the confirmation e-mail could not be queued"}
	}
	return NotificationStatus{Queued: true}
}

// GetPlayer retrieves a player with team and sport resolved
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	team, err := a.teams.GetTeam(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team of player %s: %w", id, err)
	}
	player.Team = team
	return player, nil
}

// UpdatePlayer applies a partial update. Positions are validated against the
// player's current team.
func (a *App) UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if err := applyPatch(player, req, a.clock.Now()); err != nil {
		return nil, err
	}

	team, err := a.teams.GetTeam(ctx, player.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team of player %s: %w", id, err)
	}
	if req.Positions != nil {
		positions, err := normalizePositions(req.Positions)
		if err != nil {
			return nil, err
		}
		if player.Positions, err = ValidatePositions(team.Sport, positions); err != nil {
			return nil, err
		}
	}
	if req.Stats != nil {
		if player.Stats, err = a.decodeStats(team.Sport, req.Stats); err != nil {
			return nil, err
		}
	}

	updated, err := a.repo.UpdatePlayer(ctx, *player)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	updated.Team = team

	log.Info().Str("player_id", id.String()).Msg("updated player")
	return updated, nil
}

// DeletePlayer deletes a player by ID. Team counters are not touched.
func (a *App) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	log.Info().Str("player_id", id.String()).Msg("deleted player")
	return nil
}

// ListPlayers retrieves players matching filter, enriched with team and sport
func (a *App) ListPlayers(ctx context.Context, filter PlayerFilter) ([]models.Player, error) {
	teams := newTeamCache(a.teams)

	query := PlayerQuery{TeamID: filter.TeamID, PositionID: strings.TrimSpace(filter.PositionID)}
	if filter.TeamID == nil && filter.SportID != nil {
		sportTeams, err := a.teams.ListTeamsBySport(ctx, *filter.SportID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve teams of sport: %w", err)
		}
		if len(sportTeams) == 0 {
			return []models.Player{}, nil
		}
		teams.prime(sportTeams)
		query.SportID = filter.SportID
	}

	players, err := a.repo.ListPlayers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players = filterBySearch(players, filter.Search)
	if err := teams.enrich(ctx, players); err != nil {
		return nil, err
	}

	switch filter.Order {
	case OrderByTeam:
		sortByTeamOrder(players)
	default:
		sortByName(players)
	}
	return players, nil
}

// ListPlayersByTeam retrieves a team's players in registration order
func (a *App) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	team, err := a.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	for i := range players {
		players[i].Team = team
	}
	return players, nil
}

// GetTeamAggregateStats summarises a team's players. Averages only count
// players that have the value.
func (a *App) GetTeamAggregateStats(ctx context.Context, teamID uuid.UUID) (*TeamAggregateStats, error) {
	if _, err := a.teams.GetTeam(ctx, teamID); err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	players, err := a.repo.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}

	now := a.clock.Now()
	var age, height, weight mean
	counters := map[string]float64{}
	for i := range players {
		p := &players[i]
		if !p.BirthDate.IsZero() {
			age.add(float64(p.AgeAt(now)))
		}
		if p.HeightCm != nil {
			height.add(float64(*p.HeightCm))
		}
		if p.WeightKg != nil {
			weight.add(float64(*p.WeightKg))
		}
		if p.Stats != nil {
			for name, v := range p.Stats.Counters() {
				counters[name] += v
			}
		}
	}

	return &TeamAggregateStats{
		TeamID:           teamID,
		TotalPlayers:     len(players),
		AverageAge:       age.value(),
		AverageHeight:    height.value(),
		AverageWeight:    weight.value(),
		TotalGamesPlayed: counters["gamesPlayed"],
		Counters:         counters,
	}, nil
}

// decodeStats decodes a stat payload against the sport's stats kind. A kind
// that is not enabled falls back to the generic schema.
func (a *App) decodeStats(sport *models.Sport, raw json.RawMessage) (models.Stats, error) {
	plugin, ok := a.plugins[string(sport.StatsKind)]
	if !ok {
		log.Warn().
			Str("sport", sport.Name).
			Str("stats_kind", string(sport.StatsKind)).
			Msg("stats kind not enabled, using generic stats")
		var err error
		if plugin, err = base.GetPlugin(string(models.StatsKindGeneric)); err != nil {
			return nil, fmt.Errorf("generic stats plugin missing: %w", err)
		}
	}

	stats, err := base.DecodeStats(plugin, raw)
	if err != nil {
		if errors.Is(err, base.ErrInvalidStats) {
			return nil, apperrors.InvalidInput("stats", err.Error())
		}
		return nil, err
	}
	return stats, nil
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

// teamCache resolves each team at most once per request.
type teamCache struct {
	teams    TeamApp
	resolved map[uuid.UUID]*models.Team
}

func newTeamCache(teams TeamApp) *teamCache {
	return &teamCache{teams: teams, resolved: make(map[uuid.UUID]*models.Team)}
}

func (c *teamCache) prime(teams []models.Team) {
	for i := range teams {
		c.resolved[teams[i].ID] = &teams[i]
	}
}

func (c *teamCache) enrich(ctx context.Context, players []models.Player) error {
	for i := range players {
		team, ok := c.resolved[players[i].TeamID]
		if !ok {
			var err error
			team, err = c.teams.GetTeam(ctx, players[i].TeamID)
			if err != nil {
				return fmt.Errorf("failed to resolve team of player %s: %w", players[i].ID, err)
			}
			c.resolved[team.ID] = team
		}
		players[i].Team = team
	}
	return nil
}

// filterBySearch keeps players whose name, email, nickname or identification
// contains term, ignoring case.
func filterBySearch(players []models.Player, term string) []models.Player {
	term = strings.TrimSpace(term)
	if term == "" {
		return players
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := players[:0]
	for _, p := range players {
		for _, field := range []string{p.FirstName, p.LastName, p.Email, deref(p.Nickname), deref(p.Identification)} {
			if field != "" && strings.Contains(fold.String(field), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func sortByName(players []models.Player) {
	c := collate.New(language.Spanish, collate.IgnoreCase)
	slices.SortStableFunc(players, func(a, b models.Player) int {
		if n := c.CompareString(a.LastName, b.LastName); n != 0 {
			return n
		}
		return c.CompareString(a.FirstName, b.FirstName)
	})
}

func sortByTeamOrder(players []models.Player) {
	slices.SortStableFunc(players, func(a, b models.Player) int {
		return a.TeamInternalID - b.TeamInternalID
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
