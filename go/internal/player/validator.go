package player

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePositions checks that every position belongs to the sport's catalog
// and that at most one is primary. The input is returned unchanged; zero
// primaries is valid.
func ValidatePositions(sport *models.Sport, positions []models.PlayerPosition) ([]models.PlayerPosition, error) {
	catalog := sport.Catalog()

	primaries := 0
	for _, p := range positions {
		if !catalog.Has(p.Position) {
			return nil, apperrors.InvalidPosition(p.Position, sport.Name)
		}
		if p.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return nil, apperrors.MultiplePrimaryPositions(primaries)
	}
	return positions, nil
}

type intRange struct {
	field    string
	min, max int
}

var (
	heightRange = intRange{"height", 100, 250}
	weightRange = intRange{"weight", 30, 200}
	jerseyRange = intRange{"jerseyNumber", 1, 99}
)

func (r intRange) check(v *int) error {
	if v == nil {
		return nil
	}
	if *v < r.min || *v > r.max {
		return apperrors.InvalidInput(r.field, fmt.Sprintf("%s must be between %d and %d", r.field, r.min, r.max))
	}
	return nil
}

func requiredName(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperrors.InvalidInput(field, field+" is required")
	}
	return v, nil
}

func normalizeEmail(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "", apperrors.InvalidInput("email", "email is required")
	}
	if !emailPattern.MatchString(v) {
		return "", apperrors.InvalidInput("email", "email is not a valid address")
	}
	return v, nil
}

// parseBirthDate accepts YYYY-MM-DD or RFC 3339 and rejects future dates.
func parseBirthDate(v string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, apperrors.InvalidInput("birthDate", "birthDate is required")
	}
	d, err := parseDate("birthDate", v)
	if err != nil {
		return time.Time{}, err
	}
	if d.After(now) {
		return time.Time{}, apperrors.InvalidInput("birthDate", "birthDate cannot be in the future")
	}
	return d, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and keeps only the UTC day.
func parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		t, rfcErr := time.Parse(time.RFC3339, v)
		if rfcErr != nil {
			return time.Time{}, apperrors.InvalidInput(field, field+" must be a date in YYYY-MM-DD format")
		}
		d = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return d, nil
}

func optionalDate(field string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	d, err := parseDate(field, *v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// normalizePositions fills in the default skill level and rejects unknown
// ones. Catalog membership is checked by ValidatePositions.
func normalizePositions(positions []models.PlayerPosition) ([]models.PlayerPosition, error) {
	out := make([]models.PlayerPosition, len(positions))
	for i, p := range positions {
		if p.SkillLevel == "" {
			p.SkillLevel = models.DefaultSkillLevel
		}
		if !p.SkillLevel.Valid() {
			return nil, apperrors.InvalidInput("skillLevel",
				fmt.Sprintf("skill level %q must be one of Principiante, Intermedio, Avanzado, Élite", p.SkillLevel))
		}
		out[i] = p
	}
	return out, nil
}

// buildInjuries validates an injury history. Reported dates cannot be in the
// future; a recovery date cannot precede its injury.
func buildInjuries(in []InjuryInput, now time.Time) ([]models.Injury, error) {
	out := make([]models.Injury, 0, len(in))
	for _, item := range in {
		desc := strings.TrimSpace(item.Description)
		if desc == "" {
			return nil, apperrors.InvalidInput("injuries", "injury description is required")
		}
		date, err := optionalDate("injuries.date", item.Date)
		if err != nil {
			return nil, err
		}
		if date != nil && date.After(now) {
			return nil, apperrors.InvalidInput("injuries.date", "injury date cannot be in the future")
		}
		recovery, err := optionalDate("injuries.recoveryDate", item.RecoveryDate)
		if err != nil {
			return nil, err
		}
		if date != nil && recovery != nil && recovery.Before(*date) {
			return nil, apperrors.InvalidInput("injuries.recoveryDate", "recoveryDate cannot be before the injury date")
		}
		status := item.Status
		if status == "" {
			status = models.DefaultInjuryStatus
		}
		if !status.Valid() {
			return nil, apperrors.InvalidInput("injuries.status",
				fmt.Sprintf("injury status %q must be one of Activo, En tratamiento, Recuperado", status))
		}
		out = append(out, models.Injury{
			Description:  desc,
			Date:         date,
			RecoveryDate: recovery,
			Status:       status,
		})
	}
	return out, nil
}

func nonNegative(field string, v *int) error {
	if v != nil && *v < 0 {
		return apperrors.InvalidInput(field, field+" cannot be negative")
	}
	return nil
}

func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// buildPlayer validates the personal fields of a registration and returns the
// player they describe. Positions and stats are checked separately against
// the team's sport.
func buildPlayer(req CreatePlayerRequest, now time.Time) (models.Player, error) {
	var p models.Player
	var err error

	if p.FirstName, err = requiredName("firstName", req.FirstName); err != nil {
		return p, err
	}
	if p.LastName, err = requiredName("lastName", req.LastName); err != nil {
		return p, err
	}
	if p.Email, err = normalizeEmail(req.Email); err != nil {
		return p, err
	}
	if p.BirthDate, err = parseBirthDate(req.BirthDate, now); err != nil {
		return p, err
	}
	for _, check := range []error{
		heightRange.check(req.HeightCm),
		weightRange.check(req.WeightKg),
		jerseyRange.check(req.JerseyNumber),
		nonNegative("yearsInSport", req.YearsInSport),
	} {
		if check != nil {
			return p, check
		}
	}

	p.TeamID = req.TeamID
	p.Phone = optionalText(req.Phone)
	p.Gender = optionalText(req.Gender)
	p.BirthCity = optionalText(req.BirthCity)
	p.Identification = optionalText(req.Identification)
	p.Nickname = optionalText(req.Nickname)
	p.Photo = optionalText(req.Photo)
	p.HeightCm = req.HeightCm
	p.WeightKg = req.WeightKg
	p.JerseyNumber = req.JerseyNumber
	p.DominantFoot = optionalText(req.DominantFoot)
	p.Experience = optionalText(req.Experience)
	p.YearsInSport = req.YearsInSport
	if p.Positions, err = normalizePositions(req.Positions); err != nil {
		return p, err
	}
	if p.Injuries, err = buildInjuries(req.Injuries, now); err != nil {
		return p, err
	}
	p.IsActive = true
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return p, nil
}

// applyPatch validates the personal fields of an update and applies them to p.
// Positions and stats are handled by the caller.
func applyPatch(p *models.Player, req UpdatePlayerRequest, now time.Time) error {
	if req.TeamID != nil && *req.TeamID != p.TeamID {
		return apperrors.InvalidInput("team", "a player's team cannot be changed")
	}

	var err error
	if req.FirstName != nil {
		if p.FirstName, err = requiredName("firstName", *req.FirstName); err != nil {
			return err
		}
	}
	if req.LastName != nil {
		if p.LastName, err = requiredName("lastName", *req.LastName); err != nil {
			return err
		}
	}
	if req.Email != nil {
		if p.Email, err = normalizeEmail(*req.Email); err != nil {
			return err
		}
	}
	if req.BirthDate != nil {
		if p.BirthDate, err = parseBirthDate(*req.BirthDate, now); err != nil {
			return err
		}
	}
	for _, check := range []error{
		heightRange.check(req.HeightCm),
		weightRange.check(req.WeightKg),
		jerseyRange.check(req.JerseyNumber),
		nonNegative("yearsInSport", req.YearsInSport),
	} {
		if check != nil {
			return check
		}
	}

	patchText(&p.Phone, req.Phone)
	patchText(&p.Gender, req.Gender)
	patchText(&p.BirthCity, req.BirthCity)
	patchText(&p.Identification, req.Identification)
	patchText(&p.Nickname, req.Nickname)
	patchText(&p.Photo, req.Photo)
	patchText(&p.DominantFoot, req.DominantFoot)
	patchText(&p.Experience, req.Experience)
	patchInt(&p.HeightCm, req.HeightCm)
	patchInt(&p.WeightKg, req.WeightKg)
	patchInt(&p.JerseyNumber, req.JerseyNumber)
	patchInt(&p.YearsInSport, req.YearsInSport)
	if req.Injuries != nil {
		if p.Injuries, err = buildInjuries(req.Injuries, now); err != nil {
			return err
		}
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return nil
}

// patchText sets dst when v is present; an empty string clears it.
func patchText(dst **string, v *string) {
	if v != nil {
		*dst = optionalText(v)
	}
}

func patchInt(dst **int, v *int) {
	if v != nil {
		*dst = v
	}
}
