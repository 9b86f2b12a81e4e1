package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/leagueoffice/go/internal/dbconfig"
	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// catalogFile mirrors the YAML seed layout
type catalogFile struct {
	Sports []catalogSport `yaml:"sports"`
}

type catalogSport struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	StatsKind   string            `yaml:"stats_kind"`
	Positions   []catalogPosition `yaml:"positions"`
}

type catalogPosition struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Description  string `yaml:"description"`
}

// seedSport is one row ready for insertion
type seedSport struct {
	Name        string
	Description string
	StatsKind   string
	Positions   []models.Position
}

func main() {
	path := flag.String("file", "go/assets/sports.yaml", "sport catalog to load")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	// 1) Load the YAML catalog
	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read catalog: %v\n", err)
		os.Exit(1)
	}
	sports, err := parseCatalog(data, uuid.NewString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse catalog: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "database config: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert in one batch; existing names are left alone
	batch := &pgx.Batch{}
	for _, s := range sports {
		positions, err := json.Marshal(s.Positions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode positions for %s: %v\n", s.Name, err)
			os.Exit(1)
		}
		batch.Queue(`
            INSERT INTO sports (name, description, stats_kind, positions)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (name) DO NOTHING
        `, s.Name, s.Description, s.StatsKind, positions)
	}

	results := pool.SendBatch(ctx, batch)
	var inserted, skipped, errs int
	for _, s := range sports {
		tag, err := results.Exec()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting sport %s: %v\n", s.Name, err)
			errs++
			continue
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}
	if err := results.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close batch: %v\n", err)
	}

	// 4) Print summary
	fmt.Printf(
		"Sports seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		len(sports), inserted, skipped, errs,
	)
}

// parseCatalog decodes and normalizes the YAML catalog with the same rules
// the sport registry applies on create.
func parseCatalog(data []byte, newID func() string) ([]seedSport, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Sports))
	out := make([]seedSport, 0, len(file.Sports))
	for i, s := range file.Sports {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("sports[%d]: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("sports[%d]: duplicate sport %q", i, name)
		}
		seen[name] = true

		kind := strings.TrimSpace(s.StatsKind)
		if kind == "" {
			kind = string(models.StatsKindGeneric)
		}

		positions := make([]models.Position, 0, len(s.Positions))
		for j, p := range s.Positions {
			pName := strings.TrimSpace(p.Name)
			abbr := strings.ToUpper(strings.TrimSpace(p.Abbreviation))
			if pName == "" {
				return nil, fmt.Errorf("%s positions[%d]: name is required", name, j)
			}
			if n := utf8.RuneCountInString(abbr); n < 1 || n > 5 {
				return nil, fmt.Errorf("%s positions[%d]: abbreviation must be 1-5 characters", name, j)
			}
			positions = append(positions, models.Position{
				ID:           newID(),
				Name:         pName,
				Abbreviation: abbr,
				Description:  strings.TrimSpace(p.Description),
			})
		}

		out = append(out, seedSport{
			Name:        name,
			Description: strings.TrimSpace(s.Description),
			StatsKind:   kind,
			Positions:   positions,
		})
	}
	return out, nil
}
