package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("pos-%d", n)
	}
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
sports:
  - name: "  Fútbol "
    description: Fútbol soccer
    stats_kind: football
    positions:
      - name: Portero
        abbreviation: por
      - name: Delantero
        abbreviation: " del "
        description: Ataque
  - name: Ajedrez
`)
	sports, err := parseCatalog(data, sequentialIDs())
	require.NoError(t, err)
	require.Len(t, sports, 2)

	assert.Equal(t, "Fútbol", sports[0].Name)
	assert.Equal(t, "football", sports[0].StatsKind)
	require.Len(t, sports[0].Positions, 2)
	assert.Equal(t, "pos-1", sports[0].Positions[0].ID)
	assert.Equal(t, "POR", sports[0].Positions[0].Abbreviation)
	assert.Equal(t, "DEL", sports[0].Positions[1].Abbreviation)
	assert.Equal(t, "Ataque", sports[0].Positions[1].Description)

	assert.Equal(t, "generic", sports[1].StatsKind)
	assert.Empty(t, sports[1].Positions)
}

func TestParseCatalogRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{"missing name", "sports:\n  - name: ' '\n", "name is required"},
		{"duplicate", "sports:\n  - name: Rugby\n  - name: Rugby\n", "duplicate sport"},
		{"long abbreviation", "sports:\n  - name: Rugby\n    positions:\n      - name: Hooker\n        abbreviation: HOOKER\n", "abbreviation"},
		{"position name", "sports:\n  - name: Rugby\n    positions:\n      - abbreviation: HK\n", "name is required"},
		{"bad yaml", "sports: [", "unmarshal YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.yaml), sequentialIDs())
			assert.ErrorContains(t, err, tt.err)
		})
	}
}
