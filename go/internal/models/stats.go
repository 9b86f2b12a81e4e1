package models

// StatsKind tags the stat schema a sport's players use.
type StatsKind string

const (
	StatsKindGeneric    StatsKind = "generic"
	StatsKindFootball   StatsKind = "football"
	StatsKindBasketball StatsKind = "basketball"
	StatsKindVolleyball StatsKind = "volleyball"
	StatsKindBaseball   StatsKind = "baseball"
)

// Stats is a sport-specific stat sheet. Concrete types are registered by the
// sport plugins; each serialises with a "kind" field naming its schema.
type Stats interface {
	Kind() StatsKind
	// Counters flattens the sheet into named numeric totals for aggregation.
	Counters() map[string]float64
}
