package request

// StatsOrder picks the ordering of the lookup stats listing.
type StatsOrder int

const (
	StatsOrderHits StatsOrder = iota
	StatsOrderRecent
)

func (s StatsOrder) String() string {
	switch s {
	case StatsOrderHits:
		return "hits"
	case StatsOrderRecent:
		return "recent"
	default:
		return "hits"
	}
}

func NewStatsOrder(field string) StatsOrder {
	switch field {
	case "hits":
		return StatsOrderHits
	case "recent":
		return StatsOrderRecent
	default:
		return StatsOrderHits // default to hits
	}
}
