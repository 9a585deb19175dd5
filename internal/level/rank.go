package level

// Rank is the tier awarded for clearing a level, based on throws spent.
// Lower values are better: Gold < Silver < Bronze.
type Rank int

const (
	Gold Rank = iota
	Silver
	Bronze
)

// String returns the rank name.
func (r Rank) String() string {
	switch r {
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	default:
		return "Unknown"
	}
}

// Better reports whether r is a strictly better rank than other.
func (r Rank) Better(other Rank) bool {
	return r < other
}

// ParseRank converts a rank name back into a Rank.
func ParseRank(s string) (Rank, bool) {
	switch s {
	case "Gold":
		return Gold, true
	case "Silver":
		return Silver, true
	case "Bronze":
		return Bronze, true
	default:
		return Bronze, false
	}
}
