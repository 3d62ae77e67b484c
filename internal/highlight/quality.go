package highlight

import "github.com/loupe-labs/loupe/internal/model"

var qualities = map[model.MatchType]model.MatchQuality{
	model.MatchStored:     {Label: "Precise", TrustRank: 4},
	model.MatchExact:      {Label: "Exact", TrustRank: 3},
	model.MatchNormalized: {Label: "Normalized", TrustRank: 2},
	model.MatchFuzzy:      {Label: "Fuzzy", TrustRank: 1},
	model.MatchNone:       {Label: "Not Found", TrustRank: 0},
}

// Classify maps how a match was established to its user-facing trust
// badge. Purely informational; nothing downstream branches on it.
func Classify(t model.MatchType) model.MatchQuality {
	if q, ok := qualities[t]; ok {
		return q
	}
	return qualities[model.MatchNone]
}
