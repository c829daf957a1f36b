package match

import "math"

// Domain defines how one token category compares values. Equal is exact
// identity after the domain's normalization; Close is the weaker similarity
// test with its distance; Weight is the partial credit a similar match earns
// toward the score.
type Domain interface {
	Equal(project, reference string) bool
	Close(project, reference string) (distance float64, ok bool)
	Weight() float64
}

// Pair records a similarity match and how far apart the two values are.
type Pair struct {
	Project   string  `json:"project"`
	Reference string  `json:"reference"`
	Distance  float64 `json:"distance"`
}

// Result partitions a project/reference comparison. Exact and Similar hold
// matched project values, Missing holds reference values nothing matched,
// Extra holds project values that matched nothing.
type Result struct {
	Exact   []string `json:"exact"`
	Similar []Pair   `json:"similar"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
	Score   int      `json:"score"`
}

// MatchSets compares project values against reference values in two greedy
// first-fit passes: exact matches first, then similarity matches over what
// is left. Each reference value can be claimed at most once per call, so a
// duplicated project value needs a duplicated reference value to match
// twice. Order follows the input slices.
func MatchSets(project, reference []string, d Domain) Result {
	claimed := make([]bool, len(reference))
	matched := make([]bool, len(project))
	var res Result

	for i, p := range project {
		for j, r := range reference {
			if claimed[j] || !d.Equal(p, r) {
				continue
			}
			claimed[j] = true
			matched[i] = true
			res.Exact = append(res.Exact, p)
			break
		}
	}

	for i, p := range project {
		if matched[i] {
			continue
		}
		for j, r := range reference {
			if claimed[j] {
				continue
			}
			dist, ok := d.Close(p, r)
			if !ok {
				continue
			}
			claimed[j] = true
			matched[i] = true
			res.Similar = append(res.Similar, Pair{Project: p, Reference: r, Distance: dist})
			break
		}
	}

	for i, p := range project {
		if !matched[i] {
			res.Extra = append(res.Extra, p)
		}
	}
	for j, r := range reference {
		if !claimed[j] {
			res.Missing = append(res.Missing, r)
		}
	}

	res.Score = score(len(res.Exact), len(res.Similar), len(reference), d.Weight())
	return res
}

// score is 100 x (exact + weight x similar) / reference size, rounded. An
// empty reference set floors the denominator at 1 so the result stays
// deterministic instead of dividing by zero.
func score(exact, similar, refCount int, weight float64) int {
	denom := refCount
	if denom < 1 {
		denom = 1
	}
	return int(math.Round(100 * (float64(exact) + weight*float64(similar)) / float64(denom)))
}
