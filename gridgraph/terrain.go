package gridgraph

import "math/rand"

// defaultTerrainSeed is used when callers pass seed == 0, so that the default
// layout is reproducible.
const defaultTerrainSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultTerrainSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultTerrainSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewTerrainRNG exposes the seeding policy to hosts that re-scatter terrain
// between runs.
func NewTerrainRNG(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

// ScatterExpensive draws one number in [0,100) per tile, row-major, and sets
// Weight = WeightExpensive where it falls below percent. Tiles that miss keep
// their current weight. Returns how many tiles were marked.
//
// The start and end tiles are not exempt: their weight only matters when a
// path enters them, which for start never happens.
//
// Complexity: O(R×C).
func (g *Grid) ScatterExpensive(rng *rand.Rand, percent int) int {
	if percent <= 0 {
		return 0
	}
	marked := 0
	for _, t := range g.Tiles {
		if rng.Intn(100) < percent {
			t.Weight = WeightExpensive
			marked++
		}
	}

	return marked
}
