package combat

import "strings"

const (
	BiomeForest   = "forest"
	BiomeWetlands = "wetlands"
	BiomeDecay    = "decay"
	BiomeTundra   = "tundra"
	BiomeKitchen  = "kitchen"

	AdvantageMultiplier    = 1.5
	DisadvantageMultiplier = 0.75
)

// advantageOver maps each biome to the one it beats.
var advantageOver = map[string]string{
	BiomeForest:   BiomeWetlands,
	BiomeWetlands: BiomeDecay,
	BiomeDecay:    BiomeTundra,
	BiomeTundra:   BiomeForest,
}

func NormalizeBiome(biome string) string {
	return strings.ToLower(strings.TrimSpace(biome))
}

// BiomeMultiplier returns the damage multiplier for attacker hitting defender.
// Kitchen, unknown tags and non-adjacent pairs are neutral.
func BiomeMultiplier(attacker, defender string) float64 {
	a := NormalizeBiome(attacker)
	d := NormalizeBiome(defender)
	if a == BiomeKitchen || d == BiomeKitchen {
		return 1
	}
	if beats, ok := advantageOver[a]; ok && beats == d {
		return AdvantageMultiplier
	}
	if beats, ok := advantageOver[d]; ok && beats == a {
		return DisadvantageMultiplier
	}
	return 1
}
