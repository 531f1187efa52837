package domain

// Rarity tiers for relics and achievements.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityLegendary = "legendary"
	RarityCursed    = "cursed"
	RarityGold      = "gold"
)

// Relic is a collectible artifact granted for performance.
type Relic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Type        string `json:"type"`
}

// Achievement marks a milestone earned by the player.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
}

// RewardMessage is the oracle's framing of the reward hand-off.
type RewardMessage struct {
	OracleSpeech           string `json:"oracle_speech"`
	Tone                   string `json:"tone"`
	AtmosphericDescription string `json:"atmospheric_description"`
}

// ProfileDeltas are bounded stat changes for the profile store to apply.
// The reward generator never mutates a profile itself.
type ProfileDeltas struct {
	Bravery       int `json:"bravery"`
	LoreKnowledge int `json:"lore_knowledge"`
	Logic         int `json:"logic"`
	FearLevel     int `json:"fear_level"`
}

// RewardSummary aggregates what a bundle contains.
type RewardSummary struct {
	TotalRelicsEarned        int            `json:"total_relics_earned"`
	TotalLoreFragmentsEarned int            `json:"total_lore_fragments_earned"`
	TotalAchievementsEarned  int            `json:"total_achievements_earned"`
	RarityBreakdown          map[string]int `json:"rarity_breakdown"`
}

// RewardBundle is the structured reward output for one quiz outcome.
type RewardBundle struct {
	Relics              []Relic       `json:"relics"`
	LoreFragments       []string      `json:"lore_fragments"`
	Achievements        []Achievement `json:"achievements"`
	ProgressionUnlocks  []string      `json:"progression_unlocks"`
	Message             RewardMessage `json:"reward_message"`
	ProfileUpdates      ProfileDeltas `json:"profile_updates"`
	Summary             RewardSummary `json:"summary"`
}

// Performance is the compact view of a quiz outcome consumed by the reward
// generator and profile store.
type Performance struct {
	Score    int     `json:"score"`
	OutOf    int     `json:"out_of"`
	Accuracy float64 `json:"accuracy"`
	Grade    Grade   `json:"grade"`
}
