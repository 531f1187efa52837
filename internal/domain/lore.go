package domain

// Lore fragment styles.
const (
	StyleCrypticProphecy    = "cryptic_prophecy"
	StyleAncientWarning     = "ancient_warning"
	StyleMockingObservation = "mocking_observation"
	StyleDarkWisdom         = "dark_wisdom"
	StyleEldritchWhisper    = "eldritch_whisper"
)

// Atmosphere is the sensory staging derived from (emotion, intensity).
type Atmosphere struct {
	Mood           string   `json:"mood"`
	VisualHints    []string `json:"visual_hints"`
	AmbientSound   string   `json:"ambient_sound"`
	IntensityLevel string   `json:"intensity_level"`
}

// OracleVoice characterizes how the fragment should be delivered.
type OracleVoice struct {
	Tone          string `json:"tone"`
	Emotion       string `json:"emotion"`
	IntimacyLevel string `json:"intimacy_level"`
	Volume        string `json:"volume"`
}

// NarrativeHooks are forward references the narrator plants between
// chambers.
type NarrativeHooks struct {
	ReferencesLastTheme bool   `json:"references_last_theme"`
	ForeshadowsNext     bool   `json:"foreshadows_next"`
	PersonalObservation string `json:"personal_observation"`
	HintsAtRewards      bool   `json:"hints_at_rewards"`
}

// FragmentText is the whispered lore itself.
type FragmentText struct {
	Text      string  `json:"text"`
	Style     string  `json:"style"`
	Intensity float64 `json:"intensity"`
}

// LoreMetadata describes when and for whom the fragment was produced.
type LoreMetadata struct {
	FragmentType    string `json:"fragment_type"`
	Trigger         string `json:"trigger"`
	DurationSeconds int    `json:"duration_seconds"`
}

// LoreFragment is the full chamber-transition narrative bundle.
type LoreFragment struct {
	Fragment   FragmentText   `json:"lore_fragment"`
	Atmosphere Atmosphere     `json:"atmosphere"`
	Voice      OracleVoice    `json:"oracle_voice"`
	Hooks      NarrativeHooks `json:"narrative_hooks"`
	Metadata   LoreMetadata   `json:"metadata"`
}
