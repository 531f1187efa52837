package domain

// Oracle tones, ordered by performance quality where applicable. The affect
// state machine emits the five primary tones; the adjacency table also
// routes through the transitional creepy, impressed and amused tones.
const (
	OracleToneReverent     = "reverent"
	OracleToneAncient      = "ancient"
	OracleToneNeutral      = "neutral"
	OracleToneDisappointed = "disappointed"
	OracleToneMocking      = "mocking"
	OracleToneCreepy       = "creepy"
	OracleToneImpressed    = "impressed"
	OracleToneAmused       = "amused"
)

// DifficultyAdjustment is the oracle's directive for the next chamber.
type DifficultyAdjustment string

const (
	AdjustReward   DifficultyAdjustment = "reward"
	AdjustMaintain DifficultyAdjustment = "maintain"
	AdjustPunish   DifficultyAdjustment = "punish"
)

// MockIntensity grades how hard the oracle leans on the player.
type MockIntensity string

const (
	MockLow    MockIntensity = "low"
	MockMedium MockIntensity = "medium"
	MockHigh   MockIntensity = "high"
)

// OracleBehavior carries the behavioral directives attached to a tone band.
type OracleBehavior struct {
	DifficultyAdjustment DifficultyAdjustment `json:"difficulty_adjustment"`
	RevealLore           bool                 `json:"reveal_lore"`
	MockIntensity        MockIntensity        `json:"mock_intensity"`
	RewardsGranted       []string             `json:"rewards_granted"`
}

// NarrativeContext is the atmospheric framing for the next interaction.
type NarrativeContext struct {
	ChamberAtmosphere string `json:"chamber_atmosphere"`
	OracleStance      string `json:"oracle_stance"`
	TransitionText    string `json:"transition_text"`
}

// PlayerState is the oracle's read of the player after a quiz.
type PlayerState struct {
	Confidence       string `json:"confidence"`
	PerformanceTrend string `json:"performance_trend"`
	FearLevel        int    `json:"fear_level"`
}

// OracleState is the full emotional and behavioral state produced by the
// affect state machine for one quiz outcome. It is ephemeral; tone
// continuity across calls is the caller's responsibility.
type OracleState struct {
	Tone               string           `json:"tone"`
	Emotion            string           `json:"emotion"`
	Intensity          float64          `json:"intensity"`
	NextTone           string           `json:"next_tone"`
	FearShift          float64          `json:"fear_shift"`
	AtmosphericMessage string           `json:"atmospheric_message"`
	PlayerState        PlayerState      `json:"player_state"`
	Behavior           OracleBehavior   `json:"behavior"`
	Narrative          NarrativeContext `json:"narrative"`
}
