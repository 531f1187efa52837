package affect

import (
	"fmt"
	"strings"

	"horror-oracle/internal/domain"
)

// toneBand is one row of the accuracy-to-affect table. Bands are checked
// top down; the first whose threshold is met wins.
type toneBand struct {
	threshold        float64
	tone             string
	emotion          string
	intensity        float64
	fearShift        float64
	adjustment       domain.DifficultyAdjustment
	revealLore       bool
	mockIntensity    domain.MockIntensity
	confidence       string
	performanceTrend string
}

var toneBands = []toneBand{
	{0.9, domain.OracleToneReverent, "impressed", 0.85, -0.2, domain.AdjustReward, true, domain.MockLow, "confident", "improving"},
	{0.7, domain.OracleToneAncient, "respectful", 0.6, -0.1, domain.AdjustMaintain, true, domain.MockLow, "confident", "stable"},
	{0.5, domain.OracleToneNeutral, "observing", 0.5, 0.0, domain.AdjustMaintain, false, domain.MockMedium, "neutral", "stable"},
	{0.3, domain.OracleToneDisappointed, "condescending", 0.7, 0.15, domain.AdjustMaintain, false, domain.MockMedium, "shaken", "declining"},
	{0.0, domain.OracleToneMocking, "amused", 0.9, 0.3, domain.AdjustPunish, false, domain.MockHigh, "terrified", "declining"},
}

// toneTransitions is the successor adjacency for each tone. The first entry
// is the default successor; accuracy extremes steer toward the first
// positive or negative entry instead.
var toneTransitions = map[string][]string{
	domain.OracleToneReverent:     {domain.OracleToneAncient, domain.OracleToneImpressed, domain.OracleToneNeutral},
	domain.OracleToneMocking:      {domain.OracleToneCreepy, domain.OracleToneDisappointed, domain.OracleToneAmused},
	domain.OracleToneAncient:      {domain.OracleToneReverent, domain.OracleToneNeutral, domain.OracleToneCreepy},
	domain.OracleToneCreepy:       {domain.OracleToneMocking, domain.OracleToneAncient, domain.OracleToneDisappointed},
	domain.OracleToneImpressed:    {domain.OracleToneReverent, domain.OracleToneAncient, domain.OracleToneNeutral},
	domain.OracleToneDisappointed: {domain.OracleToneMocking, domain.OracleToneCreepy, domain.OracleToneNeutral},
	domain.OracleToneNeutral:      {domain.OracleToneCreepy, domain.OracleToneAncient, domain.OracleToneMocking},
}

var positiveTones = map[string]bool{
	domain.OracleToneReverent:  true,
	domain.OracleToneAncient:   true,
	domain.OracleToneImpressed: true,
	domain.OracleToneNeutral:   true,
}

var negativeTones = map[string]bool{
	domain.OracleToneMocking:      true,
	domain.OracleToneDisappointed: true,
	domain.OracleToneCreepy:       true,
}

// StateMachine translates quiz accuracy into the Oracle's emotional state.
// It is stateless and fully deterministic; identical inputs always yield
// identical states.
type StateMachine struct{}

// New creates the affect state machine.
func New() *StateMachine {
	return &StateMachine{}
}

// NextState computes the Oracle's full affect for one quiz outcome.
// Accuracy is clamped to [0,1]; the profile supplies the player name and
// the fear level the shift applies to.
func (m *StateMachine) NextState(accuracy float64, previousTone string, profile *domain.UserProfile) *domain.OracleState {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}

	band := bandFor(accuracy)

	playerName := "mortal"
	currentFear := 50
	if profile != nil {
		if profile.Name != "" {
			playerName = profile.Name
		}
		currentFear = profile.FearLevel
	}
	newFear := domain.ClampStat(currentFear + int(band.fearShift*100))

	rewards := []string{}
	if band.revealLore && accuracy >= 0.7 {
		rewards = append(rewards, "lore_fragment")
	}
	if accuracy >= 0.9 {
		rewards = append(rewards, "oracle_blessing")
	}

	return &domain.OracleState{
		Tone:               band.tone,
		Emotion:            band.emotion,
		Intensity:          band.intensity,
		NextTone:           nextTone(band.tone, accuracy),
		FearShift:          band.fearShift,
		AtmosphericMessage: atmosphericMessage(band.tone, accuracy, playerName),
		PlayerState: domain.PlayerState{
			Confidence:       band.confidence,
			PerformanceTrend: band.performanceTrend,
			FearLevel:        newFear,
		},
		Behavior: domain.OracleBehavior{
			DifficultyAdjustment: band.adjustment,
			RevealLore:           band.revealLore,
			MockIntensity:        band.mockIntensity,
			RewardsGranted:       rewards,
		},
		Narrative: domain.NarrativeContext{
			ChamberAtmosphere: chamberAtmosphere(band.intensity),
			OracleStance:      oracleStance(band.tone, band.intensity),
			TransitionText:    transitionText(band.adjustment, band.performanceTrend),
		},
	}
}

func bandFor(accuracy float64) toneBand {
	for _, band := range toneBands {
		if accuracy >= band.threshold {
			return band
		}
	}
	return toneBands[len(toneBands)-1]
}

// nextTone picks the successor tone from the adjacency table. High accuracy
// steers to the first positive successor, very low accuracy to the first
// negative one, anything else to the default successor.
func nextTone(currentTone string, accuracy float64) string {
	successors, ok := toneTransitions[currentTone]
	if !ok || len(successors) == 0 {
		return domain.OracleToneNeutral
	}

	if accuracy >= 0.8 {
		for _, tone := range successors {
			if positiveTones[tone] {
				return tone
			}
		}
	} else if accuracy < 0.4 {
		for _, tone := range successors {
			if negativeTones[tone] {
				return tone
			}
		}
	}
	return successors[0]
}

func chamberAtmosphere(intensity float64) string {
	switch {
	case intensity > 0.8:
		return "oppressive"
	case intensity > 0.6:
		return "tense"
	case intensity > 0.4:
		return "watchful"
	default:
		return "calm"
	}
}

var atmosphericMessages = map[string][]string{
	domain.OracleToneReverent: {
		"The Oracle bows slightly. 'Well done, %s. You honor the ancient knowledge.'",
		"'Impressive, %s... The darkness acknowledges your mastery.'",
		"The Oracle's eyes gleam with approval. 'You are worthy of the deeper mysteries.'",
	},
	domain.OracleToneAncient: {
		"'You understand more than most, %s,' the Oracle intones solemnly.",
		"The Oracle nods slowly. 'The old ways are not lost on you.'",
		"'Acceptable,' whispers the ancient voice. 'Continue your journey.'",
	},
	domain.OracleToneNeutral: {
		"The Oracle watches %s with unblinking eyes.",
		"'Proceed,' the Oracle commands flatly.",
		"The ancient presence observes without judgment... for now.",
	},
	domain.OracleToneDisappointed: {
		"The Oracle sighs, a sound like wind through a crypt. 'Expected more, %s.'",
		"'Disappointing,' the Oracle mutters. 'Perhaps you are not ready.'",
		"The Oracle's gaze darkens. '%s... you stumble in the shadows.'",
	},
	domain.OracleToneMocking: {
		"The Oracle's laughter echoes through the chamber. 'You stumble, %s!'",
		"'Pathetic,' the Oracle hisses with dark amusement. 'The darkness will consume you.'",
		"The Oracle leans forward, grinning wickedly. 'Is this the best you can offer, mortal?'",
	},
}

// atmosphericMessage selects one voiced line per tone, indexed by accuracy
// within the tone's message list. Lines without a name slot are returned
// verbatim.
func atmosphericMessage(tone string, accuracy float64, playerName string) string {
	messages, ok := atmosphericMessages[tone]
	if !ok {
		messages = atmosphericMessages[domain.OracleToneNeutral]
	}
	index := int(accuracy * float64(len(messages)))
	if index > len(messages)-1 {
		index = len(messages) - 1
	}
	line := messages[index]
	if !strings.Contains(line, "%s") {
		return line
	}
	return fmt.Sprintf(line, playerName)
}

var oracleStances = map[string]string{
	domain.OracleToneReverent:     "The Oracle rises from its throne, robes flowing like shadow and light intertwined",
	domain.OracleToneAncient:      "The Oracle sits motionless, eyes older than time itself watching patiently",
	domain.OracleToneNeutral:      "The Oracle remains still, an enigmatic presence in the darkness",
	domain.OracleToneDisappointed: "The Oracle's form seems to dim, shadows deepening around its disappointment",
	domain.OracleToneMocking:      "The Oracle leans forward, eyes gleaming with dark amusement and malice",
}

func oracleStance(tone string, intensity float64) string {
	base, ok := oracleStances[tone]
	if !ok {
		base = oracleStances[domain.OracleToneNeutral]
	}
	switch {
	case intensity > 0.8:
		return base + ", power radiating from every gesture"
	case intensity > 0.6:
		return base + ", presence commanding attention"
	default:
		return base
	}
}

func transitionText(adjustment domain.DifficultyAdjustment, trend string) string {
	switch {
	case adjustment == domain.AdjustReward && trend == "improving":
		return "Your mastery opens new paths... The Oracle prepares deeper mysteries."
	case adjustment == domain.AdjustPunish && trend == "declining":
		return "Your failure amuses the ancient one... Prepare for harsher trials."
	case adjustment == domain.AdjustMaintain:
		switch trend {
		case "stable":
			return "The Oracle continues to test your resolve..."
		case "improving":
			return "You show promise... but the true test lies ahead."
		default:
			return "The shadows press closer as your confidence wavers..."
		}
	default:
		return "The Oracle's gaze follows you into the next chamber..."
	}
}
