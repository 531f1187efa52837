package narrative

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"horror-oracle/internal/domain"
)

// Oracle emotions recognized by the whisperer's template families.
const (
	EmotionPleased      = "pleased"
	EmotionAmused       = "amused"
	EmotionMocking      = "mocking"
	EmotionDisappointed = "disappointed"
	EmotionWrathful     = "wrathful"
	EmotionCruel        = "cruel"
	EmotionIndifferent  = "indifferent"
)

var emotionIntensity = map[string]float64{
	EmotionPleased:      0.3,
	EmotionAmused:       0.5,
	EmotionMocking:      0.7,
	EmotionDisappointed: 0.6,
	EmotionWrathful:     0.9,
	EmotionCruel:        0.85,
	EmotionIndifferent:  0.4,
}

var moodMap = map[string]string{
	EmotionPleased:      "mysterious",
	EmotionAmused:       "eerie",
	EmotionMocking:      "malevolent",
	EmotionDisappointed: "ominous",
	EmotionWrathful:     "suffocating",
	EmotionCruel:        "dread",
	EmotionIndifferent:  "eerie",
}

var intimacyLevels = map[string]string{
	EmotionPleased:      "approving",
	EmotionAmused:       "playful",
	EmotionMocking:      "distant",
	EmotionDisappointed: "cold",
	EmotionWrathful:     "overwhelming",
	EmotionCruel:        "intimate",
	EmotionIndifferent:  "detached",
}

var visualHintsPool = []string{
	"flickering_candles", "shadow_figures", "blood_moon",
	"cracked_mirrors", "writhing_shadows", "spectral_mist",
	"ancient_runes", "decaying_walls", "crimson_light",
}

var ambientSounds = []string{
	"distant_whispers", "chains_rattling", "mournful_wind",
	"dripping_water", "heartbeat_echo", "screaming_silence",
}

// loreTemplates holds three lines per emotion; %s is the last theme where
// the line references it.
var loreTemplates = map[string][]string{
	EmotionPleased: {
		"The %s whispers approve... for now.",
		"Knowledge gleams in the darkness, a rare light.",
		"Even the shadows bow to those who know their names.",
	},
	EmotionAmused: {
		"You dance well in this %s chamber, little mortal.",
		"The Oracle chuckles... your steps intrigue the void.",
		"Such confidence... let us see if it endures.",
	},
	EmotionMocking: {
		"Did you think %s would yield so easily?",
		"The shadows mock your stumbling, seeker.",
		"Knowledge slips through trembling fingers like sand.",
	},
	EmotionDisappointed: {
		"The %s realm demands more than guesses.",
		"Mediocrity echoes hollow in these chambers.",
		"The Oracle sighs... potential squandered.",
	},
	EmotionWrathful: {
		"FOOL! The %s spirits howl at your ignorance!",
		"Your arrogance insults the ancient pacts!",
		"The Oracle's patience wears thin as spider silk!",
	},
	EmotionCruel: {
		"Suffer well, child. The %s feeds on doubt.",
		"Each wrong answer tightens the noose...",
		"Your fear is exquisite... do continue.",
	},
	EmotionIndifferent: {
		"The void watches. The void waits.",
		"%s knows no mercy, no favor.",
		"Onward, seeker. The path cares not for your comfort.",
	},
}

// Whisperer produces the lore fragments spoken between chambers. Template
// selection is random; inject a seeded source for deterministic output.
type Whisperer struct {
	rng *rand.Rand
}

// New creates a whisperer with a time-seeded source.
func New() *Whisperer {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a whisperer over the given source.
func NewWithRand(rng *rand.Rand) *Whisperer {
	return &Whisperer{rng: rng}
}

// Whisper composes the transition fragment for one chamber boundary.
// Intensity blends the Oracle's emotion with the player's fear; everything
// downstream (style, staging, voice) derives from that blend.
func (w *Whisperer) Whisper(profile *domain.UserProfile, lastTheme, emotion, performance string) *domain.LoreFragment {
	fearLevel := 50
	bravery := 50
	playerName := "Seeker"
	if profile != nil {
		fearLevel = profile.FearLevel
		bravery = profile.Bravery
		if profile.Name != "" {
			playerName = profile.Name
		}
	}

	intensity := calculateIntensity(emotion, fearLevel)
	text := w.craftText(emotion, lastTheme)

	return &domain.LoreFragment{
		Fragment: domain.FragmentText{
			Text:      text,
			Style:     fragmentStyle(emotion, intensity),
			Intensity: intensity,
		},
		Atmosphere: w.buildAtmosphere(emotion, intensity),
		Voice:      oracleVoice(emotion, intensity),
		Hooks:      w.narrativeHooks(playerName, bravery, performance),
		Metadata: domain.LoreMetadata{
			FragmentType:    "transition",
			Trigger:         "quiz_completion",
			DurationSeconds: estimateDuration(text),
		},
	}
}

// calculateIntensity blends the emotion's base weight with the fear level,
// 70/30, clamped to [0.1, 1.0].
func calculateIntensity(emotion string, fearLevel int) float64 {
	base, ok := emotionIntensity[emotion]
	if !ok {
		base = 0.5
	}
	intensity := base*0.7 + (float64(fearLevel)/100.0)*0.3
	if intensity < 0.1 {
		return 0.1
	}
	if intensity > 1.0 {
		return 1.0
	}
	return intensity
}

func (w *Whisperer) craftText(emotion, theme string) string {
	templates, ok := loreTemplates[emotion]
	if !ok {
		templates = loreTemplates[EmotionIndifferent]
	}
	line := templates[w.rng.Intn(len(templates))]
	if strings.Contains(line, "%s") {
		return fmt.Sprintf(line, theme)
	}
	return line
}

func fragmentStyle(emotion string, intensity float64) string {
	switch {
	case (emotion == EmotionWrathful || emotion == EmotionCruel) && intensity > 0.7:
		return domain.StyleAncientWarning
	case emotion == EmotionAmused || emotion == EmotionMocking:
		return domain.StyleMockingObservation
	case emotion == EmotionPleased:
		return domain.StyleDarkWisdom
	case intensity > 0.8:
		return domain.StyleEldritchWhisper
	default:
		return domain.StyleCrypticProphecy
	}
}

func (w *Whisperer) buildAtmosphere(emotion string, intensity float64) domain.Atmosphere {
	mood, ok := moodMap[emotion]
	if !ok {
		mood = "ominous"
	}

	numVisuals := 2
	if intensity >= 0.6 {
		numVisuals = 3
	}
	hints := make([]string, 0, numVisuals)
	for _, idx := range w.rng.Perm(len(visualHintsPool))[:numVisuals] {
		hints = append(hints, visualHintsPool[idx])
	}

	level := "low"
	switch {
	case intensity > 0.7:
		level = "high"
	case intensity > 0.4:
		level = "medium"
	}

	return domain.Atmosphere{
		Mood:           mood,
		VisualHints:    hints,
		AmbientSound:   ambientSounds[w.rng.Intn(len(ambientSounds))],
		IntensityLevel: level,
	}
}

func oracleVoice(emotion string, intensity float64) domain.OracleVoice {
	intimacy, ok := intimacyLevels[emotion]
	if !ok {
		intimacy = "neutral"
	}

	volume := "normal"
	switch {
	case intensity > 0.8:
		volume = "thunderous"
	case intensity < 0.3:
		volume = "whisper"
	}

	return domain.OracleVoice{
		Tone:          emotion,
		Emotion:       emotion,
		IntimacyLevel: intimacy,
		Volume:        volume,
	}
}

func (w *Whisperer) narrativeHooks(playerName string, bravery int, performance string) domain.NarrativeHooks {
	observations := []string{
		playerName + " trembles, yet persists...",
		"The seeker's resolve wavers like candlelight.",
		playerName + "'s fear-scent grows sweeter.",
		"Another step deeper into shadow, " + playerName + ".",
		"The Oracle marks your progress, " + playerName + ".",
	}

	return domain.NarrativeHooks{
		ReferencesLastTheme: w.rng.Float64() > 0.3,
		ForeshadowsNext:     w.rng.Float64() > 0.6,
		PersonalObservation: observations[w.rng.Intn(len(observations))],
		HintsAtRewards:      bravery > 70 && (performance == "excellent" || performance == "good"),
	}
}

// MovieBackstory voices a short in-character history for a recommended
// film.
func (w *Whisperer) MovieBackstory(movie domain.MovieRef) string {
	title := movie.Title
	if title == "" {
		title = "Unknown Film"
	}
	year := "an unknown era"
	if movie.Year > 0 {
		year = fmt.Sprintf("%d", movie.Year)
	}

	backstories := []string{
		fmt.Sprintf("In %s, %s emerged from the void... a curse captured on celluloid.", year, title),
		fmt.Sprintf("They say %s shouldn't have been made. The shadows disagreed.", title),
		fmt.Sprintf("%s... a film that watches back. Released %s, forgotten never.", title, year),
		fmt.Sprintf("The Oracle remembers when %s first whispered into the darkness (%s).", title, year),
	}
	return backstories[w.rng.Intn(len(backstories))]
}

// RoomTransition narrates the passage between two chambers, shaded by how
// the last one went.
func (w *Whisperer) RoomTransition(fromRoom, toRoom, performance string) string {
	var templates []string
	switch performance {
	case "excellent":
		templates = []string{
			fmt.Sprintf("You conquered %s. Now %s beckons...", fromRoom, toRoom),
			fmt.Sprintf("The path from %s opens. %s awaits your mastery.", fromRoom, toRoom),
			fmt.Sprintf("Impressive. The Oracle grants passage to %s.", toRoom),
		}
	case "poor":
		templates = []string{
			fmt.Sprintf("You stumble from %s, bloodied but unbowed. %s will show no mercy.", fromRoom, toRoom),
			fmt.Sprintf("Barely escaping %s, you face %s... perhaps your final chamber.", fromRoom, toRoom),
			fmt.Sprintf("The Oracle frowns. %s shall test whether you deserve to continue.", toRoom),
		}
	default:
		templates = []string{
			fmt.Sprintf("From %s to %s, the Oracle guides your uncertain steps.", fromRoom, toRoom),
			fmt.Sprintf("%s yields to %s. The darkness deepens.", fromRoom, toRoom),
			fmt.Sprintf("You proceed from %s into %s, neither celebrated nor condemned.", fromRoom, toRoom),
		}
	}
	return templates[w.rng.Intn(len(templates))]
}

// estimateDuration approximates reading time at three words per second,
// bounded to [3,8] seconds.
func estimateDuration(text string) int {
	words := len(strings.Fields(text))
	duration := words/3 + 1
	if duration < 3 {
		return 3
	}
	if duration > 8 {
		return 8
	}
	return duration
}
