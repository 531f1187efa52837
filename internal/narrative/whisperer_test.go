package narrative

import (
	"math/rand"
	"testing"

	"horror-oracle/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *Whisperer {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

func profileWith(name string, fear, bravery int) *domain.UserProfile {
	p := domain.NewDefaultProfile("user-1")
	p.Name = name
	p.FearLevel = fear
	p.Bravery = bravery
	return p
}

func TestCalculateIntensity_BlendsEmotionAndFear(t *testing.T) {
	tests := []struct {
		emotion  string
		fear     int
		expected float64
	}{
		{EmotionWrathful, 100, 0.93},
		{EmotionPleased, 0, 0.21},
		{EmotionIndifferent, 50, 0.43},
		{EmotionCruel, 80, 0.835},
		{"unknown", 50, 0.5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, calculateIntensity(tt.emotion, tt.fear), 1e-9,
			"emotion=%s fear=%d", tt.emotion, tt.fear)
	}
}

func TestCalculateIntensity_Clamped(t *testing.T) {
	assert.LessOrEqual(t, calculateIntensity(EmotionWrathful, 100), 1.0)
	assert.GreaterOrEqual(t, calculateIntensity(EmotionPleased, 0), 0.1)
}

func TestWhisper_FragmentStyles(t *testing.T) {
	assert.Equal(t, domain.StyleAncientWarning, fragmentStyle(EmotionWrathful, 0.9))
	assert.Equal(t, domain.StyleAncientWarning, fragmentStyle(EmotionCruel, 0.8))
	assert.Equal(t, domain.StyleMockingObservation, fragmentStyle(EmotionAmused, 0.5))
	assert.Equal(t, domain.StyleMockingObservation, fragmentStyle(EmotionMocking, 0.9))
	assert.Equal(t, domain.StyleDarkWisdom, fragmentStyle(EmotionPleased, 0.3))
	assert.Equal(t, domain.StyleEldritchWhisper, fragmentStyle(EmotionIndifferent, 0.85))
	assert.Equal(t, domain.StyleCrypticProphecy, fragmentStyle(EmotionIndifferent, 0.4))
}

func TestWhisper_CompleteFragment(t *testing.T) {
	w := seeded(1)

	fragment := w.Whisper(profileWith("Ash", 60, 50), "slasher", EmotionMocking, "average")

	assert.NotEmpty(t, fragment.Fragment.Text)
	assert.Equal(t, domain.StyleMockingObservation, fragment.Fragment.Style)
	assert.InDelta(t, 0.67, fragment.Fragment.Intensity, 1e-9)
	assert.Equal(t, "malevolent", fragment.Atmosphere.Mood)
	assert.Len(t, fragment.Atmosphere.VisualHints, 3)
	assert.NotEmpty(t, fragment.Atmosphere.AmbientSound)
	assert.Equal(t, "medium", fragment.Atmosphere.IntensityLevel)
	assert.Equal(t, EmotionMocking, fragment.Voice.Tone)
	assert.Equal(t, "distant", fragment.Voice.IntimacyLevel)
	assert.Equal(t, "transition", fragment.Metadata.FragmentType)
	assert.Equal(t, "quiz_completion", fragment.Metadata.Trigger)
	assert.GreaterOrEqual(t, fragment.Metadata.DurationSeconds, 3)
	assert.LessOrEqual(t, fragment.Metadata.DurationSeconds, 8)
}

func TestWhisper_VisualHintCountFollowsIntensity(t *testing.T) {
	low := seeded(1).Whisper(profileWith("Ash", 0, 50), "gothic", EmotionPleased, "average")
	assert.Len(t, low.Atmosphere.VisualHints, 2)
	assert.Equal(t, "whisper", low.Voice.Volume)

	high := seeded(1).Whisper(profileWith("Ash", 100, 50), "gothic", EmotionWrathful, "poor")
	assert.Len(t, high.Atmosphere.VisualHints, 3)
	assert.Equal(t, "thunderous", high.Voice.Volume)
	assert.Equal(t, "high", high.Atmosphere.IntensityLevel)
	assert.Equal(t, "suffocating", high.Atmosphere.Mood)
}

func TestWhisper_HintsAtRewardsRequiresBraveryAndPerformance(t *testing.T) {
	brave := seeded(3).Whisper(profileWith("Ash", 50, 80), "slasher", EmotionPleased, "excellent")
	assert.True(t, brave.Hooks.HintsAtRewards)

	timid := seeded(3).Whisper(profileWith("Ash", 50, 40), "slasher", EmotionPleased, "excellent")
	assert.False(t, timid.Hooks.HintsAtRewards)

	poorly := seeded(3).Whisper(profileWith("Ash", 50, 80), "slasher", EmotionPleased, "poor")
	assert.False(t, poorly.Hooks.HintsAtRewards)
}

func TestWhisper_DeterministicForSeed(t *testing.T) {
	first := seeded(99).Whisper(profileWith("Ash", 50, 50), "cosmic", EmotionIndifferent, "average")
	second := seeded(99).Whisper(profileWith("Ash", 50, 50), "cosmic", EmotionIndifferent, "average")
	assert.Equal(t, first, second)
}

func TestMovieBackstory_MentionsTitle(t *testing.T) {
	w := seeded(1)

	story := w.MovieBackstory(domain.MovieRef{Title: "Halloween", Year: 1978})
	assert.Contains(t, story, "Halloween")

	unknown := w.MovieBackstory(domain.MovieRef{})
	assert.Contains(t, unknown, "Unknown Film")
}

func TestRoomTransition_ShadedByPerformance(t *testing.T) {
	w := seeded(1)

	for i := 0; i < 10; i++ {
		text := w.RoomTransition("The Bleeding Corridor", "The Whispering Crypt", "excellent")
		assert.Contains(t, text, "The Whispering Crypt")
		assert.NotContains(t, text, "no mercy")
	}
	for i := 0; i < 10; i++ {
		text := w.RoomTransition("The Bleeding Corridor", "The Whispering Crypt", "average")
		assert.Contains(t, text, "The Whispering Crypt")
	}
	poor := w.RoomTransition("The Bleeding Corridor", "The Whispering Crypt", "poor")
	assert.NotEmpty(t, poor)
}

func TestWhisper_UnknownEmotionFallsBackToIndifferent(t *testing.T) {
	fragment := seeded(5).Whisper(nil, "zombie", "elated", "average")
	require.NotNil(t, fragment)
	assert.NotEmpty(t, fragment.Fragment.Text)
	assert.Equal(t, "ominous", fragment.Atmosphere.Mood)
	assert.Equal(t, "neutral", fragment.Voice.IntimacyLevel)
}
