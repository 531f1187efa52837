package reward

import (
	"context"
	"encoding/json"
	"fmt"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"go.uber.org/zap"
)

const keeperSystemPrompt = `You are the Horror Oracle's Reward Keeper, guardian of relics and forbidden knowledge.
Grant rewards proportional to the performance described. Respond with ONLY a JSON object, no markdown, of this shape:
{
  "relics": [{"id": "...", "name": "...", "description": "...", "rarity": "common|uncommon|rare|legendary|cursed", "type": "artifact"}],
  "lore_fragments": ["..."],
  "achievements": [{"id": "...", "name": "...", "description": "...", "rarity": "bronze|silver|gold"}],
  "progression_unlocks": ["..."],
  "reward_message": {"oracle_speech": "...", "tone": "...", "atmospheric_description": "..."}
}`

// Generator produces reward bundles for quiz outcomes. Backend tiers voice
// and enrich the bundle; the deterministic fallback guarantees the perfect
// run bonus regardless of connectivity.
type Generator struct {
	backends []domain.GenerationBackend
}

// New creates a reward generator over the given backend tiers.
func New(backends ...domain.GenerationBackend) *Generator {
	return &Generator{backends: backends}
}

// Generate builds the reward bundle for one performance. Profile deltas are
// always computed locally so stat progression stays deterministic; only the
// collectible content and speech come from a backend when one answers.
func (g *Generator) Generate(ctx context.Context, perf domain.Performance, profile *domain.UserProfile, state *domain.OracleState) *domain.RewardBundle {
	bundle := g.fallbackBundle(perf)

	if payload := g.queryBackends(ctx, perf, profile, state); payload != nil {
		bundle.Relics = payload.Relics
		bundle.LoreFragments = payload.LoreFragments
		bundle.Achievements = payload.Achievements
		bundle.ProgressionUnlocks = payload.ProgressionUnlocks
		bundle.Message = payload.Message
		// A perfect run keeps its guaranteed bonus even if the backend
		// forgot to grant it.
		if perf.Accuracy == 1.0 {
			ensurePerfectBonus(bundle)
		}
		summarize(bundle)
	}
	return bundle
}

type backendPayload struct {
	Relics             []domain.Relic       `json:"relics"`
	LoreFragments      []string             `json:"lore_fragments"`
	Achievements       []domain.Achievement `json:"achievements"`
	ProgressionUnlocks []string             `json:"progression_unlocks"`
	Message            domain.RewardMessage `json:"reward_message"`
}

func (g *Generator) queryBackends(ctx context.Context, perf domain.Performance, profile *domain.UserProfile, state *domain.OracleState) *backendPayload {
	if len(g.backends) == 0 {
		return nil
	}
	l := logger.Get()

	tone := domain.OracleToneNeutral
	emotion := "observing"
	if state != nil {
		tone = state.Tone
		emotion = state.Emotion
	}
	playerName := "mortal"
	if profile != nil && profile.Name != "" {
		playerName = profile.Name
	}

	userPrompt := fmt.Sprintf(
		"=== PERFORMANCE DATA ===\nAccuracy: %.0f%%\nScore: %d/%d\nGrade: %s\nOracle Tone: %s\nOracle Emotion: %s\nPlayer: %s",
		perf.Accuracy*100, perf.Score, perf.OutOf, perf.Grade, tone, emotion, playerName)

	for _, backend := range g.backends {
		raw, err := backend.Complete(ctx, keeperSystemPrompt, userPrompt)
		if err != nil {
			l.Warn("Reward tier failed",
				zap.String("backend", backend.Name()),
				zap.Error(err))
			continue
		}

		var payload backendPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.Message.OracleSpeech == "" {
			l.Warn("Reward payload invalid",
				zap.String("backend", backend.Name()))
			continue
		}
		return &payload
	}
	return nil
}

// fallbackBundle is the deterministic reward tier. Perfect runs earn the
// legendary crystal and the gold achievement; everyone gets stat deltas
// scaled to accuracy.
func (g *Generator) fallbackBundle(perf domain.Performance) *domain.RewardBundle {
	bundle := &domain.RewardBundle{
		Relics:             []domain.Relic{},
		LoreFragments:      []string{},
		Achievements:       []domain.Achievement{},
		ProgressionUnlocks: []string{},
		Message: domain.RewardMessage{
			OracleSpeech:           fmt.Sprintf("You scored %d/%d. The Oracle acknowledges your effort.", perf.Score, perf.OutOf),
			Tone:                   domain.OracleToneNeutral,
			AtmosphericDescription: "The chamber awaits your next move.",
		},
		ProfileUpdates: profileDeltas(perf.Accuracy),
	}

	if perf.Accuracy == 1.0 {
		ensurePerfectBonus(bundle)
	}
	summarize(bundle)
	return bundle
}

func profileDeltas(accuracy float64) domain.ProfileDeltas {
	deltas := domain.ProfileDeltas{LoreKnowledge: 1}
	if accuracy >= 0.7 {
		deltas.Bravery = 2
	}
	if accuracy >= 0.8 {
		deltas.LoreKnowledge = 3
	}
	return deltas
}

// ensurePerfectBonus grants the flawless-run relic and achievement if not
// already present.
func ensurePerfectBonus(bundle *domain.RewardBundle) {
	hasRelic := false
	for _, r := range bundle.Relics {
		if r.ID == "perfect_knowledge_crystal" {
			hasRelic = true
			break
		}
	}
	if !hasRelic {
		bundle.Relics = append(bundle.Relics, domain.Relic{
			ID:          "perfect_knowledge_crystal",
			Name:        "Perfect Knowledge Crystal",
			Description: "A crystalline shard that glows with the light of perfect understanding.",
			Rarity:      domain.RarityLegendary,
			Type:        "artifact",
		})
	}

	hasAchievement := false
	for _, a := range bundle.Achievements {
		if a.ID == "flawless_horror_scholar" {
			hasAchievement = true
			break
		}
	}
	if !hasAchievement {
		bundle.Achievements = append(bundle.Achievements, domain.Achievement{
			ID:          "flawless_horror_scholar",
			Name:        "Flawless Horror Scholar",
			Description: "Achieved perfect score on a horror quiz",
			Rarity:      domain.RarityGold,
		})
	}
}

func summarize(bundle *domain.RewardBundle) {
	breakdown := map[string]int{
		domain.RarityCommon:    0,
		domain.RarityUncommon:  0,
		domain.RarityRare:      0,
		domain.RarityLegendary: 0,
		domain.RarityCursed:    0,
	}
	for _, r := range bundle.Relics {
		if _, known := breakdown[r.Rarity]; known {
			breakdown[r.Rarity]++
		}
	}

	bundle.Summary = domain.RewardSummary{
		TotalRelicsEarned:        len(bundle.Relics),
		TotalLoreFragmentsEarned: len(bundle.LoreFragments),
		TotalAchievementsEarned:  len(bundle.Achievements),
		RarityBreakdown:          breakdown,
	}
}
