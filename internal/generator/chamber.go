package generator

import (
	"math/rand"

	"horror-oracle/internal/domain"
)

var chamberPrefixes = []string{
	"The Chamber of", "The Hall of", "The Vault of", "The Crypt of",
	"The Sanctum of", "The Pit of", "The Abyss of", "The Den of",
	"The Lair of", "The Domain of", "The Realm of", "The Depths of",
	"The Throne of", "The Tower of", "The Dungeon of", "The Maze of",
	"The Temple of", "The Ruins of", "The Cavern of", "The Labyrinth of",
}

var toneDescriptors = map[string][]string{
	domain.ToneCreepy:    {"Whispers", "Shadows", "Silence", "Dread", "Echoes", "Phantoms"},
	domain.ToneMocking:   {"Folly", "Hubris", "Mockery", "Jest", "Vanity", "Pride"},
	domain.ToneAncient:   {"Ancients", "Forgotten", "Eternity", "Lost Souls", "Elders", "Primordial Fears"},
	domain.ToneWhispered: {"Secrets", "Murmurs", "Whispers", "Hidden Truths", "Confessions", "Revelations"},
	domain.ToneGrim:      {"Despair", "Torment", "Anguish", "Suffering", "Doom", "Perdition"},
	domain.TonePlayful:   {"Games", "Riddles", "Tricks", "Illusions", "Mischief", "Madness"},
}

var themeDescriptors = map[string][]string{
	domain.ThemeGeneralHorror: {"Screams", "Terror", "Nightmares", "Blood", "Fear", "Darkness"},
	"slasher":                 {"Blades", "Carnage", "Slaughter", "Butchery", "Gore", "Massacre"},
	"psychological":           {"Madness", "Psychosis", "Delusion", "Paranoia", "Obsession", "Hysteria"},
	"supernatural":            {"Spirits", "Wraiths", "Apparitions", "Hauntings", "Curses", "Possession"},
	"zombie":                  {"Decay", "Infection", "Undeath", "Plague", "Rot", "Resurrection"},
	"vampire":                 {"Thirst", "Immortality", "Bloodlust", "Nocturne", "Crimson", "Eternal Night"},
	"cosmic":                  {"Void", "Oblivion", "Infinity", "Cosmic Dread", "Unknown", "Eldritch"},
	"gothic":                  {"Gloom", "Melancholy", "Sorrow", "Decay", "Romantic Death", "Darkness"},
	"body_horror":             {"Mutation", "Transformation", "Flesh", "Viscera", "Aberration", "Grotesque"},
}

var difficultyDescriptors = map[domain.Difficulty][]string{
	domain.DifficultyBeginner:     {"Awakening", "Initiation", "First Steps", "Beginning", "Novice Trials", "Entry"},
	domain.DifficultyIntermediate: {"Trials", "Challenges", "Tests", "Ordeals", "Judgment", "Gauntlet"},
	domain.DifficultyAdvanced:     {"Suffering", "Agony", "Torment", "Pain", "Endless Horror", "Deep Fears"},
	domain.DifficultyExpert:       {"Eternal Damnation", "Ultimate Horror", "Absolute Terror", "Final Judgment", "Oblivion", "Death"},
}

var chamberConnectors = []string{"and", "&", "of"}

// chamberName builds a fresh atmospheric name from the prefix and descriptor
// tables. Three layouts keep consecutive chambers from looking alike.
func chamberName(rng *rand.Rand, difficulty domain.Difficulty, theme, tone string) string {
	toneList, ok := toneDescriptors[tone]
	if !ok {
		toneList = toneDescriptors[domain.ToneCreepy]
	}
	themeList, ok := themeDescriptors[theme]
	if !ok {
		themeList = themeDescriptors[domain.ThemeGeneralHorror]
	}
	diffList, ok := difficultyDescriptors[difficulty]
	if !ok {
		diffList = difficultyDescriptors[domain.DifficultyIntermediate]
	}

	prefix := chamberPrefixes[rng.Intn(len(chamberPrefixes))]
	switch rng.Intn(3) {
	case 0:
		return prefix + " " + toneList[rng.Intn(len(toneList))] + " " +
			chamberConnectors[rng.Intn(len(chamberConnectors))] + " " +
			themeList[rng.Intn(len(themeList))]
	case 1:
		return prefix + " " + diffList[rng.Intn(len(diffList))]
	default:
		return prefix + " " + themeList[rng.Intn(len(themeList))]
	}
}

// chamberIntro returns the tone-matched opening line for a chamber.
func chamberIntro(theme, tone string) string {
	switch tone {
	case domain.ToneCreepy:
		return "The air grows cold as you enter the " + theme + " chamber. Something watches from the shadows..."
	case domain.ToneMocking:
		return "You dare challenge the Oracle's knowledge of " + theme + "? How amusing..."
	case domain.ToneAncient:
		return "From epochs long forgotten, the " + theme + " trials await thee..."
	case domain.ToneWhispered:
		return "Listen closely... the " + theme + " secrets are about to be revealed..."
	case domain.ToneGrim:
		return "There is no escape from the " + theme + " test. Face your trial."
	case domain.TonePlayful:
		return "Let's play a game with " + theme + ", shall we? Don't lose your head..."
	default:
		return "The Oracle prepares your " + theme + " test..."
	}
}
