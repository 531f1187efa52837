package retriever

import "horror-oracle/internal/domain"

// staticCorpus is the curated reference corpus used whenever no vector
// index is configured. Order matters: the keyword fallback is deterministic
// over this slice.
var staticCorpus = []domain.FactRecord{
	{
		Title:    "The Exorcist",
		Year:     "1973",
		Director: "William Friedkin",
		Plot:     "A young girl becomes possessed by a demon named Pazuzu, and her mother seeks help from two priests.",
		Trivia:   "The demon possessing Regan is named Pazuzu, an ancient Assyrian demon.",
	},
	{
		Title:    "Halloween",
		Year:     "1978",
		Director: "John Carpenter",
		Plot:     "Michael Myers escapes from a mental institution and returns to his hometown to continue his killing spree.",
		Trivia:   "Michael Myers killed 5 people in the original 1978 film.",
	},
	{
		Title:    "The Thing",
		Year:     "1982",
		Director: "John Carpenter",
		Plot:     "A research team in Antarctica discovers a shape-shifting alien that can assume the form of its victims.",
		Trivia:   "The blood test scene is used to identify who is infected by the alien.",
	},
	{
		Title:    "A Nightmare on Elm Street",
		Year:     "1984",
		Director: "Wes Craven",
		Plot:     "Freddy Krueger, a burned killer, haunts teenagers in their dreams on Elm Street.",
		Trivia:   "Freddy Krueger wears a red and green striped sweater.",
	},
	{
		Title:    "The Shining",
		Year:     "1980",
		Director: "Stanley Kubrick",
		Plot:     "A family heads to an isolated hotel where an evil presence drives the father into violent madness.",
		Trivia:   "Room 237 is the forbidden room Danny is warned never to enter.",
	},
	{
		Title:    "Psycho",
		Year:     "1960",
		Director: "Alfred Hitchcock",
		Plot:     "A secretary embezzles money and encounters Norman Bates at the Bates Motel.",
		Trivia:   "Considered the first modern slasher film, establishing many genre conventions.",
	},
	{
		Title:    "Night of the Living Dead",
		Year:     "1968",
		Director: "George A. Romero",
		Plot:     "Zombies rise from the dead and terrorize survivors barricaded in a farmhouse.",
		Trivia:   "This film started the modern zombie genre and established the slow-moving zombie archetype.",
	},
	{
		Title:    "The Texas Chain Saw Massacre",
		Year:     "1974",
		Director: "Tobe Hooper",
		Plot:     "A group of friends encounters a family of cannibals, including the chainsaw-wielding Leatherface.",
		Trivia:   "Inspired by real-life serial killer Ed Gein who made masks from human skin.",
	},
	{
		Title:    "Hellraiser",
		Year:     "1987",
		Director: "Clive Barker",
		Plot:     "A puzzle box opens a gateway to the Cenobites, sadomasochistic beings from another dimension.",
		Trivia:   "The puzzle box is called the Lament Configuration.",
	},
	{
		Title:    "The Ring",
		Year:     "2002",
		Director: "Gore Verbinski",
		Plot:     "A cursed videotape kills anyone who watches it seven days later.",
		Trivia:   "Based on the Japanese film Ringu (1998) which started the J-horror wave in America.",
	},
	{
		Title:    "Get Out",
		Year:     "2017",
		Director: "Jordan Peele",
		Plot:     "A young Black man visits his white girlfriend's family estate and uncovers a disturbing secret.",
		Trivia:   "The hypnotic trigger is a teacup and spoon stirring, which sends Chris to the Sunken Place.",
	},
	{
		Title:    "The Conjuring",
		Year:     "2013",
		Director: "James Wan",
		Plot:     "Paranormal investigators Ed and Lorraine Warren help the Perron family being terrorized by a demon.",
		Trivia:   "The Warrens keep the possessed Annabelle doll in their occult museum.",
	},
	{
		Title:    "It",
		Year:     "2017",
		Director: "Andy Muschietti",
		Plot:     "A group of kids face off against the shape-shifting entity Pennywise the Clown.",
		Trivia:   "Pennywise returns to Derry every 27 years to feed on children.",
	},
	{
		Title:    "Saw",
		Year:     "2004",
		Director: "James Wan",
		Plot:     "Two men wake up in a bathroom and must follow the sadistic instructions of the Jigsaw Killer.",
		Trivia:   "The Jigsaw Killer's real name is John Kramer.",
	},
	{
		Title:    "Alien",
		Year:     "1979",
		Director: "Ridley Scott",
		Plot:     "The crew of the Nostromo encounters a deadly extraterrestrial creature.",
		Trivia:   "The ship's computer is called MOTHER.",
	},
}
