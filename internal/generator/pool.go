package generator

// poolQuestion is a fallback pool entry. Tone and theme are stamped on at
// selection time so the pool stays neutral.
type poolQuestion struct {
	Text          string
	Choices       []string
	CorrectAnswer string
	Difficulty    float64
}

// fallbackPool is the curated question pool used when every generation
// backend is unavailable. Selection is sampled without replacement from a
// time-seeded shuffle, so consecutive chambers differ even offline.
var fallbackPool = []poolQuestion{
	{
		Text:          "In the flickering shadows of cinema history, what year did the first slasher truly stalk the silver screen with blade in hand?",
		Choices:       []string{"1960 (Psycho)", "1974 (Black Christmas)", "1978 (Halloween)", "1980 (Friday the 13th)"},
		CorrectAnswer: "1960 (Psycho)",
		Difficulty:    0.4,
	},
	{
		Text:          "As cosmic dread seeps from ancient tomes, which director dared to bring Lovecraft's nightmares from the page to the screen?",
		Choices:       []string{"John Carpenter", "Stuart Gordon", "Guillermo del Toro", "James Wan"},
		CorrectAnswer: "Stuart Gordon",
		Difficulty:    0.6,
	},
	{
		Text:          "In the stifling Texas heat where screams echo eternally, what instrument of death defined the Chainsaw legacy?",
		Choices:       []string{"Chainsaw", "Meat Hook", "Hammer", "All of the above"},
		CorrectAnswer: "All of the above",
		Difficulty:    0.5,
	},
	{
		Text:          "In the cursed woods where reality blurs, which film first pioneered the found-footage horror revolution that would haunt viewers for decades?",
		Choices:       []string{"The Blair Witch Project", "Cannibal Holocaust", "Paranormal Activity", "REC"},
		CorrectAnswer: "Cannibal Holocaust",
		Difficulty:    0.7,
	},
	{
		Text:          "As you drift into restless sleep, what striped colors does the dream demon wear when he slashes through your nightmares?",
		Choices:       []string{"Red and black", "Red and green", "Black and white", "Brown and red"},
		CorrectAnswer: "Red and green",
		Difficulty:    0.2,
	},
	{
		Text:          "Which horror film was shot entirely in real time with no cuts?",
		Choices:       []string{"Halloween", "The Descent", "Russian Ark", "Silent House"},
		CorrectAnswer: "Silent House",
		Difficulty:    0.8,
	},
	{
		Text:          "What real-life serial killer inspired The Texas Chain Saw Massacre?",
		Choices:       []string{"Jeffrey Dahmer", "Ed Gein", "Ted Bundy", "John Wayne Gacy"},
		CorrectAnswer: "Ed Gein",
		Difficulty:    0.5,
	},
	{
		Text:          "In The Exorcist, what is the demon's name possessing Regan?",
		Choices:       []string{"Beelzebub", "Pazuzu", "Asmodeus", "Baal"},
		CorrectAnswer: "Pazuzu",
		Difficulty:    0.6,
	},
	{
		Text:          "Which horror franchise has the most sequels?",
		Choices:       []string{"Friday the 13th", "Nightmare on Elm Street", "Halloween", "Saw"},
		CorrectAnswer: "Friday the 13th",
		Difficulty:    0.4,
	},
	{
		Text:          "What was the original title of Scream during production?",
		Choices:       []string{"Ghostface", "Scary Movie", "Screamer", "Knife"},
		CorrectAnswer: "Scary Movie",
		Difficulty:    0.7,
	},
	{
		Text:          "In The Shining, what room is Danny warned never to enter?",
		Choices:       []string{"Room 217", "Room 237", "Room 117", "Room 337"},
		CorrectAnswer: "Room 237",
		Difficulty:    0.3,
	},
	{
		Text:          "Which horror film features a character who can only be seen through a camera?",
		Choices:       []string{"Paranormal Activity", "Shutter", "The Ring", "One Missed Call"},
		CorrectAnswer: "Shutter",
		Difficulty:    0.8,
	},
	{
		Text:          "What year was Night of the Living Dead released, starting the modern zombie genre?",
		Choices:       []string{"1965", "1968", "1970", "1972"},
		CorrectAnswer: "1968",
		Difficulty:    0.5,
	},
	{
		Text:          "In Hellraiser, what puzzle opens the gateway to the Cenobites?",
		Choices:       []string{"Lament Configuration", "Puzzlebox of Pain", "Gateway Cube", "Hell's Door"},
		CorrectAnswer: "Lament Configuration",
		Difficulty:    0.6,
	},
	{
		Text:          "Which actress turned down the role of Regan in The Exorcist?",
		Choices:       []string{"Jodie Foster", "Denise Richards", "Linda Blair", "Drew Barrymore"},
		CorrectAnswer: "Denise Richards",
		Difficulty:    0.9,
	},
	{
		Text:          "In Get Out, what triggers Chris's hypnotic state?",
		Choices:       []string{"A pocket watch", "A teacup and spoon", "A candle flame", "A music box"},
		CorrectAnswer: "A teacup and spoon",
		Difficulty:    0.4,
	},
	{
		Text:          "Which horror film popularized the phrase 'If you see him, you're already dead'?",
		Choices:       []string{"It Follows", "The Babadook", "Sinister", "Lights Out"},
		CorrectAnswer: "Sinister",
		Difficulty:    0.6,
	},
	{
		Text:          "In A Quiet Place, what sense do the creatures hunt by?",
		Choices:       []string{"Sight", "Sound", "Smell", "Heat"},
		CorrectAnswer: "Sound",
		Difficulty:    0.2,
	},
	{
		Text:          "What year is Midsommar's horrifying festival held?",
		Choices:       []string{"Every year", "Every 10 years", "Every 50 years", "Every 90 years"},
		CorrectAnswer: "Every 90 years",
		Difficulty:    0.7,
	},
	{
		Text:          "How many people did Michael Myers kill in the original Halloween (1978)?",
		Choices:       []string{"3", "5", "7", "9"},
		CorrectAnswer: "5",
		Difficulty:    0.6,
	},
	{
		Text:          "What is Jason Voorhees's weapon of choice?",
		Choices:       []string{"Chainsaw", "Machete", "Axe", "Knife"},
		CorrectAnswer: "Machete",
		Difficulty:    0.2,
	},
	{
		Text:          "In which Nightmare on Elm Street film does Freddy finally die?",
		Choices:       []string{"Part 3: Dream Warriors", "Part 4: Dream Master", "Part 6: Freddy's Dead", "New Nightmare"},
		CorrectAnswer: "Part 6: Freddy's Dead",
		Difficulty:    0.7,
	},
	{
		Text:          "What is Pinhead's real name before becoming a Cenobite?",
		Choices:       []string{"Elliott Spencer", "Frank Cotton", "Kirsty Cotton", "Philip Channard"},
		CorrectAnswer: "Elliott Spencer",
		Difficulty:    0.8,
	},
	{
		Text:          "How does Pennywise return to Derry?",
		Choices:       []string{"Every 13 years", "Every 19 years", "Every 27 years", "Every 33 years"},
		CorrectAnswer: "Every 27 years",
		Difficulty:    0.5,
	},
	{
		Text:          "Who directed The Thing (1982)?",
		Choices:       []string{"John Carpenter", "David Cronenberg", "Sam Raimi", "Wes Craven"},
		CorrectAnswer: "John Carpenter",
		Difficulty:    0.4,
	},
	{
		Text:          "Which director is known as the 'Master of Body Horror'?",
		Choices:       []string{"Dario Argento", "David Cronenberg", "Lucio Fulci", "Clive Barker"},
		CorrectAnswer: "David Cronenberg",
		Difficulty:    0.6,
	},
	{
		Text:          "Who wrote the novel that The Shining was based on?",
		Choices:       []string{"Stephen King", "Dean Koontz", "Clive Barker", "Peter Straub"},
		CorrectAnswer: "Stephen King",
		Difficulty:    0.2,
	},
	{
		Text:          "Which horror maestro directed Suspiria (1977)?",
		Choices:       []string{"Mario Bava", "Dario Argento", "Lucio Fulci", "Sergio Leone"},
		CorrectAnswer: "Dario Argento",
		Difficulty:    0.7,
	},
	{
		Text:          "Who directed both Evil Dead and Spider-Man?",
		Choices:       []string{"Sam Raimi", "James Wan", "Tim Burton", "Guillermo del Toro"},
		CorrectAnswer: "Sam Raimi",
		Difficulty:    0.4,
	},
	{
		Text:          "What country produced the horror film [REC]?",
		Choices:       []string{"Mexico", "Spain", "France", "Italy"},
		CorrectAnswer: "Spain",
		Difficulty:    0.6,
	},
	{
		Text:          "In which Japanese horror film does a cursed videotape kill viewers in 7 days?",
		Choices:       []string{"Ju-on", "Ringu", "Dark Water", "Pulse"},
		CorrectAnswer: "Ringu",
		Difficulty:    0.3,
	},
	{
		Text:          "What is the name of the vengeful ghost in Ju-on: The Grudge?",
		Choices:       []string{"Sadako", "Kayako", "Tomie", "Toshio"},
		CorrectAnswer: "Kayako",
		Difficulty:    0.5,
	},
	{
		Text:          "Which Swedish vampire film was remade as Let Me In?",
		Choices:       []string{"Thirst", "Let the Right One In", "Frostbite", "Vampyr"},
		CorrectAnswer: "Let the Right One In",
		Difficulty:    0.4,
	},
	{
		Text:          "What South Korean film features a zombie outbreak on a train?",
		Choices:       []string{"The Host", "Train to Busan", "The Wailing", "I Saw the Devil"},
		CorrectAnswer: "Train to Busan",
		Difficulty:    0.3,
	},
	{
		Text:          "What caused the zombie outbreak in 28 Days Later?",
		Choices:       []string{"A virus", "Radiation", "Aliens", "A curse"},
		CorrectAnswer: "A virus",
		Difficulty:    0.3,
	},
	{
		Text:          "In Dawn of the Dead (1978), where do survivors take refuge?",
		Choices:       []string{"A farmhouse", "A mall", "A military base", "A church"},
		CorrectAnswer: "A mall",
		Difficulty:    0.4,
	},
	{
		Text:          "What do zombies in Return of the Living Dead want?",
		Choices:       []string{"Blood", "Brains", "Flesh", "Souls"},
		CorrectAnswer: "Brains",
		Difficulty:    0.5,
	},
	{
		Text:          "Which film features fast-moving zombies, breaking the slow-zombie tradition?",
		Choices:       []string{"Dawn of the Dead (2004)", "28 Days Later", "World War Z", "All of the above"},
		CorrectAnswer: "All of the above",
		Difficulty:    0.4,
	},
	{
		Text:          "In Shaun of the Dead, what's the name of Shaun's favorite pub?",
		Choices:       []string{"The Winchester", "The King's Head", "The Crown", "The Red Lion"},
		CorrectAnswer: "The Winchester",
		Difficulty:    0.6,
	},
	{
		Text:          "In The Conjuring, what possessed doll is kept in the Warrens' museum?",
		Choices:       []string{"Chucky", "Annabelle", "Robert", "Tiffany"},
		CorrectAnswer: "Annabelle",
		Difficulty:    0.2,
	},
	{
		Text:          "What is the demon's name in Insidious?",
		Choices:       []string{"The Lipstick-Face Demon", "The Red-Faced Demon", "The Bride in Black", "Parker Crane"},
		CorrectAnswer: "The Lipstick-Face Demon",
		Difficulty:    0.6,
	},
	{
		Text:          "In Sinister, what ancient Babylonian deity consumes children?",
		Choices:       []string{"Moloch", "Bughuul", "Baal", "Lilith"},
		CorrectAnswer: "Bughuul",
		Difficulty:    0.7,
	},
	{
		Text:          "What year was The Exorcist released, shocking audiences worldwide?",
		Choices:       []string{"1971", "1973", "1975", "1977"},
		CorrectAnswer: "1973",
		Difficulty:    0.4,
	},
	{
		Text:          "In The Babadook, what book torments a mother and son?",
		Choices:       []string{"Mister Babadook", "The Babadook Book", "The Monster Within", "The Shadow Man"},
		CorrectAnswer: "Mister Babadook",
		Difficulty:    0.4,
	},
	{
		Text:          "What psychiatric condition is explored in Black Swan?",
		Choices:       []string{"Schizophrenia", "Dissociative Identity Disorder", "Body Dysmorphia", "Psychotic Break"},
		CorrectAnswer: "Psychotic Break",
		Difficulty:    0.6,
	},
	{
		Text:          "In Shutter Island, what is Leonardo DiCaprio's character really?",
		Choices:       []string{"A detective", "A patient", "A doctor", "A ghost"},
		CorrectAnswer: "A patient",
		Difficulty:    0.5,
	},
	{
		Text:          "Which film features the line 'I see dead people'?",
		Choices:       []string{"The Others", "The Sixth Sense", "Stir of Echoes", "White Noise"},
		CorrectAnswer: "The Sixth Sense",
		Difficulty:    0.2,
	},
	{
		Text:          "In mother!, what does the house symbolize?",
		Choices:       []string{"Earth", "Heaven", "Hell", "The Mind"},
		CorrectAnswer: "Earth",
		Difficulty:    0.8,
	},
	{
		Text:          "How many Saw films have been released as of 2023?",
		Choices:       []string{"7", "9", "10", "11"},
		CorrectAnswer: "10",
		Difficulty:    0.6,
	},
	{
		Text:          "What is the Jigsaw Killer's real name?",
		Choices:       []string{"John Kramer", "Mark Hoffman", "Amanda Young", "Logan Nelson"},
		CorrectAnswer: "John Kramer",
		Difficulty:    0.5,
	},
	{
		Text:          "In Hostel, what organization runs the torture facility?",
		Choices:       []string{"Elite Hunting", "Death Club", "The Society", "Torture Inc"},
		CorrectAnswer: "Elite Hunting",
		Difficulty:    0.7,
	},
	{
		Text:          "Which French extremity film features a brutal rape-revenge plot told in reverse?",
		Choices:       []string{"Martyrs", "Inside", "Irreversible", "High Tension"},
		CorrectAnswer: "Irreversible",
		Difficulty:    0.8,
	},
	{
		Text:          "What year did the first Saw movie terrorize audiences?",
		Choices:       []string{"2002", "2004", "2006", "2008"},
		CorrectAnswer: "2004",
		Difficulty:    0.4,
	},
	{
		Text:          "In Alien, what is the name of the ship's computer?",
		Choices:       []string{"HAL", "MOTHER", "CORTANA", "JARVIS"},
		CorrectAnswer: "MOTHER",
		Difficulty:    0.5,
	},
	{
		Text:          "What test is used in The Thing to identify who's infected?",
		Choices:       []string{"Blood test", "DNA test", "Heat test", "Shadow test"},
		CorrectAnswer: "Blood test",
		Difficulty:    0.6,
	},
	{
		Text:          "In Tremors, what are the underground creatures called?",
		Choices:       []string{"Graboids", "Shriekers", "Ass-Blasters", "Dirt Dragons"},
		CorrectAnswer: "Graboids",
		Difficulty:    0.5,
	},
	{
		Text:          "What South Korean monster film features a creature from the Han River?",
		Choices:       []string{"The Host", "Sector 7", "D-War", "The Monster"},
		CorrectAnswer: "The Host",
		Difficulty:    0.6,
	},
	{
		Text:          "In Jaws, what is the name of the shark hunter Quint's boat?",
		Choices:       []string{"The Orca", "The Nautilus", "The Pequod", "The Ahab"},
		CorrectAnswer: "The Orca",
		Difficulty:    0.7,
	},
	{
		Text:          "What hotel is The Shining set in?",
		Choices:       []string{"The Stanley Hotel", "The Overlook Hotel", "The Timberline Lodge", "The Grand Hotel"},
		CorrectAnswer: "The Overlook Hotel",
		Difficulty:    0.3,
	},
	{
		Text:          "In Poltergeist, what phrase does Carol Anne say when she touches the TV?",
		Choices:       []string{"They're coming", "They're watching", "They're here", "They're waiting"},
		CorrectAnswer: "They're here",
		Difficulty:    0.4,
	},
	{
		Text:          "In The Others, what shocking truth is revealed at the end?",
		Choices:       []string{"The children are vampires", "They are the ghosts", "The house is alive", "Time is looping"},
		CorrectAnswer: "They are the ghosts",
		Difficulty:    0.5,
	},
	{
		Text:          "What year was the Amityville house murders that inspired the horror franchise?",
		Choices:       []string{"1972", "1974", "1976", "1978"},
		CorrectAnswer: "1974",
		Difficulty:    0.7,
	},
	{
		Text:          "In The Conjuring, what family do the Warrens help?",
		Choices:       []string{"The Lutz family", "The Perron family", "The Warren family", "The Hodgson family"},
		CorrectAnswer: "The Perron family",
		Difficulty:    0.5,
	},
	{
		Text:          "In The Rocky Horror Picture Show, what is Dr. Frank-N-Furter's creation called?",
		Choices:       []string{"Rocky", "Riff Raff", "Eddie", "Columbia"},
		CorrectAnswer: "Rocky",
		Difficulty:    0.5,
	},
	{
		Text:          "Which cult film features a killer tire named Robert?",
		Choices:       []string{"Rubber", "Turbo", "The Wheel", "Death Roll"},
		CorrectAnswer: "Rubber",
		Difficulty:    0.8,
	},
	{
		Text:          "In Army of Darkness, what are Ash's famous words?",
		Choices:       []string{"Groovy", "Shop smart, shop S-Mart", "This is my boomstick", "All of the above"},
		CorrectAnswer: "All of the above",
		Difficulty:    0.4,
	},
	{
		Text:          "What year was The Evil Dead released?",
		Choices:       []string{"1979", "1981", "1983", "1985"},
		CorrectAnswer: "1981",
		Difficulty:    0.6,
	},
	{
		Text:          "In Re-Animator, what substance brings the dead back to life?",
		Choices:       []string{"Green serum", "Blue serum", "Red serum", "Purple serum"},
		CorrectAnswer: "Green serum",
		Difficulty:    0.7,
	},
	{
		Text:          "What was the first horror film to be nominated for Best Picture at the Oscars?",
		Choices:       []string{"The Exorcist", "Psycho", "Jaws", "Rosemary's Baby"},
		CorrectAnswer: "The Exorcist",
		Difficulty:    0.6,
	},
	{
		Text:          "Which horror film popularized the 'final girl' trope?",
		Choices:       []string{"Halloween", "Black Christmas", "Texas Chain Saw Massacre", "Alien"},
		CorrectAnswer: "Halloween",
		Difficulty:    0.5,
	},
	{
		Text:          "What is the highest-grossing horror film of all time (unadjusted)?",
		Choices:       []string{"The Exorcist", "It (2017)", "The Sixth Sense", "Jaws"},
		CorrectAnswer: "It (2017)",
		Difficulty:    0.7,
	},
	{
		Text:          "Which actor has played the most horror villains?",
		Choices:       []string{"Robert Englund", "Doug Bradley", "Kane Hodder", "Tony Todd"},
		CorrectAnswer: "Kane Hodder",
		Difficulty:    0.8,
	},
	{
		Text:          "What was the first 3D horror film?",
		Choices:       []string{"House of Wax", "Creature from the Black Lagoon", "Bwana Devil", "The Mad Magician"},
		CorrectAnswer: "Bwana Devil",
		Difficulty:    0.9,
	},
}
