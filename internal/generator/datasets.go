package generator

// Reference datasets feeding the QUIZ builders. Each dataset is a list of
// key/value facts; builders derive forward and reverse questions from one
// entry and pull distractors from sibling entries of the same field.

type factEntry struct {
	Key   string
	Value string
}

type factDataset struct {
	Name    string
	Entries []factEntry
	Forward string // question template, %s = Key
	Reverse string // question template, %s = Value
}

var quizDatasets = []factDataset{
	{
		Name:    "capitals",
		Forward: "What is the capital of %s?",
		Reverse: "%s is the capital of which state?",
		Entries: []factEntry{
			{"Maharashtra", "Mumbai"},
			{"Karnataka", "Bengaluru"},
			{"Tamil Nadu", "Chennai"},
			{"West Bengal", "Kolkata"},
			{"Rajasthan", "Jaipur"},
			{"Gujarat", "Gandhinagar"},
			{"Kerala", "Thiruvananthapuram"},
			{"Punjab", "Chandigarh"},
			{"Bihar", "Patna"},
			{"Assam", "Dispur"},
			{"Odisha", "Bhubaneswar"},
			{"Telangana", "Hyderabad"},
			{"Madhya Pradesh", "Bhopal"},
			{"Uttar Pradesh", "Lucknow"},
			{"Himachal Pradesh", "Shimla"},
		},
	},
	{
		Name:    "dances",
		Forward: "The classical dance form %s originated in which state?",
		Reverse: "Which classical dance form originated in %s?",
		Entries: []factEntry{
			{"Bharatanatyam", "Tamil Nadu"},
			{"Kathakali", "Kerala"},
			{"Kathak", "Uttar Pradesh"},
			{"Odissi", "Odisha"},
			{"Kuchipudi", "Andhra Pradesh"},
			{"Manipuri", "Manipur"},
			{"Sattriya", "Assam"},
			{"Yakshagana", "Karnataka"},
			{"Chhau", "Jharkhand"},
			{"Ghoomar", "Rajasthan"},
			{"Garba", "Gujarat"},
			{"Lavani", "Maharashtra"},
			{"Bhangra", "Punjab"},
			{"Cheraw", "Mizoram"},
			{"Rouf", "Jammu and Kashmir"},
		},
	},
	{
		Name:    "festivals",
		Forward: "The festival of %s is most closely associated with which state?",
		Reverse: "Which festival is %s best known for?",
		Entries: []factEntry{
			{"Onam", "Kerala"},
			{"Pongal", "Tamil Nadu"},
			{"Durga Puja", "West Bengal"},
			{"Ganesh Chaturthi", "Maharashtra"},
			{"Baisakhi", "Punjab"},
			{"Rann Utsav", "Gujarat"},
			{"Hornbill Festival", "Nagaland"},
			{"Pushkar Fair", "Rajasthan"},
			{"Chhath Puja", "Bihar"},
			{"Hemis Festival", "Ladakh"},
			{"Bonalu", "Telangana"},
			{"Nuakhai", "Odisha"},
			{"Losar", "Sikkim"},
			{"Sarhul", "Jharkhand"},
			{"Karaga", "Karnataka"},
		},
	},
	{
		Name:    "monuments",
		Forward: "In which city is the %s located?",
		Reverse: "Which monument stands in %s?",
		Entries: []factEntry{
			{"Taj Mahal", "Agra"},
			{"Qutub Minar", "Delhi"},
			{"Gateway of India", "Mumbai"},
			{"Charminar", "Hyderabad"},
			{"Hawa Mahal", "Jaipur"},
			{"Victoria Memorial", "Kolkata"},
			{"Mysore Palace", "Mysuru"},
			{"Bara Imambara", "Lucknow"},
			{"Sabarmati Ashram", "Ahmedabad"},
			{"Sanchi Stupa", "Sanchi"},
			{"Konark Sun Temple", "Konark"},
			{"Meenakshi Temple", "Madurai"},
			{"Golden Temple", "Amritsar"},
			{"Brihadeeswarar Temple", "Thanjavur"},
			{"Rani ki Vav", "Patan"},
		},
	},
	{
		Name:    "rivers",
		Forward: "The river %s originates in which state?",
		Reverse: "Which major river rises in %s?",
		Entries: []factEntry{
			{"Ganga", "Uttarakhand"},
			{"Godavari", "Maharashtra"},
			{"Kaveri", "Karnataka"},
			{"Narmada", "Madhya Pradesh"},
			{"Mahanadi", "Chhattisgarh"},
			{"Sabarmati", "Rajasthan"},
			{"Periyar", "Kerala"},
			{"Brahmaputra", "Arunachal Pradesh"},
			{"Vaigai", "Tamil Nadu"},
			{"Damodar", "Jharkhand"},
			{"Teesta", "Sikkim"},
			{"Baitarani", "Odisha"},
			{"Ghaggar", "Himachal Pradesh"},
			{"Tawi", "Jammu and Kashmir"},
			{"Umiam", "Meghalaya"},
		},
	},
	{
		Name:    "freedom",
		Forward: "In which year did the %s take place?",
		Reverse: "Which freedom movement event happened in %s?",
		Entries: []factEntry{
			{"First War of Independence", "1857"},
			{"Partition of Bengal", "1905"},
			{"Jallianwala Bagh massacre", "1919"},
			{"Non-Cooperation Movement launch", "1920"},
			{"Chauri Chaura incident", "1922"},
			{"Simon Commission arrival", "1928"},
			{"Purna Swaraj declaration", "1929"},
			{"Dandi Salt March", "1930"},
			{"Gandhi-Irwin Pact", "1931"},
			{"Government of India Act", "1935"},
			{"Quit India Movement", "1942"},
			{"Azad Hind government formation", "1943"},
			{"Royal Indian Navy mutiny", "1946"},
			{"Independence of India", "1947"},
			{"Adoption of the Constitution", "1949"},
		},
	},
	{
		Name:    "space",
		Forward: "In which year was the %s mission launched?",
		Reverse: "Which ISRO mission was launched in %s?",
		Entries: []factEntry{
			{"Aryabhata", "1975"},
			{"Bhaskara-I", "1979"},
			{"Rohini RS-1", "1980"},
			{"INSAT-1B", "1983"},
			{"IRS-1A", "1988"},
			{"PSLV first flight", "1993"},
			{"Kalpana-1", "2002"},
			{"Chandrayaan-1", "2008"},
			{"Mangalyaan", "2013"},
			{"Astrosat", "2015"},
			{"South Asia Satellite", "2017"},
			{"Chandrayaan-2", "2019"},
			{"Chandrayaan-3", "2023"},
			{"GSAT-1", "2001"},
			{"XPoSat", "2024"},
		},
	},
	{
		Name:    "sports",
		Forward: "Which sport is %s celebrated for?",
		Reverse: "Which legend is synonymous with %s?",
		Entries: []factEntry{
			{"Sachin Tendulkar", "Cricket"},
			{"Dhyan Chand", "Hockey"},
			{"P.V. Sindhu", "Badminton"},
			{"Viswanathan Anand", "Chess"},
			{"Mary Kom", "Boxing"},
			{"Abhinav Bindra", "Shooting"},
			{"Neeraj Chopra", "Javelin throw"},
			{"Sunil Chhetri", "Football"},
			{"P.T. Usha", "Sprinting"},
			{"Leander Paes", "Tennis"},
			{"Pankaj Advani", "Billiards"},
			{"Bajrang Punia", "Wrestling"},
			{"Mithali Raj", "Women's cricket"},
			{"Dipa Karmakar", "Gymnastics"},
			{"Rani Rampal", "Women's hockey"},
		},
	},
	{
		Name:    "heritage",
		Forward: "The heritage site %s is found in which state?",
		Reverse: "Which World Heritage Site lies in %s?",
		Entries: []factEntry{
			{"Ajanta Caves", "Maharashtra"},
			{"Hampi", "Karnataka"},
			{"Khajuraho", "Madhya Pradesh"},
			{"Mahabalipuram", "Tamil Nadu"},
			{"Fatehpur Sikri", "Uttar Pradesh"},
			{"Kaziranga National Park", "Assam"},
			{"Sundarbans", "West Bengal"},
			{"Bodh Gaya", "Bihar"},
			{"Champaner-Pavagadh", "Gujarat"},
			{"Keoladeo National Park", "Rajasthan"},
			{"Valley of Flowers", "Uttarakhand"},
			{"Ramappa Temple", "Telangana"},
			{"Konark Sun Temple", "Odisha"},
			{"Basilica of Bom Jesus", "Goa"},
			{"Khangchendzonga National Park", "Sikkim"},
		},
	},
	{
		Name:    "peaks",
		Forward: "The peak %s rises in which state?",
		Reverse: "Which famous peak belongs to %s?",
		Entries: []factEntry{
			{"Kangchenjunga", "Sikkim"},
			{"Nanda Devi", "Uttarakhand"},
			{"Reo Purgyil", "Himachal Pradesh"},
			{"Anamudi", "Kerala"},
			{"Doddabetta", "Tamil Nadu"},
			{"Guru Shikhar", "Rajasthan"},
			{"Kalsubai", "Maharashtra"},
			{"Mullayanagiri", "Karnataka"},
			{"Saramati", "Nagaland"},
			{"Phawngpui", "Mizoram"},
			{"Mahendragiri", "Odisha"},
			{"Girnar", "Gujarat"},
			{"Parasnath", "Jharkhand"},
			{"Dhupgarh", "Madhya Pradesh"},
			{"Sandakphu", "West Bengal"},
		},
	},
	{
		Name:    "literature",
		Forward: "Who wrote %s?",
		Reverse: "Which celebrated work was written by %s?",
		Entries: []factEntry{
			{"Gitanjali", "Rabindranath Tagore"},
			{"Godaan", "Munshi Premchand"},
			{"Abhijnanasakuntalam", "Kalidasa"},
			{"The Guide", "R.K. Narayan"},
			{"Anandamath", "Bankim Chandra Chatterjee"},
			{"Mrichchhakatika", "Shudraka"},
			{"Kamayani", "Jaishankar Prasad"},
			{"Train to Pakistan", "Khushwant Singh"},
			{"The God of Small Things", "Arundhati Roy"},
			{"Nil Darpan", "Dinabandhu Mitra"},
			{"Madhushala", "Harivansh Rai Bachchan"},
			{"Ponniyin Selvan", "Kalki Krishnamurthy"},
			{"Chemmeen", "Thakazhi Sivasankara Pillai"},
			{"Devdas", "Sarat Chandra Chattopadhyay"},
			{"Yama", "Mahadevi Varma"},
		},
	},
	{
		Name:    "economy",
		Forward: "%s is best known as a hub for which industry?",
		Reverse: "Which city is the leading hub for %s?",
		Entries: []factEntry{
			{"Bengaluru", "Information technology"},
			{"Mumbai", "Finance"},
			{"Surat", "Diamond polishing"},
			{"Tirupur", "Knitwear"},
			{"Ludhiana", "Hosiery"},
			{"Jamshedpur", "Steel"},
			{"Pune", "Automobiles"},
			{"Moradabad", "Brassware"},
			{"Firozabad", "Glassware"},
			{"Kanchipuram", "Silk sarees"},
			{"Kochi", "Spice trade"},
			{"Guntur", "Chilli trade"},
			{"Darjeeling", "Tea"},
			{"Kolhapur", "Leather footwear"},
			{"Bhadohi", "Carpets"},
		},
	},
}

// Typing sentence fragments. The list lengths are pairwise coprime, so
// positional indexing yields distinct tuples for every index below their
// product; 500 sentences need no dedup bookkeeping.

var typingStates = []string{
	"Kerala", "Punjab", "Assam", "Gujarat", "Rajasthan", "Odisha", "Bihar",
	"Goa", "Sikkim", "Manipur", "Tripura", "Meghalaya", "Nagaland",
	"Mizoram", "Haryana", "Jharkhand", "Uttarakhand", "Telangana",
	"Karnataka", "Maharashtra", "Tamil Nadu", "West Bengal", "Chhattisgarh",
	"Madhya Pradesh", "Uttar Pradesh", "Andhra Pradesh", "Himachal Pradesh",
	"Arunachal Pradesh", "Delhi",
} // 29

var typingAdjectives = []string{
	"vibrant", "serene", "historic", "colourful", "prosperous", "ancient",
	"welcoming", "picturesque", "bustling", "peaceful", "diverse",
	"enchanting", "spirited",
} // 13

var typingVerbs = []string{
	"celebrate", "gather", "dance", "sing", "feast", "travel", "rejoice",
	"decorate", "cook", "pray", "unite",
} // 11

var typingFestivals = []string{
	"Diwali", "Holi", "Eid", "Christmas", "Pongal", "Onam", "Baisakhi",
	"Navratri", "Dussehra", "Raksha Bandhan", "Janmashtami",
	"Makar Sankranti", "Gudi Padwa", "Bihu", "Lohri", "Ugadi", "Chhath",
} // 17

var typingTails = []string{
	"with great joy", "with family and friends", "every single year",
	"in grand style", "with sweets and lights", "with music and laughter",
	"across every town",
} // 7

// Captcha word tokens, uppercase by convention so exact-match answers are
// unambiguous on screen.
var captchaWords = []string{
	"BHARAT", "TIRANGA", "SWADESH", "AZADI", "VIKAS", "SHAKTI", "EKTA",
	"VIJAY", "SWARAJ", "JANTA", "KISAN", "JAWAN", "VIGYAN", "PRAGATI",
	"SANSKRITI", "VIRASAT", "GANGA", "HIMALAYA", "SAGAR", "MAUSAM",
	"TYOHAR", "MELA", "BAZAAR", "RANGOLI", "DIYA", "KAMAL", "MAYUR",
	"BAGH", "HAATHI", "CHANDAN", "KESAR", "MITTI", "DHAROHAR", "PARAMPARA",
	"SANGAM", "YATRA", "UTSAV", "ANAND", "SHANTI", "AHIMSA", "SATYA",
	"KARUNA", "VEER", "RATNA", "MOTI", "SONA", "CHANDI", "TAMBA",
	"LOHA", "HEERA",
} // 50

// Captcha rendering styles, decorative only.
var captchaStyles = []string{"wavy", "dotted", "striped", "shadow", "inverted"}

// Cipher puzzle word list. Letter values are A=1..Z=26 and the answer is
// the sum for the whole word.
var cipherWords = []string{
	"CAB", "BAD", "FACE", "BEAD", "CAGE", "DICE", "FADE", "BIKE", "CAKE",
	"DEAF", "EDGE", "GATE", "HIDE", "JADE", "KITE", "LAKE", "MAZE", "NICE",
	"PAGE", "RACE", "SAGE", "TIDE", "VASE", "WAGE", "YAK", "ZIP", "ACE",
	"BEE", "CAP", "DOG", "EGG", "FOX", "GEM", "HAT", "ICE", "JAM", "KEY",
	"LOG", "MAP", "NET", "OAK", "PEN", "QUILT", "RAT", "SUN", "TAP", "URN",
	"VAN", "WEB", "JOY", "ZOO", "ARC", "BOX", "CUB", "DEN", "ELF", "FIG",
	"GUM", "HUT", "INK",
} // 60
