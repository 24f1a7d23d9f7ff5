package config

// DefaultDutch returns the configuration tuned for Dutch venue knowledge
// bases. Every table here is data, not behavior; callers may override any
// field before handing the config to a service.
func DefaultDutch() *SearchConfig {
	stopwords := NewWordSet(
		// Articles and determiners.
		"de", "het", "een", "en", "van", "in", "op", "te", "is", "voor", "dat", "die",
		"aan", "met", "als", "of", "er", "zijn", "was", "heeft", "bij", "naar", "om",
		// Modal verbs.
		"kan", "kunnen", "wil", "willen", "moet", "moeten", "zou", "zouden", "mag", "mogen",
		// Adverbs and conjunctions.
		"ook", "wel", "nog", "maar", "want", "dan", "deze", "dit", "daar",
		// Pronouns.
		"je", "jullie", "ik", "we", "ze", "hij", "zij", "hun", "uw", "mijn", "jouw",
		// Common filler words.
		"me", "meer", "over", "graag", "even", "gewoon", "hier", "waar",
		"hoe", "wat", "wie", "welke", "welk", "waarom", "wanneer",
		// Question-adjacent words, filtered during excerpt extraction too.
		"ja", "nee", "hebben", "weten", "zien", "kijken", "komen", "gaan", "doen", "maken",
		"iets", "alles", "niets", "veel", "weinig", "beetje", "details", "informatie", "info",
	)

	extended := stopwords.Union(NewWordSet(
		"the", "a", "an", "is", "are", "was", "were", "be", "been",
		"have", "has", "had", "do", "does", "did", "will", "would",
		"can", "could", "may", "might", "shall", "should", "must",
		"i", "you", "he", "she", "it", "we", "they", "my", "your",
		"what", "which", "who", "where", "when", "why", "how",
		"this", "that", "these", "those", "some", "any", "all",
	))

	return &SearchConfig{
		Stopwords:         stopwords,
		StopwordsExtended: extended,

		Synonyms: map[string][]string{
			"leeftijd":   {"jaar", "oud", "jong", "oudheid", "age", "minimumleeftijd", "lengte", "minimumlengte"},
			"lengte":     {"lang", "groot", "meter", "cm", "centimeter", "height", "hoog", "minimumlengte"},
			"kind":       {"kinderen", "kids", "jeugd", "peuter", "tiener", "jong"},
			"kinderen":   {"kids", "kind", "kindermenu", "kinderkaart", "voor de kids", "kindereten"},
			"prijs":      {"kosten", "kost", "betalen", "tarief", "tarieven", "euro", "bedrag"},
			"open":       {"openingstijd", "openingstijden", "geopend", "gesloten", "tijden"},
			"reserveren": {"boeken", "reservering", "afspraak", "boeking"},
			"mag":        {"kunnen", "toegestaan", "mogelijk", "welkom", "mogen"},
			"simracen":   {"racen", "race", "simrace", "simracing", "racing", "racer", "simulator"},
			"duur":       {"duurt", "lang", "tijd", "tijdsduur"},
			"minimum":    {"minimaal", "minimale", "min", "vanaf"},
			"menu":       {"menukaart", "kaart", "eten", "drinken", "gerechten"},
			"kindermenu": {"kinderkaart", "kindereten", "kids menu", "voor de kids", "kinderen eten"},
			"kids":       {"kinderen", "kindermenu", "kinderkaart", "voor de kids"},
			"dranken":    {"drinken", "drankje", "drinks", "drankenkaart", "bier", "wijn", "cocktail"},
			"bier":       {"biertje", "pils", "pilsje", "pilsener", "speciaalbier", "tapbier", "fust"},
			"wijn":       {"wijntje", "rode wijn", "witte wijn", "rose", "prosecco", "champagne"},
			"cocktail":   {"cocktails", "mix", "mixdrink", "mojito", "martini", "spritz"},
			"eten":       {"hapjes", "bites", "snacks", "gerecht", "maaltijd"},
			"allergie":   {"allergieen", "allergisch", "glutenvrij", "lactosevrij", "vegan", "vegetarisch", "intolerantie"},
		},

		QueryExpansions: map[string][]string{
			"reserveren": {"boeken", "reservering", "boeking"},
			"prijs":      {"kosten", "tarief", "euro", "betalen"},
			"menu":       {"kaart", "menukaart", "eten", "drinken"},
			"open":       {"openingstijd", "openingstijden", "geopend"},
			"kind":       {"kinderen", "kids", "peuter"},
		},

		ExcerptSynonyms: map[string][]string{
			"bier":       {"pils", "tapbier", "speciaalbier", "biertje", "biertjes"},
			"wijn":       {"rood", "wit", "rose", "wijntje", "huiswijn"},
			"drank":      {"drankjes", "drinken", "borrel"},
			"eten":       {"gerechten", "menu", "kaart", "menukaart"},
			"prijs":      {"kost", "euro", "prijzen", "tarief"},
			"kost":       {"prijs", "euro", "prijzen", "tarief"},
			"kinderen":   {"kindermenu", "kinderkaart", "kids", "kinder", "kleintjes", "kindermenus"},
			"kindermenu": {"kinderen", "kinderkaart", "kids", "kinder", "kleintjes"},
			"kids":       {"kinderen", "kindermenu", "kinderkaart", "kinder"},
			"kinder":     {"kinderen", "kindermenu", "kinderkaart", "kids", "kleintjes"},
			"lunch":      {"lunchkaart", "lunchgerecht", "middageten"},
			"ontbijt":    {"breakfast", "ochtend"},
			"diner":      {"avondeten", "dineren", "dinerkaart"},
			"borrel":     {"borrelhapjes", "borrelkaart", "hapjes"},
			"menu":       {"menukaart", "kaart", "gerechten"},
		},

		KidsKeywords: NewWordSet(
			"kind", "kinderen", "kids", "kleintjes", "peuter", "peuters", "kleuter",
			"kleuters", "baby", "babies", "tiener", "tieners", "jeugd", "jong",
			"gezin", "familie", "ouders", "kindermenu", "kinderkaart",
		),

		BedrijfKeywords: NewWordSet(
			"bedrijf", "zakelijk", "zakelijke", "bedrijven", "teambuilding",
			"team", "teams", "teamuitje", "bedrijfsuitje", "personeelsuitje",
			"vergadering", "meeting", "conferentie", "corporate", "b2b",
			"kantoor", "collega", "collegas", "werk", "afdeling", "organisatie",
			"evenement", "event", "groep", "groepen", "gezelschap",
		),

		PricingKeywords: NewWordSet(
			"prijs", "prijzen", "kosten", "kost", "tarief", "tarieven", "euro",
			"geld", "betalen", "goedkoop", "duur", "budget", "inclusief",
			"inbegrepen", "extra", "toeslag", "korting", "aanbieding",
			"actie", "deal", "gratis", "pp", "per persoon",
		),

		ArrangementKeywords: NewWordSet(
			"arrangement", "arrangementen", "pakket", "pakketten", "deal", "deals",
			"aanbieding", "aanbiedingen", "groepsarrangement", "feest", "feestje",
			"verjaardag", "vrijgezellenfeest", "bedrijfsuitje", "teamuitje",
		),

		OpeningHoursKeywords: NewWordSet(
			"open", "dicht", "gesloten", "openingstijd", "openingstijden",
			"sluitingstijd", "openingsuren", "wanneer open", "hoe laat",
			"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag",
			"zaterdag", "zondag", "weekend", "doordeweeks", "feestdag",
		),

		GeneralKeywords: NewWordSet(
			"wat", "hoe", "waarom", "wanneer", "wie", "welke", "kunnen", "mogen",
			"mag", "kan", "moet", "willen", "graag", "informatie", "info", "vraag",
			"vragen", "weten", "vertellen", "uitleggen",
		),

		LocationKeywords: NewWordSet(
			"adres", "locatie", "waar", "route", "bereikbaar", "bereikbaarheid",
			"parkeren", "parkeerplaats", "ov", "openbaar vervoer", "bus", "tram",
			"trein", "metro", "fiets", "auto", "navigatie", "straat", "stad",
			"postcode", "plaats", "gemeente",
		),

		MenuKeywords: NewWordSet(
			"menu", "menukaart", "kaart", "eten", "drinken", "gerechten", "hapjes",
			"snacks", "bites", "lunch", "diner", "ontbijt", "brunch", "borrel",
			"borrelhapjes", "voorgerecht", "hoofdgerecht", "nagerecht", "dessert",
		),

		ReservationKeywords: NewWordSet(
			"reserveren", "reservering", "boeken", "boeking", "afspraak",
			"reservatie", "vastleggen", "inplannen", "beschikbaar",
			"beschikbaarheid", "tafel", "plek", "plaats",
		),

		DrinkKeywords: allDrinkKeywords(),
		DrinkTypes:    []string{"bier", "wijn", "cocktail", "frisdrank", "koffie", "thee", "alcohol"},

		DrinkContentPatterns: []string{
			"bier", "wijn", "cocktail", "drankkaart", "dranken", "menu", "tap", "fles", "glas", "€",
		},

		AllergyQueryKeywords: NewWordSet(
			"allergie", "allergieen", "allergieën", "allergisch", "intolerantie", "intoleranties",
			"glutenvrij", "gluten", "lactosevrij", "lactose", "melkvrij", "zuivelvrij",
			"notenvrij", "noten", "pinda", "pindas", "pindavrij",
			"vegan", "veganistisch", "vegetarisch", "plantaardig",
			"halal", "kosher", "koosjer",
			"voedingsallergie", "voedselallergie", "dieet", "dieetwensen",
			"ei-vrij", "eivrij", "eieren", "schaaldieren", "schelpdieren", "vis",
			"soja", "sojavrij", "sesamvrij", "sesam", "mosterd",
			"kan eten", "mag eten", "verdragen", "niet tegen",
		),

		AllergyContentWords: NewWordSet(
			"allergie", "allergenen", "allergisch", "intolerantie",
			"glutenvrij", "lactosevrij", "melkvrij", "zuivelvrij", "notenvrij",
			"vegan", "veganistisch", "vegetarisch", "plantaardig",
			"halal", "kosher", "dieet", "dieetwensen",
			"kan aangepast", "op verzoek", "personeel vragen", "keuken informeren",
			"ingredienten", "ingrediënten", "bevat", "zonder",
		),

		ImportantSearchTerms: NewWordSet(
			"prijs", "kosten", "tarief", "euro", "reserveren", "boeken", "open",
			"gesloten", "adres", "locatie", "parkeren", "kinderen", "kind", "kids",
			"menu", "eten", "drinken", "allergie", "vegan", "vegetarisch",
			"bedrijf", "zakelijk", "groep", "groepen", "arrangement",
		),

		ActivitySynonyms: map[string][]string{
			"biljart":            {"biljart", "pool", "snooker", "poolbiljart", "billiard"},
			"bowlen":             {"bowl", "bowlen", "bowling", "baan", "kegelen"},
			"darten":             {"dart", "darten", "pijl", "pijltje", "darts"},
			"shuffleboard":       {"shuffle", "shuffleboard", "sjoelen"},
			"jeu_de_boules":      {"boule", "boules", "petanque", "jeu de boules", "boulen", "jeu"},
			"karaoke":            {"karaoke", "zing", "zang", "microfoon", "zingen"},
			"quiz":               {"quiz", "pubquiz", "trivia", "vraag", "vragen", "quizzen"},
			"escape_room":        {"escape", "escaperoom", "ontsnappen", "puzzle"},
			"lasergamen":         {"laser", "lasergame", "lasergamen", "lasertag"},
			"klimmen":            {"klimmen", "klim", "klimwand", "boulderen"},
			"trampolinespringen": {"trampoline", "springen", "trampolinepark"},
		},

		CategoryPatterns: map[string][]string{
			"algemeen":       {"algemeen", "general", "over", "about", "wat is", "welkom", "hallo"},
			"openingstijden": {"open", "geopend", "sluit", "dicht", "wanneer", "uur", "tijd", "openingstijd", "ma", "di", "wo", "do", "vr", "za", "zo", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag", "weekend"},
			"locatie":        {"adres", "waar", "locatie", "route", "parkeren", "parkeerplaats", "bereikbaar", "rijden", "navigeer", "vind"},
			"contact":        {"telefoon", "bel", "mail", "email", "contact", "bereik", "nummer", "app", "whatsapp"},

			"arrangementen":    {"arrangement", "pakket", "formule", "deal", "aanbieding", "actie", "aanbod"},
			"kinderfeestje":    {"kind", "kinder", "kids", "kinderen", "feest", "party", "verjaardag", "jarig"},
			"bedrijfsuitje":    {"bedrijf", "team", "teamuitje", "teambuilding", "corporate", "zakelijk", "uitje", "personeels", "collega"},
			"vrijgezellenfeest": {"vrijgezel", "bachelor", "bachelorette", "vrijgezellenfeest", "trouw"},

			"biljart":       {"biljart", "pool", "snooker", "poolbiljart"},
			"bowlen":        {"bowl", "bowlen", "bowling", "baan", "kegelen"},
			"darten":        {"dart", "darten", "pijl", "pijltje"},
			"shuffleboard":  {"shuffle", "shuffleboard", "sjoelen"},
			"jeu_de_boules": {"boule", "petanque", "jeu de boules", "boulen"},
			"karaoke":       {"karaoke", "zing", "zang", "microfoon"},
			"quiz":          {"quiz", "pubquiz", "trivia", "vraag", "vragen"},

			"eten":       {"eten", "maaltijd", "diner", "lunch", "ontbijt", "hapje", "snack", "burger", "pizza", "menu", "kaart", "gerecht"},
			"drinken":    {"drink", "drank", "bier", "wijn", "cocktail", "drankje", "bar", "tap", "frisdrank"},
			"reserveren": {"reserv", "boek", "boeking", "beschikbaar", "beschikbaarheid", "plek", "plekje"},
			"prijs":      {"prijs", "kost", "kosten", "euro", "€", "tarief", "betaal", "geld", "budget", "goedkoop", "duur"},
			"groep":      {"groep", "grote", "groot", "personen", "persoon", "mensen", "gezelschap", "feest"},

			"allergie":          {"allergi", "intolerant", "gluten", "lactose", "noten", "vegan", "vegetar"},
			"toegankelijkheid":  {"rolstoel", "toegankelijk", "handicap", "invalide", "lift", "trap"},
		},

		DayNamesENToNL: map[string]string{
			"monday":    "maandag",
			"tuesday":   "dinsdag",
			"wednesday": "woensdag",
			"thursday":  "donderdag",
			"friday":    "vrijdag",
			"saturday":  "zaterdag",
			"sunday":    "zondag",
		},

		DaysOrder: []string{"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag"},

		FAQMatchThreshold:         0.90,
		ArrangementMatchThreshold: 0.92,
	}
}

// allDrinkKeywords flattens the per-drink-type vocabularies into one set for
// quick query lookups.
func allDrinkKeywords() WordSet {
	byType := map[string][]string{
		"bier":      {"bier", "biertje", "biertjes", "pils", "pilsje", "speciaal", "speciaalbier", "tap", "tapbier", "fust", "ipa", "witbier", "blond", "tripel", "dubbel"},
		"wijn":      {"wijn", "wijntje", "wijnen", "rood", "rode", "wit", "witte", "rose", "rosé", "prosecco", "champagne", "cava", "bubbels", "glas wijn"},
		"cocktail":  {"cocktail", "cocktails", "mix", "mixdrank", "mojito", "martini", "spritz", "aperol", "gin tonic", "gin-tonic", "margarita", "cosmopolitan", "long drink"},
		"frisdrank": {"frisdrank", "fris", "cola", "sinas", "spa", "water", "mineraalwater", "ice tea", "icetea", "tonic", "bitter lemon", "cassis", "appelsap", "jus", "juice"},
		"koffie":    {"koffie", "espresso", "cappuccino", "latte", "americano", "flat white", "koffiemenu"},
		"thee":      {"thee", "tea", "theemenu", "earl grey", "groene thee", "muntthee"},
		"alcohol":   {"alcohol", "drank", "drankje", "dranken", "alcoholvrij", "sterke drank", "shot", "shots", "borrel", "borrelen"},
	}
	all := make(WordSet)
	for _, words := range byType {
		for _, w := range words {
			all[w] = struct{}{}
		}
	}
	return all
}
