package inflect

// verbEntry carries the principal parts of a verb. Pashto conjugation hangs
// off four stems plus the past participle; everything else is endings.
type verbEntry struct {
	ImpfStem   string // present tense base
	PerfStem   string // subjunctive / perfective base
	ImpfRoot   string // continuous past base, usually the infinitive itself
	PerfRoot   string // simple past base
	Participle string
	Rom        verbRom
}

// verbRom carries the romanization of each principal part.
type verbRom struct {
	ImpfStem   string
	PerfStem   string
	ImpfRoot   string
	PerfRoot   string
	Participle string
}

// verbLexicon lists verbs whose principal parts are irregular. Regular verbs
// in ـل never need an entry here; they are derived in conjugate.
var verbLexicon = map[string]verbEntry{
	"لیدل": {
		ImpfStem: "وین", PerfStem: "ووین",
		ImpfRoot: "لیدل", PerfRoot: "ولیدل",
		Participle: "لیدلی",
		Rom: verbRom{
			ImpfStem: "ween", PerfStem: "óoween",
			ImpfRoot: "leedúl", PerfRoot: "óoleedul",
			Participle: "leedúlay",
		},
	},
	"کول": {
		ImpfStem: "کو", PerfStem: "وکړ",
		ImpfRoot: "کول", PerfRoot: "وکړل",
		Participle: "کړی",
		Rom: verbRom{
			ImpfStem: "kaw", PerfStem: "óokR",
			ImpfRoot: "kawúl", PerfRoot: "óokRul",
			Participle: "kúRay",
		},
	},
	"کېدل": {
		ImpfStem: "کېږ", PerfStem: "ش",
		ImpfRoot: "کېدل", PerfRoot: "شول",
		Participle: "شوی",
		Rom: verbRom{
			ImpfStem: "keG", PerfStem: "sh",
			ImpfRoot: "kedúl", PerfRoot: "shwul",
			Participle: "shúway",
		},
	},
	"بوتلل": {
		ImpfStem: "بیای", PerfStem: "بوځ",
		ImpfRoot: "بوتلل", PerfRoot: "بوتلل",
		Participle: "بوتللی",
		Rom: verbRom{
			ImpfStem: "byaay", PerfStem: "bodz",
			ImpfRoot: "botlúl", PerfRoot: "botlúl",
			Participle: "botlúlay",
		},
	},
	"رسول": {
		ImpfStem: "رسو", PerfStem: "ورسو",
		ImpfRoot: "رسول", PerfRoot: "ورسول",
		Participle: "رسولی",
		Rom: verbRom{
			ImpfStem: "rasaw", PerfStem: "wúrasaw",
			ImpfRoot: "rasawúl", PerfRoot: "wúrasawul",
			Participle: "rasawúlay",
		},
	},
	"پوهول": {
		ImpfStem: "پوهو", PerfStem: "وپوهو",
		ImpfRoot: "پوهول", PerfRoot: "وپوهول",
		Participle: "پوهولی",
		Rom: verbRom{
			ImpfStem: "pohaw", PerfStem: "wúpohaw",
			ImpfRoot: "pohawúl", PerfRoot: "wúpohawul",
			Participle: "pohawúlay",
		},
	},
}
