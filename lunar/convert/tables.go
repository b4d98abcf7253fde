package convert

// Fixed cyclical symbol sets of the Chinese calendar, plus the western sign
// table. Indexing is always via floored modulo so pre-epoch dates resolve
// correctly.

// Element names of the five-element cycle, in generative order.
const (
	ElementWood  = "Wood"
	ElementFire  = "Fire"
	ElementEarth = "Earth"
	ElementMetal = "Metal"
	ElementWater = "Water"
)

// FiveElements lists the elements in generative order: each element
// generates the next and destroys the one two steps ahead.
var FiveElements = []string{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// heavenlyStems are the ten stems; consecutive pairs share an element.
var heavenlyStems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// earthlyBranches are the twelve branches, each bound to a zodiac animal and
// a double-hour of the day.
var earthlyBranches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// zodiacAnimals in branch order.
var zodiacAnimals = []string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// branchElements is the intrinsic element of each branch (and so of each
// zodiac animal).
var branchElements = []string{
	ElementWater, ElementEarth, ElementWood, ElementWood, ElementEarth, ElementFire,
	ElementFire, ElementEarth, ElementMetal, ElementMetal, ElementEarth, ElementWater,
}

// branchHours maps each branch to its traditional double-hour window.
var branchHours = []string{
	"23:00-01:00", "01:00-03:00", "03:00-05:00", "05:00-07:00",
	"07:00-09:00", "09:00-11:00", "11:00-13:00", "13:00-15:00",
	"15:00-17:00", "17:00-19:00", "19:00-21:00", "21:00-23:00",
}

// branchDirections maps each branch to its compass directions.
var branchDirections = [][]string{
	{"North"}, {"North", "Northeast"}, {"Northeast", "East"}, {"East"},
	{"East", "Southeast"}, {"Southeast", "South"}, {"South"}, {"South", "Southwest"},
	{"Southwest", "West"}, {"West"}, {"West", "Northwest"}, {"Northwest", "North"},
}

// lunarMansions are the 28 mansions cycled by day count.
var lunarMansions = []string{
	"角", "亢", "氐", "房", "心", "尾", "箕",
	"斗", "牛", "女", "虛", "危", "室", "壁",
	"奎", "婁", "胃", "昴", "畢", "觜", "參",
	"井", "鬼", "柳", "星", "張", "翼", "軫",
}

// animalTraits gives a one-line personality sketch per animal.
var animalTraits = map[string]string{
	"Rat":     "quick-witted, resourceful, adaptable",
	"Ox":      "reliable, patient, determined",
	"Tiger":   "brave, confident, competitive",
	"Rabbit":  "gentle, elegant, alert",
	"Dragon":  "ambitious, energetic, charismatic",
	"Snake":   "wise, intuitive, composed",
	"Horse":   "lively, independent, warm-hearted",
	"Goat":    "calm, creative, kind",
	"Monkey":  "clever, curious, versatile",
	"Rooster": "observant, hardworking, outspoken",
	"Dog":     "loyal, honest, prudent",
	"Pig":     "generous, diligent, easygoing",
}

// Zodiac relation sets. Trines group harmonious animals; the six harmonies
// are favorable pairs; oppositions sit six branches apart; harm pairs are
// traditionally strained.
var zodiacTrines = [][]string{
	{"Rat", "Dragon", "Monkey"},
	{"Ox", "Snake", "Rooster"},
	{"Tiger", "Horse", "Dog"},
	{"Rabbit", "Goat", "Pig"},
}

var sixHarmonies = map[string]string{
	"Rat": "Ox", "Ox": "Rat",
	"Tiger": "Pig", "Pig": "Tiger",
	"Rabbit": "Dog", "Dog": "Rabbit",
	"Dragon": "Rooster", "Rooster": "Dragon",
	"Snake": "Monkey", "Monkey": "Snake",
	"Horse": "Goat", "Goat": "Horse",
}

var harmPairs = map[string]string{
	"Rat": "Goat", "Goat": "Rat",
	"Ox": "Horse", "Horse": "Ox",
	"Tiger": "Snake", "Snake": "Tiger",
	"Rabbit": "Dragon", "Dragon": "Rabbit",
	"Monkey": "Pig", "Pig": "Monkey",
	"Rooster": "Dog", "Dog": "Rooster",
}

// hijriMonthNames in calendar order.
var hijriMonthNames = []string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// hinduMonthNames in calendar order starting at Chaitra.
var hinduMonthNames = []string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwin", "Kartika",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}

// westernSign is one row of the fixed sun-sign table. Start boundaries are
// inclusive; the sign runs until the next sign's start.
type westernSign struct {
	Name         string
	StartMonth   int
	StartDay     int
	Element      string
	Quality      string
	RulingPlanet string
	Positive     []string
	Negative     []string
	Compatible   []string
	Challenging  []string
}

var westernSigns = []westernSign{
	{"Aquarius", 1, 20, "Air", "Fixed", "Uranus",
		[]string{"original", "humanitarian", "independent"},
		[]string{"detached", "unpredictable", "stubborn"},
		[]string{"Gemini", "Libra", "Sagittarius", "Aries"},
		[]string{"Taurus", "Scorpio", "Leo"}},
	{"Pisces", 2, 19, "Water", "Mutable", "Neptune",
		[]string{"compassionate", "artistic", "intuitive"},
		[]string{"escapist", "overly trusting", "fearful"},
		[]string{"Cancer", "Scorpio", "Taurus", "Capricorn"},
		[]string{"Gemini", "Sagittarius", "Virgo"}},
	{"Aries", 3, 21, "Fire", "Cardinal", "Mars",
		[]string{"courageous", "determined", "confident"},
		[]string{"impatient", "short-tempered", "impulsive"},
		[]string{"Leo", "Sagittarius", "Gemini", "Aquarius"},
		[]string{"Cancer", "Capricorn", "Libra"}},
	{"Taurus", 4, 20, "Earth", "Fixed", "Venus",
		[]string{"reliable", "patient", "devoted"},
		[]string{"stubborn", "possessive", "uncompromising"},
		[]string{"Virgo", "Capricorn", "Cancer", "Pisces"},
		[]string{"Leo", "Aquarius", "Scorpio"}},
	{"Gemini", 5, 21, "Air", "Mutable", "Mercury",
		[]string{"gentle", "curious", "adaptable"},
		[]string{"nervous", "inconsistent", "indecisive"},
		[]string{"Libra", "Aquarius", "Aries", "Leo"},
		[]string{"Virgo", "Pisces", "Sagittarius"}},
	{"Cancer", 6, 21, "Water", "Cardinal", "Moon",
		[]string{"tenacious", "loyal", "sympathetic"},
		[]string{"moody", "pessimistic", "clingy"},
		[]string{"Scorpio", "Pisces", "Taurus", "Virgo"},
		[]string{"Aries", "Libra", "Capricorn"}},
	{"Leo", 7, 23, "Fire", "Fixed", "Sun",
		[]string{"creative", "passionate", "generous"},
		[]string{"arrogant", "inflexible", "self-centered"},
		[]string{"Aries", "Sagittarius", "Gemini", "Libra"},
		[]string{"Taurus", "Scorpio", "Aquarius"}},
	{"Virgo", 8, 23, "Earth", "Mutable", "Mercury",
		[]string{"analytical", "practical", "hardworking"},
		[]string{"overly critical", "worrying", "shy"},
		[]string{"Taurus", "Capricorn", "Cancer", "Scorpio"},
		[]string{"Gemini", "Sagittarius", "Pisces"}},
	{"Libra", 9, 23, "Air", "Cardinal", "Venus",
		[]string{"diplomatic", "gracious", "fair-minded"},
		[]string{"indecisive", "avoids confrontation", "self-pitying"},
		[]string{"Gemini", "Aquarius", "Leo", "Sagittarius"},
		[]string{"Cancer", "Capricorn", "Aries"}},
	{"Scorpio", 10, 23, "Water", "Fixed", "Pluto",
		[]string{"resourceful", "brave", "passionate"},
		[]string{"distrusting", "jealous", "secretive"},
		[]string{"Cancer", "Pisces", "Virgo", "Capricorn"},
		[]string{"Leo", "Aquarius", "Taurus"}},
	{"Sagittarius", 11, 22, "Fire", "Mutable", "Jupiter",
		[]string{"generous", "idealistic", "humorous"},
		[]string{"promises more than can deliver", "impatient", "tactless"},
		[]string{"Aries", "Leo", "Libra", "Aquarius"},
		[]string{"Virgo", "Pisces", "Gemini"}},
	{"Capricorn", 12, 22, "Earth", "Cardinal", "Saturn",
		[]string{"responsible", "disciplined", "self-controlled"},
		[]string{"know-it-all", "unforgiving", "pessimistic"},
		[]string{"Taurus", "Virgo", "Scorpio", "Pisces"},
		[]string{"Aries", "Libra", "Cancer"}},
}
