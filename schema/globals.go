package schema

// Trigrams is the static table of the eight trigrams in the "earlier
// heaven" arrangement, keyed by number. Read-only after process start.
var Trigrams = map[int]Trigram{
	1: {Number: 1, Name: "Qian", Symbol: "☰", Element: Metal, Direction: "northwest", Nature: "heaven"},
	2: {Number: 2, Name: "Dui", Symbol: "☱", Element: Metal, Direction: "west", Nature: "lake"},
	3: {Number: 3, Name: "Li", Symbol: "☲", Element: Fire, Direction: "south", Nature: "fire"},
	4: {Number: 4, Name: "Zhen", Symbol: "☳", Element: Wood, Direction: "east", Nature: "thunder"},
	5: {Number: 5, Name: "Xun", Symbol: "☴", Element: Wood, Direction: "southeast", Nature: "wind"},
	6: {Number: 6, Name: "Kan", Symbol: "☵", Element: Water, Direction: "north", Nature: "water"},
	7: {Number: 7, Name: "Gen", Symbol: "☶", Element: Earth, Direction: "northeast", Nature: "mountain"},
	8: {Number: 8, Name: "Kun", Symbol: "☷", Element: Earth, Direction: "southwest", Nature: "ground"},
}

// DirectionCodes maps direction terms to casting numbers. Both compass
// names and trigram names are accepted. Unrecognized terms fall back to
// DefaultDirectionCode rather than erroring.
var DirectionCodes = map[string]int{
	"north": 1, "south": 3, "east": 4, "west": 2,
	"northwest": 1, "northeast": 7, "southeast": 5, "southwest": 8,
	"kan": 1, "li": 3, "zhen": 4, "dui": 2,
	"xun": 5, "gen": 7, "kun": 8, "qian": 1,
}

// DefaultDirectionCode is the neutral code used for unknown direction terms.
const DefaultDirectionCode = 5

// Generates is the five-element generation cycle: each element nourishes
// the next (Wood→Fire→Earth→Metal→Water→Wood).
var Generates = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// Restrains is the five-element restraint cycle: each element suppresses
// the element two steps ahead in the generation cycle.
var Restrains = map[Element]Element{
	Wood:  Earth,
	Fire:  Metal,
	Earth: Water,
	Metal: Wood,
	Water: Fire,
}

// EnsembleWeights are the fixed static weights for ensemble aggregation.
// Normalization always divides by the sum over models that actually
// produced a numeric value, never by the nominal total.
var EnsembleWeights = map[ModelID]float64{
	MovingAverageModel: 0.30,
	ExpSmoothingModel:  0.35,
	LinearModel:        0.35,
}

// Default parameters for the forecasting models.
const (
	DefaultMAWindow = 5
	DefaultEMAAlpha = 0.3
)
