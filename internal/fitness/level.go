package fitness

// Level is the closed set of training levels. The string values double as
// the stable selection tokens exchanged with front ends.
type Level string

const (
	LevelBeginner            Level = "beginner"
	LevelSecondCategory      Level = "second-category"
	LevelFirstCategory       Level = "first-category"
	LevelCandidateMaster     Level = "candidate-master"
	LevelMaster              Level = "master"
	LevelInternationalMaster Level = "international-master"
	LevelIntermediate        Level = "intermediate"
)

// Levels lists all levels in ascending order of qualification, with the
// generic intermediate tier last.
var Levels = []Level{
	LevelBeginner,
	LevelSecondCategory,
	LevelFirstCategory,
	LevelCandidateMaster,
	LevelMaster,
	LevelInternationalMaster,
	LevelIntermediate,
}

var levelNames = map[Level]string{
	LevelBeginner:            "Начальный",
	LevelSecondCategory:      "II разряд",
	LevelFirstCategory:       "I разряд",
	LevelCandidateMaster:     "КМС",
	LevelMaster:              "МС",
	LevelInternationalMaster: "МСМК",
	LevelIntermediate:        "Средний уровень",
}

// ParseLevel matches a raw token against the closed level set.
func ParseLevel(raw string) (Level, bool) {
	lvl := Level(raw)
	_, ok := levelNames[lvl]
	if !ok {
		return "", false
	}
	return lvl, true
}

// Valid reports whether the level belongs to the closed set.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// Display returns the human-readable level name.
func (l Level) Display() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return string(l)
}

// Elite reports whether the level belongs to the top two qualification tiers.
func (l Level) Elite() bool {
	return l == LevelMaster || l == LevelInternationalMaster
}
