package models

import "time"

// Gender is the closed set of profile gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether the value belongs to the closed gender set.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender matches a raw token against the closed gender set.
func ParseGender(raw string) (Gender, bool) {
	g := Gender(raw)
	return g, g.Valid()
}

// Display returns the human-readable gender name.
func (g Gender) Display() string {
	switch g {
	case GenderMale:
		return "Мужской"
	case GenderFemale:
		return "Женский"
	default:
		return "Не указан"
	}
}

// User is the Telegram user record with the four-field fitness profile.
// Profile fields are pointers: nil means the field was never set.
type User struct {
	ID        int64      `db:"id"`
	Username  *string    `db:"username"`
	FirstName *string    `db:"first_name"`
	LastName  *string    `db:"last_name"`
	Gender    *Gender    `db:"gender"`
	Weight    *float64   `db:"weight"`
	Height    *float64   `db:"height"`
	Level     *string    `db:"level"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// ProfileComplete reports whether all four profile fields are set.
func (u *User) ProfileComplete() bool {
	return u != nil && u.Gender != nil && u.Weight != nil && u.Height != nil && u.Level != nil
}

// Exercise is a single template or adjusted exercise entry.
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	Intensity   string `json:"intensity"`
	Description string `json:"description,omitempty"`
}

// Cycle is a pre-authored training cycle template. Catalog entries are
// immutable; the core only reads them.
type Cycle struct {
	ID             int64      `db:"id"`
	Name           string     `db:"name"`
	Direction      string     `db:"direction"`
	Gender         Gender     `db:"gender"`
	Level          string     `db:"level"`
	Period         string     `db:"period"`
	WeightMin      float64    `db:"weight_min"`
	WeightMax      *float64   `db:"weight_max"`
	AdditionalInfo string     `db:"additional_info"`
	Exercises      []Exercise `db:"-"`
}

// WorkoutPlan is a generated, per-user rendering of a cycle template.
type WorkoutPlan struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	UserID    int64      `db:"user_id"`
	CycleID   int64      `db:"cycle_id"`
	Name      string     `db:"name"`
	Direction string     `db:"direction"`
	Level     string     `db:"level"`
	Period    string     `db:"period"`
	Duration  string     `db:"duration"`
	Frequency string     `db:"frequency"`
	Exercises []Exercise `db:"-"`
	Notes     []string   `db:"-"`
	CreatedAt time.Time  `db:"created_at"`
}

// WorkoutSession is one scheduled training day within a plan.
type WorkoutSession struct {
	ID        int64      `db:"id"`
	PlanID    int64      `db:"plan_id"`
	Week      int        `db:"week_number"`
	Day       int        `db:"day_number"`
	Name      string     `db:"session_name"`
	Exercises []Exercise `db:"-"`
	Notes     []string   `db:"-"`
}

// MaxWeight is a per-exercise personal maximum for a user.
type MaxWeight struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	ExerciseName string    `db:"exercise_name"`
	MaxWeight    float64   `db:"max_weight"`
	UpdatedAt    time.Time `db:"updated_at"`
}
