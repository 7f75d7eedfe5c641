// Package catalog holds the authored training cycle templates. Entries
// are immutable reference data; callers get copies and never write back.
package catalog

import (
	"fmt"
	"strings"

	"github.com/m3rciful/trainbot/internal/models"
)

var cycles = []models.Cycle{
	{
		ID:        1,
		Name:      "СРЦ1",
		Direction: "Троеборье",
		Gender:    models.GenderMale,
		Level:     "II разряд – КМС",
		Period:    "Силовой",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Приседания", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим лежа", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Становая тяга", Sets: 3, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим стоя", Sets: 3, Reps: "6-10", Intensity: "70-80%"},
			{Name: "Подтягивания", Sets: 3, Reps: "6-12", Intensity: "Собственный вес"},
		},
	},
	{
		ID:        2,
		Name:      "СРЦ2",
		Direction: "Троеборье",
		Gender:    models.GenderMale,
		Level:     "КМС – МС",
		Period:    "Силовой",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Приседания", Sets: 5, Reps: "3-6", Intensity: "85-95%"},
			{Name: "Жим лежа", Sets: 5, Reps: "3-6", Intensity: "85-95%"},
			{Name: "Становая тяга", Sets: 4, Reps: "3-6", Intensity: "85-95%"},
			{Name: "Жим стоя", Sets: 4, Reps: "4-8", Intensity: "75-85%"},
			{Name: "Подтягивания", Sets: 4, Reps: "5-10", Intensity: "Собственный вес + отягощение"},
		},
	},
	{
		ID:        3,
		Name:      "СРЦ3",
		Direction: "Жим лежа",
		Gender:    models.GenderMale,
		Level:     "Начальный",
		Period:    "Выносливость",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Жим лежа", Sets: 4, Reps: "8-12", Intensity: "60-75%"},
			{Name: "Жим на наклонной скамье", Sets: 3, Reps: "10-15", Intensity: "50-65%"},
			{Name: "Отжимания на брусьях", Sets: 3, Reps: "8-15", Intensity: "Собственный вес"},
			{Name: "Разводка гантелей", Sets: 3, Reps: "12-20", Intensity: "40-55%"},
			{Name: "Жим узким хватом", Sets: 3, Reps: "8-12", Intensity: "60-75%"},
		},
	},
	{
		ID:             4,
		Name:           "СРЦ4",
		Direction:      "Армрестлинг",
		Gender:         models.GenderMale,
		Level:          "II разряд – КМС",
		Period:         "Силовой",
		WeightMin:      80,
		AdditionalInfo: "Стиль борьбы - верх.",
		Exercises: []models.Exercise{
			{Name: "Статическая тяга", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Молотковые сгибания", Sets: 4, Reps: "6-10", Intensity: "70-85%"},
			{Name: "Концентрированные сгибания", Sets: 3, Reps: "8-12", Intensity: "60-75%"},
			{Name: "Обратные сгибания", Sets: 3, Reps: "8-12", Intensity: "60-75%"},
			{Name: "Удержание веса", Sets: 3, Reps: "10-30 сек", Intensity: "Максимальное время"},
		},
	},
	{
		ID:             5,
		Name:           "СРЦ5",
		Direction:      "Жим лежа",
		Gender:         models.GenderMale,
		Level:          "II разряд – КМС",
		Period:         "Силовой",
		WeightMin:      80,
		AdditionalInfo: "Дополнительное внимание жиму стоя",
		Exercises: []models.Exercise{
			{Name: "Жим лежа", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим стоя", Sets: 4, Reps: "5-8", Intensity: "80-90%"},
			{Name: "Жим на наклонной скамье", Sets: 3, Reps: "6-10", Intensity: "70-80%"},
			{Name: "Жим сидя", Sets: 3, Reps: "6-10", Intensity: "70-80%"},
			{Name: "Разводка гантелей", Sets: 3, Reps: "8-12", Intensity: "60-75%"},
		},
	},
	{
		ID:        6,
		Name:      "СРЦ6",
		Direction: "Жим лежа",
		Gender:    models.GenderMale,
		Level:     "КМС – МС",
		Period:    "Силовой",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Жим лежа", Sets: 5, Reps: "3-6", Intensity: "85-95%"},
			{Name: "Жим на наклонной скамье", Sets: 4, Reps: "4-8", Intensity: "75-85%"},
			{Name: "Жим узким хватом", Sets: 4, Reps: "4-8", Intensity: "75-85%"},
			{Name: "Отжимания на брусьях", Sets: 3, Reps: "6-12", Intensity: "Собственный вес + отягощение"},
			{Name: "Разводка гантелей", Sets: 3, Reps: "8-15", Intensity: "50-70%"},
		},
	},
	{
		ID:        7,
		Name:      "СРЦ7",
		Direction: "Троеборье",
		Gender:    models.GenderMale,
		Level:     "МС – МСМК",
		Period:    "Выход на пик",
		WeightMin: 80,
		Exercises: []models.Exercise{
			{Name: "Приседания", Sets: 3, Reps: "1-3", Intensity: "90-100%"},
			{Name: "Жим лежа", Sets: 3, Reps: "1-3", Intensity: "90-100%"},
			{Name: "Становая тяга", Sets: 2, Reps: "1-3", Intensity: "90-100%"},
			{Name: "Вспомогательные упражнения", Sets: 2, Reps: "5-8", Intensity: "70-80%"},
		},
	},
	{
		ID:             8,
		Name:           "СРЦ8",
		Direction:      "Бодибилдинг",
		Gender:         models.GenderMale,
		Level:          "Средний уровень",
		Period:         "Массонабор",
		WeightMin:      80,
		AdditionalInfo: "Увеличение мышечной массы. Пристальное внимание на диету и режим.",
		Exercises: []models.Exercise{
			{Name: "Жим лежа", Sets: 4, Reps: "8-12", Intensity: "65-80%"},
			{Name: "Приседания", Sets: 4, Reps: "8-12", Intensity: "65-80%"},
			{Name: "Становая тяга", Sets: 3, Reps: "6-10", Intensity: "70-85%"},
			{Name: "Жим стоя", Sets: 3, Reps: "8-12", Intensity: "60-75%"},
			{Name: "Подтягивания", Sets: 3, Reps: "8-15", Intensity: "Собственный вес"},
			{Name: "Изолирующие упражнения", Sets: 3, Reps: "10-20", Intensity: "50-70%"},
		},
	},
}

// List returns copies of all catalog cycles in id order.
func List() []models.Cycle {
	out := make([]models.Cycle, len(cycles))
	for i, c := range cycles {
		out[i] = clone(c)
	}
	return out
}

// ByID looks up a cycle by identifier. Absence is not an error.
func ByID(id int64) (models.Cycle, bool) {
	for _, c := range cycles {
		if c.ID == id {
			return clone(c), true
		}
	}
	return models.Cycle{}, false
}

// Criteria filters the catalog. Zero-valued fields match everything.
type Criteria struct {
	Gender    models.Gender
	Level     string
	Direction string
	Weight    float64
}

// ByCriteria returns the cycles matching every set criterion.
func ByCriteria(cr Criteria) []models.Cycle {
	var out []models.Cycle
	for _, c := range cycles {
		if cr.Gender != "" && c.Gender != cr.Gender {
			continue
		}
		if cr.Level != "" && !strings.Contains(c.Level, cr.Level) {
			continue
		}
		if cr.Direction != "" && c.Direction != cr.Direction {
			continue
		}
		if cr.Weight > 0 {
			if c.WeightMin > 0 && cr.Weight < c.WeightMin {
				continue
			}
			if c.WeightMax != nil && cr.Weight > *c.WeightMax {
				continue
			}
		}
		out = append(out, clone(c))
	}
	return out
}

// Description renders the cycle summary block shown in cycle lists.
func Description(c models.Cycle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏋️‍♂️ %s - %s\n", c.Name, c.Direction)
	fmt.Fprintf(&b, "📊 Уровень: %s\n", c.Level)
	fmt.Fprintf(&b, "⏱️ Период: %s\n", c.Period)
	fmt.Fprintf(&b, "⚖️ Вес: %.0f+ кг", c.WeightMin)
	if c.AdditionalInfo != "" {
		fmt.Fprintf(&b, "\nℹ️ Дополнительно: %s", c.AdditionalInfo)
	}
	return b.String()
}

func clone(c models.Cycle) models.Cycle {
	out := c
	out.Exercises = append([]models.Exercise(nil), c.Exercises...)
	if c.WeightMax != nil {
		v := *c.WeightMax
		out.WeightMax = &v
	}
	return out
}
