package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m3rciful/trainbot/core/telegram/format"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/services"
)

const notSet = "Не указан"

// escapeMD guards user-supplied strings rendered into Markdown messages.
func escapeMD(s string) string {
	out, err := format.EscapeMarkdown(s, format.MarkdownV1, "")
	if err != nil {
		return s
	}
	return out
}

func formatFloat(v *float64) string {
	if v == nil {
		return notSet
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatLevel(level *string) string {
	raw := format.DerefString(level, "")
	if raw == "" {
		return notSet
	}
	if lvl, ok := fitness.ParseLevel(raw); ok {
		return lvl.Display()
	}
	return raw
}

func formatGender(g *models.Gender) string {
	if g == nil {
		return notSet
	}
	return g.Display()
}

func formatLevelToken(raw string) string {
	if lvl, ok := fitness.ParseLevel(raw); ok {
		return lvl.Display()
	}
	return raw
}

func formatProfile(u *models.User) string {
	var b strings.Builder
	b.WriteString("👤 *Ваш профиль:*\n")
	fmt.Fprintf(&b, "• Пол: %s\n", formatGender(u.Gender))
	fmt.Fprintf(&b, "• Вес: %s кг\n", formatFloat(u.Weight))
	fmt.Fprintf(&b, "• Рост: %s см\n", formatFloat(u.Height))
	fmt.Fprintf(&b, "• Уровень: %s\n", formatLevel(u.Level))
	if bmi, ok := services.BMISummary(u); ok {
		fmt.Fprintf(&b, "• ИМТ: %s\n", bmi)
	}
	b.WriteString("\nДля изменения данных используйте команды:\n")
	b.WriteString("/setup_profile - Заполнить профиль в диалоговом режиме\n")
	b.WriteString("/set_gender - Установить пол\n")
	b.WriteString("/set_weight - Установить вес\n")
	b.WriteString("/set_height - Установить рост\n")
	b.WriteString("/set_level - Установить уровень подготовки")
	return b.String()
}

func formatPlan(p *models.WorkoutPlan) string {
	var b strings.Builder
	b.WriteString("🏋️‍♂️ *Ваш план тренировок:*\n\n")
	fmt.Fprintf(&b, "*%s*\n", p.Name)
	fmt.Fprintf(&b, "Направление: %s\n", p.Direction)
	fmt.Fprintf(&b, "Уровень: %s\n", p.Level)
	fmt.Fprintf(&b, "Период: %s\n", p.Period)
	fmt.Fprintf(&b, "Длительность: %s\n", p.Duration)
	fmt.Fprintf(&b, "Частота: %s\n\n", p.Frequency)

	for i, ex := range p.Exercises {
		fmt.Fprintf(&b, "%d. %s - %d подходов x %s повторений (%s)\n", i+1, ex.Name, ex.Sets, ex.Reps, ex.Intensity)
	}

	if len(p.Notes) > 0 {
		b.WriteString("\n📌 *Рекомендации:*\n")
		for _, note := range p.Notes {
			fmt.Fprintf(&b, "• %s\n", note)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPlanList(plans []models.WorkoutPlan) string {
	if len(plans) == 0 {
		return "У вас пока нет планов тренировок.\n\nИспользуйте /cycles для создания нового плана."
	}
	var b strings.Builder
	b.WriteString("📋 *Ваши планы тренировок:*\n\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "• %s (%s) - %s, %s\n", p.Name, p.Direction, p.Period, p.CreatedAt.Format("02.01.2006"))
	}
	b.WriteString("\nИспользуйте /cycles для создания нового плана.")
	return b.String()
}

func formatMaxes(maxes []models.MaxWeight) string {
	if len(maxes) == 0 {
		return "У вас пока нет записанных максимумов.\n\n" + maxUsage
	}
	var b strings.Builder
	b.WriteString("🏆 *Ваши максимумы:*\n\n")
	for _, m := range maxes {
		fmt.Fprintf(&b, "• %s: %s кг\n", escapeMD(m.ExerciseName), strconv.FormatFloat(m.MaxWeight, 'f', -1, 64))
	}
	b.WriteString("\n" + maxUsage)
	return b.String()
}

func formatSuggestions(exerciseName string, max float64, suggestions []services.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Максимум записан: %s - %s кг\n\n", escapeMD(exerciseName), strconv.FormatFloat(max, 'f', -1, 64))
	if len(suggestions) > 0 {
		b.WriteString("💪 *Рекомендуемые рабочие веса:*\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "• %.0f%%: %s кг\n", s.Percent, strconv.FormatFloat(s.Weight, 'f', -1, 64))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

const maxUsage = "Запись максимума:\n/max <упражнение> <вес> - разовый максимум\n/max <упражнение> <вес>x<повторы> - оценка по рабочему подходу\n\nНапример: /max Жим лежа 100x5"
