package dialog

import (
	"fmt"
	"strconv"

	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
)

const (
	promptGender = "👤 Давайте заполним ваш профиль!\n\n*Шаг 1 из 4:* Выберите ваш пол:"
	promptWeight = "⚖️ *Шаг 2 из 4:* Введите ваш вес в килограммах\n\nНапример: 75 или 75.5"
	promptHeight = "📏 *Шаг 3 из 4:* Введите ваш рост в сантиметрах\n\nНапример: 180"
	promptLevel  = "🏆 *Шаг 4 из 4:* Выберите ваш уровень подготовки:"

	msgAlreadyComplete  = "✅ Ваш профиль уже заполнен!\n\nИспользуйте /profile для просмотра или изменения данных."
	msgWeightNotNumber  = "❌ Введите вес числом!\n\nНапример: 75 или 75.5"
	msgWeightOutOfRange = "❌ Неверный вес! Введите число от 1 до 500 кг.\n\nНапример: 75"
	msgHeightNotNumber  = "❌ Введите рост числом!\n\nНапример: 180"
	msgHeightOutOfRange = "❌ Неверный рост! Введите число от 1 до 300 см.\n\nНапример: 180"
	msgStoreFailure     = "Произошла ошибка. Попробуйте еще раз."
)

// formatNumber renders a profile number without trailing zeros (75, 75.5).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func completionMessage(gender models.Gender, weight, height float64, level fitness.Level) string {
	bmi := fitness.BMI(weight, height)
	return fmt.Sprintf(
		"🎉 *Профиль успешно заполнен!*\n\n"+
			"👤 *Ваши данные:*\n"+
			"• Пол: %s\n"+
			"• Вес: %s кг\n"+
			"• Рост: %s см\n"+
			"• Уровень: %s\n"+
			"• ИМТ: %s (%s)\n\n"+
			"✅ Теперь вы можете:\n"+
			"• Выбрать цикл тренировок: /cycles\n"+
			"• Просмотреть профиль: /profile\n"+
			"• Получить справку: /help",
		gender.Display(),
		formatNumber(weight),
		formatNumber(height),
		level.Display(),
		fitness.FormatBMI(bmi),
		fitness.CategoryForBMI(bmi),
	)
}
