package bot

import (
	"strconv"
	"strings"
	"unicode/utf8"

	tghelpers "github.com/m3rciful/trainbot/core/telegram/helpers"
	"github.com/m3rciful/trainbot/internal/catalog"
	"github.com/m3rciful/trainbot/internal/models"

	tele "gopkg.in/telebot.v4"
)

const welcomeMessage = "🏋️‍♂️ Добро пожаловать в бот для составления программ тренировок!\n\n" +
	"Этот бот поможет вам:\n" +
	"• Выбрать подходящий тренировочный цикл (СРЦ)\n" +
	"• Составить персональный план тренировок\n" +
	"• Отслеживать прогресс\n\n" +
	"🚀 Для начала заполните профиль:\n" +
	"/setup_profile - Заполнить профиль в диалоговом режиме\n\n" +
	"📋 Другие команды:\n" +
	"/cycles - Просмотреть доступные циклы\n" +
	"/profile - Просмотреть профиль\n" +
	"/help - Помощь"

const helpMessage = "🤖 *Помощь по боту тренировок*\n\n" +
	"📋 Основные команды:\n" +
	"/start - Начать работу с ботом\n" +
	"/cycles - Просмотреть доступные циклы тренировок\n" +
	"/profile - Просмотреть профиль\n" +
	"/plans - Мои планы тренировок\n" +
	"/max - Личные максимумы и рабочие веса\n\n" +
	"⚙️ Настройка профиля:\n" +
	"/setup_profile - Заполнить профиль в диалоговом режиме (рекомендуется)\n" +
	"/set_gender - Установить пол\n" +
	"/set_weight - Установить вес\n" +
	"/set_height - Установить рост\n" +
	"/set_level - Установить уровень подготовки\n\n" +
	"🔄 Управление диалогом:\n" +
	"/cancel - Отменить текущий диалог\n\n" +
	"💡 Совет: Для быстрого заполнения профиля используйте /setup_profile"

func (a *App) cmdStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	sender := c.Sender()

	user := &models.User{ID: sender.ID}
	if sender.Username != "" {
		user.Username = &sender.Username
	}
	if sender.FirstName != "" {
		user.FirstName = &sender.FirstName
	}
	if sender.LastName != "" {
		user.LastName = &sender.LastName
	}
	if err := a.users.Register(ctx, user); err != nil {
		return tghelpers.SendText(c, "Произошла ошибка. Попробуйте позже.")
	}
	return tghelpers.SendText(c, welcomeMessage)
}

func (a *App) cmdHelp(c tele.Context) error {
	return tghelpers.SendMD(c, helpMessage)
}

func (a *App) cmdProfile(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	user, err := tghelpers.CurrentUser[*models.User](ctx, a.users, c.Sender().ID)
	if err != nil {
		return tghelpers.SendText(c, "Ошибка при загрузке профиля.")
	}
	if user == nil {
		return tghelpers.SendText(c, "Сначала зарегистрируйтесь командой /start")
	}
	return tghelpers.SendMD(c, formatProfile(user))
}

func (a *App) cmdSetupProfile(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reply, err := a.engine.Start(ctx, c.Sender().ID)
	if err != nil {
		return tghelpers.SendText(c, reply.Text)
	}
	return tghelpers.SendMD(c, reply.Text, markupFor(reply))
}

func (a *App) cmdCancel(c tele.Context) error {
	userID := c.Sender().ID
	if !a.engine.InDialog(userID) {
		return tghelpers.SendText(c, "Вы не находитесь в диалоге.")
	}
	a.engine.Cancel(userID)
	return tghelpers.SendText(c, "❌ Диалог отменен. Используйте /setup_profile для повторного заполнения профиля.")
}

func (a *App) cmdCycles(c tele.Context) error {
	cycles := catalog.List()
	return tghelpers.SendMD(c, "Выберите тренировочный цикл:", cyclesKeyboard(cycles))
}

func (a *App) cmdPlans(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	plans, err := a.plans.List(ctx, c.Sender().ID)
	if err != nil {
		return tghelpers.SendText(c, "Ошибка при загрузке ваших планов.")
	}
	return tghelpers.SendMD(c, formatPlanList(plans))
}

func (a *App) cmdSetGender(c tele.Context) error {
	return tghelpers.SendMD(c, "Выберите ваш пол:", genderKeyboard(cbSetGender))
}

func (a *App) cmdSetWeight(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		return tghelpers.SendText(c,
			"Введите ваш вес в килограммах (например: 75.5):\n\nИспользуйте формат: /set_weight 75.5")
	}
	weight, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return tghelpers.SendText(c,
			"Ошибка при установке веса. Убедитесь, что вы ввели число (например: 75.5)")
	}
	ctx := tghelpers.BuildContext(c)
	if err := a.users.SetWeight(ctx, c.Sender().ID, weight); err != nil {
		return tghelpers.SendText(c, "Неверный вес! Введите число от 1 до 500 кг.")
	}
	return tghelpers.SendText(c, "Вес установлен: "+payload+" кг")
}

func (a *App) cmdSetHeight(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		return tghelpers.SendText(c,
			"Введите ваш рост в сантиметрах (например: 180):\n\nИспользуйте формат: /set_height 180")
	}
	height, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return tghelpers.SendText(c,
			"Ошибка при установке роста. Убедитесь, что вы ввели число (например: 180)")
	}
	ctx := tghelpers.BuildContext(c)
	if err := a.users.SetHeight(ctx, c.Sender().ID, height); err != nil {
		return tghelpers.SendText(c, "Неверный рост! Введите число от 1 до 300 см.")
	}
	return tghelpers.SendText(c, "Рост установлен: "+payload+" см")
}

func (a *App) cmdSetLevel(c tele.Context) error {
	return tghelpers.SendMD(c, "Выберите ваш уровень подготовки:", levelKeyboard(cbSetLevel))
}

func (a *App) cmdMax(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		maxes, err := a.maxes.List(ctx, userID)
		if err != nil {
			return tghelpers.SendText(c, "Ошибка при загрузке максимумов.")
		}
		return tghelpers.SendMD(c, formatMaxes(maxes))
	}

	exerciseName, weight, reps, ok := parseMaxInput(payload)
	if !ok {
		return tghelpers.SendText(c, "Не удалось разобрать запись.\n\n"+maxUsage)
	}

	max, err := a.maxes.Record(ctx, userID, exerciseName, weight, reps)
	if err != nil {
		return tghelpers.SendText(c, "Ошибка при записи максимума.")
	}
	suggestions, err := a.maxes.Suggest(ctx, userID, exerciseName)
	if err != nil {
		suggestions = nil
	}
	return tghelpers.SendMD(c, formatSuggestions(exerciseName, max, suggestions))
}

// parseMaxInput splits "Жим лежа 100x5" into exercise name, weight and
// reps. The last field is the set record; everything before it is the
// exercise name. A bare weight means a single-rep max.
func parseMaxInput(payload string) (string, float64, int, bool) {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		return "", 0, 0, false
	}
	record := fields[len(fields)-1]
	name := strings.Join(fields[:len(fields)-1], " ")

	weightPart := record
	reps := 1
	// Both the latin "x" and the cyrillic "х" separate weight from reps.
	if i := strings.IndexAny(record, "xх"); i >= 0 {
		weightPart = record[:i]
		_, size := utf8.DecodeRuneInString(record[i:])
		parsed, err := strconv.Atoi(record[i+size:])
		if err != nil || parsed <= 0 {
			return "", 0, 0, false
		}
		reps = parsed
	}
	weight, err := strconv.ParseFloat(weightPart, 64)
	if err != nil || weight <= 0 {
		return "", 0, 0, false
	}
	return name, weight, reps, true
}
