package bot

import (
	"fmt"

	"github.com/m3rciful/trainbot/core/telegram/keyboard"
	"github.com/m3rciful/trainbot/internal/dialog"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques. Payloads carry the selection token suffix.
const (
	cbDialogGender = "dialog_gender"
	cbDialogLevel  = "dialog_level"
	cbCycle        = "cycle"
	cbSetGender    = "set_gender"
	cbSetLevel     = "set_level"
)

var levelEmoji = map[fitness.Level]string{
	fitness.LevelBeginner:            "🟢",
	fitness.LevelSecondCategory:      "🟡",
	fitness.LevelFirstCategory:       "🟠",
	fitness.LevelCandidateMaster:     "🔵",
	fitness.LevelMaster:              "🟣",
	fitness.LevelInternationalMaster: "🟤",
	fitness.LevelIntermediate:        "⚪",
}

func genderKeyboard(unique string) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "👨 Мужской", Unique: unique, Data: string(models.GenderMale)},
		{Text: "👩 Женский", Unique: unique, Data: string(models.GenderFemale)},
	})
}

func levelKeyboard(unique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(fitness.Levels))
	for _, lvl := range fitness.Levels {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   levelEmoji[lvl] + " " + lvl.Display(),
			Unique: unique,
			Data:   string(lvl),
		})
	}
	return keyboard.InlineButtons(buttons)
}

func cyclesKeyboard(cycles []models.Cycle) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(cycles))
	for _, c := range cycles {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%s (%s)", c.Name, c.Direction),
			Unique: cbCycle,
			Data:   fmt.Sprintf("%d", c.ID),
		})
	}
	return keyboard.InlineButtons(buttons)
}

// markupFor maps an engine reply to the keyboard it asks for.
func markupFor(reply dialog.Reply) *tele.ReplyMarkup {
	switch reply.Keyboard {
	case dialog.KeyboardGender:
		return genderKeyboard(cbDialogGender)
	case dialog.KeyboardLevel:
		return levelKeyboard(cbDialogLevel)
	default:
		return nil
	}
}
