package bot

import (
	tghelpers "github.com/m3rciful/trainbot/core/telegram/helpers"
	"github.com/m3rciful/trainbot/core/telegram/ui"

	tele "gopkg.in/telebot.v4"
)

// Fallbacks handles updates that match no command, state or callback.
type Fallbacks struct{}

var _ ui.FallbackProvider = (*Fallbacks)(nil)

func (f *Fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "Я не понимаю это сообщение. Используйте /help для списка команд.")
	}
}

func (f *Fallbacks) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "Я не работаю с файлами. Используйте /help для списка команд.")
	}
}

func (f *Fallbacks) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Действие недоступно"})
	}
}
