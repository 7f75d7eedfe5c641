package bot

import (
	"errors"

	"github.com/m3rciful/trainbot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/trainbot/core/telegram/helpers"
	"github.com/m3rciful/trainbot/internal/dialog"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
	"github.com/m3rciful/trainbot/internal/services"

	tele "gopkg.in/telebot.v4"
)

// onDialogText forwards free text to the dialog engine. The selection
// steps never claim text, so input there falls through to the generic
// unknown-text reply instead of being swallowed.
func (a *App) onDialogText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reply, handled, err := a.engine.HandleText(ctx, c.Sender().ID, c.Text())
	if !handled {
		return a.fallbacks.UnknownText()(c)
	}
	if err != nil {
		return tghelpers.SendText(c, reply.Text)
	}
	return tghelpers.SendMD(c, reply.Text, markupFor(reply))
}

func (a *App) onDialogGender(c tele.Context) error {
	return a.dialogCallback(c, dialog.GenderCallbackPrefix)
}

func (a *App) onDialogLevel(c tele.Context) error {
	return a.dialogCallback(c, dialog.LevelCallbackPrefix)
}

// dialogCallback rebuilds the selection token from the callback unique
// and payload and hands it to the engine. Unhandled tokens are dropped
// silently, matching the engine's fall-through contract.
func (a *App) dialogCallback(c tele.Context, prefix string) error {
	ctx := tghelpers.BuildContext(c)
	token := prefix + callbacks.CallbackPayload(c)
	reply, handled, err := a.engine.HandleCallback(ctx, c.Sender().ID, token)
	if !handled {
		return nil
	}
	if err != nil {
		return tghelpers.SendText(c, reply.Text)
	}
	return tghelpers.SendMD(c, reply.Text, markupFor(reply))
}

func (a *App) onCycleSelected(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	cycleID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, "Цикл не найден.")
	}

	plan, err := a.plans.Generate(ctx, c.Sender().ID, cycleID)
	switch {
	case errors.Is(err, services.ErrCycleNotFound):
		return tghelpers.SendText(c, "Цикл не найден.")
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, fitness.ErrProfileIncomplete):
		return tghelpers.SendText(c,
			"Для составления плана необходимо заполнить профиль.\n\nИспользуйте /setup_profile")
	case err != nil:
		return tghelpers.SendText(c, "Ошибка при создании плана. Попробуйте позже.")
	}
	return tghelpers.SendMD(c, formatPlan(plan))
}

func (a *App) onSetGender(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	gender, ok := models.ParseGender(callbacks.CallbackPayload(c))
	if !ok {
		return tghelpers.SendText(c, "Ошибка при установке пола.")
	}
	if err := a.users.SetGender(ctx, c.Sender().ID, gender); err != nil {
		return tghelpers.SendText(c, "Ошибка при установке пола.")
	}
	return tghelpers.SendText(c, "Пол установлен: "+gender.Display())
}

func (a *App) onSetLevel(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	token := callbacks.CallbackPayload(c)
	if err := a.users.SetLevel(ctx, c.Sender().ID, token); err != nil {
		return tghelpers.SendText(c, "Ошибка при установке уровня.")
	}
	return tghelpers.SendText(c, "Уровень подготовки установлен: "+formatLevelToken(token))
}
