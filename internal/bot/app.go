// Package bot is the Telegram front end: command and callback handlers
// over the dialog engine and the domain services.
package bot

import (
	tg "github.com/m3rciful/trainbot/core/telegram"
	"github.com/m3rciful/trainbot/core/telegram/commands"
	"github.com/m3rciful/trainbot/core/telegram/router"
	"github.com/m3rciful/trainbot/core/telegram/state"
	"github.com/m3rciful/trainbot/internal/dialog"
	"github.com/m3rciful/trainbot/internal/services"
)

// App aggregates the handler dependencies.
type App struct {
	fsm       state.Manager
	engine    *dialog.Engine
	users     *services.Users
	plans     *services.Plans
	maxes     *services.Maxes
	fallbacks *Fallbacks
}

// New wires the front end and registers the dialog text states on the
// session manager so the message router forwards mid-dialog input.
func New(fsm state.Manager, engine *dialog.Engine, users *services.Users, plans *services.Plans, maxes *services.Maxes) *App {
	a := &App{
		fsm:       fsm,
		engine:    engine,
		users:     users,
		plans:     plans,
		maxes:     maxes,
		fallbacks: &Fallbacks{},
	}
	// Every dialog step routes text through the engine. The numeric steps
	// consume it; the selection steps decline, and the handler answers
	// with the unknown-text reply.
	state.RegisterHandler(dialog.StateWaitGender, a.onDialogText)
	state.RegisterHandler(dialog.StateWaitWeight, a.onDialogText)
	state.RegisterHandler(dialog.StateWaitHeight, a.onDialogText)
	state.RegisterHandler(dialog.StateWaitLevel, a.onDialogText)
	return a
}

// Registry builds the command and callback registry.
func (a *App) Registry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{Handler: a.cmdStart, Description: "Начать работу с ботом"})
	reg.RegisterCommand("/help", commands.Command{Handler: a.cmdHelp, Description: "Справка по командам"})
	reg.RegisterCommand("/profile", commands.Command{Handler: a.cmdProfile, Description: "Просмотреть профиль"})
	reg.RegisterCommand("/setup_profile", commands.Command{Handler: a.cmdSetupProfile, Description: "Заполнить профиль в диалоговом режиме"})
	reg.RegisterCommand("/cancel", commands.Command{Handler: a.cmdCancel, Description: "Отменить текущий диалог"})
	reg.RegisterCommand("/cycles", commands.Command{Handler: a.cmdCycles, Description: "Доступные циклы тренировок"})
	reg.RegisterCommand("/plans", commands.Command{Handler: a.cmdPlans, Description: "Мои планы тренировок", Aliases: []string{"my_plans"}})
	reg.RegisterCommand("/set_gender", commands.Command{Handler: a.cmdSetGender, Description: "Установить пол", Hidden: true})
	reg.RegisterCommand("/set_weight", commands.Command{Handler: a.cmdSetWeight, Description: "Установить вес", Hidden: true})
	reg.RegisterCommand("/set_height", commands.Command{Handler: a.cmdSetHeight, Description: "Установить рост", Hidden: true})
	reg.RegisterCommand("/set_level", commands.Command{Handler: a.cmdSetLevel, Description: "Установить уровень подготовки", Hidden: true})
	reg.RegisterCommand("/max", commands.Command{Handler: a.cmdMax, Description: "Личные максимумы и рабочие веса"})

	_ = reg.RegisterCallback(cbDialogGender, a.onDialogGender)
	_ = reg.RegisterCallback(cbDialogLevel, a.onDialogLevel)
	_ = reg.RegisterCallback(cbCycle, a.onCycleSelected)
	_ = reg.RegisterCallback(cbSetGender, a.onSetGender)
	_ = reg.RegisterCallback(cbSetLevel, a.onSetLevel)

	reg.SetTextFallback(a.fallbacks.UnknownText())
	reg.SetCallbackNotFound(a.fallbacks.UnknownCallback())

	return reg
}

// Routes assembles all telebot routes: commands, the FSM-aware text
// router and the callback router.
func (a *App) Routes(reg *tg.Registry) []tg.Route {
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{})
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{
		UnknownText:     a.fallbacks.UnknownText(),
		UnknownDocument: a.fallbacks.UnknownDocument(),
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: a.fallbacks.UnknownCallback(),
	}))
	return routes
}
