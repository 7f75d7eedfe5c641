package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/trainbot/core/bootstrap"
	"github.com/m3rciful/trainbot/core/logger"
	tg "github.com/m3rciful/trainbot/core/telegram"
	"github.com/m3rciful/trainbot/core/telegram/state"
	"github.com/m3rciful/trainbot/internal/bot"
	"github.com/m3rciful/trainbot/internal/catalog"
	"github.com/m3rciful/trainbot/internal/dialog"
	"github.com/m3rciful/trainbot/internal/services"
	"github.com/m3rciful/trainbot/internal/storage"
	"github.com/m3rciful/trainbot/internal/web"
)

// App holds the assembled application.
type App struct {
	cfg *Config
	db  *sqlx.DB

	users *services.Users
	plans *services.Plans
	maxes *services.Maxes

	bot *bot.App
}

// Bootstrap initializes the logger, database and migrations, seeds the
// cycle catalog and wires the services and handlers.
func Bootstrap(cfg *Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	store := storage.New(res.DB)
	if err := catalog.Seeder().Seed(logger.Background(), store); err != nil {
		_ = res.DB.Close()
		return nil, fmt.Errorf("app: seed catalog: %w", err)
	}

	users := services.NewUsers(store.Users)
	plans := services.NewPlans(store.Users, store.Plans, store.Sessions)
	maxes := services.NewMaxes(store.Users, store.Maxes)

	fsm := state.NewMemoryManager(time.Duration(cfg.Dialog.TTLMinutes) * time.Minute)
	engine := dialog.New(fsm, users)

	return &App{
		cfg:   cfg,
		db:    res.DB,
		users: users,
		plans: plans,
		maxes: maxes,
		bot:   bot.New(fsm, engine, users, plans, maxes),
	}, nil
}

// TelegramRunOptions builds the bot runtime configuration.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := a.bot.Registry()
	return tg.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      a.bot.Routes(reg),
	}, nil
}

// WebServer builds the companion JSON API over the same services.
func (a *App) WebServer() *web.Server {
	return web.NewServer(a.users, a.plans, a.maxes)
}

// WebListen returns the configured API listen address.
func (a *App) WebListen() string {
	return a.cfg.Web.Listen
}

// Close releases the database pool.
func (a *App) Close() error {
	return a.db.Close()
}
