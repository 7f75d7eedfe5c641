// Package dialog drives the four-step profile conversation: gender,
// weight, height and training level, in that order. The engine is
// transport-free; front ends feed it raw text and callback tokens and
// render the typed replies it returns.
package dialog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/core/telegram/state"
	"github.com/m3rciful/trainbot/internal/fitness"
	"github.com/m3rciful/trainbot/internal/models"
)

// Dialog steps carried by the session manager.
const (
	StateWaitGender state.State = "profile.wait_gender"
	StateWaitWeight state.State = "profile.wait_weight"
	StateWaitHeight state.State = "profile.wait_height"
	StateWaitLevel  state.State = "profile.wait_level"
)

// Callback token prefixes. The suffix after the prefix is matched against
// the closed gender/level sets; anything unrecognized is left unhandled.
const (
	GenderCallbackPrefix = "dialog_gender_"
	LevelCallbackPrefix  = "dialog_level_"
)

const (
	maxWeight = 500
	maxHeight = 300
)

// Temp answer keys within a session.
const (
	tempGender = "gender"
	tempWeight = "weight"
	tempHeight = "height"
)

// Keyboard tells the front end which selection keyboard to attach.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardGender
	KeyboardLevel
)

// Reply is a transport-free response the front end renders to the user.
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// ProfileStore persists profile fields one at a time. Each setter is an
// independent write; the engine never batches fields.
type ProfileStore interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	SetGender(ctx context.Context, userID int64, gender models.Gender) error
	SetWeight(ctx context.Context, userID int64, weight float64) error
	SetHeight(ctx context.Context, userID int64, height float64) error
	SetLevel(ctx context.Context, userID int64, level string) error
}

// Engine runs the profile dialog over an injected session manager and
// profile store. Safe for concurrent use across users; concurrent events
// for the same user are last-write-wins.
type Engine struct {
	sessions state.Manager
	store    ProfileStore
}

// New constructs a dialog engine.
func New(sessions state.Manager, store ProfileStore) *Engine {
	return &Engine{sessions: sessions, store: store}
}

// Start opens a new dialog for the user. If the stored profile is already
// complete no dialog is created and the reply says so. An existing
// in-progress dialog is discarded and restarted from the first step.
func (e *Engine) Start(ctx context.Context, userID int64) (Reply, error) {
	user, err := e.store.Get(ctx, userID)
	if err != nil {
		logger.Error(ctx, "service.dialog", "dialog.start",
			slog.String("status", "store_error"),
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return Reply{Text: msgStoreFailure}, err
	}
	if user.ProfileComplete() {
		logger.Debug(ctx, "service.dialog", "dialog.start",
			slog.String("status", "already_complete"),
			slog.Int64("user_id", userID),
		)
		return Reply{Text: msgAlreadyComplete}, nil
	}

	e.sessions.Clear(userID)
	e.sessions.SetState(userID, StateWaitGender)
	logger.Info(ctx, "service.dialog", "dialog.start",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
	)
	return Reply{Text: promptGender, Keyboard: KeyboardGender}, nil
}

// InDialog reports whether the user has an open dialog.
func (e *Engine) InDialog(userID int64) bool {
	return e.sessions.InProgress(userID)
}

// Cancel discards any open dialog. Calling it without one is a no-op.
func (e *Engine) Cancel(userID int64) {
	e.sessions.Clear(userID)
}

// HandleText processes free-text input for the numeric steps. The boolean
// reports whether the engine claimed the input; false means the caller
// should fall through to other handling.
func (e *Engine) HandleText(ctx context.Context, userID int64, text string) (Reply, bool, error) {
	switch e.sessions.GetState(userID) {
	case StateWaitWeight:
		return e.handleWeight(ctx, userID, text)
	case StateWaitHeight:
		return e.handleHeight(ctx, userID, text)
	default:
		return Reply{}, false, nil
	}
}

// HandleCallback processes structured selection tokens for the gender and
// level steps. Tokens with an unrecognized suffix are left unhandled.
func (e *Engine) HandleCallback(ctx context.Context, userID int64, data string) (Reply, bool, error) {
	switch e.sessions.GetState(userID) {
	case StateWaitGender:
		return e.handleGender(ctx, userID, data)
	case StateWaitLevel:
		return e.handleLevel(ctx, userID, data)
	default:
		return Reply{}, false, nil
	}
}

func (e *Engine) handleGender(ctx context.Context, userID int64, data string) (Reply, bool, error) {
	if !strings.HasPrefix(data, GenderCallbackPrefix) {
		return Reply{}, false, nil
	}
	gender, ok := models.ParseGender(strings.TrimPrefix(data, GenderCallbackPrefix))
	if !ok {
		return Reply{}, false, nil
	}

	if err := e.store.SetGender(ctx, userID, gender); err != nil {
		return e.storeFailure(ctx, userID, "gender", err)
	}
	e.sessions.SetTemp(userID, tempGender, string(gender))
	e.sessions.SetState(userID, StateWaitWeight)
	e.logStep(ctx, userID, "gender")
	return Reply{Text: promptWeight}, true, nil
}

func (e *Engine) handleWeight(ctx context.Context, userID int64, text string) (Reply, bool, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Reply{Text: msgWeightNotNumber}, true, nil
	}
	if !(weight > 0 && weight < maxWeight) {
		return Reply{Text: msgWeightOutOfRange}, true, nil
	}

	if err := e.store.SetWeight(ctx, userID, weight); err != nil {
		return e.storeFailure(ctx, userID, "weight", err)
	}
	e.sessions.SetTemp(userID, tempWeight, weight)
	e.sessions.SetState(userID, StateWaitHeight)
	e.logStep(ctx, userID, "weight")
	return Reply{Text: promptHeight}, true, nil
}

func (e *Engine) handleHeight(ctx context.Context, userID int64, text string) (Reply, bool, error) {
	height, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return Reply{Text: msgHeightNotNumber}, true, nil
	}
	if !(height > 0 && height < maxHeight) {
		return Reply{Text: msgHeightOutOfRange}, true, nil
	}

	if err := e.store.SetHeight(ctx, userID, height); err != nil {
		return e.storeFailure(ctx, userID, "height", err)
	}
	e.sessions.SetTemp(userID, tempHeight, height)
	e.sessions.SetState(userID, StateWaitLevel)
	e.logStep(ctx, userID, "height")
	return Reply{Text: promptLevel, Keyboard: KeyboardLevel}, true, nil
}

func (e *Engine) handleLevel(ctx context.Context, userID int64, data string) (Reply, bool, error) {
	if !strings.HasPrefix(data, LevelCallbackPrefix) {
		return Reply{}, false, nil
	}
	level, ok := fitness.ParseLevel(strings.TrimPrefix(data, LevelCallbackPrefix))
	if !ok {
		return Reply{}, false, nil
	}

	if err := e.store.SetLevel(ctx, userID, string(level)); err != nil {
		return e.storeFailure(ctx, userID, "level", err)
	}

	genderRaw, _ := e.sessions.GetTempString(userID, tempGender)
	gender, _ := models.ParseGender(genderRaw)
	weight, _ := e.sessions.GetTempFloat64(userID, tempWeight)
	height, _ := e.sessions.GetTempFloat64(userID, tempHeight)

	// Completion is terminal: the session is torn down before replying.
	e.sessions.Clear(userID)
	logger.Info(ctx, "service.dialog", "dialog.complete",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("level", string(level)),
	)
	return Reply{Text: completionMessage(gender, weight, height, level)}, true, nil
}

// storeFailure reports a persistence error without advancing state, so the
// user can retry the same step.
func (e *Engine) storeFailure(ctx context.Context, userID int64, step string, err error) (Reply, bool, error) {
	logger.Error(ctx, "service.dialog", "dialog.step",
		slog.String("status", "store_error"),
		slog.Int64("user_id", userID),
		slog.String("step", step),
		slog.String("error", err.Error()),
	)
	return Reply{Text: msgStoreFailure}, true, err
}

func (e *Engine) logStep(ctx context.Context, userID int64, step string) {
	logger.Debug(ctx, "service.dialog", "dialog.step",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("step", step),
		slog.String("state", string(e.sessions.GetState(userID))),
	)
}
