package bot

import (
	"strings"
	"testing"

	"github.com/m3rciful/trainbot/core/telegram/state"
	"github.com/m3rciful/trainbot/internal/dialog"
	"github.com/m3rciful/trainbot/internal/services"

	tele "gopkg.in/telebot.v4"
)

// testCtx implements the tele.Context methods the handlers touch.
// Anything else panics through the embedded nil interface.
type testCtx struct {
	tele.Context
	sender *tele.User
	cb     *tele.Callback
	text   string
	store  map[string]any
	sent   []string
}

func newTestCtx(userID int64) *testCtx {
	return &testCtx{
		sender: &tele.User{ID: userID},
		store:  map[string]any{},
	}
}

func (c *testCtx) Sender() *tele.User       { return c.sender }
func (c *testCtx) Chat() *tele.Chat         { return nil }
func (c *testCtx) Update() tele.Update      { return tele.Update{} }
func (c *testCtx) Callback() *tele.Callback { return c.cb }
func (c *testCtx) Text() string             { return c.text }
func (c *testCtx) Get(key string) any       { return c.store[key] }
func (c *testCtx) Set(key string, val any)  { c.store[key] = val }

func (c *testCtx) Send(what any, _ ...any) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func (c *testCtx) lastSent(t *testing.T) string {
	t.Helper()
	if len(c.sent) == 0 {
		t.Fatal("handler sent nothing")
	}
	return c.sent[len(c.sent)-1]
}

func newTestApp() (*App, state.Manager) {
	fsm := state.NewMemoryManager(0)
	users := services.NewUsers(nil)
	return New(fsm, dialog.New(fsm, users), users, nil, nil), fsm
}

func TestSetGenderRejectsUnknownToken(t *testing.T) {
	app, _ := newTestApp()

	// A nil repo would panic on any persisted write, so reaching the
	// error reply proves the token never made it to the service.
	c := newTestCtx(10)
	c.cb = &tele.Callback{Data: "\\fset_gender|other"}
	if err := app.onSetGender(c); err != nil {
		t.Fatalf("onSetGender: %v", err)
	}
	if got := c.lastSent(t); got != "Ошибка при установке пола." {
		t.Errorf("reply = %q, want gender error", got)
	}
}

func TestSelectionStepTextGetsFallback(t *testing.T) {
	_, fsm := newTestApp()

	for _, st := range []state.State{dialog.StateWaitGender, dialog.StateWaitLevel} {
		c := newTestCtx(11)
		c.text = "привет"
		fsm.SetState(11, st)

		if err := fsm.ManagerHandler(c); err != nil {
			t.Fatalf("ManagerHandler(%s): %v", st, err)
		}
		if got := c.lastSent(t); !strings.Contains(got, "Я не понимаю это сообщение") {
			t.Errorf("state %s: reply = %q, want unknown-text fallback", st, got)
		}
		if fsm.GetState(11) != st {
			t.Errorf("state %s changed to %s", st, fsm.GetState(11))
		}
		fsm.Clear(11)
	}
}

func TestNumericStepTextStaysWithEngine(t *testing.T) {
	_, fsm := newTestApp()

	c := newTestCtx(12)
	c.text = "не число"
	fsm.SetState(12, dialog.StateWaitWeight)

	if err := fsm.ManagerHandler(c); err != nil {
		t.Fatalf("ManagerHandler: %v", err)
	}
	if got := c.lastSent(t); !strings.Contains(got, "Введите вес числом") {
		t.Errorf("reply = %q, want weight re-prompt", got)
	}
	if fsm.GetState(12) != dialog.StateWaitWeight {
		t.Errorf("weight re-prompt moved state to %s", fsm.GetState(12))
	}
}
