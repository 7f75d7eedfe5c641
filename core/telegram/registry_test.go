package telegram

import (
	"testing"

	"github.com/m3rciful/trainbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noopHandler(tele.Context) error { return nil }

func TestListCommandsForMenu(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "start"})
	reg.RegisterCommand("/help", commands.Command{Handler: noopHandler, Description: "help"})
	reg.RegisterCommand("/set_gender", commands.Command{Handler: noopHandler, Description: "gender", Hidden: true})
	reg.RegisterCommand("/admin", commands.Command{Handler: noopHandler, Description: "admin", AdminOnly: true})

	got := reg.ListCommands(true)
	want := []tele.Command{
		{Text: "/help", Description: "help"},
		{Text: "/start", Description: "start"},
	}
	if len(got) != len(want) {
		t.Fatalf("ListCommands(true) returned %d commands, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if all := reg.ListCommands(false); len(all) != 4 {
		t.Errorf("ListCommands(false) returned %d commands, want 4", len(all))
	}
}

func TestLookupCommandAliases(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/plans", commands.Command{
		Handler:     noopHandler,
		Description: "plans",
		Aliases:     []string{"my_plans"},
	})

	key, _, ok := reg.LookupCommand("my_plans")
	if !ok || key != "/plans" {
		t.Fatalf("LookupCommand(my_plans) = %q, %v; want /plans, true", key, ok)
	}
	if _, _, ok := reg.LookupCommand("/unknown"); ok {
		t.Error("LookupCommand(/unknown) reported a match")
	}
}
