package bot

import (
	"strings"
	"testing"

	"github.com/m3rciful/trainbot/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestParseMaxInput(t *testing.T) {
	tests := []struct {
		payload string
		name    string
		weight  float64
		reps    int
		ok      bool
	}{
		{"Жим лежа 100x5", "Жим лежа", 100, 5, true},
		{"Жим лежа 100х5", "Жим лежа", 100, 5, true},
		{"Присед 142.5", "Присед", 142.5, 1, true},
		{"Становая тяга 180x1", "Становая тяга", 180, 1, true},
		{"Жим лежа", "", 0, 0, false},
		{"Жим лежа 0", "", 0, 0, false},
		{"Жим лежа 100x0", "", 0, 0, false},
		{"Жим лежа 100xабв", "", 0, 0, false},
		{"", "", 0, 0, false},
	}
	for _, tt := range tests {
		name, weight, reps, ok := parseMaxInput(tt.payload)
		if ok != tt.ok || name != tt.name || weight != tt.weight || reps != tt.reps {
			t.Errorf("parseMaxInput(%q) = (%q, %v, %d, %v), want (%q, %v, %d, %v)",
				tt.payload, name, weight, reps, ok, tt.name, tt.weight, tt.reps, tt.ok)
		}
	}
}

func TestFormatProfile(t *testing.T) {
	u := &models.User{
		ID:     1,
		Gender: ptr(models.GenderMale),
		Weight: ptr(75.0),
		Height: ptr(180.0),
		Level:  ptr("candidate-master"),
	}
	got := formatProfile(u)
	for _, want := range []string{"Мужской", "75 кг", "180 см", "КМС", "23.1", "/setup_profile"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatProfile missing %q in:\n%s", want, got)
		}
	}

	empty := formatProfile(&models.User{ID: 2})
	if !strings.Contains(empty, notSet) {
		t.Errorf("formatProfile(empty) missing %q", notSet)
	}
	if strings.Contains(empty, "ИМТ") {
		t.Error("formatProfile(empty) shows BMI without weight and height")
	}
}

func TestFormatPlanListEmpty(t *testing.T) {
	got := formatPlanList(nil)
	if !strings.Contains(got, "/cycles") {
		t.Errorf("formatPlanList(nil) missing /cycles hint: %q", got)
	}
}

func TestFormatLevelToken(t *testing.T) {
	if got := formatLevelToken("master"); got != "МС" {
		t.Errorf("formatLevelToken(master) = %q", got)
	}
	if got := formatLevelToken("junk"); got != "junk" {
		t.Errorf("formatLevelToken(junk) = %q", got)
	}
}
