package catalog

import (
	"strings"
	"testing"

	"github.com/m3rciful/trainbot/internal/models"
)

func TestList(t *testing.T) {
	all := List()
	if len(all) != 8 {
		t.Fatalf("List() returned %d cycles, want 8", len(all))
	}
	for i, c := range all {
		if c.ID != int64(i+1) {
			t.Errorf("cycle %d has id %d, want id order", i, c.ID)
		}
		if len(c.Exercises) == 0 {
			t.Errorf("cycle %s has no exercises", c.Name)
		}
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID(7)
	if !ok {
		t.Fatal("ByID(7) not found")
	}
	if c.Name != "СРЦ7" || c.Period != "Выход на пик" {
		t.Errorf("ByID(7) = %s/%s", c.Name, c.Period)
	}

	if _, ok := ByID(999); ok {
		t.Error("ByID(999) found, want absent")
	}
	if _, ok := ByID(0); ok {
		t.Error("ByID(0) found, want absent")
	}
}

func TestByIDReturnsCopy(t *testing.T) {
	c, _ := ByID(1)
	c.Exercises[0].Sets = 99
	c.Name = "mutated"

	again, _ := ByID(1)
	if again.Exercises[0].Sets == 99 || again.Name == "mutated" {
		t.Error("ByID exposes shared catalog data")
	}
}

func TestByCriteria(t *testing.T) {
	bench := ByCriteria(Criteria{Direction: "Жим лежа"})
	if len(bench) != 3 {
		t.Errorf("bench press cycles = %d, want 3", len(bench))
	}

	kms := ByCriteria(Criteria{Level: "КМС"})
	if len(kms) != 5 {
		t.Errorf("КМС cycles = %d, want 5", len(kms))
	}

	light := ByCriteria(Criteria{Weight: 70})
	if len(light) != 0 {
		t.Errorf("cycles for 70 kg = %d, want 0 (all require 80+)", len(light))
	}

	heavy := ByCriteria(Criteria{Weight: 85, Gender: models.GenderMale})
	if len(heavy) != 8 {
		t.Errorf("cycles for 85 kg male = %d, want 8", len(heavy))
	}

	if got := ByCriteria(Criteria{Gender: models.GenderFemale}); len(got) != 0 {
		t.Errorf("female cycles = %d, want 0", len(got))
	}
}

func TestDescription(t *testing.T) {
	c, _ := ByID(4)
	desc := Description(c)
	for _, want := range []string{"СРЦ4 - Армрестлинг", "Уровень: II разряд – КМС", "Период: Силовой", "Вес: 80+ кг", "Дополнительно: Стиль борьбы - верх."} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q:\n%s", want, desc)
		}
	}

	c, _ = ByID(1)
	if strings.Contains(Description(c), "Дополнительно") {
		t.Error("description includes empty additional info line")
	}
}
