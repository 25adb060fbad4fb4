package seed

import (
	"testing"

	"irontrack/internal/models"
)

func TestDefault_UniqueIDsAndPopulatedFields(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	seen := make(map[string]bool)
	for _, d := range c.All() {
		if seen[d.ID] {
			t.Errorf("duplicate id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Name == "" || d.Slug == "" || d.ImageURL == "" {
			t.Errorf("incomplete entry %q: %+v", d.ID, d)
		}
		if d.Target == "" || d.Target == models.GroupOther {
			t.Errorf("entry %q has target %q", d.ID, d.Target)
		}
	}
}

func TestCatalogByID(t *testing.T) {
	c := Default()

	d, ok := c.ByID("ch_1")
	if !ok {
		t.Fatal("ch_1 not found")
	}
	if d.Name != "Supino Reto" || d.Target != models.GroupChest {
		t.Errorf("ch_1 = %+v", d)
	}

	if _, ok := c.ByID("zz_99"); ok {
		t.Error("unknown id found")
	}
}

func TestCatalogIsolation(t *testing.T) {
	// каталог не должен меняться через возвращённый срез
	c := Default()
	list := c.All()
	list[0].Name = "Alterado"

	again := c.All()
	if again[0].Name == "Alterado" {
		t.Error("catalog mutated through All() result")
	}
}

func TestWeekScaffold(t *testing.T) {
	week := WeekScaffold()
	if len(week) != 7 {
		t.Fatalf("len = %d, want 7", len(week))
	}
	if week[0].DayID != "monday" || week[6].DayID != "sunday" {
		t.Errorf("order: %s .. %s", week[0].DayID, week[6].DayID)
	}
	for _, d := range week {
		if d.DayName == "" || d.Title == "" {
			t.Errorf("slot %q incomplete: %+v", d.DayID, d)
		}
	}
	if DayName("tuesday") != "Terça" {
		t.Errorf("DayName(tuesday) = %q", DayName("tuesday"))
	}
	if DayName("feriado") != "feriado" {
		t.Errorf("DayName fallback = %q", DayName("feriado"))
	}
}
