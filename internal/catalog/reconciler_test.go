package catalog

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"irontrack/internal/models"
	"irontrack/internal/seed"
)

func testSeed() *seed.Catalog {
	return seed.NewCatalog([]models.ExerciseDefinition{
		{ID: "a", Name: "Agachamento", Slug: "agachamento", Target: models.GroupLegs,
			ImageURL: models.PlaceholderImage("Agachamento")},
		{ID: "b", Name: "Barra Fixa", Slug: "barra-fixa", Target: models.GroupBack,
			ImageURL: models.PlaceholderImage("Barra Fixa")},
	})
}

func ids(defs []models.ExerciseDefinition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

func TestReconcilerAll_EmptyRemoteFallsBackToSeed(t *testing.T) {
	r := NewReconciler(newFakeStore(), testSeed())

	res := r.All()
	if res.Source != SourceSeed {
		t.Errorf("Source = %q, want seed", res.Source)
	}
	if res.RemoteErr != nil {
		t.Errorf("RemoteErr = %v, want nil (empty table is not a failure)", res.RemoteErr)
	}
	got := ids(res.Exercises)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ids = %v, want [a b]", got)
	}
}

func TestReconcilerAll_RemoteErrorFallsBackAndIsReported(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("dial tcp: connection refused")
	r := NewReconciler(store, testSeed())

	res := r.All()
	if res.Source != SourceSeed {
		t.Errorf("Source = %q, want seed", res.Source)
	}
	if res.RemoteErr == nil {
		t.Error("RemoteErr = nil, want the remote error so callers can tell failure from empty")
	}
	if len(res.Exercises) != 2 {
		t.Errorf("len = %d, want full seed", len(res.Exercises))
	}
}

func TestReconcilerAll_RemoteWinsOnSharedID(t *testing.T) {
	store := newFakeStore(ExerciseRow{
		ID: "a", Name: "Agachamento Livre", MuscleGroup: "legs",
		ImageURL: "https://img/agachamento-novo.png",
	})
	r := NewReconciler(store, testSeed())

	res := r.All()
	if res.Source != SourceMerged {
		t.Fatalf("Source = %q, want merged", res.Source)
	}
	if len(res.Exercises) != 2 {
		t.Fatalf("len = %d, want 2 (a' + b)", len(res.Exercises))
	}

	var a models.ExerciseDefinition
	for _, d := range res.Exercises {
		if d.ID == "a" {
			a = d
		}
	}
	if a.Name != "Agachamento Livre" {
		t.Errorf("merged name = %q, want remote value", a.Name)
	}
	if a.ImageURL != "https://img/agachamento-novo.png" {
		t.Errorf("merged image = %q, want remote value", a.ImageURL)
	}
}

func TestReconcilerAll_UnknownRemoteIDAppended(t *testing.T) {
	store := newFakeStore(ExerciseRow{ID: "c", Name: "Corrida", MuscleGroup: "cardio"})
	r := NewReconciler(store, testSeed())

	res := r.All()
	got := ids(res.Exercises)
	sort.Strings(got)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestReconcilerAll_NoDuplicatesAndNoEmptyImages(t *testing.T) {
	store := newFakeStore(
		ExerciseRow{ID: "a", Name: "Agachamento", MuscleGroup: "legs"}, // без картинки
		ExerciseRow{ID: "c", Name: "Corrida", MuscleGroup: "cardio"},
	)
	r := NewReconciler(store, testSeed())

	res := r.All()
	seen := make(map[string]bool)
	for _, d := range res.Exercises {
		if seen[d.ID] {
			t.Errorf("duplicate id %q", d.ID)
		}
		seen[d.ID] = true
		if d.ImageURL == "" {
			t.Errorf("empty ImageURL for %q", d.ID)
		}
	}
}

func TestReconcilerAll_SortedByNameCaseInsensitive(t *testing.T) {
	store := newFakeStore(
		ExerciseRow{ID: "z", Name: "abdominal reto", MuscleGroup: "core"},
		ExerciseRow{ID: "y", Name: "Zumba", MuscleGroup: "cardio"},
	)
	r := NewReconciler(store, testSeed())

	res := r.All()
	for i := 1; i < len(res.Exercises); i++ {
		prev := strings.ToLower(res.Exercises[i-1].Name)
		cur := strings.ToLower(res.Exercises[i].Name)
		if prev > cur {
			t.Fatalf("not sorted: %q before %q", prev, cur)
		}
	}
	if res.Exercises[0].Name != "abdominal reto" {
		t.Errorf("first = %q, want case-insensitive order", res.Exercises[0].Name)
	}
}

func TestReconcilerAll_MalformedRowSkippedNotFatal(t *testing.T) {
	store := newFakeStore(
		ExerciseRow{ID: "c", Name: "Corrida", MuscleGroup: "cardio"},
		ExerciseRow{ID: "bad", Name: "Pescoço", MuscleGroup: "neck"}, // неизвестная метка
	)
	r := NewReconciler(store, testSeed())

	res := r.All()
	if res.Source != SourceMerged {
		t.Fatalf("Source = %q, want merged", res.Source)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	for _, d := range res.Exercises {
		if d.ID == "bad" {
			t.Error("malformed row must not reach the merged catalog")
		}
	}
}
