package planner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"irontrack/internal/catalog"
	"irontrack/internal/models"
	"irontrack/internal/repository"
)

// общий журнал вызовов, чтобы проверять порядок guard → insert
type opLog struct{ ops []string }

func (l *opLog) add(op string) { l.ops = append(l.ops, op) }

type fakeGuard struct {
	log  *opLog
	errs map[string]error
}

func (g *fakeGuard) EnsureExists(id string) error {
	g.log.add("guard:" + id)
	if err, ok := g.errs[id]; ok {
		return err
	}
	return nil
}

type fakeCatalogReader struct{ res catalog.Result }

func (c *fakeCatalogReader) All() catalog.Result { return c.res }

type fakeLookup struct {
	rows   map[string]catalog.ExerciseRow
	images map[string]string
}

func (l *fakeLookup) GetByID(id string) (catalog.ExerciseRow, bool, error) {
	r, ok := l.rows[id]
	return r, ok, nil
}

func (l *fakeLookup) UpdateImage(id, imageURL string) error {
	if l.images == nil {
		l.images = make(map[string]string)
	}
	l.images[id] = imageURL
	return nil
}

type fakeSchedules struct {
	titles map[string]string
	err    error
}

func (s *fakeSchedules) Titles(userID string) (map[string]string, error) {
	return s.titles, s.err
}

func (s *fakeSchedules) SetTitle(userID, dayID, title string) error {
	if s.titles == nil {
		s.titles = make(map[string]string)
	}
	s.titles[dayID] = title
	return nil
}

type fakeWorkouts struct {
	log   *opLog
	items []repository.WorkoutItem
}

func (w *fakeWorkouts) ListByUser(userID string) ([]repository.WorkoutItem, error) {
	return w.items, nil
}

func (w *fakeWorkouts) ListByDay(userID, dayID string) ([]repository.WorkoutItem, error) {
	var out []repository.WorkoutItem
	for _, it := range w.items {
		if it.DayID == dayID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (w *fakeWorkouts) Insert(userID, id, dayID, exerciseID string, sets, reps int, weight float64, notes string) error {
	w.log.add("item:" + exerciseID)
	w.items = append(w.items, repository.WorkoutItem{
		ID: id, DayID: dayID, ExerciseID: exerciseID,
		Sets: sets, Reps: reps, Weight: weight, Notes: notes,
	})
	return nil
}

func (w *fakeWorkouts) Update(userID, id string, sets, reps int, weight float64, notes string) error {
	for i := range w.items {
		if w.items[i].ID == id {
			w.items[i].Sets, w.items[i].Reps = sets, reps
			w.items[i].Weight, w.items[i].Notes = weight, notes
		}
	}
	return nil
}

func (w *fakeWorkouts) Delete(userID, id string) error {
	out := w.items[:0]
	for _, it := range w.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	w.items = out
	return nil
}

type fakeHistory struct {
	log  *opLog
	logs []models.HistoryLog
	err  error
}

func (h *fakeHistory) Insert(userID, id, exerciseID string, weight float64, reps, sets int, date time.Time) error {
	h.log.add("history:" + exerciseID)
	if h.err != nil {
		return h.err
	}
	h.logs = append(h.logs, models.HistoryLog{
		ID: id, Date: date, ExerciseID: exerciseID, Weight: weight, Reps: reps, Sets: sets,
	})
	return nil
}

func (h *fakeHistory) ListByUser(userID string) ([]models.HistoryLog, error) { return h.logs, nil }

func (h *fakeHistory) ListByExercise(userID, exerciseID string) ([]models.HistoryLog, error) {
	var out []models.HistoryLog
	for _, l := range h.logs {
		if l.ExerciseID == exerciseID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeCompletions struct {
	dates map[string]bool
}

func (c *fakeCompletions) key(date time.Time) string { return date.Format("2006-01-02") }

func (c *fakeCompletions) Exists(userID string, date time.Time) (bool, error) {
	return c.dates[c.key(date)], nil
}

func (c *fakeCompletions) Insert(userID string, date time.Time) error {
	if c.dates == nil {
		c.dates = make(map[string]bool)
	}
	c.dates[c.key(date)] = true
	return nil
}

func (c *fakeCompletions) ListByUser(userID string) ([]models.CompletionLog, error) {
	var out []models.CompletionLog
	for k := range c.dates {
		d, _ := time.Parse("2006-01-02", k)
		out = append(out, models.CompletionLog{Date: d})
	}
	return out, nil
}

func newTestPlanner() (*Planner, *opLog, *fakeWorkouts, *fakeHistory, *fakeCompletions, *fakeGuard) {
	log := &opLog{}
	guard := &fakeGuard{log: log, errs: make(map[string]error)}
	workouts := &fakeWorkouts{log: log}
	history := &fakeHistory{log: log}
	completions := &fakeCompletions{}
	lookup := &fakeLookup{rows: map[string]catalog.ExerciseRow{
		"ch_1": {ID: "ch_1", Name: "Supino Reto", MuscleGroup: "chest", ImageURL: "https://img/s.png"},
		"bk_2": {ID: "bk_2", Name: "Barra Fixa", MuscleGroup: "back"},
	}}
	p := New(Deps{
		Catalog:     &fakeCatalogReader{},
		Guard:       guard,
		Exercises:   lookup,
		Schedules:   &fakeSchedules{titles: map[string]string{"monday": "Peito Pesado"}},
		Workouts:    workouts,
		History:     history,
		Completions: completions,
	})
	return p, log, workouts, history, completions, guard
}

func TestSchedule_FixedSevenSlotsWithOverlay(t *testing.T) {
	p, _, workouts, _, _, _ := newTestPlanner()
	workouts.items = []repository.WorkoutItem{
		{ID: "i1", DayID: "monday", ExerciseID: "ch_1", ExerciseName: "Supino Reto",
			MuscleGroup: "chest", ImageURL: "https://img/s.png", Sets: 3, Reps: 10, Weight: 60},
	}

	week, err := p.Schedule("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 7 {
		t.Fatalf("len = %d, want 7 fixed slots", len(week))
	}
	if week[0].DayID != "monday" || week[6].DayID != "sunday" {
		t.Errorf("day order broken: %s .. %s", week[0].DayID, week[6].DayID)
	}
	if week[0].Title != "Peito Pesado" {
		t.Errorf("monday title = %q, want user override", week[0].Title)
	}
	if week[1].Title != "Costas e Bíceps" {
		t.Errorf("tuesday title = %q, want scaffold default", week[1].Title)
	}
	if len(week[0].Exercises) != 1 || week[0].Exercises[0].Target != models.GroupChest {
		t.Errorf("monday exercises = %+v", week[0].Exercises)
	}
}

func TestSchedule_RemovedExerciseRendersFallback(t *testing.T) {
	p, _, workouts, _, _, _ := newTestPlanner()
	workouts.items = []repository.WorkoutItem{
		{ID: "i1", DayID: "friday", ExerciseID: "gone", Sets: 3, Reps: 10},
	}

	week, err := p.Schedule("u1")
	if err != nil {
		t.Fatal(err)
	}
	ex := week[4].Exercises[0]
	if ex.Name != "Exercício Removido" {
		t.Errorf("Name = %q", ex.Name)
	}
	if ex.Target != models.GroupOther {
		t.Errorf("Target = %q, want other", ex.Target)
	}
	if ex.ImageURL == "" {
		t.Error("ImageURL empty, want placeholder")
	}
}

func TestAddExercise_GuardRunsBeforeInsert(t *testing.T) {
	p, log, _, _, _, _ := newTestPlanner()

	ex, err := p.AddExercise("u1", "monday", "ch_1", 4, 8, 60, "")
	if err != nil {
		t.Fatal(err)
	}
	if ex.Name != "Supino Reto" || ex.Target != models.GroupChest {
		t.Errorf("snapshot = %+v", ex)
	}
	want := []string{"guard:ch_1", "item:ch_1"}
	if len(log.ops) != 2 || log.ops[0] != want[0] || log.ops[1] != want[1] {
		t.Errorf("ops = %v, want %v", log.ops, want)
	}
}

func TestAddExercise_GuardFailureAbortsInsert(t *testing.T) {
	p, log, workouts, _, _, guard := newTestPlanner()
	guard.errs["zz_9"] = catalog.ErrUnknownExercise

	_, err := p.AddExercise("u1", "monday", "zz_9", 3, 10, 0, "")
	if !errors.Is(err, catalog.ErrUnknownExercise) {
		t.Fatalf("err = %v, want ErrUnknownExercise", err)
	}
	if len(workouts.items) != 0 {
		t.Error("dependent row created despite guard failure")
	}
	for _, op := range log.ops {
		if strings.HasPrefix(op, "item:") {
			t.Errorf("insert happened: %v", log.ops)
		}
	}
}

func TestAddExercise_DefaultsAndUnknownDay(t *testing.T) {
	p, _, workouts, _, _, _ := newTestPlanner()

	ex, err := p.AddExercise("u1", "tuesday", "bk_2", 0, 0, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if ex.Sets != 3 || ex.Reps != 10 {
		t.Errorf("defaults = %d x %d, want 3 x 10", ex.Sets, ex.Reps)
	}
	if ex.ImageURL == "" {
		t.Error("snapshot image empty, want placeholder from normalization")
	}

	if _, err := p.AddExercise("u1", "someday", "bk_2", 3, 10, 0, ""); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("err = %v, want ErrUnknownDay", err)
	}
	if len(workouts.items) != 1 {
		t.Errorf("items = %d, want 1", len(workouts.items))
	}
}

func TestUpdateAndRemoveExercise(t *testing.T) {
	p, _, workouts, _, _, _ := newTestPlanner()
	workouts.items = []repository.WorkoutItem{
		{ID: "i1", DayID: "monday", ExerciseID: "ch_1", Sets: 3, Reps: 10, Weight: 60},
	}

	if err := p.UpdateExercise("u1", "i1", 5, 5, 80, "pirâmide"); err != nil {
		t.Fatal(err)
	}
	if workouts.items[0].Weight != 80 || workouts.items[0].Notes != "pirâmide" {
		t.Errorf("item after update = %+v", workouts.items[0])
	}

	if err := p.RemoveExercise("u1", "i1"); err != nil {
		t.Fatal(err)
	}
	if len(workouts.items) != 0 {
		t.Errorf("items = %d, want 0", len(workouts.items))
	}
}

func TestFinishWorkout_LogsEachItemAndMarksDate(t *testing.T) {
	p, log, workouts, history, completions, _ := newTestPlanner()
	workouts.items = []repository.WorkoutItem{
		{ID: "i1", DayID: "monday", ExerciseID: "ch_1", Sets: 3, Reps: 10, Weight: 60},
		{ID: "i2", DayID: "monday", ExerciseID: "bk_2", Sets: 4, Reps: 6, Weight: 0},
		{ID: "i3", DayID: "friday", ExerciseID: "ch_1", Sets: 3, Reps: 10, Weight: 60},
	}
	now := time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)

	sum, err := p.FinishWorkout("u1", "monday", now)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Logged != 2 {
		t.Errorf("Logged = %d, want 2 (only monday items)", sum.Logged)
	}
	if sum.AlreadyDone {
		t.Error("AlreadyDone = true on first finish")
	}
	if len(history.logs) != 2 {
		t.Errorf("history rows = %d", len(history.logs))
	}
	if !completions.dates["2026-09-01"] {
		t.Error("completion not marked")
	}

	// guard строго перед каждой вставкой истории
	want := []string{"guard:ch_1", "history:ch_1", "guard:bk_2", "history:bk_2"}
	if len(log.ops) != len(want) {
		t.Fatalf("ops = %v", log.ops)
	}
	for i := range want {
		if log.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", log.ops, want)
		}
	}
}

func TestFinishWorkout_GuardFailureStopsHistory(t *testing.T) {
	p, _, workouts, history, _, guard := newTestPlanner()
	workouts.items = []repository.WorkoutItem{
		{ID: "i1", DayID: "monday", ExerciseID: "gone", Sets: 3, Reps: 10},
	}
	guard.errs["gone"] = catalog.ErrUnknownExercise

	_, err := p.FinishWorkout("u1", "monday", time.Now())
	if !errors.Is(err, catalog.ErrUnknownExercise) {
		t.Fatalf("err = %v", err)
	}
	if len(history.logs) != 0 {
		t.Error("history written despite guard failure")
	}
}

func TestMarkComplete_IdempotentPerDate(t *testing.T) {
	p, _, _, _, completions, _ := newTestPlanner()
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	already, err := p.MarkComplete("u1", now)
	if err != nil || already {
		t.Fatalf("first call: already=%v err=%v", already, err)
	}
	already, err = p.MarkComplete("u1", now.Add(10*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !already {
		t.Error("second call same date: already = false, want true")
	}
	if len(completions.dates) != 1 {
		t.Errorf("rows = %d, want at most one per date", len(completions.dates))
	}
}

func TestSaveExerciseImage_GuardRunsBeforeWrite(t *testing.T) {
	log := &opLog{}
	guard := &fakeGuard{log: log, errs: map[string]error{"gone": catalog.ErrUnknownExercise}}
	lookup := &fakeLookup{rows: map[string]catalog.ExerciseRow{"ch_1": {ID: "ch_1", Name: "Supino Reto"}}}
	p := New(Deps{Guard: guard, Exercises: lookup})

	if err := p.SaveExerciseImage("ch_1", "data:image/png;base64,AAAA"); err != nil {
		t.Fatal(err)
	}
	if lookup.images["ch_1"] != "data:image/png;base64,AAAA" {
		t.Errorf("image = %q", lookup.images["ch_1"])
	}

	if err := p.SaveExerciseImage("gone", "x"); !errors.Is(err, catalog.ErrUnknownExercise) {
		t.Errorf("err = %v, want ErrUnknownExercise", err)
	}
	if _, ok := lookup.images["gone"]; ok {
		t.Error("image written despite guard failure")
	}
}

func TestSetDayTitle(t *testing.T) {
	p, _, _, _, _, _ := newTestPlanner()

	if err := p.SetDayTitle("u1", "saturday", "Cardio Longo"); err != nil {
		t.Fatal(err)
	}
	week, _ := p.Schedule("u1")
	if week[5].Title != "Cardio Longo" {
		t.Errorf("saturday title = %q", week[5].Title)
	}

	if err := p.SetDayTitle("u1", "feriado", "X"); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("err = %v, want ErrUnknownDay", err)
	}
}
