package catalog

import (
	"errors"
	"sort"
	"strings"
)

// fakeStore — таблица exercises в памяти для тестов
type fakeStore struct {
	rows    map[string]ExerciseRow
	listErr error
	getErr  error
	insErr  error

	inserts int
	calls   []string
}

func newFakeStore(rows ...ExerciseRow) *fakeStore {
	f := &fakeStore{rows: make(map[string]ExerciseRow)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeStore) ListOrderedByName() ([]ExerciseRow, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]ExerciseRow, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (f *fakeStore) GetByID(id string) (ExerciseRow, bool, error) {
	f.calls = append(f.calls, "get:"+id)
	if f.getErr != nil {
		return ExerciseRow{}, false, f.getErr
	}
	r, ok := f.rows[id]
	return r, ok, nil
}

func (f *fakeStore) Insert(row ExerciseRow) error {
	f.calls = append(f.calls, "insert:"+row.ID)
	if f.insErr != nil {
		return f.insErr
	}
	if _, exists := f.rows[row.ID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.rows[row.ID] = row
	f.inserts++
	return nil
}
