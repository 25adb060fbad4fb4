package training

import (
	"sort"
	"strings"
	"time"

	"irontrack/internal/models"
)

// ExerciseProgress — прогрессия нагрузки по одному упражнению
type ExerciseProgress struct {
	ExerciseID   string
	ExerciseName string
	FirstWeight  float64
	LastWeight   float64
	GainKg       float64
	GainPercent  float64
	Sessions     int
}

// Volume возвращает тоннаж подхода: подходы × повторы × вес
func Volume(sets, reps int, weight float64) float64 {
	if sets <= 0 || reps <= 0 || weight < 0 {
		return 0
	}
	return float64(sets) * float64(reps) * weight
}

// Progression группирует историю по упражнениям и считает прирост веса.
// Вход ожидается по возрастанию даты (так отдаёт репозиторий).
func Progression(logs []models.HistoryLog) []ExerciseProgress {
	byID := make(map[string]*ExerciseProgress)
	order := []string{}

	for _, l := range logs {
		p, ok := byID[l.ExerciseID]
		if !ok {
			p = &ExerciseProgress{
				ExerciseID:   l.ExerciseID,
				ExerciseName: l.ExerciseName,
				FirstWeight:  l.Weight,
			}
			byID[l.ExerciseID] = p
			order = append(order, l.ExerciseID)
		}
		p.LastWeight = l.Weight
		p.Sessions++
	}

	out := make([]ExerciseProgress, 0, len(order))
	for _, id := range order {
		p := byID[id]
		p.GainKg = p.LastWeight - p.FirstWeight
		if p.FirstWeight > 0 {
			p.GainPercent = p.GainKg / p.FirstWeight * 100
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].ExerciseName) < strings.ToLower(out[j].ExerciseName)
	})
	return out
}

// TotalVolume суммирует тоннаж всей истории
func TotalVolume(logs []models.HistoryLog) float64 {
	var total float64
	for _, l := range logs {
		total += Volume(l.Sets, l.Reps, l.Weight)
	}
	return total
}

// WeekCount — посещаемость за ISO-неделю
type WeekCount struct {
	Year  int
	Week  int
	Count int
}

// WeeklyAttendance считает отметки по ISO-неделям, от старых к новым
func WeeklyAttendance(completions []models.CompletionLog) []WeekCount {
	counts := make(map[[2]int]int)
	for _, c := range completions {
		y, w := c.Date.ISOWeek()
		counts[[2]int{y, w}]++
	}

	out := make([]WeekCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, WeekCount{Year: k[0], Week: k[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})
	return out
}

// Streak считает текущую серию: подряд идущие дни с отметкой,
// заканчивающиеся сегодня или вчера
func Streak(completions []models.CompletionLog, today time.Time) int {
	days := make(map[string]bool, len(completions))
	for _, c := range completions {
		days[c.Date.Format("2006-01-02")] = true
	}

	day := today
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1) // серия ещё жива, если тренировка была вчера
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
