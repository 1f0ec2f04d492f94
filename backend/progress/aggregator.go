package progress

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Fixed per-attempt estimates: quizzes have no recorded duration or
// question count, so the rollups carry these estimates instead.
const (
	minutesPerAttempt   = 15
	questionsPerAttempt = 10
)

var shortWeekdays = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

func parseWhen(a Attempt) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, a.CompletedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterWindow keeps attempts completed within the trailing N-day window.
// days=0 means all history. Records with unparseable timestamps are kept
// out of windowed views but still reach full-history aggregation, where
// they are dropped individually.
func FilterWindow(attempts []Attempt, days int, now time.Time) []Attempt {
	if days <= 0 {
		return attempts
	}

	start := now.AddDate(0, 0, -days)
	filtered := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		when, ok := parseWhen(a)
		if !ok {
			continue
		}
		if !when.Before(start) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// SortNewestFirst orders attempts by completion time, newest first.
// Records with unparseable timestamps sink to the end.
func SortNewestFirst(attempts []Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		ti, oki := parseWhen(attempts[i])
		tj, okj := parseWhen(attempts[j])
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}

// DailySeries produces exactly 7 chart points, oldest first, one per
// calendar day. Days without attempts score 0.
func DailySeries(attempts []Attempt, now time.Time) []DailyScore {
	series := make([]DailyScore, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		sum, count := 0, 0
		for _, a := range attempts {
			when, ok := parseWhen(a)
			if !ok {
				continue
			}
			if sameDay(when.In(now.Location()), day) {
				sum += a.Score
				count++
			}
		}

		score := 0
		if count > 0 {
			score = int(math.Round(float64(sum) / float64(count)))
		}

		series = append(series, DailyScore{
			Label: shortWeekdays[int(day.Weekday())],
			Score: score,
		})
	}

	return series
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type topicBest struct {
	score     int
	completed bool
	updatedAt time.Time
}

type subjectAccum struct {
	attempts   int
	completed  int
	scoreSum   int
	minutes    int
	questions  int
	correct    int
	last       time.Time
	hasLast    bool
	topicOrder []string
	topics     map[string]*topicBest
}

func (g *subjectAccum) fold(a Attempt, when time.Time) {
	g.attempts++
	g.scoreSum += a.Score
	g.minutes += minutesPerAttempt
	g.questions += questionsPerAttempt
	g.correct += int(math.Round(float64(a.Score) / 100 * questionsPerAttempt))
	if a.Completed {
		g.completed++
	}

	// Keep the best-scoring attempt per topic. Replacement only on a
	// strictly higher score, so ties keep the first-seen record.
	t := g.topics[a.TopicID]
	if t == nil {
		g.topicOrder = append(g.topicOrder, a.TopicID)
		g.topics[a.TopicID] = &topicBest{score: a.Score, completed: a.Completed, updatedAt: when}
	} else if a.Score > t.score {
		t.score = a.Score
		t.completed = a.Completed
		t.updatedAt = when
	}

	if !g.hasLast || when.After(g.last) {
		g.last = when
		g.hasLast = true
	}
}

func (g *subjectAccum) emit(id string, pos int, now time.Time) SubjectRollup {
	completionRate := 0
	average := "0.0"
	if g.attempts > 0 {
		completionRate = int(math.Round(float64(g.completed) / float64(g.attempts) * 100))
		average = strconv.FormatFloat(float64(g.scoreSum)/float64(g.attempts)/10, 'f', 1, 64)
	}

	lastActivity := "Sin actividad"
	if g.hasLast {
		lastActivity = FormatRelative(g.last, now)
	}

	topics := make([]TopicSummary, 0, len(g.topicOrder))
	for tpos, tid := range g.topicOrder {
		best := g.topics[tid]
		topics = append(topics, TopicSummary{
			Name:      ResolveTopicName(tid, tpos),
			Completed: best.completed,
			Score:     best.score,
			UpdatedAt: best.updatedAt,
		})
	}
	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Score > topics[j].Score })

	return SubjectRollup{
		Subject:        ResolveSubjectName(id, pos),
		CompletionRate: completionRate,
		DistinctTopics: len(topics),
		TotalAttempts:  g.attempts,
		AverageScore:   average,
		CorrectAnswers: g.correct,
		TotalQuestions: g.questions,
		TotalMinutes:   g.minutes,
		LastActivity:   lastActivity,
		Topics:         topics,
	}
}

// SubjectRollups groups attempts by subject id, preserving the order of
// first appearance, and emits one rollup per subject. A record with an
// unparseable timestamp is dropped rather than aborting the aggregation.
func SubjectRollups(attempts []Attempt, now time.Time) []SubjectRollup {
	var order []string
	groups := make(map[string]*subjectAccum)

	for _, a := range attempts {
		when, ok := parseWhen(a)
		if !ok {
			continue
		}

		g := groups[a.SubjectID]
		if g == nil {
			g = &subjectAccum{topics: make(map[string]*topicBest)}
			groups[a.SubjectID] = g
			order = append(order, a.SubjectID)
		}
		g.fold(a, when)
	}

	rollups := make([]SubjectRollup, 0, len(order))
	for pos, id := range order {
		rollups = append(rollups, groups[id].emit(id, pos, now))
	}
	return rollups
}

// RecentActivities lists the most recent attempts, newest first, as feed
// entries. Subjects or topics with no attempts are simply absent; the
// presentation layer decides what to show for an empty feed.
func RecentActivities(attempts []Attempt, limit int, now time.Time) []Activity {
	type dated struct {
		attempt Attempt
		when    time.Time
	}

	parsed := make([]dated, 0, len(attempts))
	for _, a := range attempts {
		when, ok := parseWhen(a)
		if !ok {
			continue
		}
		parsed = append(parsed, dated{attempt: a, when: when})
	}

	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].when.After(parsed[j].when) })

	if limit > len(parsed) {
		limit = len(parsed)
	}

	activities := make([]Activity, 0, limit)
	for _, d := range parsed[:limit] {
		activities = append(activities, Activity{
			Title: "Cuestionario de " + d.attempt.TopicID,
			Score: fmt.Sprintf("%d%%", d.attempt.Score),
			Time:  FormatRelative(d.when, now),
		})
	}
	return activities
}

// ComputeStudyTime estimates study minutes from attempt counts, with the
// floors the dashboard has always shown.
func ComputeStudyTime(totalAttempts, weekAttempts int) StudyTime {
	total := totalAttempts * minutesPerAttempt
	if total < 180 {
		total = 180
	}
	week := weekAttempts * minutesPerAttempt
	if week < 45 {
		week = 45
	}
	return StudyTime{TotalMinutes: total, WeekMinutes: week}
}

// WeeklyGoals derives the fixed weekly goal set from this week's counts.
func WeeklyGoals(weekAttempts, weekMinutes, badges int) []WeeklyGoal {
	return []WeeklyGoal{
		{Name: "Completar 10 cuestionarios", Current: weekAttempts, Target: 10, Completed: weekAttempts >= 10},
		{Name: "Estudiar 4 horas", Current: weekMinutes / 60, Target: 4, Completed: weekMinutes >= 240},
		{Name: "Obtener 3 insignias", Current: badges, Target: 3, Completed: badges >= 3},
	}
}
