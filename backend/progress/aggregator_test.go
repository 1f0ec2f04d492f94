package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) // a Saturday

func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func TestDailySeriesAlwaysSevenPoints(t *testing.T) {
	series := DailySeries(nil, testNow)

	assert.Len(t, series, 7)
	for _, point := range series {
		assert.Equal(t, 0, point.Score)
	}
	// Oldest first: the window ends on "today".
	assert.Equal(t, "dom", series[0].Label) // Sunday, six days back
	assert.Equal(t, "sáb", series[6].Label)
}

func TestDailySeriesAveragesPerCalendarDay(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 80, CompletedAt: stamp(testNow.Add(-2 * time.Hour))},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 91, CompletedAt: stamp(testNow.Add(-3 * time.Hour))},
		{SubjectID: "ciencias", TopicID: "plantas", Score: 70, CompletedAt: stamp(testNow.AddDate(0, 0, -1))},
	}

	series := DailySeries(attempts, testNow)

	assert.Len(t, series, 7)
	// 80 and 91 both fall on "today": mean 85.5 rounds to 86.
	assert.Equal(t, 86, series[6].Score)
	assert.Equal(t, 70, series[5].Score)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, series[i].Score)
	}
}

func TestDailySeriesUsesCalendarDayNotRollingWindow(t *testing.T) {
	// 20 hours ago but on the previous calendar day: must count for
	// yesterday's bucket, not today's.
	earlier := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 60, CompletedAt: stamp(earlier)},
	}

	series := DailySeries(attempts, testNow)

	assert.Equal(t, 0, series[6].Score)
	assert.Equal(t, 60, series[5].Score)
}

func TestSubjectRollupWorkedExample(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 85, Completed: true, CompletedAt: stamp(testNow.Add(-1 * time.Hour))},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 92, Completed: true, CompletedAt: stamp(testNow.Add(-2 * time.Hour))},
	}

	rollups := SubjectRollups(attempts, testNow)

	assert.Len(t, rollups, 1)
	rollup := rollups[0]
	assert.Equal(t, "Matemáticas", rollup.Subject)
	assert.Equal(t, 100, rollup.CompletionRate)
	assert.Equal(t, 2, rollup.DistinctTopics)
	assert.Equal(t, 2, rollup.TotalAttempts)
	assert.Equal(t, "8.8", rollup.AverageScore) // (85+92)/2/10, one decimal

	// Topics sorted by score descending.
	assert.Equal(t, "Decimales", rollup.Topics[0].Name)
	assert.Equal(t, 92, rollup.Topics[0].Score)
	assert.Equal(t, "Fracciones", rollup.Topics[1].Name)
	assert.Equal(t, 85, rollup.Topics[1].Score)
}

func TestSubjectRollupAccuracyEstimates(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 85, Completed: true, CompletedAt: stamp(testNow)},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 92, Completed: true, CompletedAt: stamp(testNow)},
	}

	rollup := SubjectRollups(attempts, testNow)[0]

	// Per attempt: +15 minutes, +10 questions, +round(score/10) correct.
	assert.Equal(t, 30, rollup.TotalMinutes)
	assert.Equal(t, 20, rollup.TotalQuestions)
	assert.Equal(t, 18, rollup.CorrectAnswers) // round(8.5)=9 + round(9.2)=9
}

func TestSubjectRollupCompletionRateNeverDividesByZero(t *testing.T) {
	rollups := SubjectRollups(nil, testNow)
	assert.Empty(t, rollups)

	attempts := []Attempt{
		{SubjectID: "historia", TopicID: "roma", Score: 40, Completed: false, CompletedAt: stamp(testNow)},
	}
	rollup := SubjectRollups(attempts, testNow)[0]
	assert.Equal(t, 0, rollup.CompletionRate)
	assert.GreaterOrEqual(t, rollup.TotalAttempts, rollup.DistinctTopics)
}

func TestTopicBestScoreFoldIsMonotonic(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 70, Completed: false, CompletedAt: stamp(testNow.Add(-5 * time.Hour))},
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 90, Completed: true, CompletedAt: stamp(testNow.Add(-4 * time.Hour))},
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 55, Completed: false, CompletedAt: stamp(testNow.Add(-3 * time.Hour))},
	}

	rollup := SubjectRollups(attempts, testNow)[0]

	assert.Len(t, rollup.Topics, 1)
	assert.Equal(t, 90, rollup.Topics[0].Score)
	assert.True(t, rollup.Topics[0].Completed)
}

func TestTopicTieKeepsFirstSeen(t *testing.T) {
	first := testNow.Add(-6 * time.Hour)
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 80, Completed: true, CompletedAt: stamp(first)},
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 80, Completed: false, CompletedAt: stamp(testNow)},
	}

	rollup := SubjectRollups(attempts, testNow)[0]

	// Equal score must not replace: the first attempt's completion flag
	// and date stay.
	assert.True(t, rollup.Topics[0].Completed)
	assert.True(t, rollup.Topics[0].UpdatedAt.Equal(first))
}

func TestEqualScoresPreserveFirstSeenOrder(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 80, Completed: true, CompletedAt: stamp(testNow)},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 80, Completed: true, CompletedAt: stamp(testNow)},
		{SubjectID: "matematicas", TopicID: "porcentajes", Score: 80, Completed: true, CompletedAt: stamp(testNow)},
	}

	rollup := SubjectRollups(attempts, testNow)[0]

	assert.Equal(t, "Fracciones", rollup.Topics[0].Name)
	assert.Equal(t, "Decimales", rollup.Topics[1].Name)
	assert.Equal(t, "Porcentajes", rollup.Topics[2].Name)
}

func TestMalformedTimestampDropsRecordOnly(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 85, Completed: true, CompletedAt: stamp(testNow)},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 92, Completed: true, CompletedAt: "not-a-timestamp"},
	}

	rollups := SubjectRollups(attempts, testNow)

	assert.Len(t, rollups, 1)
	assert.Equal(t, 1, rollups[0].TotalAttempts)
	assert.Equal(t, 1, rollups[0].DistinctTopics)
}

func TestFilterWindow(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 85, CompletedAt: stamp(testNow.AddDate(0, 0, -2))},
		{SubjectID: "matematicas", TopicID: "decimales", Score: 92, CompletedAt: stamp(testNow.AddDate(0, 0, -10))},
	}

	assert.Len(t, FilterWindow(attempts, 7, testNow), 1)
	assert.Len(t, FilterWindow(attempts, 0, testNow), 2)
}

func TestRecentActivitiesNewestFirst(t *testing.T) {
	attempts := []Attempt{
		{SubjectID: "matematicas", TopicID: "fracciones", Score: 85, CompletedAt: stamp(testNow.Add(-30 * time.Hour))},
		{SubjectID: "ciencias", TopicID: "plantas", Score: 60, CompletedAt: stamp(testNow.Add(-2 * time.Hour))},
	}

	activities := RecentActivities(attempts, 5, testNow)

	assert.Len(t, activities, 2)
	assert.Equal(t, "Cuestionario de plantas", activities[0].Title)
	assert.Equal(t, "60%", activities[0].Score)
	assert.Equal(t, "Hace 2 horas", activities[0].Time)
	assert.Equal(t, "Ayer", activities[1].Time)
}

func TestComputeStudyTimeFloors(t *testing.T) {
	st := ComputeStudyTime(0, 0)
	assert.Equal(t, 180, st.TotalMinutes)
	assert.Equal(t, 45, st.WeekMinutes)

	st = ComputeStudyTime(20, 10)
	assert.Equal(t, 300, st.TotalMinutes)
	assert.Equal(t, 150, st.WeekMinutes)
}

func TestWeeklyGoals(t *testing.T) {
	goals := WeeklyGoals(12, 250, 2)

	assert.Len(t, goals, 3)
	assert.True(t, goals[0].Completed)
	assert.Equal(t, 12, goals[0].Current)
	assert.True(t, goals[1].Completed)
	assert.Equal(t, 4, goals[1].Current)
	assert.False(t, goals[2].Completed)
}
