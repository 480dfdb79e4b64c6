package timegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyedTasneemKousar/asana/internal/dist"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
	}
}

func TestCreationTimeStaysInWindow(t *testing.T) {
	s := dist.New(1)
	w := testWindow()
	for i := 0; i < 1000; i++ {
		got := CreationTime(s, w, true, BusinessHours)
		require.False(t, got.Before(w.Start), "before window: %v", got)
		require.False(t, got.After(w.End), "after window: %v", got)
	}
	for i := 0; i < 1000; i++ {
		got := CreationTime(s, w, false, UniformHours)
		require.False(t, got.Before(w.Start))
		require.False(t, got.After(w.End))
	}
}

func TestCreationTimeWeekdayBias(t *testing.T) {
	s := dist.New(2)
	w := testWindow()
	weekdays := 0
	const n = 10000
	for i := 0; i < n; i++ {
		got := CreationTime(s, w, true, UniformHours)
		if wd := got.Weekday(); wd != time.Saturday && wd != time.Sunday {
			weekdays++
		}
	}
	frac := float64(weekdays) / n
	assert.Greater(t, frac, 0.80)
	assert.Less(t, frac, 0.90)
}

func TestCreationTimeBusinessHours(t *testing.T) {
	s := dist.New(3)
	w := testWindow()
	inBusiness := 0
	const n = 1000
	for i := 0; i < n; i++ {
		got := CreationTime(s, w, true, BusinessHours)
		if h := got.Hour(); h >= 9 && h <= 17 {
			inBusiness++
		}
	}
	assert.GreaterOrEqual(t, float64(inBusiness)/n, 0.65)
}

func TestCreationTimeDegenerateWindow(t *testing.T) {
	s := dist.New(4)
	at := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)
	w := Window{Start: at, End: at}
	got := CreationTime(s, w, true, BusinessHours)
	assert.Equal(t, at, got)
}

func TestDueDateDistribution(t *testing.T) {
	s := dist.New(5)
	// A Wednesday: weekend advancement cannot move a draw across the
	// horizon bucket boundaries.
	created := time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)
	createdDate := DateOf(created)

	var none, near, mid, far int
	const n = 10000
	for i := 0; i < n; i++ {
		due := DueDate(s, created)
		if due == nil {
			none++
			continue
		}
		require.False(t, due.Before(createdDate), "due %v before creation date", due)
		switch diff := createdDate.DaysUntil(*due); {
		case diff <= 7:
			near++
		case diff <= 30:
			mid++
		default:
			far++
		}
	}

	assert.InDelta(t, 0.10, float64(none)/n, 0.03)
	assert.InDelta(t, 0.30, float64(near)/n, 0.03)
	assert.InDelta(t, 0.40, float64(mid)/n, 0.03)
	assert.InDelta(t, 0.20, float64(far)/n, 0.03)
}

func TestDueDateNeverBeforeCreationDate(t *testing.T) {
	s := dist.New(6)
	// A Friday, so the overdue branch exercises weekend advancement.
	created := time.Date(2024, time.March, 1, 16, 30, 0, 0, time.UTC)
	createdDate := DateOf(created)
	for i := 0; i < 5000; i++ {
		if due := DueDate(s, created); due != nil {
			require.False(t, due.Before(createdDate))
		}
	}
}

func TestCompletionTimeRespectsRate(t *testing.T) {
	s := dist.New(7)
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		assert.Nil(t, CompletionTime(s, created, nil, 0))
		assert.NotNil(t, CompletionTime(s, created, nil, 1))
	}

	completed := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if CompletionTime(s, created, nil, 0.65) != nil {
			completed++
		}
	}
	assert.InDelta(t, 0.65, float64(completed)/n, 0.03)
}

func TestCompletionTimeDueClamping(t *testing.T) {
	s := dist.New(8)
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	due := Date{Year: 2024, Month: time.March, Day: 10}
	dueInstant := due.Time(time.UTC)
	latest := dueInstant.AddDate(0, 0, 3)

	onTime := 0
	const n = 10000
	for i := 0; i < n; i++ {
		got := CompletionTime(s, created, &due, 1)
		require.NotNil(t, got)
		require.True(t, got.After(created), "completion %v not after creation", got)
		require.False(t, got.After(latest), "completion %v beyond slightly-late bound", got)
		if !got.After(dueInstant) {
			onTime++
		}
	}
	assert.GreaterOrEqual(t, float64(onTime)/n, 0.75)
}

func TestCompletionTimeRepairAfterTightDue(t *testing.T) {
	s := dist.New(9)
	// Due on the creation date: the pull-back branch would land before
	// the creation instant and must be repaired forward.
	created := time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC)
	due := DateOf(created)
	for i := 0; i < 5000; i++ {
		got := CompletionTime(s, created, &due, 1)
		require.NotNil(t, got)
		require.True(t, got.After(created))
		require.False(t, got.After(created.AddDate(0, 0, 3)))
	}
}

func TestModifiedTimeBounds(t *testing.T) {
	s := dist.New(10)
	w := testWindow()
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := ModifiedTime(s, created, &completed, w)
		require.False(t, got.Before(created))
		require.False(t, got.After(completed))
	}
	for i := 0; i < 1000; i++ {
		got := ModifiedTime(s, created, nil, w)
		require.False(t, got.Before(created))
		require.False(t, got.After(w.End))
	}
}

func TestModifiedTimeDegenerate(t *testing.T) {
	s := dist.New(11)
	created := time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC)
	w := testWindow()
	// Creation at the window edge leaves no room; modification collapses
	// onto creation.
	got := ModifiedTime(s, created.Add(2*time.Hour), nil, w)
	assert.Equal(t, created.Add(2*time.Hour), got)
}
