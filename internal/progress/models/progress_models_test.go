package models

import (
	"testing"
	"time"

	"github.com/architect/medquiz/internal/adaptive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRecordRoundTrip(t *testing.T) {
	progress := adaptive.NewUserProgress()
	progress.CategoryProgress["cardiology"] = adaptive.CategoryProgress{
		CurrentDifficulty: adaptive.Proficient,
		CorrectStreak:     3,
		TotalAnswered:     20,
		TotalCorrect:      15,
	}
	progress.Trackers[adaptive.TrackerKey("cardiology", "ischemic-disease", adaptive.Proficient)] = adaptive.WindowTracker{
		RecentOutcomes:    []bool{true, false, true, true},
		WrongCountAtLevel: 1,
	}
	progress.TotalQuestionsAnswered = 20
	progress.TotalCorrect = 15
	progress.CurrentStreak = 2
	progress.HighestStreak = 7
	progress.TotalTimeSpent = 900
	progress.QualifyingSessionsCompleted = 2
	progress.FullBankUnlocked = false
	progress.LastActivity = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var record ProgressRecord
	record.UserID = "user-1"
	record.FromProgress(progress)
	restored := record.ToProgress()

	assert.Equal(t, progress.CategoryProgress, restored.CategoryProgress)
	assert.Equal(t, progress.Trackers, restored.Trackers)
	assert.Equal(t, progress.TotalQuestionsAnswered, restored.TotalQuestionsAnswered)
	assert.Equal(t, progress.CurrentStreak, restored.CurrentStreak)
	assert.Equal(t, progress.HighestStreak, restored.HighestStreak)
	assert.Equal(t, progress.QualifyingSessionsCompleted, restored.QualifyingSessionsCompleted)
	assert.Equal(t, progress.LastActivity, restored.LastActivity)
}

func TestCategoryMapJSONColumn(t *testing.T) {
	original := CategoryMap{
		"neurology": {
			CurrentDifficulty: adaptive.Competent,
			TotalAnswered:     8,
			TotalCorrect:      6,
		},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored CategoryMap
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestTrackerMapJSONColumn(t *testing.T) {
	key := adaptive.TrackerKey("neurology", "stroke", adaptive.Foundational)
	original := TrackerMap{
		key: {RecentOutcomes: []bool{true, true, false}, WrongCountAtLevel: 1},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored TrackerMap
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestStringListScanFromString(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(`["cardiology","neurology"]`))
	assert.Equal(t, StringList{"cardiology", "neurology"}, list)
}
