package adaptive

import (
	"time"

	"github.com/architect/medquiz/internal/common/errors"
)

// Progression thresholds: 3 correct out of the last 4 answers at a level
// to advance, 2 wrong while at a level to drop back.
const (
	levelUpWindow          = 4
	levelUpCorrectRequired = 3
	levelDownWrongCount    = 2
)

// ProcessAnswer folds one answer into a user's progress and returns the
// updated aggregate. The input is never mutated; callers persist the
// returned value. The second return value is non-nil when the answer
// moved the category's difficulty.
//
// Level-up is evaluated before level-down and at most one transition
// happens per answer. The wrong-answer counter on the vacated tracker is
// reset on any transition; the window history of the destination level is
// left as-is from any earlier visit.
func ProcessAnswer(progress UserProgress, answer Answer, question Question) (UserProgress, *LevelChange, error) {
	if question.Category == "" {
		return progress, nil, errors.Validation("invalid question", "question has no category")
	}
	if answer.TimeTaken < 0 {
		return progress, nil, errors.Validation("invalid answer", "time taken cannot be negative")
	}

	p := progress.clone()
	if p.CategoryProgress == nil {
		p.CategoryProgress = make(map[string]CategoryProgress)
	}
	if p.Trackers == nil {
		p.Trackers = make(map[string]WindowTracker)
	}

	now := time.Now().UTC()
	category := question.Category
	subcategory := question.Subcategory
	if subcategory == "" {
		subcategory = category
	}

	cat, ok := p.CategoryProgress[category]
	if !ok {
		cat = CategoryProgress{CurrentDifficulty: Foundational, LastUpdated: now}
	}

	key := TrackerKey(category, subcategory, cat.CurrentDifficulty)
	tracker := p.Trackers[key]

	// Slide the outcome window, keeping only the last 4 entries.
	tracker.RecentOutcomes = append(tracker.RecentOutcomes, answer.Correct)
	if len(tracker.RecentOutcomes) > levelUpWindow {
		tracker.RecentOutcomes = tracker.RecentOutcomes[len(tracker.RecentOutcomes)-levelUpWindow:]
	}

	cat.TotalAnswered++
	if answer.Correct {
		cat.TotalCorrect++
		cat.CorrectStreak++
		p.CurrentStreak++
		if p.CurrentStreak > p.HighestStreak {
			p.HighestStreak = p.CurrentStreak
		}
	} else {
		cat.CorrectStreak = 0
		p.CurrentStreak = 0
		tracker.WrongCountAtLevel++
	}

	var change *LevelChange

	// Level up: requires a full window with at least 3 of 4 correct.
	if len(tracker.RecentOutcomes) >= levelUpWindow {
		correct := 0
		for _, ok := range tracker.RecentOutcomes[len(tracker.RecentOutcomes)-levelUpWindow:] {
			if ok {
				correct++
			}
		}
		if correct >= levelUpCorrectRequired && cat.CurrentDifficulty < Advanced {
			change = &LevelChange{
				Category:    category,
				Subcategory: subcategory,
				From:        cat.CurrentDifficulty,
				To:          cat.CurrentDifficulty.Next(),
				Up:          true,
			}
			cat.CurrentDifficulty = change.To
		}
	}

	// Level down: only if no level-up fired on this answer.
	if change == nil && tracker.WrongCountAtLevel >= levelDownWrongCount && cat.CurrentDifficulty > Foundational {
		change = &LevelChange{
			Category:    category,
			Subcategory: subcategory,
			From:        cat.CurrentDifficulty,
			To:          cat.CurrentDifficulty.Prev(),
			Up:          false,
		}
		cat.CurrentDifficulty = change.To
	}

	if change != nil {
		// The new level's tracker keeps whatever history an earlier visit
		// left behind; only the vacated level's wrong count is cleared.
		newKey := TrackerKey(category, subcategory, cat.CurrentDifficulty)
		if _, ok := p.Trackers[newKey]; !ok {
			p.Trackers[newKey] = WindowTracker{}
		}
		tracker.WrongCountAtLevel = 0
	}

	cat.LastUpdated = now
	p.Trackers[key] = tracker
	p.CategoryProgress[category] = cat

	p.TotalQuestionsAnswered++
	if answer.Correct {
		p.TotalCorrect++
	}
	p.TotalTimeSpent += answer.TimeTaken
	p.LastActivity = now

	return p, change, nil
}
