package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/progress"
)

var day0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func assertWalletConsistent(t *testing.T, rec *models.UserProgress) {
	t.Helper()
	assert.Equal(t, rec.Coins.TotalEarned-rec.Coins.TotalSpent, rec.Coins.Current,
		"current must equal totalEarned - totalSpent")
}

func TestComputeLevel(t *testing.T) {
	assert.Equal(t, 1, progress.ComputeLevel(0))
	assert.Equal(t, 1, progress.ComputeLevel(249))
	assert.Equal(t, 2, progress.ComputeLevel(250))
	assert.Equal(t, 16, progress.ComputeLevel(3800))
	assert.Equal(t, 1, progress.ComputeLevel(-10))
}

func TestNewRecord(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, 0, rec.XP)
	assert.Equal(t, 1, rec.Level)
	assert.Len(t, rec.Subjects, 4)
	assert.Contains(t, rec.Subjects, "Mathematics")
	assert.NotNil(t, rec.DailyCheckins)
	assert.NotNil(t, rec.RecentActivities)
	assert.Greater(t, rec.DailyGoals.Current.Quizzes, 0)
}

func TestApplyActivity_Quiz(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	out := progress.ApplyActivity(rec, progress.ActivityInput{
		Type:           models.ActivityQuiz,
		Subject:        "Mathematics",
		Score:          80,
		TotalQuestions: 10,
		TimeSpent:      10,
	}, day0)

	assert.Equal(t, 160, out.XPEarned)
	assert.Equal(t, 8, out.CoinsEarned)
	assert.False(t, out.LeveledUp)
	assert.Equal(t, 1, out.NewLevel)

	assert.Equal(t, 160, rec.XP)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 8, rec.Coins.Current)
	assert.Equal(t, 1, rec.TotalQuizzes)
	assert.Equal(t, 10, rec.TotalStudyTime)

	require.Len(t, rec.GameHistory.Quiz, 1)
	assert.Equal(t, 80, rec.GameHistory.Quiz[0].Score)
	assert.Equal(t, "Mathematics", rec.GameHistory.Quiz[0].Subject)

	var quizEntries int
	for _, e := range rec.RecentActivities {
		if e.Type == models.ActivityQuiz {
			quizEntries++
		}
	}
	assert.Equal(t, 1, quizEntries)

	assertWalletConsistent(t, rec)
}

func TestApplyActivity_FlashcardsCrossesLevel(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	progress.ApplyActivity(rec, progress.ActivityInput{
		Type:           models.ActivityQuiz,
		Score:          80,
		TotalQuestions: 10,
	}, day0)

	out := progress.ApplyActivity(rec, progress.ActivityInput{
		Type:         models.ActivityFlashcards,
		CardsStudied: 20,
		KnownCards:   15,
	}, day0)

	assert.Equal(t, 100, out.XPEarned)
	assert.Equal(t, 3, out.CoinsEarned)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, 2, out.NewLevel)

	assert.Equal(t, 260, rec.XP)
	assert.Equal(t, 2, rec.Level)
	// 8 from the quiz, 3 from the cards, 50 level-up bonus.
	assert.Equal(t, 61, rec.Coins.Current)

	var levelUps int
	for _, e := range rec.RecentActivities {
		if e.Type == models.ActivityLevelUp {
			levelUps++
			assert.Equal(t, 50, e.CoinsEarned)
		}
	}
	assert.Equal(t, 1, levelUps)

	assertWalletConsistent(t, rec)
}

func TestApplyActivity_Game(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	out := progress.ApplyActivity(rec, progress.ActivityInput{
		Type:     models.ActivityGame,
		GameType: "math-race",
		Score:    45,
	}, day0)

	assert.Equal(t, 135, out.XPEarned)
	assert.Equal(t, 3, out.CoinsEarned)
	require.Len(t, rec.GameHistory.Games, 1)
	assert.Equal(t, "math-race", rec.GameHistory.Games[0].GameType)
	assertWalletConsistent(t, rec)
}

func TestApplyActivity_UpdatesSubjectStats(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	progress.ApplyActivity(rec, progress.ActivityInput{
		Type:           models.ActivityQuiz,
		Subject:        "Science",
		Score:          90,
		TotalQuestions: 10,
		TimeSpent:      15,
	}, day0)

	s := rec.Subjects["Science"]
	assert.Equal(t, 1, s.CompletedLessons)
	assert.Equal(t, 45.0, s.AverageScore)
	assert.Equal(t, 5.0, s.Progress)
	assert.Equal(t, 180, s.TotalXP)
	assert.Equal(t, 15, s.TimeSpent)
	assert.Equal(t, day0, s.LastStudied)

	// Unknown subjects leave the map untouched.
	progress.ApplyActivity(rec, progress.ActivityInput{
		Type:  models.ActivityQuiz,
		Score: 50, Subject: "Astrology",
	}, day0)
	assert.NotContains(t, rec.Subjects, "Astrology")
}

func TestApplyActivity_BoundedActivityLog(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	for i := 0; i < 60; i++ {
		progress.ApplyActivity(rec, progress.ActivityInput{
			Type:  models.ActivityQuiz,
			Score: 1,
		}, day0)
	}

	assert.Len(t, rec.RecentActivities, models.MaxRecentActivities)
	// Newest first.
	for i := 1; i < len(rec.RecentActivities); i++ {
		assert.False(t, rec.RecentActivities[i].Timestamp.After(rec.RecentActivities[i-1].Timestamp))
	}
}

func TestApplyCheckin_Idempotent(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	first, created := progress.ApplyCheckin(rec, day0)
	require.True(t, created)
	assert.Equal(t, 50, first.XPEarned)
	assert.Equal(t, 10, first.CoinsEarned)

	xpBefore := rec.XP
	coinsBefore := rec.Coins.Current
	activitiesBefore := len(rec.RecentActivities)

	second, created := progress.ApplyCheckin(rec, day0.Add(3*time.Hour))
	assert.False(t, created)
	assert.Equal(t, first, second)
	assert.Equal(t, xpBefore, rec.XP)
	assert.Equal(t, coinsBefore, rec.Coins.Current)
	assert.Len(t, rec.RecentActivities, activitiesBefore)

	assertWalletConsistent(t, rec)
}

func TestApplyCheckin_StreakBonus(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.Streak.CurrentStreak = 14
	rec.Streak.LastStudyDate = day0.AddDate(0, 0, -1)

	checkin, created := progress.ApplyCheckin(rec, day0)
	require.True(t, created)
	assert.Equal(t, 20, checkin.StreakBonus)
	assert.Equal(t, 70, checkin.XPEarned)
	assert.Equal(t, 12, checkin.CoinsEarned)
	assertWalletConsistent(t, rec)
}

func TestApplyStreak_Continuity(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.Streak.CurrentStreak = 3
	rec.Streak.LongestStreak = 5
	rec.Streak.ConsecutiveDays = 3
	rec.Streak.LastStudyDate = day0.AddDate(0, 0, -1)

	progress.ApplyStreak(rec, day0)

	assert.Equal(t, 4, rec.Streak.CurrentStreak)
	assert.Equal(t, 5, rec.Streak.LongestStreak)
	assert.Equal(t, progress.DateKey(day0), progress.DateKey(rec.Streak.LastStudyDate))
	require.NotEmpty(t, rec.Streak.History)
}

func TestApplyStreak_GapResets(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.Streak.CurrentStreak = 9
	rec.Streak.LongestStreak = 9
	rec.Streak.StreakBonus = 25
	rec.Streak.LastStudyDate = day0.AddDate(0, 0, -3)

	progress.ApplyStreak(rec, day0)

	assert.Equal(t, 1, rec.Streak.CurrentStreak)
	assert.Equal(t, 9, rec.Streak.LongestStreak)
	assert.Equal(t, 0, rec.Streak.StreakBonus)
}

func TestApplyStreak_SameDayNoOp(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.Streak.CurrentStreak = 4
	rec.Streak.LastStudyDate = day0.Add(-2 * time.Hour)

	progress.ApplyStreak(rec, day0)

	assert.Equal(t, 4, rec.Streak.CurrentStreak)
	assert.Empty(t, rec.Streak.History)
}

func TestApplyStreak_WeeklyBonus(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.Streak.CurrentStreak = 6
	rec.Streak.LongestStreak = 6
	rec.Streak.LastStudyDate = day0.AddDate(0, 0, -1)

	progress.ApplyStreak(rec, day0)

	assert.Equal(t, 7, rec.Streak.CurrentStreak)
	assert.Equal(t, 25, rec.Streak.StreakBonus)
	assert.Equal(t, 25, rec.XP)
	assert.Equal(t, 2, rec.Coins.Current)

	var bonusEntries int
	for _, e := range rec.RecentActivities {
		if e.Type == models.ActivityStreakBonus {
			bonusEntries++
		}
	}
	assert.Equal(t, 1, bonusEntries)
	assertWalletConsistent(t, rec)
}

func TestApplyGoalProgress_BonusOncePerDay(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	rec.DailyGoals.Current = models.GoalSet{
		Quizzes:    1,
		Flashcards: 1,
		Games:      1,
		StudyTime:  10,
		XPTarget:   50,
	}

	progress.ApplyGoalProgress(rec, models.GoalQuizzes, 1, day0)
	progress.ApplyGoalProgress(rec, models.GoalFlashcards, 1, day0)
	progress.ApplyGoalProgress(rec, models.GoalGames, 1, day0)
	progress.ApplyGoalProgress(rec, models.GoalStudyTime, 10, day0)
	assert.Empty(t, rec.DailyGoals.History, "bonus must wait for all five goals")

	progress.ApplyGoalProgress(rec, models.GoalXPTarget, 50, day0)
	require.Len(t, rec.DailyGoals.History, 1)
	assert.True(t, rec.DailyGoals.History[0].Achieved)
	assert.Equal(t, 50, rec.DailyGoals.History[0].BonusCoins)
	assert.Equal(t, 100, rec.XP)
	assert.Equal(t, 50, rec.Coins.Current)

	// More progress the same day must not grant a second bonus.
	progress.ApplyGoalProgress(rec, models.GoalQuizzes, 5, day0)
	assert.Len(t, rec.DailyGoals.History, 1)
	assert.Equal(t, 50, rec.Coins.Current)

	assertWalletConsistent(t, rec)
}

func TestGoalCountersResetNextDay(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	progress.ApplyActivity(rec, progress.ActivityInput{
		Type:  models.ActivityQuiz,
		Score: 10,
	}, day0)
	assert.Equal(t, 1, rec.DailyGoals.Completed.Quizzes)

	day1 := day0.AddDate(0, 0, 1)
	progress.ApplyActivity(rec, progress.ActivityInput{
		Type:  models.ActivityQuiz,
		Score: 10,
	}, day1)
	assert.Equal(t, 1, rec.DailyGoals.Completed.Quizzes, "previous day's counters must reset")
}

func TestGoalBonusAchievableThroughActivities(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	for i := 0; i < 3; i++ {
		progress.ApplyActivity(rec, progress.ActivityInput{Type: models.ActivityQuiz, Score: 50, TimeSpent: 10}, day0)
	}
	for i := 0; i < 2; i++ {
		progress.ApplyActivity(rec, progress.ActivityInput{Type: models.ActivityFlashcards, CardsStudied: 10, KnownCards: 5, TimeSpent: 10}, day0)
	}
	for i := 0; i < 2; i++ {
		progress.ApplyActivity(rec, progress.ActivityInput{Type: models.ActivityGame, Score: 30, TimeSpent: 10}, day0)
	}

	require.Len(t, rec.DailyGoals.History, 1)
	assert.True(t, rec.DailyGoals.History[0].Achieved)
	assertWalletConsistent(t, rec)
}

func TestApplySpend(t *testing.T) {
	rec := progress.NewRecord("u1", day0)
	progress.ApplyActivity(rec, progress.ActivityInput{Type: models.ActivityQuiz, Score: 100}, day0)
	require.Equal(t, 10, rec.Coins.Current)

	err := progress.ApplySpend(rec, 4, "Avatar hat", day0)
	require.NoError(t, err)
	assert.Equal(t, 6, rec.Coins.Current)
	assert.Equal(t, 4, rec.Coins.TotalSpent)
	assertWalletConsistent(t, rec)

	err = progress.ApplySpend(rec, 100, "Too expensive", day0)
	assert.ErrorIs(t, err, progress.ErrInsufficientCoins)

	err = progress.ApplySpend(rec, 0, "Nothing", day0)
	assert.ErrorIs(t, err, progress.ErrInvalidAmount)

	err = progress.ApplySpend(rec, -5, "Refund trick", day0)
	assert.ErrorIs(t, err, progress.ErrInvalidAmount)

	assert.Equal(t, 6, rec.Coins.Current)
	assertWalletConsistent(t, rec)
}

func TestCoinConservationAcrossSequence(t *testing.T) {
	rec := progress.NewRecord("u1", day0)

	now := day0
	for i := 0; i < 10; i++ {
		progress.ApplyActivity(rec, progress.ActivityInput{Type: models.ActivityQuiz, Score: 70, TimeSpent: 10}, now)
		progress.ApplyCheckin(rec, now)
		if rec.Coins.Current > 20 {
			require.NoError(t, progress.ApplySpend(rec, 20, "Shop item", now))
		}
		now = now.AddDate(0, 0, 1)
	}

	assertWalletConsistent(t, rec)
	assert.Equal(t, progress.ComputeLevel(rec.XP), rec.Level)
}
