// Package progress implements the gamification state machine: XP, levels,
// coins, streaks, daily goals and activity logs. All functions are pure
// mutations of a UserProgress record and take the current time explicitly so
// calendar-day logic is deterministic under test. Persistence and locking are
// the caller's concern.
package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cogniflow/cogniflow/internal/models"
)

// Earning and bonus rules.
const (
	xpPerLevel = 250

	quizXPPerPoint        = 2
	quizPointsPerCoin     = 10
	flashcardXPPerCard    = 5
	flashcardCardsPerCoin = 5
	gameXPPerPoint        = 3
	gamePointsPerCoin     = 15

	levelUpCoinsPerLevel = 25

	checkinBaseXP        = 50
	checkinBaseCoins     = 10
	checkinBonusPerWeek  = 10
	streakBonusPerWeek   = 25
	goalBonusCoins       = 50
	goalBonusXP          = 100

	defaultTimeSpent = 5 // minutes
	defaultSubject   = "General"
)

var (
	// ErrInvalidAmount is returned for non-positive coin amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientCoins is returned when a spend exceeds the balance.
	ErrInsufficientCoins = errors.New("insufficient coins")
)

// ComputeLevel derives the level from lifetime XP. Level is never stored
// independently of XP; every XP change recomputes it through this function.
func ComputeLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/xpPerLevel + 1
}

// DateKey returns the calendar-day key used for check-ins and goal history.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// NewRecord creates a zeroed progress record with the default subjects and
// daily goal targets. Records are fully initialized at account creation so
// readers never need fallback defaults.
func NewRecord(userID string, now time.Time) *models.UserProgress {
	subjects := make(map[string]models.SubjectStats, 4)
	for _, name := range []string{"Mathematics", "Science", "English", "Social Studies"} {
		subjects[name] = models.SubjectStats{TotalLessons: 20, LastStudied: now}
	}
	return &models.UserProgress{
		UserID: userID,
		XP:     0,
		Level:  1,
		Coins:  models.CoinWallet{History: []models.CoinEntry{}},
		Streak: models.Streak{History: []models.StreakDay{}},
		DailyGoals: models.DailyGoals{
			Current: models.GoalSet{
				Quizzes:    3,
				Flashcards: 2,
				Games:      2,
				StudyTime:  30,
				XPTarget:   100,
			},
			Date:    now,
			History: []models.GoalRecord{},
		},
		Subjects:         subjects,
		DailyCheckins:    map[string]models.CheckinRecord{},
		RecentActivities: []models.ActivityEntry{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ActivityInput carries a quiz, flashcard or game result.
type ActivityInput struct {
	Type           models.ActivityType
	Subject        string
	TimeSpent      int // minutes
	Score          int
	TotalQuestions int
	CardsStudied   int
	KnownCards     int
	GameType       string
}

func (in *ActivityInput) normalize() {
	if in.Subject == "" {
		in.Subject = defaultSubject
	}
	if in.TimeSpent <= 0 {
		in.TimeSpent = defaultTimeSpent
	}
	if in.Type == models.ActivityGame && in.GameType == "" {
		in.GameType = "unknown"
	}
}

// Outcome summarizes the direct effect of one recorded activity, before
// level-up, streak or goal bonuses.
type Outcome struct {
	XPEarned    int
	CoinsEarned int
	LeveledUp   bool
	NewLevel    int
}

// ApplyActivity records a quiz, flashcard session or game result: earning
// rules, history append, subject stats, level recomputation with a one-shot
// level-up bonus, the activity feed entry, and the follow-on streak and daily
// goal updates. Input must already be validated.
func ApplyActivity(rec *models.UserProgress, in ActivityInput, now time.Time) Outcome {
	in.normalize()
	rollover(rec, now)

	var xpEarned, coinsEarned, points int
	switch in.Type {
	case models.ActivityQuiz:
		xpEarned = in.Score * quizXPPerPoint
		coinsEarned = in.Score / quizPointsPerCoin
		points = in.Score
		rec.TotalQuizzes++
		rec.GameHistory.Quiz = append(rec.GameHistory.Quiz, models.QuizResult{
			ID:             uuid.NewString(),
			Score:          in.Score,
			TotalQuestions: in.TotalQuestions,
			Subject:        in.Subject,
			Date:           now,
			TimeSpent:      in.TimeSpent,
			XPEarned:       xpEarned,
			CoinsEarned:    coinsEarned,
		})
	case models.ActivityFlashcards:
		xpEarned = in.CardsStudied * flashcardXPPerCard
		coinsEarned = in.KnownCards / flashcardCardsPerCoin
		points = in.CardsStudied
		rec.TotalFlashcards++
		rec.GameHistory.Flashcards = append(rec.GameHistory.Flashcards, models.FlashcardResult{
			ID:           uuid.NewString(),
			CardsStudied: in.CardsStudied,
			KnownCards:   in.KnownCards,
			Subject:      in.Subject,
			Date:         now,
			TimeSpent:    in.TimeSpent,
			XPEarned:     xpEarned,
			CoinsEarned:  coinsEarned,
		})
	case models.ActivityGame:
		xpEarned = in.Score * gameXPPerPoint
		coinsEarned = in.Score / gamePointsPerCoin
		points = in.Score
		rec.TotalGames++
		rec.GameHistory.Games = append(rec.GameHistory.Games, models.GameResult{
			ID:          uuid.NewString(),
			GameType:    in.GameType,
			Score:       in.Score,
			Subject:     in.Subject,
			Date:        now,
			TimeSpent:   in.TimeSpent,
			XPEarned:    xpEarned,
			CoinsEarned: coinsEarned,
		})
	}

	updateSubject(rec, in, xpEarned, now)
	rec.TotalStudyTime += in.TimeSpent

	oldLevel := rec.Level
	award(rec, xpEarned, coinsEarned, string(in.Type)+" completion", now)

	addActivity(rec, models.ActivityEntry{
		Type:        in.Type,
		Subject:     in.Subject,
		Description: fmt.Sprintf("%s completed - %d points", in.Type, points),
		XPEarned:    xpEarned,
		CoinsEarned: coinsEarned,
	}, now)

	// Activities count toward the day's check-in record if one exists.
	if c, ok := rec.DailyCheckins[DateKey(now)]; ok {
		c.ActivitiesCompleted++
		rec.DailyCheckins[DateKey(now)] = c
	}

	ApplyStreak(rec, now)

	ApplyGoalProgress(rec, goalKindFor(in.Type), 1, now)
	ApplyGoalProgress(rec, models.GoalStudyTime, in.TimeSpent, now)
	ApplyGoalProgress(rec, models.GoalXPTarget, xpEarned, now)

	rec.UpdatedAt = now
	return Outcome{
		XPEarned:    xpEarned,
		CoinsEarned: coinsEarned,
		LeveledUp:   rec.Level > oldLevel,
		NewLevel:    rec.Level,
	}
}

func goalKindFor(t models.ActivityType) models.GoalKind {
	switch t {
	case models.ActivityQuiz:
		return models.GoalQuizzes
	case models.ActivityFlashcards:
		return models.GoalFlashcards
	default:
		return models.GoalGames
	}
}

func updateSubject(rec *models.UserProgress, in ActivityInput, xpEarned int, now time.Time) {
	s, ok := rec.Subjects[in.Subject]
	if !ok {
		// Unknown subjects leave the subject map untouched.
		return
	}

	score := float64(in.Score)
	if in.Type == models.ActivityFlashcards && in.CardsStudied > 0 {
		score = float64(in.KnownCards) / float64(in.CardsStudied) * 100
	}

	s.CompletedLessons++
	s.AverageScore = (s.AverageScore + score) / 2
	if s.TotalLessons > 0 {
		s.Progress = float64(s.CompletedLessons) / float64(s.TotalLessons) * 100
	}
	if s.Progress > 100 {
		s.Progress = 100
	}
	s.LastStudied = now
	s.TotalXP += xpEarned
	s.TimeSpent += in.TimeSpent
	rec.Subjects[in.Subject] = s
}

// ApplyCheckin records the once-per-day explicit check-in. It is idempotent
// per calendar day: a repeat call returns the existing record unchanged.
func ApplyCheckin(rec *models.UserProgress, now time.Time) (models.CheckinRecord, bool) {
	rollover(rec, now)

	key := DateKey(now)
	if existing, ok := rec.DailyCheckins[key]; ok {
		return existing, false
	}

	streakBonus := rec.Streak.CurrentStreak / 7 * checkinBonusPerWeek
	xpEarned := checkinBaseXP + streakBonus
	coinsEarned := checkinBaseCoins + streakBonus/10

	checkin := models.CheckinRecord{
		Date:        now,
		XPEarned:    xpEarned,
		CoinsEarned: coinsEarned,
		StreakBonus: streakBonus,
		CheckinTime: now,
	}
	rec.DailyCheckins[key] = checkin

	award(rec, xpEarned, coinsEarned, "Daily check-in bonus", now)

	addActivity(rec, models.ActivityEntry{
		Type:        models.ActivityCheckin,
		Description: fmt.Sprintf("Daily check-in (%d day streak)", rec.Streak.CurrentStreak),
		XPEarned:    xpEarned,
		CoinsEarned: coinsEarned,
	}, now)

	rec.UpdatedAt = now
	return checkin, true
}

// ApplyStreak advances the study streak. Same calendar day is a no-op; a study
// day exactly one day after the last extends the streak and recomputes the
// weekly bonus; a longer gap resets the streak to 1.
func ApplyStreak(rec *models.UserProgress, now time.Time) {
	last := rec.Streak.LastStudyDate
	if !last.IsZero() && sameDay(last, now) {
		return
	}

	yesterday := now.AddDate(0, 0, -1)
	if !last.IsZero() && sameDay(last, yesterday) {
		rec.Streak.CurrentStreak++
		rec.Streak.ConsecutiveDays++
		if rec.Streak.CurrentStreak > rec.Streak.LongestStreak {
			rec.Streak.LongestStreak = rec.Streak.CurrentStreak
		}

		bonus := rec.Streak.CurrentStreak / 7 * streakBonusPerWeek
		if bonus > 0 && bonus > rec.Streak.StreakBonus {
			award(rec, bonus, bonus/10, "Streak bonus", now)
			addActivity(rec, models.ActivityEntry{
				Type:        models.ActivityStreakBonus,
				Description: fmt.Sprintf("%d day streak bonus!", rec.Streak.CurrentStreak),
				XPEarned:    bonus,
				CoinsEarned: bonus / 10,
			}, now)
		}
		rec.Streak.StreakBonus = bonus
	} else {
		rec.Streak.CurrentStreak = 1
		rec.Streak.ConsecutiveDays = 1
		rec.Streak.StreakBonus = 0
	}

	rec.Streak.LastStudyDate = now

	day := models.StreakDay{Date: now}
	if c, ok := rec.DailyCheckins[DateKey(now)]; ok {
		day.ActivitiesCompleted = c.ActivitiesCompleted
		day.XPEarned = c.XPEarned
		day.CoinsEarned = c.CoinsEarned
	}
	rec.Streak.History = append(rec.Streak.History, day)
	rec.UpdatedAt = now
}

// ApplyGoalProgress advances one daily goal counter and, when all five
// counters meet their targets for the first time that day, grants the daily
// goal bonus exactly once.
func ApplyGoalProgress(rec *models.UserProgress, kind models.GoalKind, amount int, now time.Time) {
	rollover(rec, now)

	rec.DailyGoals.Completed.Add(kind, amount)

	if !rec.DailyGoals.Completed.Meets(rec.DailyGoals.Current) {
		return
	}
	key := DateKey(now)
	for _, h := range rec.DailyGoals.History {
		if DateKey(h.Date) == key {
			return // bonus already granted today
		}
	}

	award(rec, goalBonusXP, goalBonusCoins, "Daily goals bonus", now)

	rec.DailyGoals.History = append(rec.DailyGoals.History, models.GoalRecord{
		Date:       now,
		Goals:      rec.DailyGoals.Current,
		Completed:  rec.DailyGoals.Completed,
		Achieved:   true,
		BonusCoins: goalBonusCoins,
	})

	addActivity(rec, models.ActivityEntry{
		Type:        models.ActivityGoalAchieved,
		Description: "Daily goals completed!",
		XPEarned:    goalBonusXP,
		CoinsEarned: goalBonusCoins,
	}, now)

	if c, ok := rec.DailyCheckins[key]; ok {
		c.GoalsAchieved++
		rec.DailyCheckins[key] = c
	}
	rec.UpdatedAt = now
}

// ApplySpend debits the coin wallet, preserving
// current == totalEarned - totalSpent.
func ApplySpend(rec *models.UserProgress, amount int, reason string, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > rec.Coins.Current {
		return ErrInsufficientCoins
	}
	rec.Coins.Current -= amount
	rec.Coins.TotalSpent += amount
	rec.Coins.History = append(rec.Coins.History, models.CoinEntry{
		ID:        uuid.NewString(),
		Type:      "spent",
		Amount:    amount,
		Reason:    reason,
		Timestamp: now,
	})
	rec.UpdatedAt = now
	return nil
}

// award is the single code path for crediting XP and coins. It recomputes the
// level after every XP change and grants the level-up coin bonus exactly once
// per crossing.
func award(rec *models.UserProgress, xp, coins int, reason string, now time.Time) {
	rec.XP += xp
	if coins > 0 {
		rec.Coins.Current += coins
		rec.Coins.TotalEarned += coins
		rec.Coins.History = append(rec.Coins.History, models.CoinEntry{
			ID:        uuid.NewString(),
			Type:      "earned",
			Amount:    coins,
			Reason:    reason,
			Timestamp: now,
		})
	}

	oldLevel := rec.Level
	rec.Level = ComputeLevel(rec.XP)
	if rec.Level > oldLevel {
		bonus := rec.Level * levelUpCoinsPerLevel
		rec.Coins.Current += bonus
		rec.Coins.TotalEarned += bonus
		rec.Coins.History = append(rec.Coins.History, models.CoinEntry{
			ID:        uuid.NewString(),
			Type:      "earned",
			Amount:    bonus,
			Reason:    "Level up bonus",
			Timestamp: now,
		})
		addActivity(rec, models.ActivityEntry{
			Type:        models.ActivityLevelUp,
			Description: fmt.Sprintf("Level up! Reached level %d", rec.Level),
			XPEarned:    0,
			CoinsEarned: bonus,
		}, now)
	}
}

// addActivity prepends to the recent activity feed, evicting the oldest
// entries past the cap.
func addActivity(rec *models.UserProgress, entry models.ActivityEntry, now time.Time) {
	entry.ID = uuid.NewString()
	entry.Timestamp = now
	rec.RecentActivities = append([]models.ActivityEntry{entry}, rec.RecentActivities...)
	if len(rec.RecentActivities) > models.MaxRecentActivities {
		rec.RecentActivities = rec.RecentActivities[:models.MaxRecentActivities]
	}
}

// rollover resets the daily goal counters on the first mutation of a new
// calendar day. The streak fields themselves are handled by ApplyStreak.
func rollover(rec *models.UserProgress, now time.Time) {
	if !rec.DailyGoals.Date.IsZero() && sameDay(rec.DailyGoals.Date, now) {
		return
	}
	rec.DailyGoals.Completed = models.GoalSet{}
	rec.DailyGoals.Date = now
}
