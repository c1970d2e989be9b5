package models

import "time"

// ActivityType classifies a gamification-relevant event.
type ActivityType string

const (
	ActivityQuiz         ActivityType = "quiz"
	ActivityFlashcards   ActivityType = "flashcards"
	ActivityGame         ActivityType = "game"
	ActivityCheckin      ActivityType = "checkin"
	ActivityGoalAchieved ActivityType = "goal_achieved"
	ActivityLevelUp      ActivityType = "level_up"
	ActivityStreakBonus  ActivityType = "streak_bonus"
)

// GoalKind identifies one of the five daily goal counters.
type GoalKind string

const (
	GoalQuizzes    GoalKind = "quizzes"
	GoalFlashcards GoalKind = "flashcards"
	GoalGames      GoalKind = "games"
	GoalStudyTime  GoalKind = "studyTime"
	GoalXPTarget   GoalKind = "xpTarget"
)

// MaxRecentActivities bounds the recent activity feed.
const MaxRecentActivities = 50

// UserProgress is the per-user gamification record. It is the sole source of
// truth for a user's progress state and is always read, mutated and written
// back as a whole unit.
type UserProgress struct {
	UserID string `json:"userId"`

	XP    int `json:"xp"`
	Level int `json:"level"` // derived from XP, recomputed on every XP change

	Coins      CoinWallet `json:"coins"`
	Streak     Streak     `json:"streak"`
	DailyGoals DailyGoals `json:"dailyGoals"`

	Subjects      map[string]SubjectStats  `json:"subjects"`
	DailyCheckins map[string]CheckinRecord `json:"dailyCheckins"` // keyed by YYYY-MM-DD

	RecentActivities []ActivityEntry `json:"recentActivities"` // newest first, capped
	GameHistory      GameHistory     `json:"gameHistory"`

	TotalQuizzes    int `json:"totalQuizzes"`
	TotalFlashcards int `json:"totalFlashcards"`
	TotalGames      int `json:"totalGames"`
	TotalStudyTime  int `json:"totalStudyTime"` // minutes

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CoinWallet tracks the coin economy. current == totalEarned - totalSpent
// holds at every exit point.
type CoinWallet struct {
	Current     int         `json:"current"`
	TotalEarned int         `json:"totalEarned"`
	TotalSpent  int         `json:"totalSpent"`
	History     []CoinEntry `json:"history"`
}

// CoinEntry records one earn or spend event.
type CoinEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "earned" or "spent"
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Streak tracks consecutive study days.
type Streak struct {
	CurrentStreak   int         `json:"currentStreak"`
	LongestStreak   int         `json:"longestStreak"`
	LastStudyDate   time.Time   `json:"lastStudyDate"`
	ConsecutiveDays int         `json:"consecutiveDays"`
	StreakBonus     int         `json:"streakBonus"`
	History         []StreakDay `json:"history"`
}

// StreakDay is one day's entry in the streak history.
type StreakDay struct {
	Date                time.Time `json:"date"`
	ActivitiesCompleted int       `json:"activitiesCompleted"`
	XPEarned            int       `json:"xpEarned"`
	CoinsEarned         int       `json:"coinsEarned"`
}

// GoalSet holds targets or progress for the five daily goal kinds.
type GoalSet struct {
	Quizzes    int `json:"quizzes"`
	Flashcards int `json:"flashcards"`
	Games      int `json:"games"`
	StudyTime  int `json:"studyTime"` // minutes
	XPTarget   int `json:"xpTarget"`
}

// Get returns the counter for a goal kind.
func (g GoalSet) Get(kind GoalKind) int {
	switch kind {
	case GoalQuizzes:
		return g.Quizzes
	case GoalFlashcards:
		return g.Flashcards
	case GoalGames:
		return g.Games
	case GoalStudyTime:
		return g.StudyTime
	case GoalXPTarget:
		return g.XPTarget
	}
	return 0
}

// Add increments the counter for a goal kind.
func (g *GoalSet) Add(kind GoalKind, amount int) {
	switch kind {
	case GoalQuizzes:
		g.Quizzes += amount
	case GoalFlashcards:
		g.Flashcards += amount
	case GoalGames:
		g.Games += amount
	case GoalStudyTime:
		g.StudyTime += amount
	case GoalXPTarget:
		g.XPTarget += amount
	}
}

// Meets reports whether every counter in g meets or exceeds the target.
func (g GoalSet) Meets(target GoalSet) bool {
	return g.Quizzes >= target.Quizzes &&
		g.Flashcards >= target.Flashcards &&
		g.Games >= target.Games &&
		g.StudyTime >= target.StudyTime &&
		g.XPTarget >= target.XPTarget
}

// DailyGoals holds the current targets, today's progress and the achievement
// history.
type DailyGoals struct {
	Current   GoalSet      `json:"current"`
	Completed GoalSet      `json:"completed"`
	Date      time.Time    `json:"date"` // day the Completed counters belong to
	History   []GoalRecord `json:"history"`
}

// GoalRecord is appended when all five daily goals are met on a day.
type GoalRecord struct {
	Date       time.Time `json:"date"`
	Goals      GoalSet   `json:"goals"`
	Completed  GoalSet   `json:"completed"`
	Achieved   bool      `json:"achieved"`
	BonusCoins int       `json:"bonusCoins"`
}

// SubjectStats tracks per-subject study progress.
type SubjectStats struct {
	Progress         float64   `json:"progress"` // 0-100, derived from lessons
	CompletedLessons int       `json:"completedLessons"`
	TotalLessons     int       `json:"totalLessons"`
	AverageScore     float64   `json:"averageScore"`
	LastStudied      time.Time `json:"lastStudied"`
	TotalXP          int       `json:"totalXP"`
	TimeSpent        int       `json:"timeSpent"` // minutes
}

// CheckinRecord is the once-per-day check-in entry.
type CheckinRecord struct {
	Date                time.Time `json:"date"`
	XPEarned            int       `json:"xpEarned"`
	CoinsEarned         int       `json:"coinsEarned"`
	ActivitiesCompleted int       `json:"activitiesCompleted"`
	GoalsAchieved       int       `json:"goalsAchieved"`
	StreakBonus         int       `json:"streakBonus"`
	CheckinTime         time.Time `json:"checkinTime"`
}

// ActivityEntry is an immutable log record describing one gamification event.
type ActivityEntry struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject,omitempty"`
	Description string       `json:"description"`
	XPEarned    int          `json:"xpEarned"`
	CoinsEarned int          `json:"coinsEarned"`
	Timestamp   time.Time    `json:"timestamp"`
}

// GameHistory holds the append-only per-activity result logs.
type GameHistory struct {
	Quiz       []QuizResult      `json:"quiz"`
	Flashcards []FlashcardResult `json:"flashcards"`
	Games      []GameResult      `json:"games"`
}

// QuizResult records one completed quiz.
type QuizResult struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Subject        string    `json:"subject"`
	Date           time.Time `json:"date"`
	TimeSpent      int       `json:"timeSpent"`
	XPEarned       int       `json:"xpEarned"`
	CoinsEarned    int       `json:"coinsEarned"`
}

// FlashcardResult records one flashcard session.
type FlashcardResult struct {
	ID           string    `json:"id"`
	CardsStudied int       `json:"cardsStudied"`
	KnownCards   int       `json:"knownCards"`
	Subject      string    `json:"subject"`
	Date         time.Time `json:"date"`
	TimeSpent    int       `json:"timeSpent"`
	XPEarned     int       `json:"xpEarned"`
	CoinsEarned  int       `json:"coinsEarned"`
}

// GameResult records one learning game.
type GameResult struct {
	ID          string    `json:"id"`
	GameType    string    `json:"gameType"`
	Score       int       `json:"score"`
	Subject     string    `json:"subject"`
	Date        time.Time `json:"date"`
	TimeSpent   int       `json:"timeSpent"`
	XPEarned    int       `json:"xpEarned"`
	CoinsEarned int       `json:"coinsEarned"`
}
