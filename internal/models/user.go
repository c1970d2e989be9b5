package models

import "time"

// User is an account record. Passwords are kept as provided; securing
// authentication is out of scope for this service.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Standard   string    `json:"standard"`
	Grade      string    `json:"grade"`
	JoinDate   time.Time `json:"joinDate"`
	LastActive time.Time `json:"lastActive"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Standard string
	Limit    int
	Offset   int
}

// LeaderboardEntry is one ranked row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Standard      string `json:"standard"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"currentStreak"`
}
