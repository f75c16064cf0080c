package model

import "time"

type UploaderStats struct {
	NotesStats struct {
		Total       int `json:"total"`
		Public      int `json:"public"`
		TotalRated  int `json:"total_rated"`
		RatingsRecv int `json:"ratings_received"`
	} `json:"notes_stats"`
	Reputation struct {
		Current     int `json:"current"`
		EventsCount int `json:"events_count"`
	} `json:"reputation"`
	ActivityStats struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
	} `json:"activity_stats"`
}

// DashboardStats is the public site overview: headline counts, the
// best and newest public notes, per-category volume, and the reputation
// leaderboard.
type DashboardStats struct {
	NoteCount     int `json:"note_count"`
	CategoryCount int `json:"category_count"`
	UserCount     int `json:"user_count"`

	NotesPerCategory []CategoryNoteCount `json:"notes_per_category"`
	TopNotes         []*Note             `json:"top_notes"`
	RecentNotes      []*Note             `json:"recent_notes"`
	Leaderboard      []LeaderboardEntry  `json:"leaderboard"`
}

type CategoryNoteCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type LeaderboardEntry struct {
	Username   string `json:"username"`
	UserType   string `json:"user_type"`
	Reputation int    `json:"reputation"`
}

type SystemStats struct {
	CPUUsagePercent    float64 `json:"cpu_usage_percent"`
	MemoryUsagePercent float64 `json:"memory_usage_percent"`
	MemoryUsedBytes    uint64  `json:"memory_used_bytes"`
	GoroutineCount     int     `json:"goroutine_count"`
}
