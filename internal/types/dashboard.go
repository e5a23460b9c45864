package types

// DashboardData is the flat view model consumed by the presentation layer.
// Numeric fields are coerced to numbers here regardless of how the store
// represented them.
type DashboardData struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Avatar      string  `json:"avatar"`
	ResumeScore float64 `json:"resumeScore"`
	XPPoints    int     `json:"xpPoints"`
	// IsAdmin reflects the caller's elevation, not the target's, so an
	// admin viewing another user's dashboard still sees admin controls.
	IsAdmin bool `json:"isAdmin"`

	QuizScores    []float64          `json:"quizScores"`
	QuizNames     []string           `json:"quizNames"`
	SkillMatches  map[string]int     `json:"skillMatches"`
	SkillsLearned []SkillLearnedView `json:"skillsLearned"`
	LearningPath  []LearningPathView `json:"learningPath"`
	Achievements  []AchievementView  `json:"achievements"`
}

type SkillLearnedView struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Completed bool   `json:"completed"`
}

type LearningPathView struct {
	Month    string `json:"month"`
	Progress int    `json:"progress"`
}

// AchievementView carries a display-only short date ("Jan 15"); the raw
// timestamp is not round-tripped.
type AchievementView struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// ActivityEntry is one row of the cross-user recent-activity feed.
type ActivityEntry struct {
	Name   string `json:"name"`
	Action string `json:"action"`
	Time   string `json:"time"`
}
