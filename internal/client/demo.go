package client

import "github.com/skillforge/dashboard-backend/internal/types"

// DemoData is the fallback dataset shown before authentication and after
// any fetch failure. Fresh copy per call so callers can't mutate the demo
// baseline.
func DemoData() types.DashboardData {
	return types.DashboardData{
		Name:        "Demo User",
		Email:       "demo@example.com",
		Role:        "user",
		Avatar:      "/placeholder.svg?height=80&width=80",
		ResumeScore: 7.5,
		XPPoints:    65,
		IsAdmin:     false,
		QuizScores:  []float64{7.2, 8.5, 9.0, 8.7, 9.5, 7.8},
		QuizNames: []string{
			"JavaScript Basics",
			"React Fundamentals",
			"Node.js Intro",
			"Database Design",
			"API Development",
			"Testing",
		},
		SkillMatches: map[string]int{
			"JavaScript":    75,
			"React":         65,
			"Node.js":       55,
			"Python":        50,
			"Data Analysis": 60,
		},
		SkillsLearned: []types.SkillLearnedView{
			{Name: "JavaScript", Level: 75, Completed: true},
			{Name: "React", Level: 65, Completed: true},
			{Name: "Node.js", Level: 55, Completed: false},
			{Name: "Python", Level: 50, Completed: false},
			{Name: "Data Analysis", Level: 60, Completed: false},
		},
		LearningPath: []types.LearningPathView{
			{Month: "Jan", Progress: 10},
			{Month: "Feb", Progress: 25},
			{Month: "Mar", Progress: 40},
			{Month: "Apr", Progress: 55},
			{Month: "May", Progress: 65},
			{Month: "Jun", Progress: 65},
		},
		Achievements: []types.AchievementView{
			{Name: "First Login", Date: "Jan 15"},
			{Name: "Profile Setup", Date: "Feb 22"},
			{Name: "First Quiz", Date: "Mar 10"},
			{Name: "Skill Unlocked", Date: "Apr 5"},
		},
	}
}

// DemoFeed is the placeholder recent-activity list shown until live data or
// push events arrive.
func DemoFeed() []types.ActivityEntry {
	return []types.ActivityEntry{
		{Name: "Sarah L.", Action: "Completed React Quiz", Time: "2 min ago"},
		{Name: "John D.", Action: "Earned JavaScript Badge", Time: "5 min ago"},
		{Name: "Maria G.", Action: "Started Python Course", Time: "12 min ago"},
	}
}
