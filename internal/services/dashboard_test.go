package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/types"
)

type fakeQuizRepo struct {
	rows      []types.QuizScore
	recent    []repos.RecentQuizScore
	err       error
	recentErr error
}

func (f *fakeQuizRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.QuizScore, error) {
	return f.rows, f.err
}

func (f *fakeQuizRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]repos.RecentQuizScore, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeSkillRepo struct {
	rows []types.SkillLearned
	err  error
}

func (f *fakeSkillRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillLearned, error) {
	return f.rows, f.err
}

type fakeMatchRepo struct {
	rows []types.SkillMatch
	err  error
}

func (f *fakeMatchRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillMatch, error) {
	return f.rows, f.err
}

type fakePathRepo struct {
	rows []types.LearningPathEntry
	err  error
}

func (f *fakePathRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.LearningPathEntry, error) {
	return f.rows, f.err
}

type fakeAchievementRepo struct {
	rows      []types.Achievement
	recent    []repos.RecentAchievement
	err       error
	recentErr error
}

func (f *fakeAchievementRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Achievement, error) {
	return f.rows, f.err
}

func (f *fakeAchievementRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]repos.RecentAchievement, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type dashboardFixture struct {
	users   *fakeUserRepo
	quiz    *fakeQuizRepo
	skill   *fakeSkillRepo
	match   *fakeMatchRepo
	path    *fakePathRepo
	achieve *fakeAchievementRepo
}

func newDashboardFixture() *dashboardFixture {
	return &dashboardFixture{
		users: &fakeUserRepo{users: []types.User{
			{
				ID:          uuid.New(),
				Name:        "sarah",
				Email:       "sarah@example.com",
				Role:        "user",
				ResumeScore: "8.5",
				XPPoints:    1250,
			},
			{
				ID:    uuid.New(),
				Name:  "yeswanth",
				Email: "yeswanth@example.com",
				Role:  "admin",
			},
		}},
		quiz: &fakeQuizRepo{rows: []types.QuizScore{
			{QuizName: "React Basics", Score: "85"},
			{QuizName: "Go Fundamentals", Score: "92.5"},
			{QuizName: "Broken Row", Score: "not-a-number"},
		}},
		skill: &fakeSkillRepo{rows: []types.SkillLearned{
			{Name: "React", Level: 4, Completed: true},
		}},
		match: &fakeMatchRepo{rows: []types.SkillMatch{
			{SkillName: "React", MatchPercentage: 60},
			{SkillName: "Node.js", MatchPercentage: 80},
			{SkillName: "React", MatchPercentage: 75},
		}},
		path: &fakePathRepo{rows: []types.LearningPathEntry{
			{Month: "Jan", Progress: 30},
			{Month: "Feb", Progress: 45},
		}},
		achieve: &fakeAchievementRepo{rows: []types.Achievement{
			{Name: "Quiz Master", Date: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)},
		}},
	}
}

func (fx *dashboardFixture) service() DashboardService {
	log := logger.Nop()
	identity := NewIdentityService(log, fx.users)
	return NewDashboardService(log, identity, fx.users, fx.quiz, fx.skill, fx.match, fx.path, fx.achieve)
}

func TestGetDashboardShaping(t *testing.T) {
	fx := newDashboardFixture()
	data, err := fx.service().GetDashboard(context.Background(), "sarah", "sarah")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if data.Name != "sarah" || data.Email != "sarah@example.com" {
		t.Fatalf("identity fields wrong: %+v", data)
	}
	if data.ResumeScore != 8.5 {
		t.Fatalf("resume score: want 8.5 got %v", data.ResumeScore)
	}
	if data.XPPoints != 1250 {
		t.Fatalf("xp points: want 1250 got %d", data.XPPoints)
	}
	if data.IsAdmin {
		t.Fatal("non-admin caller must not get isAdmin")
	}
	if data.Avatar != placeholderAvatar {
		t.Fatalf("empty avatar must fall back to placeholder, got %q", data.Avatar)
	}

	wantScores := []float64{85, 92.5, 0}
	if len(data.QuizScores) != len(wantScores) {
		t.Fatalf("quiz scores: want %v got %v", wantScores, data.QuizScores)
	}
	for i, want := range wantScores {
		if data.QuizScores[i] != want {
			t.Fatalf("quiz score[%d]: want %v got %v", i, want, data.QuizScores[i])
		}
	}
	if data.QuizNames[0] != "React Basics" || data.QuizNames[2] != "Broken Row" {
		t.Fatalf("quiz names out of order: %v", data.QuizNames)
	}

	// Duplicate React rows: the later row wins.
	if got := data.SkillMatches["React"]; got != 75 {
		t.Fatalf("skill match React: want last-write 75 got %d", got)
	}
	if got := data.SkillMatches["Node.js"]; got != 80 {
		t.Fatalf("skill match Node.js: want 80 got %d", got)
	}
	if len(data.SkillMatches) != 2 {
		t.Fatalf("skill matches must collapse duplicates, got %v", data.SkillMatches)
	}

	if len(data.Achievements) != 1 || data.Achievements[0].Date != "Mar 2" {
		t.Fatalf("achievement date must render short form, got %+v", data.Achievements)
	}
	if len(data.LearningPath) != 2 || data.LearningPath[0].Month != "Jan" {
		t.Fatalf("learning path wrong: %+v", data.LearningPath)
	}
}

func TestGetDashboardAdminViewingOther(t *testing.T) {
	fx := newDashboardFixture()
	data, err := fx.service().GetDashboard(context.Background(), "yeswanth", "sarah")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if data.Name != "sarah" {
		t.Fatalf("admin must see the target's data, got %q", data.Name)
	}
	if !data.IsAdmin {
		t.Fatal("isAdmin reflects the caller, not the target")
	}
}

func TestGetDashboardAccessDenied(t *testing.T) {
	fx := newDashboardFixture()
	_, err := fx.service().GetDashboard(context.Background(), "sarah", "yeswanth")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("want ErrAccessDenied, got %v", err)
	}
}

func TestGetDashboardUserNotFound(t *testing.T) {
	t.Run("admin_gets_available_users", func(t *testing.T) {
		fx := newDashboardFixture()
		_, err := fx.service().GetDashboard(context.Background(), "yeswanth", "ghost")
		var notFound *UserNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("want UserNotFoundError, got %v", err)
		}
		if !notFound.CallerIsAdmin {
			t.Fatal("caller was admin")
		}
		if len(notFound.AvailableUsers) != 2 {
			t.Fatalf("admin 404 must carry the directory, got %+v", notFound.AvailableUsers)
		}
	})

	t.Run("unauthenticated_gets_bare_not_found", func(t *testing.T) {
		fx := newDashboardFixture()
		_, err := fx.service().GetDashboard(context.Background(), "", "ghost")
		var notFound *UserNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("want UserNotFoundError, got %v", err)
		}
		if notFound.CallerIsAdmin || notFound.AvailableUsers != nil {
			t.Fatalf("non-admin 404 must not leak the directory: %+v", notFound)
		}
	})
}

func TestGetDashboardChildReadFailure(t *testing.T) {
	cases := []struct {
		name     string
		arrange  func(fx *dashboardFixture)
		wantRead string
	}{
		{
			name:     "quiz_scores",
			arrange:  func(fx *dashboardFixture) { fx.quiz.err = errors.New("boom") },
			wantRead: "quiz scores",
		},
		{
			name:     "skills",
			arrange:  func(fx *dashboardFixture) { fx.skill.err = errors.New("boom") },
			wantRead: "skills",
		},
		{
			name:     "skill_matches",
			arrange:  func(fx *dashboardFixture) { fx.match.err = errors.New("boom") },
			wantRead: "skill matches",
		},
		{
			name:     "learning_path",
			arrange:  func(fx *dashboardFixture) { fx.path.err = errors.New("boom") },
			wantRead: "learning path",
		},
		{
			name:     "achievements",
			arrange:  func(fx *dashboardFixture) { fx.achieve.err = errors.New("boom") },
			wantRead: "achievements",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newDashboardFixture()
			tc.arrange(fx)
			data, err := fx.service().GetDashboard(context.Background(), "sarah", "sarah")
			if data != nil {
				t.Fatal("a failed child read must not yield partial data")
			}
			var readErr *ReadFailureError
			if !errors.As(err, &readErr) {
				t.Fatalf("want ReadFailureError, got %v", err)
			}
			if readErr.Which != tc.wantRead {
				t.Fatalf("failed read: want %q got %q", tc.wantRead, readErr.Which)
			}
		})
	}
}

func TestCoerceScore(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"8.5", 8.5},
		{"92", 92},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"1e2", 100},
	}
	for _, tc := range cases {
		if got := coerceScore(tc.raw); got != tc.want {
			t.Fatalf("coerceScore(%q): want %v got %v", tc.raw, tc.want, got)
		}
	}
}
