package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"under_a_minute", 30 * time.Second, "just now"},
		{"one_minute", 90 * time.Second, "1 min ago"},
		{"many_minutes", 45 * time.Minute, "45 min ago"},
		{"exactly_one_hour", time.Hour, "1 hour ago"},
		{"hour_and_change", 90 * time.Minute, "1 hour ago"},
		{"many_hours", 5 * time.Hour, "5 hours ago"},
		{"exactly_one_day", 24 * time.Hour, "1 day ago"},
		{"day_and_change", 25 * time.Hour, "1 day ago"},
		{"many_days", 72 * time.Hour, "3 days ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := timeAgo(now.Add(-tc.ago), now); got != tc.want {
				t.Fatalf("timeAgo(-%v): want %q got %q", tc.ago, tc.want, got)
			}
		})
	}
}

func TestParseTimeAgo(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"just now", 0},
		{"1 min ago", 1},
		{"45 min ago", 45},
		{"1 hour ago", 60},
		{"5 hours ago", 300},
		{"1 day ago", 1440},
		{"3 days ago", 4320},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := parseTimeAgo(tc.label); got != tc.want {
			t.Fatalf("parseTimeAgo(%q): want %d got %d", tc.label, tc.want, got)
		}
	}
}

func TestTimeAgoRoundTripIsLossy(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	// 119 minutes renders as "1 hour ago" and parses back to 60.
	if got := parseTimeAgo(timeAgo(now.Add(-119*time.Minute), now)); got != 60 {
		t.Fatalf("round trip of 119 min: want 60 got %d", got)
	}
}

func newActivityFixture(quiz *fakeQuizRepo, achieve *fakeAchievementRepo, now time.Time) ActivityService {
	svc := NewActivityService(logger.Nop(), quiz, achieve).(*activityService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecentMergesAndOrders(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	quiz := &fakeQuizRepo{recent: []repos.RecentQuizScore{
		{QuizName: "Go Fundamentals", CreatedAt: now.Add(-1 * time.Hour), UserName: "sarah"},
		{QuizName: "React Basics", CreatedAt: now.Add(-2 * time.Hour), UserName: "john"},
	}}
	achieve := &fakeAchievementRepo{recent: []repos.RecentAchievement{
		{Name: "Quiz Master", Date: now.Add(-5 * time.Minute), UserName: "maria"},
		{Name: "Fast Learner", Date: now.Add(-3 * time.Hour), UserName: "sarah"},
	}}

	entries, err := newActivityFixture(quiz, achieve, now).Recent(context.Background())
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("feed must cap at 3 entries, got %d", len(entries))
	}

	// Newest first by re-parsed label: 5 min < 1 hour < 2 hours.
	if entries[0].Action != "Earned Quiz Master" || entries[0].Time != "5 min ago" {
		t.Fatalf("entry[0] wrong: %+v", entries[0])
	}
	if entries[1].Action != "Completed Go Fundamentals" || entries[1].Time != "1 hour ago" {
		t.Fatalf("entry[1] wrong: %+v", entries[1])
	}
	if entries[2].Action != "Completed React Basics" || entries[2].Time != "2 hours ago" {
		t.Fatalf("entry[2] wrong: %+v", entries[2])
	}
	if entries[0].Name != "maria" {
		t.Fatalf("entry names must come from the joined user, got %q", entries[0].Name)
	}
}

func TestRecentShortFeed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	quiz := &fakeQuizRepo{}
	achieve := &fakeAchievementRepo{recent: []repos.RecentAchievement{
		{Name: "Quiz Master", Date: now.Add(-5 * time.Minute), UserName: "maria"},
	}}

	entries, err := newActivityFixture(quiz, achieve, now).Recent(context.Background())
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("fewer events than the cap must pass through, got %d", len(entries))
	}
}

func TestRecentReadFailure(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	quiz := &fakeQuizRepo{recentErr: errors.New("boom")}
	achieve := &fakeAchievementRepo{}

	_, err := newActivityFixture(quiz, achieve, now).Recent(context.Background())
	var readErr *ReadFailureError
	if !errors.As(err, &readErr) {
		t.Fatalf("want ReadFailureError, got %v", err)
	}
	if readErr.Which != "recent quiz completions" {
		t.Fatalf("failed read: got %q", readErr.Which)
	}
}
