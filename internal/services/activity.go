package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/types"
)

const (
	recentFetchLimit = 5
	recentFeedSize   = 3
)

type ActivityService interface {
	// Recent merges the newest achievements and quiz completions across all
	// users into a feed of at most three entries.
	Recent(ctx context.Context) ([]types.ActivityEntry, error)
}

type activityService struct {
	log         *logger.Logger
	quizRepo    repos.QuizScoreRepo
	achieveRepo repos.AchievementRepo
	now         func() time.Time
}

func NewActivityService(log *logger.Logger, quizRepo repos.QuizScoreRepo, achieveRepo repos.AchievementRepo) ActivityService {
	serviceLog := log.With("service", "ActivityService")
	return &activityService{
		log:         serviceLog,
		quizRepo:    quizRepo,
		achieveRepo: achieveRepo,
		now:         time.Now,
	}
}

func (as *activityService) Recent(ctx context.Context) ([]types.ActivityEntry, error) {
	var (
		achievements []repos.RecentAchievement
		quizzes      []repos.RecentQuizScore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := as.achieveRepo.ListRecent(gctx, nil, recentFetchLimit)
		if err != nil {
			return &ReadFailureError{Which: "recent achievements", Err: err}
		}
		achievements = rows
		return nil
	})
	g.Go(func() error {
		rows, err := as.quizRepo.ListRecent(gctx, nil, recentFetchLimit)
		if err != nil {
			return &ReadFailureError{Which: "recent quiz completions", Err: err}
		}
		quizzes = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		as.log.Error("Recent activity fetch failed", "error", err)
		return nil, err
	}

	now := as.now()
	entries := make([]types.ActivityEntry, 0, len(achievements)+len(quizzes))
	for _, a := range achievements {
		entries = append(entries, types.ActivityEntry{
			Name:   a.UserName,
			Action: fmt.Sprintf("Earned %s", a.Name),
			Time:   timeAgo(a.Date, now),
		})
	}
	for _, q := range quizzes {
		entries = append(entries, types.ActivityEntry{
			Name:   q.UserName,
			Action: fmt.Sprintf("Completed %s", q.QuizName),
			Time:   timeAgo(q.CreatedAt, now),
		})
	}

	// Sort by the re-parsed relative label rather than the original
	// timestamp. Lossy on purpose: events that round to the same coarse
	// label have no defined order.
	sort.Slice(entries, func(i, j int) bool {
		return parseTimeAgo(entries[i].Time) < parseTimeAgo(entries[j].Time)
	})

	if len(entries) > recentFeedSize {
		entries = entries[:recentFeedSize]
	}
	return entries, nil
}

// timeAgo renders a coarse relative label. Singular unit only when the count
// is exactly 1; minutes never pluralize ("min").
func timeAgo(ts, now time.Time) string {
	minutes := int(now.Sub(ts).Minutes())
	if minutes < 1 {
		return "just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		if hours > 1 {
			return fmt.Sprintf("%d hours ago", hours)
		}
		return "1 hour ago"
	}
	days := hours / 24
	if days > 1 {
		return fmt.Sprintf("%d days ago", days)
	}
	return "1 day ago"
}

var timeAgoPattern = regexp.MustCompile(`(\d+)\s+(min|hour|day)`)

// parseTimeAgo converts a relative label back to minutes for feed ordering.
// Sub-unit precision was already discarded when the label was rendered.
func parseTimeAgo(label string) int {
	if label == "just now" {
		return 0
	}
	m := timeAgoPattern.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	switch m[2] {
	case "min":
		return value
	case "hour":
		return value * 60
	case "day":
		return value * 60 * 24
	}
	return 0
}
