package services

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/types"
)

const placeholderAvatar = "/placeholder.svg?height=80&width=80"

type DashboardService interface {
	// GetDashboard authorizes the caller, fetches the target's child record
	// sets concurrently and reshapes them into the flat view model.
	GetDashboard(ctx context.Context, callerName, targetName string) (*types.DashboardData, error)
}

type dashboardService struct {
	log         *logger.Logger
	identity    IdentityService
	userRepo    repos.UserRepo
	quizRepo    repos.QuizScoreRepo
	skillRepo   repos.SkillLearnedRepo
	matchRepo   repos.SkillMatchRepo
	pathRepo    repos.LearningPathRepo
	achieveRepo repos.AchievementRepo
}

func NewDashboardService(
	log *logger.Logger,
	identity IdentityService,
	userRepo repos.UserRepo,
	quizRepo repos.QuizScoreRepo,
	skillRepo repos.SkillLearnedRepo,
	matchRepo repos.SkillMatchRepo,
	pathRepo repos.LearningPathRepo,
	achieveRepo repos.AchievementRepo,
) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		log:         serviceLog,
		identity:    identity,
		userRepo:    userRepo,
		quizRepo:    quizRepo,
		skillRepo:   skillRepo,
		matchRepo:   matchRepo,
		pathRepo:    pathRepo,
		achieveRepo: achieveRepo,
	}
}

func (ds *dashboardService) GetDashboard(ctx context.Context, callerName, targetName string) (*types.DashboardData, error) {
	res, err := ds.identity.Resolve(ctx, callerName, targetName)
	if err != nil {
		return nil, err
	}

	user, err := ds.userRepo.GetByName(ctx, nil, res.Target)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			notFound := &UserNotFoundError{Name: res.Target, CallerIsAdmin: res.CallerIsAdmin}
			if res.CallerIsAdmin {
				// Best effort: a failed directory read still yields 404.
				if available, listErr := ds.userRepo.ListSummaries(ctx, nil); listErr == nil {
					notFound.AvailableUsers = available
				}
			}
			return nil, notFound
		}
		return nil, &ReadFailureError{Which: "user", Err: err}
	}

	ds.log.Debug("Fetching live data", "user", user.Name, "role", user.Role, "caller_is_admin", res.CallerIsAdmin)

	// The five child reads have no data dependency on each other: launch
	// them all, wait for all. Any single failure fails the aggregation.
	var (
		quizzes      []types.QuizScore
		skills       []types.SkillLearned
		matches      []types.SkillMatch
		path         []types.LearningPathEntry
		achievements []types.Achievement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := ds.quizRepo.ListByUser(gctx, nil, user.ID)
		if err != nil {
			return &ReadFailureError{Which: "quiz scores", Err: err}
		}
		quizzes = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.skillRepo.ListByUser(gctx, nil, user.ID)
		if err != nil {
			return &ReadFailureError{Which: "skills", Err: err}
		}
		skills = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.matchRepo.ListByUser(gctx, nil, user.ID)
		if err != nil {
			return &ReadFailureError{Which: "skill matches", Err: err}
		}
		matches = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.pathRepo.ListByUser(gctx, nil, user.ID)
		if err != nil {
			return &ReadFailureError{Which: "learning path", Err: err}
		}
		path = rows
		return nil
	})
	g.Go(func() error {
		rows, err := ds.achieveRepo.ListByUser(gctx, nil, user.ID)
		if err != nil {
			return &ReadFailureError{Which: "achievements", Err: err}
		}
		achievements = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		ds.log.Error("Child read failed", "user", user.Name, "error", err)
		return nil, err
	}

	return shapeDashboard(user, res.CallerIsAdmin, quizzes, skills, matches, path, achievements), nil
}

func shapeDashboard(
	user *types.User,
	callerIsAdmin bool,
	quizzes []types.QuizScore,
	skills []types.SkillLearned,
	matches []types.SkillMatch,
	path []types.LearningPathEntry,
	achievements []types.Achievement,
) *types.DashboardData {
	avatar := user.AvatarURL
	if avatar == "" {
		avatar = placeholderAvatar
	}

	data := &types.DashboardData{
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		Avatar:        avatar,
		ResumeScore:   coerceScore(user.ResumeScore),
		XPPoints:      user.XPPoints,
		IsAdmin:       callerIsAdmin,
		QuizScores:    make([]float64, 0, len(quizzes)),
		QuizNames:     make([]string, 0, len(quizzes)),
		SkillMatches:  make(map[string]int, len(matches)),
		SkillsLearned: make([]types.SkillLearnedView, 0, len(skills)),
		LearningPath:  make([]types.LearningPathView, 0, len(path)),
		Achievements:  make([]types.AchievementView, 0, len(achievements)),
	}

	for _, q := range quizzes {
		data.QuizScores = append(data.QuizScores, coerceScore(q.Score))
		data.QuizNames = append(data.QuizNames, q.QuizName)
	}

	// Duplicate skill names collapse last-write-wins in read order; the
	// store does not enforce a dedup constraint.
	for _, m := range matches {
		data.SkillMatches[m.SkillName] = m.MatchPercentage
	}

	for _, s := range skills {
		data.SkillsLearned = append(data.SkillsLearned, types.SkillLearnedView{
			Name:      s.Name,
			Level:     s.Level,
			Completed: s.Completed,
		})
	}

	for _, p := range path {
		data.LearningPath = append(data.LearningPath, types.LearningPathView{
			Month:    p.Month,
			Progress: p.Progress,
		})
	}

	for _, a := range achievements {
		data.Achievements = append(data.Achievements, types.AchievementView{
			Name: a.Name,
			Date: a.Date.Format("Jan 2"),
		})
	}

	return data
}

// coerceScore turns the store's numeric-as-text representation into a
// number. Unparseable input surfaces as zero rather than an error.
func coerceScore(raw string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
