package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/derive"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/store"
)

// dailyCheckInExperience is awarded for each completed daily check-in.
const dailyCheckInExperience = 25

// QuizService runs the onboarding matching quiz and the daily check-in.
type QuizService struct {
	users   store.UserStore
	quizzes store.DailyQuizStore
	now     func() time.Time
	logger  *slog.Logger
}

// NewQuizService creates a new QuizService. now may be nil, in which
// case time.Now is used.
func NewQuizService(
	users store.UserStore,
	quizzes store.DailyQuizStore,
	now func() time.Time,
	log *slog.Logger,
) *QuizService {
	if users == nil {
		panic("users store cannot be nil")
	}
	if quizzes == nil {
		panic("quizzes store cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}

	return &QuizService{
		users:   users,
		quizzes: quizzes,
		now:     now,
		logger:  log.With(slog.String("component", "quiz_service")),
	}
}

// MatchingQuestions returns the onboarding quiz questions.
func (s *QuizService) MatchingQuestions() []domain.QuizQuestion {
	return catalog.MatchingQuiz()
}

// DailyQuestions returns the daily check-in questions.
func (s *QuizService) DailyQuestions() []domain.QuizQuestion {
	return catalog.DailyQuiz()
}

// SubmitMatching scores the onboarding answers, attaches the matched
// companion to the profile, and returns the updated profile. Re-taking
// the quiz replaces the companion but never touches progress.
func (s *QuizService) SubmitMatching(ctx context.Context, responses map[string]string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(responses) == 0 {
		return nil, ErrEmptyResponses
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("submit_matching", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}

	matched := derive.MatchCompanion(catalog.MatchingQuiz(), responses)
	companion := catalog.CompanionByType(matched)
	user.Companion = &companion

	if err := s.users.Save(ctx, user); err != nil {
		return nil, NewServiceError("submit_matching", "failed to persist user", err)
	}

	log.Info("companion matched",
		slog.String("user_id", user.ID.String()),
		slog.String("companion", string(matched)))
	return user, nil
}

// SubmitDaily records today's check-in, computes the mood score, and
// awards experience and a streak increment. A second submission on the
// same calendar date returns ErrAlreadyCheckedIn.
func (s *QuizService) SubmitDaily(ctx context.Context, responses map[string]string) (*domain.DailyQuizRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(responses) == 0 {
		return nil, ErrEmptyResponses
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		return nil, NewServiceError("submit_daily", "failed to read user", err)
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}

	now := s.now()
	today := domain.DateKey(now)

	existing, err := s.quizzes.GetByDate(ctx, today)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, NewServiceError("submit_daily", "failed to check today's record", err)
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	mood := derive.MoodScore(responses)
	record, err := domain.NewDailyQuizRecord(now, catalog.DailyQuiz(), responses, mood)
	if err != nil {
		return nil, err
	}

	if err := s.quizzes.Upsert(ctx, record); err != nil {
		return nil, NewServiceError("submit_daily", "failed to persist record", err)
	}

	user.Experience += dailyCheckInExperience
	user.Streak++
	if err := s.users.Save(ctx, user); err != nil {
		return nil, NewServiceError("submit_daily", "failed to persist progress", err)
	}

	log.Info("daily check-in recorded",
		slog.String("date", today),
		slog.Int("mood_score", mood),
		slog.Int("streak", user.Streak))
	return record, nil
}

// CheckIns returns every recorded daily check-in.
func (s *QuizService) CheckIns(ctx context.Context) ([]domain.DailyQuizRecord, error) {
	records, err := s.quizzes.List(ctx)
	if err != nil {
		return nil, NewServiceError("check_ins", "failed to read records", err)
	}
	return records, nil
}
