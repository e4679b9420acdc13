package service

import (
	"context"
	"log/slog"

	"github.com/factum-app/factum/internal/derive"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/platform/logger"
	"github.com/factum-app/factum/internal/store"
)

// SleepPlanResult is a computed sleep plan together with all the
// wake-time candidates it was chosen from.
type SleepPlanResult struct {
	Plan    domain.SleepPlan    `json:"plan"`
	Options []derive.WakeOption `json:"options"`
}

// SleepService computes cycle-aligned sleep plans and persists the
// chosen one.
type SleepService struct {
	sleep  store.SleepStore
	logger *slog.Logger
}

// NewSleepService creates a new SleepService.
func NewSleepService(sleep store.SleepStore, log *slog.Logger) *SleepService {
	if sleep == nil {
		panic("sleep store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &SleepService{
		sleep:  sleep,
		logger: log.With(slog.String("component", "sleep_service")),
	}
}

// Plan computes the wake-time candidates for a bedtime and target
// duration, persists the recommended one as the current plan, and
// returns both.
func (s *SleepService) Plan(ctx context.Context, bedTime string, targetHours float64) (*SleepPlanResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	options, err := derive.WakeOptions(bedTime, targetHours)
	if err != nil {
		return nil, err
	}

	recommended, ok := derive.RecommendedWakeOption(options)
	if !ok {
		return nil, domain.ErrCycleCount
	}

	plan := domain.SleepPlan{
		BedTime:     bedTime,
		WakeTime:    recommended.Time,
		TargetSleep: targetHours,
		Cycles:      recommended.Cycles,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.sleep.Save(ctx, &plan); err != nil {
		return nil, NewServiceError("sleep_plan", "failed to persist plan", err)
	}

	log.Info("sleep plan saved",
		slog.String("bed_time", plan.BedTime),
		slog.String("wake_time", plan.WakeTime),
		slog.Int("cycles", plan.Cycles))

	return &SleepPlanResult{Plan: plan, Options: options}, nil
}

// Current returns the stored plan, or nil when none has been saved.
func (s *SleepService) Current(ctx context.Context) (*domain.SleepPlan, error) {
	plan, err := s.sleep.Get(ctx)
	if err != nil {
		return nil, NewServiceError("sleep_current", "failed to read plan", err)
	}
	return plan, nil
}

// Quality scores how close an actual sleep duration came to the target.
func (s *SleepService) Quality(actualHours, targetHours float64) int {
	return derive.SleepQuality(actualHours, targetHours)
}
