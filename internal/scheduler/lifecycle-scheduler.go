package scheduler

import (
	"fmt"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// LifecycleScheduler advances recruitment status from wall-clock time alone:
// DRAFT opens when its window starts, OPEN closes when its window ends. Every
// tick re-evaluates the predicates against the current time, so a missed tick
// self-heals on the next one and no recruitment ever moves backward.
type LifecycleScheduler struct {
	cronEngine      *cron.Cron
	recruitmentRepo repository.RecruitmentRepository
	tick            time.Duration
}

func NewLifecycleScheduler(recruitmentRepo repository.RecruitmentRepository, tick time.Duration) *LifecycleScheduler {
	return &LifecycleScheduler{
		// SkipIfStillRunning gives fixed-delay semantics: a tick never starts
		// while the previous tick's transaction is in flight.
		cronEngine: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		recruitmentRepo: recruitmentRepo,
		tick:            tick,
	}
}

func (s *LifecycleScheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.tick)
	_, err := s.cronEngine.AddFunc(spec, func() {
		s.runTick(time.Now())
	})
	if err != nil {
		return fmt.Errorf("add lifecycle job: %w", err)
	}
	s.cronEngine.Start()
	logrus.Infof("lifecycle scheduler started, tick %s", s.tick)
	return nil
}

// runTick absorbs storage errors: state was not advanced, so the next tick
// retries naturally.
func (s *LifecycleScheduler) runTick(now time.Time) {
	opened, closed, err := s.recruitmentRepo.AdvanceLifecycle(now)
	if err != nil {
		logrus.Errorf("lifecycle tick failed: %v", err)
		return
	}
	if opened > 0 || closed > 0 {
		logrus.Infof("lifecycle tick: opened %d, closed %d", opened, closed)
	}
}

func (s *LifecycleScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	logrus.Info("lifecycle scheduler stopped")
}
