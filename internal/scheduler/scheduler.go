// internal/scheduler/scheduler.go
// 排程觸發 - cron 表達式 + 時區

package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"job-mailer/internal/config"
)

// Scheduler 排程器
type Scheduler struct {
	cron *cron.Cron
}

// Start 啟動排程，每次觸發執行 onTick
// SkipIfStillRunning: 前一次還沒跑完時直接略過本次觸發，不重疊執行
func Start(cfg *config.Config, onTick func()) (*Scheduler, error) {
	if _, err := cron.ParseStandard(cfg.ScheduleCron); err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_CRON %q: %w", cfg.ScheduleCron, err)
	}

	loc, err := time.LoadLocation(cfg.ScheduleTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TZ %q: %w", cfg.ScheduleTZ, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	_, err = c.AddFunc(cfg.ScheduleCron, func() {
		log.Printf("[cron] triggered at %s", time.Now().UTC().Format(time.RFC3339))
		onTick()
	})
	if err != nil {
		return nil, fmt.Errorf("schedule cron job: %w", err)
	}

	c.Start()
	log.Printf("[cron] scheduled %q (%s)", cfg.ScheduleCron, cfg.ScheduleTZ)
	return &Scheduler{cron: c}, nil
}

// Stop 停止排程，等待進行中的任務結束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
