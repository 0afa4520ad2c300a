package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// ExpiredSessionDeleter is the part of the session store the sweeper needs
type ExpiredSessionDeleter interface {
	DeleteExpired() (int64, error)
}

// SweepService removes expired persisted sessions on a daily schedule.
// Page view state is never touched by background work; only the session
// table is swept.
type SweepService struct {
	store ExpiredSessionDeleter
	cron  *cron.Cron
}

// NewSweepService creates a new sweep service
func NewSweepService(store ExpiredSessionDeleter) *SweepService {
	return &SweepService{
		store: store,
		cron:  cron.New(),
	}
}

// Start schedules the daily sweep (03:30)
func (s *SweepService) Start() {
	s.cron.AddFunc("30 3 * * *", s.sweep)
	s.cron.Start()
	log.Println("🚀 Session sweep scheduled (daily 03:30)")
}

// Stop stops the scheduler
func (s *SweepService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Session sweep stopped")
}

func (s *SweepService) sweep() {
	removed, err := s.store.DeleteExpired()
	if err != nil {
		log.Printf("❌ Session sweep error: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("✅ Session sweep removed %d expired session(s)", removed)
	}
}
