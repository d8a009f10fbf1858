package services

import (
	"log"
	"time"

	"sambatin/internal/events"
	"sambatin/internal/storage"
)

// sweepInterval 过期扫描周期
const sweepInterval = time.Minute

// ExpiryService 后台定期把到期的帖子标记为 hangus。
// Expired posts leave active listings, so each flip is pushed to the
// global feed as a delete notification.
type ExpiryService struct {
	store storage.Storage
	hub   *events.Hub
	stop  chan struct{}
}

func NewExpiryService(store storage.Storage, hub *events.Hub) *ExpiryService {
	return &ExpiryService{
		store: store,
		hub:   hub,
		stop:  make(chan struct{}),
	}
}

// Start 启动后台 worker
func (s *ExpiryService) Start() {
	go s.worker()
}

func (s *ExpiryService) Stop() {
	close(s.stop)
}

func (s *ExpiryService) worker() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(time.Now())
		case <-s.stop:
			return
		}
	}
}

// Sweep runs one expiry pass and returns how many posts burnt out.
func (s *ExpiryService) Sweep(now time.Time) int {
	ids, err := s.store.MarkExpired(now)
	if err != nil {
		log.Printf("expiry sweep failed: %v", err)
		return 0
	}
	for _, id := range ids {
		s.hub.Publish(events.NewPostDeleted(id))
	}
	if len(ids) > 0 {
		log.Printf("expiry sweep: %d sambat hangus", len(ids))
	}
	return len(ids)
}
