package service

import (
	"context"

	"github.com/escanor68/turnosya-backend/config"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/repository"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
)

type SchedulerService struct {
	db   postgres.PgxIface
	repo *repository.Queries
	cfg  *config.Config
}

func NewSchedulerService(db postgres.PgxIface, cfg *config.Config) *SchedulerService {
	return &SchedulerService{
		db:   db,
		repo: repository.New(),
		cfg:  cfg,
	}
}

// ExpireOldBookings marks pending bookings whose date has passed as expired.
func (s *SchedulerService) ExpireOldBookings(ctx context.Context) (err error) {
	return s.repo.ExpireOldBookings(ctx, s.db)
}
