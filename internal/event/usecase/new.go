package usecase

import (
	"time"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	pkgLog "calendar-assistant/pkg/log"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new event UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, now func() time.Time) event.UseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  now,
	}
}
