package usecase

import (
	"time"

	"auth-srv/internal/account"
	"auth-srv/pkg/log"
)

type implUsecase struct {
	l   log.Logger
	now func() time.Time
}

type Option func(*implUsecase)

// WithClock overrides the clock used to stamp lastAccessed.
func WithClock(now func() time.Time) Option {
	return func(uc *implUsecase) {
		uc.now = now
	}
}

func New(l log.Logger, opts ...Option) account.UseCase {
	uc := &implUsecase{
		l:   l,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
