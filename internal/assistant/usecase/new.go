package usecase

import (
	"math/rand/v2"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
	pkgLog "calendar-assistant/pkg/log"
)

// Sampling settings sent with every generation request.
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// Shuffler reorders s in place.
type Shuffler func(s []string)

func randomShuffle(s []string) {
	rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	repo     repository.EventRepository
	dateMath *datemath.Parser
	now      func() time.Time
	shuffle  Shuffler
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock replaces the wall clock used to anchor prompts and directive years.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithShuffler replaces the random suggestion order.
func WithShuffler(s Shuffler) Option {
	return func(uc *implUseCase) { uc.shuffle = s }
}

// New creates a new assistant UseCase instance. A nil llm makes every Chat
// call fail with assistant.ErrConfiguration.
func New(l pkgLog.Logger, llm gemini.IGemini, repo repository.EventRepository, opts ...Option) assistant.UseCase {
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}

	uc := &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		dateMath: dm,
		now:      time.Now,
		shuffle:  randomShuffle,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
