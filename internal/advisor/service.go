// internal/advisor/service.go
package advisor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/utils"
)

// State is the part of the session the summary prompt needs.
type State struct {
	Wave  int
	Gold  int
	Lives int
}

// Advisor produces wave descriptions and post-wave summaries. Both calls
// always return usable text.
type Advisor interface {
	DescribeWave(ctx context.Context, wave int) string
	SummarizeState(ctx context.Context, st State) string
}

// Config tunes a Service.
type Config struct {
	Throttle time.Duration // minimum spacing of backend calls
	Timeout  time.Duration // per backend call
	Seed     int64         // fallback picker seed, 0 for time based
}

// DefaultConfig matches the backend's free-tier limits.
func DefaultConfig() Config {
	return Config{Throttle: 10 * time.Second, Timeout: 8 * time.Second}
}

// Service throttles and caches calls to a Generator and substitutes
// fallback text whenever a call is skipped or fails.
type Service struct {
	gen     Generator
	clock   utils.Clock
	limiter *rate.Limiter
	rng     *utils.PRNGService
	timeout time.Duration
	group   singleflight.Group

	mu        sync.Mutex
	waveCache map[int]string
	tipCache  map[int]string
}

func NewService(gen Generator, clock utils.Clock, cfg Config) *Service {
	if gen == nil {
		gen = NopGenerator{}
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	limit := rate.Inf
	if cfg.Throttle > 0 {
		limit = rate.Every(cfg.Throttle)
	}
	return &Service{
		gen:       gen,
		clock:     clock,
		limiter:   rate.NewLimiter(limit, 1),
		rng:       utils.NewPRNGService(cfg.Seed),
		timeout:   cfg.Timeout,
		waveCache: make(map[int]string),
		tipCache:  make(map[int]string),
	}
}

// DescribeWave returns the cached or freshly generated description of wave.
func (s *Service) DescribeWave(ctx context.Context, wave int) string {
	return s.cached(ctx, s.waveCache, fmt.Sprintf("wave:%d", wave), wave, wavePrompt(wave), func() string {
		return FallbackWave(wave)
	})
}

// SummarizeState returns advice for the wave that just ended.
func (s *Service) SummarizeState(ctx context.Context, st State) string {
	return s.cached(ctx, s.tipCache, fmt.Sprintf("summary:%d", st.Wave), st.Wave, summaryPrompt(st), func() string {
		return s.rng.Choose(FallbackAdvice)
	})
}

func (s *Service) cached(ctx context.Context, cache map[int]string, key string, wave int, prompt string, fallback func() string) string {
	s.mu.Lock()
	text, ok := cache[wave]
	s.mu.Unlock()
	if ok {
		return text
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		if text, ok := cache[wave]; ok {
			s.mu.Unlock()
			return text, nil
		}
		s.mu.Unlock()

		text, ok := s.generate(ctx, prompt)
		if !ok {
			text = fallback()
		}
		// Fallbacks are cached too; a wave gets one attempt at the backend.
		s.mu.Lock()
		cache[wave] = text
		s.mu.Unlock()
		return text, nil
	})
	return v.(string)
}

// generate makes one backend call if the throttle allows it.
func (s *Service) generate(ctx context.Context, prompt string) (string, bool) {
	if !s.limiter.AllowN(s.clock.Now(), 1) {
		logger.Debug("Advisor call throttled")
		return "", false
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.gen.Generate(ctx, prompt)
	switch {
	case err == nil && text != "":
		return text, true
	case err == nil, errors.Is(err, ErrUnavailable), IsQuota(err):
		return "", false
	default:
		logger.Warning("Advisor backend error", "error", err)
		return "", false
	}
}
