package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-bastion-defense/internal/utils"
)

type fakeGenerator struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
	delay time.Duration
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return g.text, g.err
}

func (g *fakeGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func newTestService(gen Generator) (*Service, *utils.ManualClock) {
	clock := utils.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewService(gen, clock, Config{Throttle: 10 * time.Second, Seed: 7}), clock
}

func TestDescribeWaveUsesGeneratorAndCaches(t *testing.T) {
	gen := &fakeGenerator{text: "Raiders at dawn."}
	svc, _ := newTestService(gen)

	if got := svc.DescribeWave(context.Background(), 1); got != "Raiders at dawn." {
		t.Errorf("DescribeWave = %q", got)
	}
	if got := svc.DescribeWave(context.Background(), 1); got != "Raiders at dawn." {
		t.Errorf("cached DescribeWave = %q", got)
	}
	if gen.Calls() != 1 {
		t.Errorf("generator called %d times, want 1", gen.Calls())
	}
}

func TestThrottleFallsBack(t *testing.T) {
	gen := &fakeGenerator{text: "generated"}
	svc, clock := newTestService(gen)
	ctx := context.Background()

	svc.DescribeWave(ctx, 1)
	if got := svc.DescribeWave(ctx, 2); got != FallbackWave(2) {
		t.Errorf("throttled call = %q, want fallback %q", got, FallbackWave(2))
	}
	clock.Advance(9 * time.Second)
	if got := svc.DescribeWave(ctx, 3); got != FallbackWave(3) {
		t.Errorf("call after 9s = %q, want fallback", got)
	}
	clock.Advance(time.Second)
	if got := svc.DescribeWave(ctx, 4); got != "generated" {
		t.Errorf("call after 10s = %q, want generated", got)
	}
	if gen.Calls() != 2 {
		t.Errorf("generator called %d times, want 2", gen.Calls())
	}
}

func TestFallbackWaveIndex(t *testing.T) {
	n := len(FallbackWaves)
	if FallbackWave(n+2) != FallbackWaves[2] {
		t.Error("wave text should wrap by wave number")
	}
}

func TestSummaryFallbackOnError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unavailable", ErrUnavailable},
		{"quota", &StatusError{Code: http.StatusTooManyRequests}},
		{"server error", &StatusError{Code: 500, Body: "boom"}},
		{"transport", errors.New("connection refused")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(&fakeGenerator{err: tt.err})
			got := svc.SummarizeState(context.Background(), State{Wave: 3, Gold: 200, Lives: 80})
			found := false
			for _, a := range FallbackAdvice {
				if a == got {
					found = true
				}
			}
			if !found {
				t.Errorf("SummarizeState = %q, not a fallback", got)
			}
		})
	}
}

func TestSummaryFallbackIsSeeded(t *testing.T) {
	a, _ := newTestService(NopGenerator{})
	b, _ := newTestService(NopGenerator{})
	for wave := 1; wave <= 5; wave++ {
		st := State{Wave: wave}
		if x, y := a.SummarizeState(context.Background(), st), b.SummarizeState(context.Background(), st); x != y {
			t.Errorf("wave %d: %q vs %q", wave, x, y)
		}
	}
}

func TestConcurrentRequestsCollapse(t *testing.T) {
	gen := &fakeGenerator{text: "one", delay: 20 * time.Millisecond}
	svc, _ := newTestService(gen)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := svc.DescribeWave(context.Background(), 5); got != "one" && got != FallbackWave(5) {
				t.Errorf("unexpected text %q", got)
			}
		}()
	}
	wg.Wait()
	if gen.Calls() != 1 {
		t.Errorf("generator called %d times, want 1", gen.Calls())
	}
}

func TestIsQuota(t *testing.T) {
	if !IsQuota(&StatusError{Code: 429}) {
		t.Error("429 should be a quota error")
	}
	if !IsQuota(errors.New("RESOURCE_EXHAUSTED: quota exceeded")) {
		t.Error("quota message should be a quota error")
	}
	if IsQuota(&StatusError{Code: 500}) || IsQuota(nil) {
		t.Error("unexpected quota classification")
	}
}

func TestLogKeepsNewestThree(t *testing.T) {
	l := NewLog(DefaultLogCap)
	for i := 1; i <= 5; i++ {
		l.Add(Entry{Kind: EntryWave, Wave: i})
	}
	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []int{5, 4, 3} {
		if entries[i].Wave != want {
			t.Errorf("entries[%d].Wave = %d, want %d", i, entries[i].Wave, want)
		}
	}
	l.Clear()
	if l.Len() != 0 {
		t.Error("Clear left entries")
	}
}

func TestRunnerDeliversResults(t *testing.T) {
	svc, _ := newTestService(NopGenerator{})
	r := NewRunner(svc, 4)
	defer r.Close()

	r.RequestWave(2)
	r.RequestSummary(State{Wave: 2, Gold: 100, Lives: 90})
	r.Wait()

	results := r.Drain()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	kinds := map[EntryKind]bool{}
	for _, res := range results {
		kinds[res.Kind] = true
		if res.Wave != 2 || res.Text == "" {
			t.Errorf("unexpected result %+v", res)
		}
	}
	if !kinds[EntryWave] || !kinds[EntrySummary] {
		t.Errorf("missing kinds: %v", kinds)
	}
	if len(r.Drain()) != 0 {
		t.Error("second drain should be empty")
	}
}

func TestRunnerClosedIgnoresRequests(t *testing.T) {
	r := NewRunner(NewService(NopGenerator{}, nil, DefaultConfig()), 1)
	r.Close()
	r.RequestWave(1)
	r.Wait()
	if len(r.Drain()) != 0 {
		t.Error("closed runner delivered a result")
	}
}

func TestHTTPGenerator(t *testing.T) {
	var gotKey, gotPath string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"  Hold the gate!  "}]}}]}`)
	}))
	defer srv.Close()

	t.Setenv("BASTION_TEST_KEY", "secret")
	gen := NewGenerator(srv.URL, "test-model", "BASTION_TEST_KEY", srv.Client())
	if _, ok := gen.(*HTTPGenerator); !ok {
		t.Fatalf("expected HTTPGenerator, got %T", gen)
	}

	text, err := gen.Generate(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Hold the gate!" {
		t.Errorf("text = %q", text)
	}
	if gotKey != "secret" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotPath != "/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "prompt text" {
		t.Errorf("request body = %+v", gotBody)
	}
	if gotBody.GenerationConfig.MaxOutputTokens != 100 {
		t.Errorf("max tokens = %d", gotBody.GenerationConfig.MaxOutputTokens)
	}
}

func TestHTTPGeneratorStatusError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := &HTTPGenerator{Endpoint: srv.URL, Model: "m", APIKey: "k", Client: srv.Client()}
	_, err := gen.Generate(context.Background(), "p")
	if !IsQuota(err) {
		t.Errorf("expected quota error, got %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times", hits.Load())
	}
}

func TestNewGeneratorWithoutKey(t *testing.T) {
	t.Setenv("BASTION_EMPTY_KEY", "")
	if _, ok := NewGenerator("http://localhost", "m", "BASTION_EMPTY_KEY", nil).(NopGenerator); !ok {
		t.Error("missing key should give NopGenerator")
	}
}

func TestPromptsMentionState(t *testing.T) {
	p := summaryPrompt(State{Wave: 4, Gold: 321, Lives: 55})
	for _, want := range []string{"Wave 4", "Gold 321", "55%"} {
		if !strings.Contains(p, want) {
			t.Errorf("summary prompt missing %q", want)
		}
	}
	if !strings.Contains(wavePrompt(9), "Wave 9") {
		t.Error("wave prompt missing wave number")
	}
}
