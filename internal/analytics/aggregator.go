package analytics

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Aggregator keeps in-memory usage counters for the running process.
type Aggregator struct {
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time

	totalVisits        int64
	styleViews         map[string]int64
	stopCodeViews      map[string]int64
	customMessageCount int64
	apiCalls           int64
	startTime          time.Time
}

// Summary is a point-in-time copy of the counters.
type Summary struct {
	TotalVisits        int64            `json:"total_visits"`
	StyleViews         map[string]int64 `json:"style_views"`
	StopCodeViews      map[string]int64 `json:"stop_code_views"`
	CustomMessageCount int64            `json:"custom_message_count"`
	APICalls           int64            `json:"api_calls"`
	StartTime          time.Time        `json:"start_time"`
	Uptime             Uptime           `json:"uptime"`
}

// Uptime breaks an elapsed duration into whole units.
type Uptime struct {
	Milliseconds int64  `json:"ms"`
	Seconds      int64  `json:"seconds"`
	Minutes      int64  `json:"minutes"`
	Hours        int64  `json:"hours"`
	Human        string `json:"human"`
}

// NewAggregator creates an aggregator. When enabled is false the tracking
// methods do nothing.
func NewAggregator(enabled bool) *Aggregator {
	a := &Aggregator{enabled: enabled, now: time.Now}
	a.resetLocked()
	return a
}

// Enabled reports whether tracking is switched on.
func (a *Aggregator) Enabled() bool {
	return a.enabled
}

// TrackVisit records a page view. An empty stopCode is not counted per code.
func (a *Aggregator) TrackVisit(style, stopCode string, isCustom bool) {
	if !a.enabled {
		return
	}

	a.mu.Lock()
	a.totalVisits++
	a.styleViews[style]++
	if stopCode != "" {
		a.stopCodeViews[stopCode]++
	}
	if isCustom {
		a.customMessageCount++
	}
	a.mu.Unlock()

	log.Debug().Str("style", style).Str("stop_code", stopCode).Bool("custom", isCustom).Msg("visit tracked")
}

// TrackAPICall records one API request.
func (a *Aggregator) TrackAPICall() {
	if !a.enabled {
		return
	}

	a.mu.Lock()
	a.apiCalls++
	a.mu.Unlock()
}

// Summary returns a snapshot of the counters and the uptime since start or last reset.
func (a *Aggregator) Summary() Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Summary{
		TotalVisits:        a.totalVisits,
		StyleViews:         maps.Clone(a.styleViews),
		StopCodeViews:      maps.Clone(a.stopCodeViews),
		CustomMessageCount: a.customMessageCount,
		APICalls:           a.apiCalls,
		StartTime:          a.startTime,
		Uptime:             NewUptime(a.now().Sub(a.startTime)),
	}
}

// Reset zeroes every counter and restarts the uptime clock. It applies even
// when tracking is disabled.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	a.resetLocked()
	a.mu.Unlock()

	log.Info().Msg("analytics reset")
}

func (a *Aggregator) resetLocked() {
	a.totalVisits = 0
	a.styleViews = make(map[string]int64)
	a.stopCodeViews = make(map[string]int64)
	a.customMessageCount = 0
	a.apiCalls = 0
	a.startTime = a.now()
}

// NewUptime converts d into whole units. Negative durations count as zero.
func NewUptime(d time.Duration) Uptime {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	seconds := ms / 1000
	minutes := seconds / 60
	hours := minutes / 60

	return Uptime{
		Milliseconds: ms,
		Seconds:      seconds,
		Minutes:      minutes,
		Hours:        hours,
		Human:        fmt.Sprintf("%dh %dm %ds", hours, minutes%60, seconds%60),
	}
}
