package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks redraw rate and memory statistics for performance monitoring.
// Frames are event driven, so the reported rate is redraws per second over the
// interval rather than a steady frame rate. Outputs stats to the logger at debug level.
type Profiler struct {
	logger         *slog.Logger
	now            func() time.Time
	frameCount     int
	totalFrames    uint64
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - logger: the destination for statistics, or nil for the default logger
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Profiler{
		logger:         logger,
		now:            time.Now,
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// TotalFrames returns the number of frames counted since creation.
func (p *Profiler) TotalFrames() uint64 {
	return p.totalFrames
}

// Tick should be called once per drawn frame.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: redraw rate, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	p.totalFrames++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	rate := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Debug("profiler",
		"frames", p.frameCount,
		"redraws_per_sec", rate,
		"heap_mb", allocMB,
		"alloc_rate_mb_s", allocRateMB,
		"gc", gcCount,
		"gc_last_pause_us", lastPauseUs,
		"gc_max_pause_us", maxPauseUs,
		"sys_mb", sysMB,
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
