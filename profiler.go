package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Profiler captures a CPU profile when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	log             *logrus.Entry
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, log *logrus.Entry) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		log:             log.WithField("component", "profiler"),
	}
}

// CaptureProfile starts a background CPU profile named after reason
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		path, err := p.captureCPUProfile(baseName)
		if err != nil {
			p.log.WithError(err).Warn("cpu profile failed")
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		p.log.WithFields(logrus.Fields{
			"path":        path,
			"heap_kb":     m.HeapAlloc / 1024,
			"num_gc":      m.NumGC,
			"pause_total": time.Duration(m.PauseTotalNs),
		}).Info("cpu profile saved")
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) (string, error) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return "", fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	return path, nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
