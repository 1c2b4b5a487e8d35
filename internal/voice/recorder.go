// Package voice captures short audio clips by shelling out to a system
// recorder. A missing recorder binary is a distinct condition from any
// later transcription failure, so callers can report the two separately.
package voice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ErrNoRecorder indicates no usable recording binary was found.
var ErrNoRecorder = errors.New("no audio recorder available (install arecord or ffmpeg, or set recorder in config)")

// Duration bounds for a capture, in seconds.
const (
	MinSeconds     = 1
	MaxSeconds     = 30
	DefaultSeconds = 5
)

type Recorder struct {
	bin  string
	name string // base name deciding the argument shape
}

// NewRecorder locates a recording binary. An override naming a specific
// binary wins; otherwise arecord is preferred, then ffmpeg.
func NewRecorder(override string) (*Recorder, error) {
	candidates := []string{"arecord", "ffmpeg"}
	if override != "" {
		candidates = []string{override}
	}
	for _, c := range candidates {
		if p, err := exec.LookPath(c); err == nil {
			return &Recorder{bin: p, name: filepath.Base(c)}, nil
		}
	}
	return nil, ErrNoRecorder
}

// Record captures the given number of seconds into a temporary WAV file.
// The returned cleanup removes the file and must be called on success and
// failure paths alike; Record itself cleans up when the capture fails.
func (r *Recorder) Record(ctx context.Context, seconds int) (string, func(), error) {
	if seconds < MinSeconds {
		seconds = MinSeconds
	}
	if seconds > MaxSeconds {
		seconds = MaxSeconds
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("chartloom_voice_%s.wav", uuid.NewString()[:8]))
	cleanup := func() { _ = os.Remove(path) }

	var args []string
	switch r.name {
	case "ffmpeg":
		args = []string{"-loglevel", "error", "-f", "alsa", "-i", "default", "-t", strconv.Itoa(seconds), "-y", path}
	default: // arecord and compatible
		args = []string{"-q", "-f", "cd", "-d", strconv.Itoa(seconds), path}
	}
	cmd := exec.CommandContext(ctx, r.bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("record audio: %v: %s", err, out)
	}
	return path, cleanup, nil
}

// ClampSeconds normalizes a requested duration into the supported range.
func ClampSeconds(n int) int {
	if n < MinSeconds {
		return MinSeconds
	}
	if n > MaxSeconds {
		return MaxSeconds
	}
	return n
}
