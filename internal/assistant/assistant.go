// Package assistant coordinates dataset loading, profiling, code
// generation and sandboxed execution behind one session controller.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/KaramelBytes/chartloom-cli/internal/ai"
	"github.com/KaramelBytes/chartloom-cli/internal/chart"
	"github.com/KaramelBytes/chartloom-cli/internal/config"
	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
	"github.com/KaramelBytes/chartloom-cli/internal/profile"
	"github.com/KaramelBytes/chartloom-cli/internal/sandbox"
	"github.com/KaramelBytes/chartloom-cli/internal/voice"
)

// NotLoadedMessage is what Info reports before any dataset is loaded.
const NotLoadedMessage = "No dataset loaded. Please load a dataset first."

// Assistant owns the single current-dataset slot. The dataset, its profile
// and the rendered context are created together on load and replaced
// wholesale on the next load; nothing mutates them in between.
type Assistant struct {
	cfg    *config.Global
	client *ai.Client

	ds      *dataset.Dataset
	prof    *profile.DatasetProfile
	context string
}

func New(cfg *config.Global, client *ai.Client) *Assistant {
	return &Assistant{cfg: cfg, client: client}
}

// Load reads a dataset from path and swaps it in. On any failure the
// previously loaded dataset, profile and context stay untouched.
func (a *Assistant) Load(path string) (rows, cols int, err error) {
	ds, err := dataset.LoadFile(path)
	if err != nil {
		return 0, 0, wrap(KindLoadFailed, err)
	}
	prof := profile.Build(ds)
	text, err := profile.Render(prof)
	if err != nil {
		return 0, 0, wrap(KindLoadFailed, err)
	}
	a.ds = ds
	a.prof = prof
	a.context = text
	return ds.Rows(), ds.NumCols(), nil
}

// Loaded reports whether a dataset is currently loaded.
func (a *Assistant) Loaded() bool { return a.ds != nil }

// Info returns the current formatted context, or the fixed not-loaded
// message.
func (a *Assistant) Info() string {
	if a.ds == nil {
		return NotLoadedMessage
	}
	return a.context
}

// Generate asks the model for plotting code against the cached context.
func (a *Assistant) Generate(ctx context.Context, request string) (string, error) {
	if a.ds == nil {
		return "", wrap(KindNoDataset, errors.New(NotLoadedMessage))
	}
	code, err := a.client.GenerateVisualizationCode(ctx, a.cfg.Model, a.context, request, a.cfg.MaxTokens, a.cfg.Temperature)
	if err != nil {
		return "", wrap(KindGenerationFailed, err)
	}
	return code, nil
}

// Execute runs generated code in the sandbox against the loaded dataset
// and returns the rendered chart path ("" when the code showed nothing).
func (a *Assistant) Execute(code string) (string, error) {
	if a.ds == nil {
		return "", wrap(KindNoDataset, errors.New(NotLoadedMessage))
	}
	fig := chart.New(a.cfg.OutputDir, a.cfg.Headless)
	if err := sandbox.Run(code, a.ds, fig); err != nil {
		return "", wrap(KindExecutionFailed, err)
	}
	return fig.RenderedPath(), nil
}

// Visualize runs the full generate-then-execute sequence and surfaces the
// first failure encountered.
func (a *Assistant) Visualize(ctx context.Context, request string) (code, chartPath string, err error) {
	code, err = a.Generate(ctx, request)
	if err != nil {
		return "", "", err
	}
	chartPath, err = a.Execute(code)
	if err != nil {
		return code, "", err
	}
	return code, chartPath, nil
}

// Transcribe converts an audio file to text via the speech-to-text API.
func (a *Assistant) Transcribe(ctx context.Context, audioPath string) (string, error) {
	text, err := a.client.Transcribe(ctx, a.cfg.TranscribeModel, audioPath)
	if err != nil {
		return "", wrap(KindTranscriptionFailed, err)
	}
	return text, nil
}

// RecordAndTranscribe captures audio for the given duration and
// transcribes it. The temp recording is removed on every path.
func (a *Assistant) RecordAndTranscribe(ctx context.Context, seconds int) (string, error) {
	rec, err := voice.NewRecorder(a.cfg.Recorder)
	if err != nil {
		return "", wrap(KindAudioUnavailable, err)
	}
	path, cleanup, err := rec.Record(ctx, seconds)
	if err != nil {
		return "", wrap(KindAudioUnavailable, err)
	}
	defer cleanup()
	return a.Transcribe(ctx, path)
}

// Describe returns a short human summary of the loaded dataset.
func (a *Assistant) Describe() string {
	if a.ds == nil {
		return NotLoadedMessage
	}
	return fmt.Sprintf("%d rows, %d columns", a.ds.Rows(), a.ds.NumCols())
}
