package chart

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
)

type renderable interface {
	Render(w io.Writer) error
}

// Show renders the accumulated figure into the output directory and, when
// not headless, opens it with the platform opener. The written path is
// retained on the figure.
func (f *Figure) Show() error {
	if f.kind == KindNone {
		return fmt.Errorf("show: no plot was drawn")
	}
	r, err := f.build()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	name := fmt.Sprintf("chart_%s_%s.html", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(f.outputDir, name)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := r.Render(out); err != nil {
		out.Close()
		_ = os.Remove(path)
		return fmt.Errorf("render chart: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	f.renderedPath = path
	if !f.headless {
		openInBrowser(path)
	}
	return nil
}

func (f *Figure) build() (renderable, error) {
	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: f.title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "chartloom", Width: "900px", Height: "520px"}),
	}
	axes := []charts.GlobalOpts{
		charts.WithXAxisOpts(opts.XAxis{Name: f.xlabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.ylabel}),
	}

	switch f.kind {
	case KindBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, axes...)...)
		data := make([]opts.BarData, len(f.series))
		for i, v := range f.series {
			data[i] = opts.BarData{Value: v}
		}
		bar.SetXAxis(f.catX).AddSeries("values", data)
		return bar, nil
	case KindHist:
		labels, counts := histogram(f.series, f.bins)
		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, axes...)...)
		data := make([]opts.BarData, len(counts))
		for i, v := range counts {
			data[i] = opts.BarData{Value: v}
		}
		bar.SetXAxis(labels).AddSeries("count", data)
		return bar, nil
	case KindLine:
		line := charts.NewLine()
		line.SetGlobalOptions(append(global, axes...)...)
		data := make([]opts.LineData, len(f.series))
		for i, v := range f.series {
			data[i] = opts.LineData{Value: v}
		}
		line.SetXAxis(f.catX).AddSeries("values", data)
		return line, nil
	case KindScatter:
		sc := charts.NewScatter()
		sc.SetGlobalOptions(append(global, axes...)...)
		data := make([]opts.ScatterData, len(f.scatY))
		for i := range f.scatY {
			data[i] = opts.ScatterData{Value: []any{f.scatX[i], f.scatY[i]}}
		}
		sc.AddSeries("points", data)
		return sc, nil
	case KindPie:
		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		data := make([]opts.PieData, len(f.series))
		for i, v := range f.series {
			data[i] = opts.PieData{Name: f.labels[i], Value: v}
		}
		pie.AddSeries("share", data)
		return pie, nil
	}
	return nil, fmt.Errorf("unknown plot kind %q", f.kind)
}

// openInBrowser hands the rendered file to the platform opener. Best
// effort: a missing opener leaves the file on disk for the user.
func openInBrowser(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
