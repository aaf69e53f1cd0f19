package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

// ChartRecorder collects training progress and renders it as an HTML line chart.
type ChartRecorder struct {
	mu     sync.Mutex
	points []trainer.Progress
}

func NewChartRecorder() *ChartRecorder {
	return &ChartRecorder{}
}

func (that *ChartRecorder) Observe(_ context.Context, progress trainer.Progress) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// the final report repeats the last periodic one when the total is a multiple of the period
	if n := len(that.points); n > 0 && that.points[n-1].Episode == progress.Episode {
		that.points[n-1] = progress
		return
	}

	that.points = append(that.points, progress)
}

func (that *ChartRecorder) Points() []trainer.Progress {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]trainer.Progress(nil), that.points...)
}

func (that *ChartRecorder) Render(w io.Writer) error {
	points := that.Points()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Self-play training",
			Subtitle: "cumulative results per episode",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	episodes := make([]string, 0, len(points))
	winsX := make([]opts.LineData, 0, len(points))
	winsO := make([]opts.LineData, 0, len(points))
	draws := make([]opts.LineData, 0, len(points))

	for _, point := range points {
		episodes = append(episodes, strconv.Itoa(point.Episode))
		winsX = append(winsX, opts.LineData{Value: point.WinsX})
		winsO = append(winsO, opts.LineData{Value: point.WinsO})
		draws = append(draws, opts.LineData{Value: point.Draws})
	}

	line.SetXAxis(episodes).
		AddSeries("X wins", winsX).
		AddSeries("O wins", winsO).
		AddSeries("Draws", draws)

	page := components.NewPage()
	page.AddCharts(line)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// WriteFile renders the chart into path, creating missing directories.
func (that *ChartRecorder) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return that.Render(f)
}
