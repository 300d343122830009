package standingsservice

import (
	"bytes"
	"context"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
)

// TimelineChartPNG renders the window's timeline as a multi-series PNG line
// chart, one series per player.
func (s *StandingsService) TimelineChartPNG(ctx context.Context, opts Options) ([]byte, error) {
	points, err := s.Timeline(ctx, opts)
	if err != nil {
		return nil, err
	}

	// go-chart cannot draw a line from fewer than two points.
	if len(points) < 2 {
		return renderNoDataPlaceholder()
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}

	xValues := make([]time.Time, len(points))
	for i, point := range points {
		xValues[i] = point.At
	}

	series := make([]chart.Series, 0, len(players))
	for i, player := range players {
		series = append(series, playerSeries(player, points, xValues, i))
	}

	graph := chart.Chart{
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Points",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func playerSeries(player playerdb.Player, points []standingsdomain.TimelinePoint, xValues []time.Time, index int) chart.TimeSeries {
	yValues := make([]float64, len(points))
	for i, point := range points {
		yValues[i] = float64(point.Totals[player.ID])
	}
	return chart.TimeSeries{
		Name:    player.Name,
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: chart.GetDefaultColor(index),
			StrokeWidth: 2,
		},
	}
}

func renderNoDataPlaceholder() ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Not enough games in this window"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
