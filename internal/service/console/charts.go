package console

import "github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"

// Chart mount points.
const (
	MountRidesSeries  = "tsRidesChart"
	MountHourHeatmap  = "ridesByHourHeatmap"
	MountUserGrowth   = "userGrowthChart"
	MountCancellation = "cancellationDoughnut"
	MountWaitVsTrips  = "waitVsCompleted"
)

// Heatmap tiers.
const (
	HeatHigh   = "#c0392b"
	HeatMedium = "#e67e22"
	HeatLow    = "#f1c40f"
)

const (
	gridColor      = "rgba(44, 62, 80, 0.12)"
	axisLabelColor = "#2c3e50"
	tickColor      = "#34495e"
)

var CancellationLabels = []string{
	"Booking Cancelled",
	"Trip Cancelled",
	`Safety (Trip reason contains "safety")`,
	"Other Trip Cancellation",
}

type chartSpec struct {
	mount  string
	config chartjs.Config
}

// buildCharts returns the five dashboard charts in render order.
func buildCharts(s ChartSeries) []chartSpec {
	return []chartSpec{
		{MountRidesSeries, ridesSeriesChart(s)},
		{MountHourHeatmap, hourHeatmapChart(s)},
		{MountUserGrowth, userGrowthChart(s)},
		{MountCancellation, cancellationChart(s)},
		{MountWaitVsTrips, waitVsTripsChart(s)},
	}
}

// HeatColor maps an hourly booking count to its tier. Gaps use the low tier.
func HeatColor(v *float64) string {
	switch {
	case v == nil:
		return HeatLow
	case *v > 300:
		return HeatHigh
	case *v > 200:
		return HeatMedium
	default:
		return HeatLow
	}
}

func baseOptions(title string) chartjs.Options {
	return chartjs.Options{
		Title:               chartjs.Title{Display: true, Text: title},
		Responsive:          true,
		MaintainAspectRatio: false,
		Layout: chartjs.Layout{
			Padding: chartjs.Padding{Top: 6, Right: 10, Bottom: 6, Left: 8},
		},
	}
}

func lineDataset(label string, data []*float64, background, border string) chartjs.Dataset {
	ds := chartjs.Dataset{
		Label:            label,
		Data:             data,
		BorderColor:      chartjs.Color(border),
		BorderWidth:      2,
		PointRadius:      2,
		PointHoverRadius: 4,
		PointHitRadius:   8,
		LineTension:      0.25,
	}
	if background != "" {
		ds.BackgroundColor = chartjs.Color(background)
		ds.Fill = chartjs.Bool(true)
	}
	return ds
}

func categoryAxis(compact bool) chartjs.Axis {
	axis := chartjs.Axis{
		GridLines: chartjs.GridLines{Display: chartjs.Bool(false)},
		Ticks:     chartjs.Ticks{FontColor: tickColor},
	}
	if compact {
		axis.Ticks.MaxRotation = chartjs.Int(0)
		axis.Ticks.AutoSkip = chartjs.Bool(true)
	}
	return axis
}

func countAxis(label string) chartjs.Axis {
	return chartjs.Axis{
		GridLines:  chartjs.GridLines{Color: gridColor, DrawBorder: chartjs.Bool(false)},
		Ticks:      chartjs.Ticks{BeginAtZero: true, FontColor: tickColor, Precision: chartjs.Int(0)},
		ScaleLabel: &chartjs.ScaleLabel{Display: true, LabelString: label, FontColor: axisLabelColor},
	}
}

func ridesSeriesChart(s ChartSeries) chartjs.Config {
	opts := baseOptions("Daily Completed Rides")
	opts.Scales = &chartjs.Scales{
		XAxes: []chartjs.Axis{categoryAxis(true)},
		YAxes: []chartjs.Axis{countAxis("Trips")},
	}

	return chartjs.Config{
		Type: chartjs.TypeLine,
		Data: chartjs.Data{
			Labels: s.Labels,
			Datasets: []chartjs.Dataset{
				lineDataset("Rides Completed", s.TSRides, "rgba(46,204,113,0.2)", "#27ae60"),
			},
		},
		Options: opts,
	}
}

func hourHeatmapChart(s ChartSeries) chartjs.Config {
	colors := make(chartjs.Colors, len(s.ByHour))
	for i, v := range s.ByHour {
		colors[i] = HeatColor(v)
	}

	opts := baseOptions("Booking Density (last 24h)")
	opts.Legend = &chartjs.Legend{Display: chartjs.Bool(false)}
	opts.Scales = &chartjs.Scales{
		XAxes: []chartjs.Axis{categoryAxis(false)},
		YAxes: []chartjs.Axis{countAxis("Bookings")},
	}

	return chartjs.Config{
		Type: chartjs.TypeBar,
		Data: chartjs.Data{
			Labels: s.ByHourLabels,
			Datasets: []chartjs.Dataset{{
				Label:              "Bookings (last 24h)",
				Data:               s.ByHour,
				BackgroundColor:    colors,
				BorderColor:        colors,
				BorderWidth:        1,
				BarPercentage:      0.75,
				CategoryPercentage: 0.8,
			}},
		},
		Options: opts,
	}
}

func userGrowthChart(s ChartSeries) chartjs.Config {
	opts := baseOptions("Daily Active Users")
	opts.Scales = &chartjs.Scales{
		XAxes: []chartjs.Axis{categoryAxis(true)},
		YAxes: []chartjs.Axis{countAxis("Users")},
	}

	return chartjs.Config{
		Type: chartjs.TypeLine,
		Data: chartjs.Data{
			Labels: s.Labels,
			Datasets: []chartjs.Dataset{
				lineDataset("Active Drivers", s.Drivers, "rgba(52,152,219,0.2)", "#2980b9"),
				lineDataset("Active Riders", s.Riders, "rgba(155,89,182,0.2)", "#9b59b6"),
			},
		},
		Options: opts,
	}
}

func cancellationChart(s ChartSeries) chartjs.Config {
	opts := baseOptions("Cancellation Breakdown (last 7 days)")
	opts.CutoutPercentage = 65
	opts.Legend = &chartjs.Legend{
		Position: "right",
		Labels:   &chartjs.LegendLabels{FontColor: tickColor, UsePointStyle: true},
	}

	return chartjs.Config{
		Type: chartjs.TypeDoughnut,
		Data: chartjs.Data{
			Labels: append([]string(nil), CancellationLabels...),
			Datasets: []chartjs.Dataset{{
				Data:            s.CancelReasons,
				BackgroundColor: chartjs.Colors{"#e74c3c", "#f39c12", "#c0392b", "#7f8c8d"},
				BorderColor:     chartjs.Color("#ffffff"),
				BorderWidth:     2,
			}},
		},
		Options: opts,
	}
}

func waitVsTripsChart(s ChartSeries) chartjs.Config {
	trips := chartjs.Dataset{
		Type:               chartjs.TypeBar,
		Label:              "Completed Trips",
		Data:               s.CompletedTrips,
		BackgroundColor:    chartjs.Color("#2ecc71"),
		BorderColor:        chartjs.Color("#27ae60"),
		BorderWidth:        1,
		YAxisID:            "y1",
		BarPercentage:      0.75,
		CategoryPercentage: 0.8,
	}

	wait := lineDataset("Avg Wait (min)", s.AvgWait, "", "#e67e22")
	wait.Type = chartjs.TypeLine
	wait.Fill = chartjs.Bool(false)
	wait.YAxisID = "y2"
	wait.SpanGaps = true

	tripsAxis := countAxis("Trips")
	tripsAxis.ID = "y1"
	tripsAxis.Position = "left"

	waitAxis := chartjs.Axis{
		ID:         "y2",
		Position:   "right",
		GridLines:  chartjs.GridLines{DrawOnChartArea: chartjs.Bool(false)},
		Ticks:      chartjs.Ticks{BeginAtZero: true, FontColor: tickColor},
		ScaleLabel: &chartjs.ScaleLabel{Display: true, LabelString: "Wait (min)", FontColor: axisLabelColor},
	}

	opts := baseOptions("Trips vs. Avg. Wait Time")
	opts.Scales = &chartjs.Scales{
		XAxes: []chartjs.Axis{categoryAxis(true)},
		YAxes: []chartjs.Axis{tripsAxis, waitAxis},
	}

	return chartjs.Config{
		Type: chartjs.TypeBar,
		Data: chartjs.Data{
			Labels:   s.Labels,
			Datasets: []chartjs.Dataset{trips, wait},
		},
		Options: opts,
	}
}
