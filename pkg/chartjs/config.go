// Package chartjs models the declarative Chart.js (2.x) configuration the
// administration pages hand to the browser, and the lifecycle of a chart
// bound to a canvas mount point.
package chartjs

import "encoding/json"

// Chart types.
const (
	TypeLine     = "line"
	TypeBar      = "bar"
	TypeDoughnut = "doughnut"
)

type (
	Config struct {
		Type    string  `json:"type"`
		Data    Data    `json:"data"`
		Options Options `json:"options"`
	}

	Data struct {
		Labels   []string  `json:"labels"`
		Datasets []Dataset `json:"datasets"`
	}

	// Dataset values are pointers so gaps serialise as null.
	Dataset struct {
		Type               string     `json:"type,omitempty"`
		Label              string     `json:"label,omitempty"`
		Data               []*float64 `json:"data"`
		BackgroundColor    Colors     `json:"backgroundColor,omitempty"`
		BorderColor        Colors     `json:"borderColor,omitempty"`
		BorderWidth        int        `json:"borderWidth,omitempty"`
		Fill               *bool      `json:"fill,omitempty"`
		YAxisID            string     `json:"yAxisID,omitempty"`
		SpanGaps           bool       `json:"spanGaps,omitempty"`
		BarPercentage      float64    `json:"barPercentage,omitempty"`
		CategoryPercentage float64    `json:"categoryPercentage,omitempty"`
		PointRadius        int        `json:"pointRadius,omitempty"`
		PointHoverRadius   int        `json:"pointHoverRadius,omitempty"`
		PointHitRadius     int        `json:"pointHitRadius,omitempty"`
		LineTension        float64    `json:"lineTension,omitempty"`
	}

	Options struct {
		Title               Title   `json:"title"`
		Legend              *Legend `json:"legend,omitempty"`
		Responsive          bool    `json:"responsive"`
		MaintainAspectRatio bool    `json:"maintainAspectRatio"`
		Layout              Layout  `json:"layout"`
		Scales              *Scales `json:"scales,omitempty"`
		CutoutPercentage    int     `json:"cutoutPercentage,omitempty"`
	}

	Title struct {
		Display bool   `json:"display"`
		Text    string `json:"text"`
	}

	Legend struct {
		Display  *bool         `json:"display,omitempty"`
		Position string        `json:"position,omitempty"`
		Labels   *LegendLabels `json:"labels,omitempty"`
	}

	LegendLabels struct {
		FontColor     string `json:"fontColor,omitempty"`
		UsePointStyle bool   `json:"usePointStyle,omitempty"`
	}

	Layout struct {
		Padding Padding `json:"padding"`
	}

	Padding struct {
		Top    int `json:"top"`
		Right  int `json:"right"`
		Bottom int `json:"bottom"`
		Left   int `json:"left"`
	}

	Scales struct {
		XAxes []Axis `json:"xAxes,omitempty"`
		YAxes []Axis `json:"yAxes,omitempty"`
	}

	Axis struct {
		ID         string      `json:"id,omitempty"`
		Position   string      `json:"position,omitempty"`
		GridLines  GridLines   `json:"gridLines"`
		Ticks      Ticks       `json:"ticks"`
		ScaleLabel *ScaleLabel `json:"scaleLabel,omitempty"`
	}

	GridLines struct {
		Display         *bool  `json:"display,omitempty"`
		Color           string `json:"color,omitempty"`
		DrawBorder      *bool  `json:"drawBorder,omitempty"`
		DrawOnChartArea *bool  `json:"drawOnChartArea,omitempty"`
	}

	Ticks struct {
		FontColor   string `json:"fontColor,omitempty"`
		BeginAtZero bool   `json:"beginAtZero,omitempty"`
		Precision   *int   `json:"precision,omitempty"`
		MaxRotation *int   `json:"maxRotation,omitempty"`
		AutoSkip    *bool  `json:"autoSkip,omitempty"`
	}

	ScaleLabel struct {
		Display     bool   `json:"display"`
		LabelString string `json:"labelString"`
		FontColor   string `json:"fontColor,omitempty"`
	}
)

// Colors is one colour for the whole dataset or one per data point.
type Colors []string

// MarshalJSON writes a single colour as a plain string.
func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// UnmarshalJSON accepts either form MarshalJSON writes.
func (c *Colors) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = nil
		return nil
	}

	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Colors{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// Color is shorthand for a single-colour Colors.
func Color(c string) Colors {
	return Colors{c}
}

func Bool(b bool) *bool {
	return &b
}

func Int(i int) *int {
	return &i
}

// Values converts plain numbers into a dataset series without gaps.
func Values(v ...float64) []*float64 {
	out := make([]*float64, len(v))
	for i := range v {
		out[i] = &v[i]
	}
	return out
}

// Marshal encodes cfg as Chart.js expects it.
func (c Config) Marshal() ([]byte, error) {
	return json.Marshal(c)
}
