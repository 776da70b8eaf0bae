package chartjs

// Defaults are applied to Chart.defaults.global once per page before any
// chart is constructed.
type Defaults struct {
	FontFamily          string  `json:"fontFamily"`
	FontColor           string  `json:"fontColor"`
	FontSize            int     `json:"fontSize"`
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	AnimationDuration   int     `json:"animationDuration"`
	LegendBoxWidth      int     `json:"legendBoxWidth"`
	LegendPadding       int     `json:"legendPadding"`
	TooltipMode         string  `json:"tooltipMode"`
	TooltipIntersect    bool    `json:"tooltipIntersect"`
	TooltipBackground   string  `json:"tooltipBackground"`
	TooltipTitleSize    int     `json:"tooltipTitleSize"`
	TooltipBodySize     int     `json:"tooltipBodySize"`
	TooltipPadding      int     `json:"tooltipPadding"`
	LineBorderWidth     int     `json:"lineBorderWidth"`
	LineTension         float64 `json:"lineTension"`
	PointRadius         int     `json:"pointRadius"`
	PointHoverRadius    int     `json:"pointHoverRadius"`
	PointHitRadius      int     `json:"pointHitRadius"`
}

// StandardDefaults is the administration look: dark slate text, index
// tooltips, thin lines with small points.
func StandardDefaults() Defaults {
	return Defaults{
		FontFamily:          "Arial, sans-serif",
		FontColor:           "#2c3e50",
		FontSize:            12,
		Responsive:          true,
		MaintainAspectRatio: false,
		AnimationDuration:   250,
		LegendBoxWidth:      12,
		LegendPadding:       14,
		TooltipMode:         "index",
		TooltipIntersect:    false,
		TooltipBackground:   "rgba(44,62,80,0.92)",
		TooltipTitleSize:    13,
		TooltipBodySize:     12,
		TooltipPadding:      10,
		LineBorderWidth:     2,
		LineTension:         0.25,
		PointRadius:         2,
		PointHoverRadius:    4,
		PointHitRadius:      8,
	}
}
