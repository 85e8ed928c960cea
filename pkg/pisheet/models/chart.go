package models

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for X values or categories.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for Y values.
	YRange string `json:"y_range,omitempty"`
	// Marker is the marker symbol ("circle", "none", ...).
	Marker string `json:"marker,omitempty"`
	// Line reports whether the series is drawn with a connecting line.
	Line bool `json:"line"`
}

// Chart represents chart metadata including series and layout.
type Chart struct {
	// Name is the chart name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g. Scatter, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Anchor is the top-left cell of the chart frame (e.g. "I2").
	Anchor string `json:"anchor"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// XAxisRange is the X-axis range [min, max] when available.
	XAxisRange []float64 `json:"x_axis_range,omitempty"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the Y-axis range [min, max] when available.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Legend is the legend position, "none" when hidden.
	Legend string `json:"legend,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
