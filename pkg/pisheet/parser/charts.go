package parser

import (
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/pisheet-go/pkg/pisheet/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// legendPositions maps legendPos values to the names excelize accepts.
var legendPositions = map[string]string{
	"b":  "bottom",
	"t":  "top",
	"l":  "left",
	"r":  "right",
	"tr": "top_right",
}

// LegendNone is reported for charts without a legend element.
const LegendNone = "none"

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	name      string
	chartPath string
	anchor    string
}

// Charts returns the charts drawn on sheet, ordered by name.
func (p *Package) Charts(sheet string) ([]models.Chart, error) {
	part, ok := p.sheets[sheet]
	if !ok {
		return nil, nil
	}
	sheetRels, err := p.read(relsPath(part))
	if err != nil || sheetRels == nil {
		return nil, err
	}
	drawingPath := findRelationship(sheetRels, "drawing")
	if drawingPath == "" {
		return nil, nil
	}

	infos, err := p.chartInfos(resolveRelativePath(drawingPath, "xl/worksheets"))
	if err != nil {
		return nil, err
	}

	var charts []models.Chart
	for _, ci := range infos {
		chartXML, err := p.read(ci.chartPath)
		if err != nil {
			return nil, err
		}
		if chartXML == nil {
			continue
		}
		chart := parseChartXML(chartXML, ci.name)
		chart.Anchor = ci.anchor
		charts = append(charts, *chart)
	}
	sort.SliceStable(charts, func(i, j int) bool { return charts[i].Name < charts[j].Name })
	return charts, nil
}

// chartInfos extracts chart info from a drawing part.
func (p *Package) chartInfos(drawingPath string) ([]chartInfo, error) {
	drawingXML, err := p.read(drawingPath)
	if err != nil || drawingXML == nil {
		return nil, err
	}

	positions := parseDrawingForCharts(drawingXML)
	if len(positions) == 0 {
		return nil, nil
	}

	relsXML, err := p.read(relsPath(drawingPath))
	if err != nil || relsXML == nil {
		return nil, err
	}
	rels := parseRels(relsXML)

	var result []chartInfo
	for rID, pos := range positions {
		rel, ok := rels[rID]
		if !ok || !strings.HasSuffix(strings.ToLower(rel.kind), "/chart") {
			continue
		}
		pos.chartPath = resolveRelativePath(rel.target, "xl/drawings")
		result = append(result, pos)
	}
	return result, nil
}

// parseDrawingForCharts parses drawing XML to find chart frames keyed by
// relationship id.
func parseDrawingForCharts(data []byte) map[string]chartInfo {
	result := make(map[string]chartInfo)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && (se.Name.Local == "twoCellAnchor" || se.Name.Local == "oneCellAnchor") {
			rID, info := parseAnchor(decoder)
			if rID != "" {
				result[rID] = info
			}
		}
	}

	return result
}

// parseAnchor parses a cell anchor holding a graphicFrame with a chart.
func parseAnchor(decoder *xml.Decoder) (string, chartInfo) {
	var rID string
	var info chartInfo
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				info.anchor = parseAnchorCell(decoder)
				depth--
			case "graphicFrame":
				rID, info.name = parseGraphicFrame(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rID, info
}

// parseAnchorCell converts the 0-based col/row of an anchor marker into a
// cell name.
func parseAnchorCell(decoder *xml.Decoder) string {
	col, row := -1, -1
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "col", "row":
				txt, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				n, err := strconv.Atoi(strings.TrimSpace(txt))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					col = n
				} else {
					row = n
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if col < 0 || row < 0 {
		return ""
	}
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// parseGraphicFrame returns the chart relationship id and frame name.
func parseGraphicFrame(decoder *xml.Decoder) (rID, name string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				name = attr(t, "name")
			case "chart":
				rID = attr(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, name string) *models.Chart {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	chart := &models.Chart{Name: name, Legend: LegendNone}

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, chart)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			case "legend":
				chart.Legend = parseLegend(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle parses chart title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					title.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(title.String())
}

func parseLegend(decoder *xml.Decoder) string {
	pos := "right"
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "legendPos" {
				if name, ok := legendPositions[attr(t, "val")]; ok {
					pos = name
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return pos
}

// parsePlotArea parses plot area element. Category axes and the first value
// axis of a scatter chart describe X, the remaining value axis describes Y.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1
	valAxes := 0
	hasCatAx := false

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				chart.ChartType = ct
				chart.Series = parseChartSeries(decoder)
				depth--
				continue
			}
			switch t.Name.Local {
			case "catAx", "dateAx":
				hasCatAx = true
				chart.XAxisTitle, chart.XAxisRange = parseAxis(decoder)
				depth--
			case "valAx":
				title, axisRange := parseAxis(decoder)
				depth--
				if valAxes == 0 && !hasCatAx && chart.ChartType == "XYScatter" {
					chart.XAxisTitle, chart.XAxisRange = title, axisRange
				} else {
					chart.YAxisTitle, chart.YAxisRange = title, axisRange
				}
				valAxes++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type.
func parseChartSeries(decoder *xml.Decoder) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	s := models.ChartSeries{Line: true}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue
			}
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			case "marker":
				s.Marker = parseMarker(decoder)
				depth--
			case "spPr":
				s.Line = parseSeriesLine(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element. A formula that is not
// a sheet reference is a literal name.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if name == "" && !strings.Contains(nameRange, "!") {
		name, nameRange = strings.Trim(nameRange, `"`), ""
	}
	return
}

// parseSeriesRange parses range reference from cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

func parseMarker(decoder *xml.Decoder) string {
	var symbol string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "symbol" {
				symbol = attr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return symbol
}

// parseSeriesLine reports whether the series outline is drawn.
func parseSeriesLine(decoder *xml.Decoder) bool {
	drawn := true
	inLn := false
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ln":
				inLn = true
			case "noFill":
				if inLn {
					drawn = false
				}
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "ln" {
				inLn = false
			}
		}
	}

	return drawn
}

// parseAxis parses an axis element.
func parseAxis(decoder *xml.Decoder) (title string, axisRange []float64) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling parses axis scaling element.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min", "max":
				v, err := strconv.ParseFloat(attr(t, "val"), 64)
				if err != nil {
					continue
				}
				if t.Name.Local == "min" {
					min = &v
				} else {
					max = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		return []float64{*min, *max}
	}
	return nil
}
