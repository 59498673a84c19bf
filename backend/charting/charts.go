package charting

import (
	"fmt"
	"github.com/fernandosanchezjr/godprng/analytics"
	"github.com/go-echarts/go-echarts/charts"
	"io"
	"os"
)

func BuildHistogram(report *analytics.Report) *charts.Bar {
	data := HistogramData(report)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.InitOpts{
			PageTitle: report.Source,
			Width:     "100wh",
			Height:    "85vh",
		},
		charts.TitleOpts{
			Title: fmt.Sprintf("Byte histogram, %s", report.Source),
			Subtitle: fmt.Sprintf("%d bytes, entropy %.6f, chi-square p %.4f, %s",
				report.Count, report.Entropy, report.ChiSquareP, formatTime(report.Time)),
		},
		charts.ToolboxOpts{Show: true},
	)
	bar.AddXAxis(data.X)
	for _, label := range data.Labels() {
		bar.AddYAxis(label, data.Series[label])
	}
	return bar
}

func BuildHistory(source string, reports []*analytics.Report, refresh bool) *charts.Line {
	data := HistoryData(reports)
	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.InitOpts{
			PageTitle: source,
			Width:     "100wh",
			Height:    "85vh",
		},
		charts.TitleOpts{Title: fmt.Sprintf("History, %s", source)},
		charts.ToolboxOpts{Show: true},
	)
	lineChart.AddXAxis(data.X)
	for _, label := range data.Labels() {
		lineChart.AddYAxis(label, data.Series[label])
	}
	if refresh {
		lineChart.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return lineChart
}

func RenderHistogram(w io.Writer, report *analytics.Report) error {
	return BuildHistogram(report).Render(w)
}

func WriteHistogramFile(filePath string, report *analytics.Report) (err error) {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return RenderHistogram(f, report)
}
