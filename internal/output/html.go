package output

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	zlog "github.com/rs/zerolog/log"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

//go:generate curl -sSfL -o assets/echarts.min.js https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js

// embedded mirrors the layout of the go-echarts assets host, so a script
// referenced as <host>/themes/x.js is looked up as themes/x.js.
//
//go:embed assets
var embedded embed.FS

// Columns is the number of panels per row.
const Columns = 2

// HTMLOptions controls the look of the generated page.
type HTMLOptions struct {
	Title      string
	Height     string // per panel; width always follows the grid
	Theme      string
	AssetsHost string // only used for scripts that are not embedded
}

// DefaultHTMLOptions returns the options used when nothing is configured.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Title:  "sync core stats",
		Height: "420px",
		Theme:  "syncviz",
	}
}

// HTMLRenderer draws each group as a line chart and lays the charts out in
// rows of Columns panels. Chart scripts are inlined so the page works offline.
type HTMLRenderer struct {
	opts   HTMLOptions
	assets fs.FS
}

func NewHTMLRenderer(o HTMLOptions) *HTMLRenderer {
	assets, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return &HTMLRenderer{opts: o, assets: assets}
}

// Grid returns the rows and columns needed for n panels.
func Grid(n int) (rows, cols int) {
	return (n + Columns - 1) / Columns, Columns
}

// Cell returns the 1-based row and column of the i-th panel.
func Cell(i int) (row, col int) {
	return i/Columns + 1, i%Columns + 1
}

type panel struct {
	Element template.HTML
	Script  template.HTML
}

type page struct {
	Title   string
	Scripts []template.HTML
	Rows    [][]panel
}

var pageTpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
{{- range .Scripts }}
    {{ . }}
{{- end }}
    <style>
        body { margin: 0; }
        .row { display: flex; width: 100%; }
        .cell { flex: 1 1 0; min-width: 0; }
    </style>
</head>
<body>
{{- range .Rows }}
<div class="row">
{{- range . }}
    <div class="cell">{{ .Element }}</div>
{{- end }}
</div>
{{- end }}
{{- range .Rows }}{{ range . }}
{{ .Script }}
{{- end }}{{ end }}
</body>
</html>
`))

func (r *HTMLRenderer) Render(w io.Writer, groups []model.TraceGroup) error {
	rows, cols := Grid(len(groups))
	zlog.Debug().Int("panels", len(groups)).Int("rows", rows).Int("cols", cols).Msg("layout")

	p := page{Title: r.opts.Title, Rows: make([][]panel, rows)}
	for i := range p.Rows {
		p.Rows[i] = make([]panel, cols)
	}

	seen := make(map[string]bool)
	for i, g := range groups {
		row, col := Cell(i)
		zlog.Debug().Str("panel", g.Name).Int("row", row).Int("col", col).Int("samples", g.Len()).Msg("place")

		line := r.chart(g)
		snippet := line.RenderSnippet()
		p.Rows[row-1][col-1] = panel{
			Element: template.HTML(snippet.Element),
			Script:  template.HTML(snippet.Script),
		}

		for _, src := range line.GetAssets().JSAssets.Values {
			if seen[src] {
				continue
			}
			seen[src] = true
			tag, err := r.script(src, line.Initialization.AssetsHost)
			if err != nil {
				return err
			}
			p.Scripts = append(p.Scripts, tag)
		}
	}

	return pageTpl.Execute(w, p)
}

// script returns an inline <script> for src when the asset is embedded, and
// a plain reference to src otherwise.
func (r *HTMLRenderer) script(src, host string) (template.HTML, error) {
	name := strings.TrimPrefix(src, host)
	data, err := fs.ReadFile(r.assets, name)
	if errors.Is(err, fs.ErrNotExist) {
		zlog.Warn().Str("script", name).Msg("not embedded, page will load it from the network")
		return template.HTML(`<script src="` + template.HTMLEscapeString(src) + `"></script>`), nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "read asset %s", name)
	}
	body := strings.ReplaceAll(string(data), "</script", `<\/script`)
	return template.HTML("<script>\n" + body + "\n</script>"), nil
}

// chart builds one panel. Samples are plotted against their index.
func (r *HTMLRenderer) chart(g model.TraceGroup) *charts.Line {
	line := charts.NewLine()
	initOpts := opts.Initialization{
		Width:  "100%",
		Height: r.opts.Height,
		Theme:  r.opts.Theme,
	}
	if r.opts.AssetsHost != "" {
		initOpts.AssetsHost = r.opts.AssetsHost
	}
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{Title: g.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)

	n := g.Len()
	xaxis := make([]int, n)
	for i := range xaxis {
		xaxis[i] = i
	}
	line.SetXAxis(xaxis)

	for _, tr := range g.Traces {
		data := make([]opts.LineData, len(tr.Values))
		for i, v := range tr.Values {
			data[i].Value = v
		}
		line.AddSeries(tr.Name, data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	return line
}
