package server

import (
	"html/template"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

type sliderView struct {
	decision.Slider
	Value string
}

type legendItem struct {
	Label string
	Color string
	Count int
}

type pageView struct {
	Title         string
	Sliders       []sliderView
	FigureURL     template.URL
	Width, Height int
	Annotation    []string
	Legend        []legendItem
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Decision diagram</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2em auto; color: #222; }
label { display: block; margin-top: 1em; }
input[type=range] { width: 100%; }
output { font-weight: bold; }
.legend span { display: inline-block; width: 1em; height: 1em; margin-right: .4em; vertical-align: middle; }
</style>
</head>
<body>
<h1>Decision diagram</h1>
<form method="get" action="/">
{{range .Sliders}}
<label for="{{.Name}}">{{.Label}}: <output id="{{.Name}}-out">{{.Value}}</output></label>
<input type="range" id="{{.Name}}" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}"
 oninput="document.getElementById('{{.Name}}-out').value = this.value" onchange="this.form.submit()">
{{end}}
<noscript><button type="submit">Render</button></noscript>
</form>
<p><img src="{{.FigureURL}}" alt="{{.Title}}" width="{{.Width}}" height="{{.Height}}"></p>
<ul class="legend">
{{range .Legend}}<li><span style="background: {{.Color}}"></span>{{.Label}} ({{.Count}} cells)</li>
{{end}}
</ul>
{{range .Annotation}}<p>{{.}}</p>
{{end}}
</body>
</html>
`))

func newPageView(params decision.Params, field *decision.Field, width, height int) pageView {
	v := pageView{
		Title:      figure.Title,
		FigureURL:  template.URL("/figure.png?" + encodeParams(params)),
		Width:      width,
		Height:     height,
		Annotation: figure.Annotation,
	}
	v.Sliders = []sliderView{
		{Slider: decision.SliderP, Value: decision.SliderP.Format(params.P)},
		{Slider: decision.SliderC, Value: decision.SliderC.Format(params.C)},
	}
	counts := field.Counts()
	for _, c := range []decision.Class{decision.Accepted, decision.Rejected, decision.Undefined} {
		v.Legend = append(v.Legend, legendItem{
			Label: figure.LegendLabels[c],
			Color: figure.ClassHex[c],
			Count: counts[c],
		})
	}
	return v
}
