// Package static holds the HTML around the chart in the web view.
package static

import (
	"html/template"
	"io"
)

// Form carries the values shown back in the parameter form.
type Form struct {
	Kind       string
	Count      int
	Jitter     float64
	Seed       int64
	Width      int
	Height     int
	Center     string
	MaxValence int
	Error      string
}

// Stats is printed above the logs.
type Stats struct {
	Points, Triangles, Cells, Boundary, Truncated, Degenerate int
}

var header = template.Must(template.New("header").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Voronoi diagram</title>
	<style>
		body {
			background-color: #1F1F1F;
			color: #d3d3d3;
			font-family: Consolas, monospace;
			overflow: hidden;
		}
		#container {
			display: flex;
			width: 100%;
			height: 100vh;
			box-sizing: border-box;
		}
		#left-container {
			width: 50%;
			padding: 10px;
			box-sizing: border-box;
		}
		#right-container {
			width: 50%;
			padding: 10px;
			box-sizing: border-box;
			border-left: 5px solid #757575;
			overflow-y: auto;
			overflow-x: auto;
			background-color: #1e1e1e;
		}
		#logs {
			white-space: pre-wrap;
			word-wrap: break-word;
			color: #d3d3d3;
		}
		.error {
			color: #ff6b6b;
		}
		input, select {
			background-color: #2b2b2b;
			color: #d3d3d3;
			border: 1px solid #444;
			padding: 5px;
			margin: 5px 0;
			border-radius: 4px;
		}
		input[type="submit"]:hover {
			background-color: #444;
			cursor: pointer;
		}
		::-webkit-scrollbar {
			width: 8px;
		}
		::-webkit-scrollbar-thumb {
			background-color: #444;
			border-radius: 10px;
		}
		::-webkit-scrollbar-track {
			background-color: #2b2b2b;
		}
	</style>
</head>
<body>
	<div id="container">
		<div id="left-container">
			<h1>Voronoi diagram</h1>
			<form id="diagram-form" method="POST">
				<label for="kind">Points:</label>
				<select id="kind" name="kind">
					<option value="grid" {{if eq .Kind "grid"}}selected{{end}}>jittered grid</option>
					<option value="random" {{if eq .Kind "random"}}selected{{end}}>random</option>
					<option value="stations" {{if eq .Kind "stations"}}selected{{end}}>stations</option>
				</select>
				<label for="count">Count:</label>
				<input type="number" id="count" name="count" value="{{.Count}}" min="2" max="2000">
				<label for="jitter">Jitter:</label>
				<input type="number" id="jitter" name="jitter" value="{{.Jitter}}" min="0" max="5" step="0.05"><br>
				<label for="seed">Seed:</label>
				<input type="number" id="seed" name="seed" value="{{.Seed}}">
				<label for="width">Width:</label>
				<input type="number" id="width" name="width" value="{{.Width}}" min="10" max="5000">
				<label for="height">Height:</label>
				<input type="number" id="height" name="height" value="{{.Height}}" min="10" max="5000"><br>
				<label for="center">Centers:</label>
				<select id="center" name="center">
					<option value="circumcenter" {{if eq .Center "circumcenter"}}selected{{end}}>circumcenter</option>
					<option value="centroid" {{if eq .Center "centroid"}}selected{{end}}>centroid (simplified)</option>
				</select>
				<label for="valence">Max valence:</label>
				<input type="number" id="valence" name="valence" value="{{.MaxValence}}" min="3" max="200">
				<input type="submit" value="Build">
			</form>
			{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
`))

var middle = template.Must(template.New("middle").Parse(`
		</div>
		<div id="right-container">
			<h1>Logs</h1>
			<p>points {{.Points}}, triangles {{.Triangles}}, cells {{.Cells}}, boundary {{.Boundary}}, truncated {{.Truncated}}, degenerate {{.Degenerate}}</p>
			<div id="logs">`))

const footer = `
			</div>
		</div>
	</div>
</body>
</html>
`

// WriteHeader writes the page head, the form and any error.
func WriteHeader(w io.Writer, f Form) error {
	return header.Execute(w, f)
}

// WriteMiddle closes the chart column and opens the log column.
func WriteMiddle(w io.Writer, s Stats) error {
	return middle.Execute(w, s)
}

// WriteFooter closes the page.
func WriteFooter(w io.Writer) error {
	_, err := io.WriteString(w, footer)
	return err
}
