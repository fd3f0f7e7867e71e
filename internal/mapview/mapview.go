// Package mapview renders a ranked restaurant list as a self-contained
// HTML map the user can open in a browser.
package mapview

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/geo"
	"github.com/noshapp/nosh/internal/recommend"
)

// DefaultFilename is where Write drops the map by default.
const DefaultFilename = "nosh-map.html"

// Marker is one pin on the map.
type Marker struct {
	Name       string
	Cuisine    string
	Address    string
	Photo      string
	Lat        float64
	Lon        float64
	DistanceKm float64
}

// page is the template input.
type page struct {
	Title   string
	Home    geo.Point
	Markers []Marker
}

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .popup img { max-width: 180px; display: block; margin-top: 4px; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.Home.Lat}}, {{.Home.Lon}}], 13);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
L.marker([{{.Home.Lat}}, {{.Home.Lon}}]).addTo(map)
  .bindPopup('<b>Home</b>');
{{range .Markers}}
L.marker([{{.Lat}}, {{.Lon}}]).addTo(map)
  .bindPopup('<div class="popup"><b>{{.Name}}</b><br>{{.Cuisine}}<br>{{.Address}}<br>{{printf "%.1f" .DistanceKm}} km away{{if .Photo}}<img src="{{.Photo}}" alt="">{{end}}</div>');
{{end}}
</script>
</body>
</html>
`))

// Render writes the map HTML for the scored restaurants. Entries without a
// resolved location are skipped.
func Render(w io.Writer, title string, home geo.Point, scored []recommend.Scored) error {
	markers := make([]Marker, 0, len(scored))
	for _, s := range scored {
		if s.Location.IsZero() {
			continue
		}
		markers = append(markers, Marker{
			Name:       s.Restaurant.Name,
			Cuisine:    s.Restaurant.Cuisine,
			Address:    s.Restaurant.Address,
			Photo:      s.Restaurant.Photo,
			Lat:        s.Location.Lat,
			Lon:        s.Location.Lon,
			DistanceKm: s.DistanceKm,
		})
	}
	if err := pageTemplate.Execute(w, page{Title: title, Home: home, Markers: markers}); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}

// Write renders the map to a file, creating parent directories as needed.
func Write(path, title string, home geo.Point, scored []recommend.Scored) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.DataFileError(path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.DataFileError(path, err)
	}
	defer f.Close()
	return Render(f, title, home, scored)
}
