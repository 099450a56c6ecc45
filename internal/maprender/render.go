package maprender

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"realtymap/internal/model"
)

//go:embed templates/map.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/map.html.tmpl"))

type tileLayer struct {
	URL         string
	Attribution string
}

var tileSources = map[string]tileLayer{
	"CartoDB Positron": {
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`,
	},
	"OpenStreetMap": {
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
	},
}

func tileSource(name string) (string, string) {
	if t, ok := tileSources[name]; ok {
		return t.URL, t.Attribution
	}
	t := tileSources[DefaultTiles]
	return t.URL, t.Attribution
}

type pageData struct {
	Title       string
	GeneratedAt string
	MapJSON     template.JS
	CitiesJSON  template.JS
}

// Render writes the complete standalone HTML page for the map, including the
// header and the city zoom sidebar.
func (m *Map) Render(w io.Writer, cities []model.CityLocation) error {
	mapJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal map data: %w", err)
	}

	if cities == nil {
		cities = []model.CityLocation{}
	}
	citiesJSON, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("marshal city data: %w", err)
	}

	data := pageData{
		Title:       "Real Estate Map",
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		MapJSON:     template.JS(mapJSON),
		CitiesJSON:  template.JS(citiesJSON),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render map page: %w", err)
	}
	return nil
}
