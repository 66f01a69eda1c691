package libraryservice

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/alfurqan/alfurqan/internal/app"
)

//go:embed stations.yaml
var stationsYAML []byte

var stations []app.RadioStation

func init() {
	if err := yaml.Unmarshal(stationsYAML, &stations); err != nil {
		panic(fmt.Sprintf("parse embedded station directory: %s", err))
	}
}

// RadioStations returns the static radio station directory.
func RadioStations() []app.RadioStation {
	return stations
}

// RadioStationByID returns the station for an id and reports whether it exists.
func RadioStationByID(id int) (app.RadioStation, bool) {
	for _, st := range stations {
		if st.ID == id {
			return st, true
		}
	}
	return app.RadioStation{}, false
}
