package extract

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// metersPerDegree converts flat-earth degree deltas to meters, good
	// enough at workout scales.
	metersPerDegree = 111194.9

	// anomalySpeedMPS flags samples above ~41 km/h as implausible for
	// human-powered motion.
	anomalySpeedMPS = 11.5
)

// RouteReport summarizes one GPX track log.
type RouteReport struct {
	File        string  `json:"file"`
	DistanceM   float64 `json:"distance_m"`
	MaxSpeedMPS float64 `json:"max_speed_mps"`
	Anomalies   int     `json:"anomalies"`
}

type gpxDocument struct {
	Tracks []struct {
		Segments []struct {
			Points []gpxPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

type gpxPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Time string  `xml:"time"`
}

// AnalyzeRoute parses one GPX track log and reports its total distance,
// top speed, and count of implausible-velocity samples. Points without a
// parseable timestamp are skipped.
func AnalyzeRoute(name string, r io.Reader) (RouteReport, error) {
	var doc gpxDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return RouteReport{}, fmt.Errorf("parse gpx %s: %w", name, err)
	}

	report := RouteReport{File: name}

	type fix struct {
		lat, lon float64
		at       time.Time
	}
	var prev *fix

	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				at, err := time.Parse(time.RFC3339, pt.Time)
				if err != nil {
					continue
				}

				if prev != nil {
					dLat := pt.Lat - prev.lat
					dLon := pt.Lon - prev.lon
					dist := math.Sqrt(dLat*dLat+dLon*dLon) * metersPerDegree

					if dt := at.Sub(prev.at).Seconds(); dt > 0 {
						speed := dist / dt
						if speed > report.MaxSpeedMPS {
							report.MaxSpeedMPS = speed
						}
						if speed > anomalySpeedMPS {
							report.Anomalies++
						}
					}
					report.DistanceM += dist
				}
				prev = &fix{lat: pt.Lat, lon: pt.Lon, at: at}
			}
		}
	}

	return report, nil
}
