// Package extract aggregates raw work measurements from an activity-log
// export: total active energy from the export document plus distance and
// speed figures from per-route GPX track logs. Its output feeds the
// proof-of-motion validator.
package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const activeEnergyRecordType = "HKQuantityTypeIdentifierActiveEnergyBurned"

// TotalActiveEnergy streams the export document and sums the kcal value
// of every active-energy record. The document is never held in memory
// whole; exports run to gigabytes.
func TotalActiveEnergy(r io.Reader) (kcal float64, records int, err error) {
	dec := xml.NewDecoder(r)
	for {
		tok, tokErr := dec.Token()
		if errors.Is(tokErr, io.EOF) {
			return kcal, records, nil
		}
		if tokErr != nil {
			return 0, 0, fmt.Errorf("parse export: %w", tokErr)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Record" {
			continue
		}

		var recordType, value string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "type":
				recordType = attr.Value
			case "value":
				value = attr.Value
			}
		}
		if recordType != activeEnergyRecordType {
			continue
		}

		v, convErr := strconv.ParseFloat(value, 64)
		if convErr != nil {
			continue
		}
		kcal += v
		records++
	}
}
