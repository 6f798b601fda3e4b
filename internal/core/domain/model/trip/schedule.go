package trip

import (
	"fmt"
	"math"
)

// Schedule is the dispatch slot the fleet scheduler assigns to a trip.
// Start and end are rendered clock strings; the raw fractional hours are kept
// for downstream computation but stay off the wire.
type Schedule struct {
	TruckID       int     `json:"truck_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_h"`

	// StartHour and EndHour are fractional hours from midnight of the
	// dispatch day. Not part of the wire contract.
	StartHour float64 `json:"-"`
	EndHour   float64 `json:"-"`
}

// FormatHours renders fractional hours from midnight as "HH:MM", with a
// day-offset suffix " (+Nd)" once the value reaches 24 hours.
// Non-finite input renders as "ERROR" rather than panicking.
func FormatHours(hoursFloat float64) string {
	if math.IsNaN(hoursFloat) || math.IsInf(hoursFloat, 0) {
		return "ERROR"
	}

	hours := int(hoursFloat)
	minutes := int((hoursFloat - float64(hours)) * 60)

	dayOffset := ""
	if hours >= 24 {
		days := hours / 24
		hours %= 24
		dayOffset = fmt.Sprintf(" (+%dd)", days)
	}

	return fmt.Sprintf("%02d:%02d%s", hours, minutes, dayOffset)
}
