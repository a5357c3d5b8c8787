package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a reusable remnant left on a bar after cutting.
type Offcut struct {
	ID         string     `json:"id"`
	ProfileKey ProfileKey `json:"profile_key"`
	BarIndex   int        `json:"bar_index"` // index of the source bar
	Length     float64    `json:"length"`    // mm
}

// MinOffcutLength is the minimum remnant (in mm) worth keeping. Shorter
// remnants are scrap.
const MinOffcutLength = 500.0

// DetectOffcuts returns the remnants of bars at least minLength long,
// longest first. Oversized bars never leave an offcut.
func DetectOffcuts(key ProfileKey, bars []Bar, minLength float64) []Offcut {
	if minLength <= 0 {
		minLength = MinOffcutLength
	}
	var offcuts []Offcut
	for i, b := range bars {
		if b.Oversized || b.Remaining < minLength {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			ProfileKey: key,
			BarIndex:   i,
			Length:     b.Remaining,
		})
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the total length of all offcuts in mm.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}

// Waste returns the scrap length of the bars: remnants shorter than minLength.
func Waste(bars []Bar, minLength float64) float64 {
	if minLength <= 0 {
		minLength = MinOffcutLength
	}
	var total float64
	for _, b := range bars {
		if !b.Oversized && b.Remaining < minLength {
			total += b.Remaining
		}
	}
	return total
}
