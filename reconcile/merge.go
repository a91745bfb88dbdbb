package reconcile

import (
	"sort"

	"lottosync/models"
)

// Merge combines existing and incoming draw collections keyed by draw number.
// An incoming record always supersedes an existing record with the same draw
// number. The result is sorted ascending by draw number.
func Merge(existing, incoming []models.Draw) []models.Draw {
	byNumber := make(map[int]models.Draw, len(existing)+len(incoming))
	for _, d := range existing {
		byNumber[d.DrawNumber] = d
	}
	for _, d := range incoming {
		byNumber[d.DrawNumber] = d
	}

	merged := make([]models.Draw, 0, len(byNumber))
	for _, d := range byNumber {
		merged = append(merged, d)
	}
	Sort(merged)

	return merged
}

// Sort orders draws ascending by draw number, in place
func Sort(draws []models.Draw) {
	sort.Slice(draws, func(i, j int) bool {
		return draws[i].DrawNumber < draws[j].DrawNumber
	})
}

// Window returns the draw numbers to probe around the highest known one:
// radius below through radius above, inclusive, in increasing order.
// Non-positive draw numbers are dropped.
func Window(maxKnown, radius int) []int {
	ids := make([]int, 0, 2*radius+1)
	for id := maxKnown - radius; id <= maxKnown+radius; id++ {
		if id < 1 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
