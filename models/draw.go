package models

// Draw represents one lottery draw result in canonical form
type Draw struct {
	DrawNumber  int    `json:"drawNumber" validate:"gt=0"`
	Date        string `json:"date"`
	Numbers     []int  `json:"numbers" validate:"len=6"`
	BonusNumber int    `json:"bonusNumber"`
}

// MaxDrawNumber returns the highest draw number in draws, or 0 when draws is empty
func MaxDrawNumber(draws []Draw) int {
	maxNumber := 0
	for _, d := range draws {
		if d.DrawNumber > maxNumber {
			maxNumber = d.DrawNumber
		}
	}
	return maxNumber
}

// LatestDraw returns the draw with the highest draw number, or nil when draws is empty
func LatestDraw(draws []Draw) *Draw {
	var latest *Draw
	for i := range draws {
		if latest == nil || draws[i].DrawNumber > latest.DrawNumber {
			latest = &draws[i]
		}
	}
	return latest
}
