package normalize

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"lottosync/models"
)

// ErrInvalidRecord marks a raw record that cannot become a canonical draw.
// Callers drop such records; they never abort a batch.
var ErrInvalidRecord = errors.New("invalid draw record")

// StatusSuccess is the incremental source's value for a published draw
const StatusSuccess = "success"

var validate = validator.New()

// Scalar is a numeric JSON value that upstream sources encode either as a
// number or as a numeric string. Unparsable values mark the Scalar invalid
// instead of failing the enclosing record's decode.
type Scalar struct {
	value float64
	valid bool
}

// UnmarshalJSON never returns an error; junk leaves the Scalar invalid
func (s *Scalar) UnmarshalJSON(data []byte) error {
	s.value = 0
	s.valid = false

	text := strings.TrimSpace(string(data))
	if text == "" || text == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	s.value = v
	s.valid = true
	return nil
}

// Float returns the numeric value and whether one was present and parsable
func (s Scalar) Float() (float64, bool) {
	return s.value, s.valid
}

// Int returns the value truncated to an integer
func (s Scalar) Int() (int, bool) {
	if !s.valid {
		return 0, false
	}
	return int(s.value), true
}

// MirrorRecord is the bulk mirror source's raw draw shape
type MirrorRecord struct {
	DrawNo  Scalar   `json:"draw_no"`
	Numbers []Scalar `json:"numbers"`
	BonusNo Scalar   `json:"bonus_no"`
	Date    string   `json:"date"`
}

// IncrementalRecord is the per-draw fallback source's raw shape
type IncrementalRecord struct {
	Status  string `json:"status"`
	DrawNo  Scalar `json:"drawNo"`
	Date    string `json:"date"`
	Num1    Scalar `json:"num1"`
	Num2    Scalar `json:"num2"`
	Num3    Scalar `json:"num3"`
	Num4    Scalar `json:"num4"`
	Num5    Scalar `json:"num5"`
	Num6    Scalar `json:"num6"`
	BonusNo Scalar `json:"bonusNo"`
}

// Mirror converts a mirror record into a canonical draw. The first 6 entries
// of the numbers array are used; fewer than 6 rejects the record. The date is
// truncated to YYYY-MM-DD. A bonus value that fails to parse becomes 0.
func Mirror(rec MirrorRecord) (*models.Draw, error) {
	drawNumber, err := drawNumberOf(rec.DrawNo)
	if err != nil {
		return nil, err
	}

	if len(rec.Numbers) < 6 {
		return nil, fmt.Errorf("%w: draw %d has %d numbers", ErrInvalidRecord, drawNumber, len(rec.Numbers))
	}

	numbers := make([]int, 0, 6)
	for _, s := range rec.Numbers[:6] {
		n, ok := s.Int()
		if !ok {
			return nil, fmt.Errorf("%w: draw %d has a non-numeric ball value", ErrInvalidRecord, drawNumber)
		}
		numbers = append(numbers, n)
	}

	return build(drawNumber, rec.Date, numbers, rec.BonusNo)
}

// Incremental converts a per-draw fallback record into a canonical draw. Only
// records whose status flag indicates success are accepted.
func Incremental(rec IncrementalRecord) (*models.Draw, error) {
	if rec.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidRecord, rec.Status)
	}

	drawNumber, err := drawNumberOf(rec.DrawNo)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, 6)
	for _, s := range []Scalar{rec.Num1, rec.Num2, rec.Num3, rec.Num4, rec.Num5, rec.Num6} {
		n, ok := s.Int()
		if !ok {
			return nil, fmt.Errorf("%w: draw %d has a missing or non-numeric ball value", ErrInvalidRecord, drawNumber)
		}
		numbers = append(numbers, n)
	}

	return build(drawNumber, rec.Date, numbers, rec.BonusNo)
}

// drawNumberOf validates the draw identifier: finite and positive
func drawNumberOf(s Scalar) (int, error) {
	v, ok := s.Float()
	if !ok || v <= 0 {
		return 0, fmt.Errorf("%w: draw number missing or not positive", ErrInvalidRecord)
	}
	return int(v), nil
}

func build(drawNumber int, date string, numbers []int, bonus Scalar) (*models.Draw, error) {
	sort.Ints(numbers)

	// An unparsable bonus degrades to 0, it does not reject the record
	bonusNumber, _ := bonus.Int()

	draw := &models.Draw{
		DrawNumber:  drawNumber,
		Date:        truncateDate(date),
		Numbers:     numbers,
		BonusNumber: bonusNumber,
	}

	if err := validate.Struct(draw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return draw, nil
}

func truncateDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
