package nds

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFireRating is returned when a fire rating string cannot be parsed
var ErrUnknownFireRating = errors.New("unknown fire rating")

// FireRating is the required fire-resistance rating of the connection
type FireRating int

const (
	ZeroHour FireRating = iota
	OneHour
	TwoHour
)

// Effective char depths (in) for each rating
const (
	CharDepthZeroHour = 0.0
	CharDepthOneHour  = 1.8
	CharDepthTwoHour  = 3.2
)

// FireRatings lists every supported rating
var FireRatings = []FireRating{ZeroHour, OneHour, TwoHour}

// CharDepth returns the depth of section consumed by fire (in)
func (r FireRating) CharDepth() float64 {
	switch r {
	case OneHour:
		return CharDepthOneHour
	case TwoHour:
		return CharDepthTwoHour
	default:
		return CharDepthZeroHour
	}
}

// Hours returns the rating duration
func (r FireRating) Hours() int {
	return int(r)
}

func (r FireRating) String() string {
	return fmt.Sprintf("%d hour", r.Hours())
}

// RatingForCharDepth finds the rating whose char depth equals cd
func RatingForCharDepth(cd float64) (FireRating, bool) {
	for _, r := range FireRatings {
		if r.CharDepth() == cd {
			return r, true
		}
	}
	return ZeroHour, false
}

// ParseFireRating accepts "1", "1h", "1hr", "1 hour", "2 hours" and similar
func ParseFireRating(s string) (FireRating, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range []string{"hours", "hour", "hrs", "hr", "h"} {
		if strings.HasSuffix(v, suffix) {
			v = strings.TrimSpace(strings.TrimSuffix(v, suffix))
			break
		}
	}

	switch v {
	case "0":
		return ZeroHour, nil
	case "1":
		return OneHour, nil
	case "2":
		return TwoHour, nil
	}
	return ZeroHour, fmt.Errorf("%w: %q", ErrUnknownFireRating, s)
}
