package goodmorning

// TempDifference buckets the change between two average temperatures.
type TempDifference int

const (
	MuchColder TempDifference = iota
	Colder
	Same
	Warmer
	MuchWarmer
)

// Classify maps the signed delta between two averages onto a bucket. The
// arms are checked in order and the first match wins; every comparison is
// strict, so a delta of exactly ±5 or ±10 lands in the less extreme bucket.
func Classify(from, to float64) TempDifference {
	delta := to - from
	switch {
	case delta > 10.0:
		return MuchWarmer
	case delta > 5.0:
		return Warmer
	case delta < -10.0:
		return MuchColder
	case delta < -5.0:
		return Colder
	default:
		return Same
	}
}

func (d TempDifference) String() string {
	switch d {
	case MuchColder:
		return "much colder"
	case Colder:
		return "colder"
	case Same:
		return "about the same"
	case Warmer:
		return "warmer"
	case MuchWarmer:
		return "much warmer"
	default:
		return "unknown"
	}
}
