package stats

type Trend int

const (
	TrendUnknown Trend = iota
	TrendFlat
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendFlat:
		return "flat"
	default:
		return "n/a"
	}
}

// PercentChange returns the signed, unrounded change from previous to current in
// percent, or nil when previous is zero and no percentage exists.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := (current - previous) / previous * 100
	return &change
}

func Classify(change *float64) Trend {
	switch {
	case change == nil:
		return TrendUnknown
	case *change > 0:
		return TrendUp
	case *change < 0:
		return TrendDown
	default:
		return TrendFlat
	}
}
