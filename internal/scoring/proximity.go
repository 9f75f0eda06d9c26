package scoring

// Proximity buckets how far an item landed from its reference position.
// It is cosmetic and never affects points.
type Proximity int

const (
	ProximityCorrect Proximity = iota
	ProximityVeryClose
	ProximityClose
	ProximitySomewhatClose
	ProximityFar
)

// Classify maps an absolute index displacement to its Proximity.
func Classify(distance int) Proximity {
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return ProximityCorrect
	case 1:
		return ProximityVeryClose
	case 2:
		return ProximityClose
	case 3:
		return ProximitySomewhatClose
	default:
		return ProximityFar
	}
}

func (p Proximity) String() string {
	switch p {
	case ProximityCorrect:
		return "correct"
	case ProximityVeryClose:
		return "very-close"
	case ProximityClose:
		return "close"
	case ProximitySomewhatClose:
		return "somewhat-close"
	case ProximityFar:
		return "far"
	default:
		return "unknown"
	}
}
