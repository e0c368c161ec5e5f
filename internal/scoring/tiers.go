package scoring

// Tier labels the current combo for the HUD.
type Tier struct {
	Text  string // Banner text, e.g. "GREAT"
	Level string // Style class: "", "nice", "great", "amazing" or "legendary"
}

// ComboTier returns the tier for a combo at the given speed multiplier.
// Legendary needs both a long combo and a fast interval.
func ComboTier(combo int, speedMultiplier float64) Tier {
	switch {
	case combo >= 100 && speedMultiplier >= 3:
		return Tier{Text: "LEGENDARY!!!!!!!!!!!!", Level: "legendary"}
	case combo >= 85:
		return Tier{Text: "PERFECT!", Level: "amazing"}
	case combo >= 55:
		return Tier{Text: "AMAZING", Level: "amazing"}
	case combo >= 35:
		return Tier{Text: "GREAT", Level: "great"}
	case combo >= 20:
		return Tier{Text: "NICE", Level: "nice"}
	default:
		return Tier{Text: "OK"}
	}
}

// fade returns 1 below start, 0 at or above end and a linear ramp in between.
func fade(hits, start, end int) float64 {
	if hits < start {
		return 1
	}
	if hits >= end {
		return 0
	}
	return 1 - float64(hits-start)/float64(end-start)
}

// LegendOpacity is the opacity of the key legend: fully shown for new
// players, faded out between 20 and 30 correct hits.
func LegendOpacity(correctHits int) float64 {
	return fade(correctHits, 20, 30)
}

// CircleKeyOpacity is the opacity of the key letters inside circles,
// faded out between 130 and 150 correct hits.
func CircleKeyOpacity(correctHits int) float64 {
	return fade(correctHits, 130, 150)
}
