package domain

// Vibe labels derived from the average daily rating. Thresholds are
// evaluated highest first; boundaries are inclusive.
const (
	VibeTranscendent = "Transcendent"
	VibeExcellent    = "Excellent"
	VibeGood         = "Good"
	VibeNeedsWork    = "Needs work"
)

// VibeLabel buckets an average rating into a qualitative label.
func VibeLabel(avgRating float64) string {
	switch {
	case avgRating >= 4.7:
		return VibeTranscendent
	case avgRating >= 4.2:
		return VibeExcellent
	case avgRating >= 3.5:
		return VibeGood
	default:
		return VibeNeedsWork
	}
}

// DailyReport summarizes one day of drinks: totals, average rating with its
// vibe label, and the most-poured bean.
type DailyReport struct {
	DrinkCount    int
	Revenue       float64
	Cost          float64
	Profit        float64
	AvgRating     float64
	Vibe          string
	TopBean       string
	TopBeanDrinks int
}

// ComputeDailyReport aggregates drinks into a DailyReport. Returns nil when
// drinks is empty. Drinks are expected in chronological order; on a top-bean
// tie, the bean that reached the winning count first wins.
func ComputeDailyReport(drinks []*Drink) *DailyReport {
	if len(drinks) == 0 {
		return nil
	}

	var revenue, cost float64
	var ratingSum int
	counts := make(map[string]int)
	var topBean string
	var topCount int

	for _, d := range drinks {
		revenue += d.PricePaid
		cost += d.Cost()
		ratingSum += d.Rating

		name := ""
		if d.Bean != nil {
			name = d.Bean.Name
		}
		counts[name]++
		// Strictly greater keeps the earlier bean on ties.
		if counts[name] > topCount {
			topCount = counts[name]
			topBean = name
		}
	}

	avg := float64(ratingSum) / float64(len(drinks))
	return &DailyReport{
		DrinkCount:    len(drinks),
		Revenue:       revenue,
		Cost:          cost,
		Profit:        revenue - cost,
		AvgRating:     avg,
		Vibe:          VibeLabel(avg),
		TopBean:       topBean,
		TopBeanDrinks: topCount,
	}
}
