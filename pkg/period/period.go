package period

import "time"

const dateLayout = "2006-01-02"

// Period is the fixed 21st-to-20th business billing cycle used for vacation
// accounting. It is not a calendar month.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// At returns the pay period containing the reference date: the 21st of the
// previous calendar month through the 20th of the reference month, both
// inclusive.
func At(ref time.Time) Period {
	y, m, _ := ref.Date()
	start := time.Date(y, m-1, 21, 0, 0, 0, 0, ref.Location())
	end := time.Date(y, m, 20, 0, 0, 0, 0, ref.Location())
	return Period{
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	}
}

// Current returns the pay period containing today
func Current() Period {
	return At(time.Now())
}

// Contains reports whether an ISO date string (YYYY-MM-DD) falls inside the
// window. The format compares lexicographically.
func (p Period) Contains(date string) bool {
	return date >= p.Start && date <= p.End
}
