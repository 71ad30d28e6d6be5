package scorer

import "sort"

// NonNull reports whether any ledger holds at least one recorded round.
// An unstarted game is never over.
func NonNull(ledgers [][]*int) bool {
	for _, ledger := range ledgers {
		for _, score := range ledger {
			if score != nil {
				return true
			}
		}
	}
	return false
}

// EvenScoreCount reports whether every ledger's last recorded round sits at the
// same index. A ledger with nothing recorded counts as index -1, so [3, nil] and
// [1] are even: both last played round 0.
func EvenScoreCount(ledgers [][]*int) bool {
	if len(ledgers) == 0 {
		return false
	}
	want := lastRecordedIndex(ledgers[0])
	for _, ledger := range ledgers[1:] {
		if lastRecordedIndex(ledger) != want {
			return false
		}
	}
	return true
}

func lastRecordedIndex(ledger []*int) int {
	for i := len(ledger) - 1; i >= 0; i-- {
		if ledger[i] != nil {
			return i
		}
	}
	return -1
}

// GteThresh reports whether any total has reached the threshold
func GteThresh(totals []int, threshold int) bool {
	for _, total := range totals {
		if total >= threshold {
			return true
		}
	}
	return false
}

// TieMax reports whether the two highest totals are equal
func TieMax(totals []int) bool {
	if len(totals) < 2 {
		return false
	}
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted[0] == sorted[1]
}
