package estimator

// SlotXP returns the diminishing XP term for every slot index 1..slots.
// Each term is slots*(1/i) truncated toward zero on its own, which is not
// the same as truncating the exact quotient (49 slots yield 200, not 201).
func SlotXP(slots int) []int {
	if slots <= 0 {
		return nil
	}
	terms := make([]int, 0, slots)
	n := float64(slots)
	for i := 1; i <= slots; i++ {
		terms = append(terms, int(n*(1/float64(i))))
	}
	return terms
}

// MaxDailyXP returns the maximum XP a user can earn in a day when every one
// of the given ad slots is watched.
func MaxDailyXP(slots int) int {
	accumulated := 0
	for _, xp := range SlotXP(slots) {
		accumulated += xp
	}
	return slots*XPPerSlot + accumulated + DailyBonusXP
}
