package services

import "sort"

// Day gating state machine: locked -> unlocked -> completed. Day 1 is always
// unlocked; day N unlocks once day N-1 is completed, subject to the guest cap
// for unauthenticated users. These are pure functions; the progress service
// applies them server-side and clients mirror them.

// NormalizeCompletedDays dedupes, sorts ascending, and drops day numbers
// outside 1..totalDays.
func NormalizeCompletedDays(completed []int64, totalDays int) []int64 {
	seen := make(map[int64]struct{}, len(completed))
	normalized := make([]int64, 0, len(completed))
	for _, day := range completed {
		if day < 1 || day > int64(totalDays) {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		normalized = append(normalized, day)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i] < normalized[j] })
	return normalized
}

// ComputeCurrentDay returns min(max(completed)+1, totalDays); 1 when nothing
// is completed. Assumes completed has been normalized.
func ComputeCurrentDay(completed []int64, totalDays int) int {
	if len(completed) == 0 {
		return 1
	}
	current := int(completed[len(completed)-1]) + 1
	if current > totalDays {
		current = totalDays
	}
	return current
}

// ComputeUnlockedDays returns {1} plus every completed day and its
// successor, capped at totalDays. A completed day is always unlocked, so
// completed is a subset of the result. Unauthenticated users never unlock
// past guestLimit days regardless of what they have completed.
func ComputeUnlockedDays(completed []int64, totalDays int, authenticated bool, guestLimit int) []int64 {
	limit := totalDays
	if !authenticated {
		if guestLimit < 1 {
			guestLimit = 1
		}
		if guestLimit < limit {
			limit = guestLimit
		}
	}

	unlocked := map[int64]struct{}{1: {}}
	for _, day := range completed {
		if day >= 1 && day <= int64(limit) {
			unlocked[day] = struct{}{}
		}
		next := day + 1
		if next >= 2 && next <= int64(limit) {
			unlocked[next] = struct{}{}
		}
	}

	days := make([]int64, 0, len(unlocked))
	for day := range unlocked {
		if day <= int64(limit) {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// CapCompletedDays drops completed days past limit. A caller cannot have
// completed a day the unlock cap keeps locked. Assumes completed has been
// normalized.
func CapCompletedDays(completed []int64, limit int) []int64 {
	if limit < 1 {
		limit = 1
	}
	capped := make([]int64, 0, len(completed))
	for _, day := range completed {
		if day <= int64(limit) {
			capped = append(capped, day)
		}
	}
	return capped
}
