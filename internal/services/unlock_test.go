package services

import (
	"reflect"
	"testing"
)

func TestNormalizeCompletedDays(t *testing.T) {
	got := NormalizeCompletedDays([]int64{3, 1, 1, 9, 0, -2, 2}, 7)
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeCompletedDays = %v, want %v", got, want)
	}

	if got := NormalizeCompletedDays(nil, 7); len(got) != 0 {
		t.Errorf("empty input should stay empty, got %v", got)
	}
}

func TestComputeCurrentDay(t *testing.T) {
	cases := []struct {
		completed []int64
		want      int
	}{
		{nil, 1},
		{[]int64{1}, 2},
		{[]int64{1, 2, 3}, 4},
		{[]int64{1, 2, 3, 4, 5, 6, 7}, 7},
	}
	for _, c := range cases {
		if got := ComputeCurrentDay(c.completed, 7); got != c.want {
			t.Errorf("ComputeCurrentDay(%v) = %d, want %d", c.completed, got, c.want)
		}
	}
}

func TestComputeUnlockedDaysAuthenticated(t *testing.T) {
	got := ComputeUnlockedDays([]int64{1, 2}, 7, true, 1)
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unlocked = %v, want %v", got, want)
	}

	// Day 1 is always unlocked, even with nothing completed.
	if got := ComputeUnlockedDays(nil, 7, true, 1); !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("fresh plan unlocked = %v, want [1]", got)
	}

	// Completing the final day unlocks nothing past totalDays.
	got = ComputeUnlockedDays([]int64{1, 2, 3, 4, 5, 6, 7}, 7, true, 1)
	want = []int64{1, 2, 3, 4, 5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unlocked = %v, want %v", got, want)
	}
}

func TestComputeUnlockedDaysContainsCompleted(t *testing.T) {
	// A completed day is unlocked even when its predecessor never was.
	got := ComputeUnlockedDays([]int64{3}, 7, true, 1)
	want := []int64{1, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unlocked = %v, want %v", got, want)
	}

	for _, completed := range [][]int64{{2}, {3, 5}, {1, 4, 7}} {
		unlocked := ComputeUnlockedDays(completed, 7, true, 1)
		set := make(map[int64]struct{}, len(unlocked))
		for _, day := range unlocked {
			set[day] = struct{}{}
		}
		for _, day := range completed {
			if _, ok := set[day]; !ok {
				t.Errorf("completed day %d missing from unlocked %v", day, unlocked)
			}
		}
	}
}

func TestCapCompletedDays(t *testing.T) {
	got := CapCompletedDays([]int64{1, 2, 5}, 2)
	if !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("capped = %v, want [1 2]", got)
	}

	if got := CapCompletedDays([]int64{7}, 0); len(got) != 0 {
		t.Errorf("capped = %v, want empty", got)
	}
}

func TestComputeUnlockedDaysMonotonic(t *testing.T) {
	previous := 0
	for day := int64(0); day <= 7; day++ {
		completed := make([]int64, 0, day)
		for d := int64(1); d <= day; d++ {
			completed = append(completed, d)
		}
		unlocked := ComputeUnlockedDays(completed, 7, true, 1)
		if len(unlocked) < previous {
			t.Fatalf("unlock count shrank after completing day %d: %v", day, unlocked)
		}
		previous = len(unlocked)
	}
}

func TestComputeUnlockedDaysGuestCap(t *testing.T) {
	got := ComputeUnlockedDays([]int64{1, 2, 3}, 7, false, 1)
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("guest unlocked = %v, want [1]", got)
	}

	got = ComputeUnlockedDays([]int64{1, 2, 3}, 7, false, 3)
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("guest with limit 3 unlocked = %v, want %v", got, want)
	}

	// A non-positive limit still leaves day 1 open.
	got = ComputeUnlockedDays(nil, 7, false, 0)
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("guest with zero limit unlocked = %v, want [1]", got)
	}
}
