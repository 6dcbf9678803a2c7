package progression

import (
	"reflect"
	"testing"
)

func TestEmptyRecordUnlocksOnlyFirst(t *testing.T) {
	var r Record
	if !r.Unlocked(1) {
		t.Error("level 1 must always be unlocked")
	}
	for n := 2; n <= 10; n++ {
		if r.Unlocked(n) {
			t.Errorf("level %d unlocked on empty progress", n)
		}
	}
	if got := r.UnlockedLevels(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("UnlockedLevels() = %v", got)
	}
}

func TestRecordUnlockRule(t *testing.T) {
	r := NewRecord(map[int]int{1: 2, 2: 0, 3: 1})

	want := map[int]bool{1: true, 2: true, 3: false, 4: true, 5: false}
	for n, unlocked := range want {
		if got := r.Unlocked(n); got != unlocked {
			t.Errorf("Unlocked(%d) = %v, want %v", n, got, unlocked)
		}
	}
	if r.Unlocked(0) || r.Unlocked(11) {
		t.Error("levels outside the table must not be unlocked")
	}
}

func TestRecordMergeKeepsBest(t *testing.T) {
	var r Record

	if !r.Merge(1, 2) {
		t.Error("first merge should change the record")
	}
	if r.Merge(1, 1) {
		t.Error("worse score should not change the record")
	}
	if r.Best(1) != 2 {
		t.Errorf("Best(1) = %d, want 2", r.Best(1))
	}
	if !r.Merge(1, 3) || r.Best(1) != 3 {
		t.Errorf("better score not kept, Best(1) = %d", r.Best(1))
	}
	if r.Merge(1, 4) || r.Merge(0, 1) {
		t.Error("invalid entries must be rejected")
	}
}

func TestUnlockNeverRevoked(t *testing.T) {
	var r Record
	scores := []struct{ level, stars int }{
		{1, 1}, {1, 0}, {2, 3}, {1, 0}, {2, 0}, {3, 1}, {3, 0},
	}

	unlocked := map[int]bool{}
	for _, s := range scores {
		r.Merge(s.level, s.stars)
		for n := 1; n <= 10; n++ {
			if unlocked[n] && !r.Unlocked(n) {
				t.Fatalf("level %d re-locked after merging %+v", n, s)
			}
			if r.Unlocked(n) {
				unlocked[n] = true
			}
		}
	}
}

func TestNewRecordDropsInvalid(t *testing.T) {
	r := NewRecord(map[int]int{1: 3, 0: 2, 11: 1, 2: 5, 3: -1})

	if got := r.Scores(); !reflect.DeepEqual(got, map[int]int{1: 3}) {
		t.Errorf("Scores() = %v", got)
	}
	if r.TotalStars() != 3 {
		t.Errorf("TotalStars() = %d, want 3", r.TotalStars())
	}
}
