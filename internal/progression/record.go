package progression

import "github.com/vovakirdan/entropy/internal/world"

// Record holds the best star count per level. The zero value is empty
// progress: only level 1 unlocked.
type Record struct {
	best map[int]int
}

// NewRecord builds a record from a level → stars map.
// Entries outside the level table or the 0..3 range are ignored.
func NewRecord(scores map[int]int) Record {
	r := Record{best: make(map[int]int, len(scores))}
	for level, stars := range scores {
		if ValidEntry(level, stars) {
			r.best[level] = stars
		}
	}
	return r
}

// ValidEntry reports whether a persisted score entry is usable.
func ValidEntry(level, stars int) bool {
	return level >= 1 && level <= world.LevelCount() && stars >= 0 && stars <= MaxStars
}

// Best returns the best star count recorded for level.
func (r Record) Best(level int) int {
	return r.best[level]
}

// Unlocked reports whether level can be played: level 1 always, level N
// once level N-1 has at least one star.
func (r Record) Unlocked(level int) bool {
	if level < 1 || level > world.LevelCount() {
		return false
	}
	if level == 1 {
		return true
	}
	return r.best[level-1] > 0
}

// Merge keeps the better of the stored and new star counts for level.
// It reports whether the record changed.
func (r *Record) Merge(level, stars int) bool {
	if !ValidEntry(level, stars) {
		return false
	}
	if r.best == nil {
		r.best = make(map[int]int)
	}
	if old, ok := r.best[level]; ok && old >= stars {
		return false
	}
	r.best[level] = stars
	return true
}

// Scores returns a copy of the level → stars map.
func (r Record) Scores() map[int]int {
	out := make(map[int]int, len(r.best))
	for k, v := range r.best {
		out[k] = v
	}
	return out
}

// UnlockedLevels lists every unlocked level in ascending order.
func (r Record) UnlockedLevels() []int {
	var out []int
	for n := 1; n <= world.LevelCount(); n++ {
		if r.Unlocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// TotalStars sums the best stars over all levels.
func (r Record) TotalStars() int {
	total := 0
	for _, stars := range r.best {
		total += stars
	}
	return total
}
