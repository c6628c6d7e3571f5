// Package rng provides the per-task PRNG plumbing spec §5 requires:
// seeded once at task start, never reseeded mid-run, independent across
// tasks running as separate OS processes.
package rng

import "math/rand"

// ForTask derives a task-local PRNG from a base seed and a task id so
// that two tasks sharing a config file's seed still draw independent
// sequences (spec §5: "seeded per task so that two tasks produce
// independent draws"). Combining via multiplication by a large odd
// constant before folding in the task id keeps nearby task ids from
// producing correlated low-order seed bits.
func ForTask(seed int64, taskID int) *rand.Rand {
	const mix uint64 = 0x9E3779B97F4A7C15 // golden-ratio odd constant, standard splitmix seed spreader

	s := int64(uint64(seed)*mix) + int64(taskID)

	return rand.New(rand.NewSource(s))
}
