// Package curriculum implements progressive-words training schedules and
// concurrent batch application of shuffle policies. A Schedule grows the
// active vector count over training steps; an Applier fans shuffle work
// for a batch of placeholders out over a worker pool.
package curriculum
