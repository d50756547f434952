// Package model defines shared data structures.
package model

import "time"

// Config defines runtime settings for one run of the fest.
type Config struct {
	Verbose    bool
	Fast       bool
	Height     int
	Animate    bool
	MemProfile bool
	InputFile  string
}

// FloatTime returns the delay between animation steps.
func (c Config) FloatTime() time.Duration {
	if c.Fast {
		return 50 * time.Millisecond
	}
	return 100 * time.Millisecond
}

// MemoryStats holds a (current, peak) pair of byte counts sampled
// around one timed operation. Peak is always >= Current.
type MemoryStats struct {
	Current uint64
	Peak    uint64
}
