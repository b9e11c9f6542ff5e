package random

import "sync"

// Locked serializes access to a single Generator so one stream can be
// shared between goroutines.
type Locked struct {
	g    *Generator
	lock sync.Mutex
}

func NewLocked(g *Generator) *Locked {
	return &Locked{g: g}
}

func (l *Locked) NextFloat64() float64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.NextFloat64()
}

func (l *Locked) NextFloat32() float32 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.NextFloat32()
}

func (l *Locked) NextInt64(min, max int64) (int64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.NextInt64(min, max)
}

func (l *Locked) NextInt32(min, max int32) (int32, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.NextInt32(min, max)
}

func (l *Locked) Intn(n int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Intn(n)
}

func (l *Locked) Uint64() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Uint64()
}

func (l *Locked) Int63() int64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Int63()
}

func (l *Locked) Seed(seed int64) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.g.Seed(seed)
}

func (l *Locked) Draws() uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.g.Draws()
}
