package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the world state.
// Uses primitive types only for stable hashing and logging.
type Snapshot struct {
	Tick         uint64
	BallX        int // World units scaled by 1000 (for precision)
	BallY        int
	BallVX       int
	BallVY       int
	LeftPaddleY  int
	RightPaddleY int
	ScoreLeft    int
	ScoreRight   int
	Paused       bool
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:         w.ticks,
		BallX:        milli(w.Ball.Pos.X),
		BallY:        milli(w.Ball.Pos.Y),
		BallVX:       milli(w.Ball.Vel.X),
		BallVY:       milli(w.Ball.Vel.Y),
		LeftPaddleY:  milli(w.Paddles[TeamLeft].Pos.Y),
		RightPaddleY: milli(w.Paddles[TeamRight].Pos.Y),
		ScoreLeft:    w.Score.Left,
		ScoreRight:   w.Score.Right,
		Paused:       w.Paused,
	}
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	write(s.Tick)
	for _, v := range []int{
		s.BallX, s.BallY, s.BallVX, s.BallVY,
		s.LeftPaddleY, s.RightPaddleY,
		s.ScoreLeft, s.ScoreRight,
	} {
		write(uint64(int64(v))) //nolint:gosec // bit pattern only
	}
	if s.Paused {
		write(1)
	} else {
		write(0)
	}

	return h.Sum64()
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}
