package cave

import (
	"hash/fnv"
)

// Snapshot captures the complete editor state for determinism tests.
// Checksum folds every cell into an FNV-1a hash so two snapshots compare
// whole grids without carrying them around.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Seed      int64
	Running   bool
	CursorX   int
	CursorY   int
	CamX      int
	CamY      int
	OpenCells int
	Checksum  uint64
}

// Snapshot returns the current editor snapshot.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		Mode:      e.mode.String(),
		Seed:      e.seed,
		Running:   e.running,
		CursorX:   e.cursorX,
		CursorY:   e.cursorY,
		CamX:      e.cam.X,
		CamY:      e.cam.Y,
		OpenCells: e.grid.OpenCount(),
		Checksum:  e.gridChecksum(),
	}
}

func (e *Editor) gridChecksum() uint64 {
	h := fnv.New64a()
	buf := []byte{0}
	for _, c := range e.grid.Cells() {
		buf[0] = 0
		if c {
			buf[0] = 1
		}
		h.Write(buf)
	}
	return h.Sum64()
}
