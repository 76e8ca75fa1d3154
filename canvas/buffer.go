package canvas

// Meta is the per-record paint metadata used by replay consumers to batch
// strokes and fills separately.
type Meta struct {
	HasFill   bool
	HasStroke bool
}

// Record bundles one command with its paint metadata and the opaque source
// tag of the owning scene entity. Bundling the three into one record makes
// the historical parallel-array length invariant structurally impossible to
// violate.
type Record struct {
	Cmd    Command
	Meta   Meta
	Source string
}

// CommandBuffer is an ordered record of drawing and state operations captured
// from one recording pass. It is appended to only by the RecordingCanvas that
// owns it and is immutable once the pass ends; ownership then transfers to
// whichever consumer replays it.
type CommandBuffer struct {
	records []Record
}

// NewCommandBuffer returns an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{records: make([]Record, 0, 256)}
}

// Records returns the recorded sequence. Callers must not mutate it.
func (b *CommandBuffer) Records() []Record { return b.records }

// Len returns the number of records.
func (b *CommandBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.records)
}

// Empty reports whether nothing was recorded.
func (b *CommandBuffer) Empty() bool { return b == nil || len(b.records) == 0 }

func (b *CommandBuffer) append(cmd Command, meta Meta, source string) {
	b.records = append(b.records, Record{Cmd: cmd, Meta: meta, Source: source})
}
