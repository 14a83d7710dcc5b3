package table

import "math/bits"

const (
	// Offset is the smallest value with an entry. Index 0 represents 2.
	Offset = 2

	// segmentBits determines the size of each segment.
	// 16 bits = 65536 entries per segment.
	segmentBits = 16
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1

	// wordsPerSegment is the number of uint64 words in a segment.
	wordsPerSegment = segmentSize / 64

	// SegmentBytes is the memory footprint of one segment.
	SegmentBytes = wordsPerSegment * 8
)

// Index addresses a table entry. The represented value is Index+Offset.
type Index uint64

// IndexOf returns the index of value v. v must be at least Offset.
func IndexOf(v uint64) Index {
	return Index(v - Offset)
}

// Value returns the integer represented by the index.
func (i Index) Value() uint64 {
	return uint64(i) + Offset
}

type segment [wordsPerSegment]uint64

// Table is a segmented bit table of composite marks.
type Table struct {
	segments []*segment
	size     uint64
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// Len returns the number of entries.
func (t *Table) Len() uint64 {
	return t.size
}

// Segments returns the number of allocated segments.
func (t *Table) Segments() int {
	return len(t.segments)
}

// Capacity returns the number of entries the allocated segments can hold
// without further allocation.
func (t *Table) Capacity() uint64 {
	return uint64(len(t.segments)) * segmentSize
}

// SegmentsFor returns the number of segments needed to hold size entries.
func SegmentsFor(size uint64) int {
	if size == 0 {
		return 0
	}
	return int((size-1)>>segmentBits) + 1
}

// Grow ensures the table holds at least size entries.
// New entries start unmarked.
func (t *Table) Grow(size uint64) {
	if size <= t.size {
		return
	}
	for n := SegmentsFor(size); len(t.segments) < n; {
		t.segments = append(t.segments, new(segment))
	}
	t.size = size
}

// Mark flags the entry at i as composite. Out-of-range indexes are ignored.
func (t *Table) Mark(i Index) {
	if uint64(i) >= t.size {
		return
	}
	seg := t.segments[i>>segmentBits]
	offset := uint64(i) & segmentMask
	seg[offset/64] |= 1 << (offset % 64)
}

// Composite reports whether the entry at i is marked.
// Out-of-range indexes report false.
func (t *Table) Composite(i Index) bool {
	if uint64(i) >= t.size {
		return false
	}
	seg := t.segments[i>>segmentBits]
	offset := uint64(i) & segmentMask
	return seg[offset/64]&(1<<(offset%64)) != 0
}

// Strike marks start, start+stride, start+2*stride, ... up to the end of the table.
func (t *Table) Strike(start Index, stride uint64) {
	if stride == 0 {
		return
	}
	for k := uint64(start); k < t.size; k += stride {
		seg := t.segments[k>>segmentBits]
		offset := k & segmentMask
		seg[offset/64] |= 1 << (offset % 64)
	}
}

// NextUnmarked returns the first unmarked index at or after from.
func (t *Table) NextUnmarked(from Index) (Index, bool) {
	for i := uint64(from); i < t.size; {
		seg := t.segments[i>>segmentBits]
		offset := i & segmentMask
		shift := offset % 64

		// Bits past size are never marked, so the bound check below
		// rejects them.
		word := ^seg[offset/64] >> shift
		if word != 0 {
			j := i + uint64(bits.TrailingZeros64(word))
			if j < t.size {
				return Index(j), true
			}
			return 0, false
		}
		i += 64 - shift
	}
	return 0, false
}

// CountUnmarked returns the number of unmarked entries in [from, to).
func (t *Table) CountUnmarked(from, to Index) int {
	if uint64(to) > t.size {
		to = Index(t.size)
	}
	count := 0
	for i, ok := t.NextUnmarked(from); ok && i < to; i, ok = t.NextUnmarked(i + 1) {
		count++
	}
	return count
}
