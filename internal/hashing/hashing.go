// Package hashing provides position hashing and duplicate detection for boards.
package hashing

import (
	"github.com/lgbarn/easychess-go/internal/chess"
)

// seed is fixed so hashes are stable across runs.
const seed uint64 = 0x98F107A2BEEF1234

// xorshift64* step
func mix(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * 0x2545F4914F6CDD1D
}

// pieceKey returns the Zobrist key for a piece on a square. Boards have no
// fixed size, so keys are derived on demand instead of read from a table.
func pieceKey(pos chess.Position, p chess.Piece) uint64 {
	id := uint64(pos.Col)<<32 | uint64(pos.Row)<<16 | uint64(p.Side())<<8 | uint64(p.Kind())
	return mix(mix(seed ^ id))
}

// sizeKey separates boards of different dimensions with the same pieces.
func sizeKey(width, height int) uint64 {
	return mix(seed ^ (uint64(width)<<32 | uint64(height)) ^ 0xFFFF)
}

// GenerateZobristHash returns the Zobrist hash of a board.
func GenerateZobristHash(b *chess.Board) uint64 {
	hash := sizeKey(b.Width(), b.Height())
	b.Each(func(pos chess.Position, p chess.Piece) {
		if !p.IsEmpty() {
			hash ^= pieceKey(pos, p)
		}
	})
	return hash
}

// WeakHash is a cheap material signature: piece counts per side and kind.
func WeakHash(b *chess.Board) uint64 {
	var hash uint64
	b.Each(func(_ chess.Position, p chess.Piece) {
		if p.IsEmpty() {
			return
		}
		shift := uint(p.Kind())*4 + uint(p.Side()-1)*32
		hash += 1 << shift
	})
	return hash
}

// DuplicateDetector tracks seen boards for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores the boards seen under each hash code
	hashTable map[uint64][]BoardSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	entries     int
}

// BoardSignature stores identifying information about a board.
type BoardSignature struct {
	// Hash is the Zobrist hash of the board
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// Text is the rendered board, compared on hash collisions
	Text string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]BoardSignature),
		maxCapacity: maxCapacity,
	}
}

// NewSignature computes the signature of a board.
func NewSignature(b *chess.Board) BoardSignature {
	return BoardSignature{
		Hash:     GenerateZobristHash(b),
		WeakHash: WeakHash(b),
		Text:     b.Render(),
	}
}

// Seen reports whether a board with this signature was added before, and
// counts it as a duplicate when it was.
func (d *DuplicateDetector) Seen(sig BoardSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}
	return false
}

// Add remembers a signature. Once the detector is full, new signatures are
// dropped.
func (d *DuplicateDetector) Add(sig BoardSignature) {
	if d.IsFull() {
		return
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
}

// CheckAndAdd checks if a board is a duplicate and adds it to the hash table.
// Returns true if the board is a duplicate. When the detector is full, new
// boards are still checked but no longer remembered.
func (d *DuplicateDetector) CheckAndAdd(b *chess.Board) bool {
	if b == nil {
		return false
	}
	sig := NewSignature(b)
	if d.Seen(sig) {
		return true
	}
	d.Add(sig)
	return false
}

// signaturesMatch checks if two board signatures match.
func signaturesMatch(a, b BoardSignature) bool {
	// Zobrist hash is already implied by the hash table key
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return a.Text == b.Text
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique boards.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]BoardSignature)
	d.duplicateCount = 0
	d.entries = 0
}
