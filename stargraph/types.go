package stargraph

import "errors"

// NodeIndex identifies a node in [0, n). NilNode marks end-of-iteration or
// an absent node and is always outside that range.
type NodeIndex int

// ArcIndex identifies a forward arc in [0, m) or a reverse arc in [-m, 0).
// NilArc marks end-of-iteration or a failed AddArc and is always outside
// [-m, m).
type ArcIndex int

// NilNode is the sentinel NodeIndex returned for absent or unknown nodes.
const NilNode NodeIndex = -1

// NilArc is the sentinel ArcIndex returned for absent arcs and by AddArc
// once arc capacity is exhausted.
const NilArc ArcIndex = -1 << 62

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange is the value AddArc panics with (Debug mode only)
	// when tail or head falls outside [0, n).
	ErrNodeOutOfRange = errors.New("stargraph: node index out of range")

	// ErrNotReserved names the error of adding arcs to a Graph that was not
	// obtained from Reserve. No function in this package returns it.
	ErrNotReserved = errors.New("stargraph: graph capacity not reserved")

	// ErrAlreadyBuilt names the error of adding an arc after Build. AddArc
	// does not return it; it reports that case by returning NilArc.
	ErrAlreadyBuilt = errors.New("stargraph: graph already built; no further arcs may be added")
)

// Opposite returns ~a = -a-1, the reverse of a (or the direct form of a
// reverse arc).
func Opposite(a ArcIndex) ArcIndex {
	if a == NilArc {
		return NilArc
	}
	return -a - 1
}

// IsDirect reports whether a is a forward arc (a ≥ 0).
func IsDirect(a ArcIndex) bool { return a >= 0 }
