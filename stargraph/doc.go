// Package stargraph implements the forward/reverse star graph representation
// shared by every engine in the pushrelabel module: nodes [0, n), forward
// arcs [0, m), reverse arcs [-m, 0), where arc a and its opposite ~a always
// co-exist.
//
// A Graph is built once via Reserve + AddArc + Build, then frozen: engines
// borrow it immutably for the lifetime of a solve and never mutate its
// topology, since every push-relabel engine here needs a static topology to
// keep its residual/height/potential arrays valid across a whole solve.
//
// Of the representations a forward-star layout could take (list vs. static,
// with vs. without reverse arcs), only the static-with-reverse-arcs variant
// is implemented here, exposed through the narrow capability surface the
// engines actually need: Outgoing, Incoming, Incident, Head, Tail, Opposite,
// NumNodes, NumArcs.
package stargraph
