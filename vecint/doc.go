// Package vecint provides the two packed integer containers shared by every
// engine in the pushrelabel module: a dense vector indexed over [0, n) and a
// signed-index vector indexed over [-n, n) used to store forward-and-reverse
// arc data contiguously without pointer arithmetic.
//
// Both containers are bounds-checked when Debug is true and unchecked
// otherwise, matching the "debug-time failures, release-time trust" contract
// the engines rely on for their hot inner loops.
package vecint
