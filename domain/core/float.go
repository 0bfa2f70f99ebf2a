package core

// Float is the numeric parameter shared by every public type in the
// library: either IEEE-754 precision. All arithmetic within a single call
// stays in the chosen precision; values cross to float64 only at the
// distribution seam.
type Float interface {
	~float32 | ~float64
}
