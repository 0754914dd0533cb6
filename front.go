package moea

// Front is a view over a subset of a Population, naming its members by
// index into the parent population rather than copying rows. This is the
// representation FastNonDominatedSort returns: one Front per non-dominated
// layer.
type Front struct {
	Population *Population
	Indices    []int
}

// Len returns the number of members.
func (f Front) Len() int { return len(f.Indices) }

// At returns a view of the i-th member, by position within the front (not
// by parent-population index).
func (f Front) At(i int) Individual { return f.Population.At(f.Indices[i]) }

// Extract materializes the front as a standalone Population via Slice.
func (f Front) Extract() *Population { return f.Population.Slice(f.Indices) }
