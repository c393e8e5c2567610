package weekling

// WeekRange is an inclusive, ascending range of weeks
type WeekRange struct {
	First Week
	Last  Week
}

// Weeks returns every week of the range in order. A range whose First is
// after its Last is empty
func (r WeekRange) Weeks() []Week {
	var weeks []Week
	for w := r.First; !w.After(r.Last); w = w.Next() {
		weeks = append(weeks, w)
	}
	return weeks
}

// Len returns the number of weeks in the range
func (r WeekRange) Len() int {
	n := 0
	for w := r.First; !w.After(r.Last); w = w.Next() {
		n++
	}
	return n
}

// Contains reports whether w lies within the range
func (r WeekRange) Contains(w Week) bool {
	return !w.Before(r.First) && !w.After(r.Last)
}

// String returns the range as "<first>..<last>"
func (r WeekRange) String() string {
	return r.First.String() + ".." + r.Last.String()
}
