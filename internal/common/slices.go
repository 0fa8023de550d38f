package common

// FirstSeen records the first position of each key and reports collisions.
type FirstSeen[K comparable] map[K]int

// Check records key at position i. It returns the earlier position and true
// when key was already recorded.
func (f FirstSeen[K]) Check(key K, i int) (int, bool) {
	if prev, ok := f[key]; ok {
		return prev, true
	}

	f[key] = i

	return i, false
}
