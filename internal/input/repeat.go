package input

// Repeat reports whether a key held for ticks frames should fire. It fires
// on the first frame, then every interval frames once delay has passed.
func Repeat(ticks, delay, interval int) bool {
	if ticks == 1 {
		return true
	}
	if ticks < delay || interval <= 0 {
		return false
	}
	return (ticks-delay)%interval == 0
}
