package mandel

// Iterate applies z = z^2 + c starting from z = 0 until |z| > 2 or maxIter
// steps have run, and returns the number of steps taken. A result equal to
// maxIter means c did not escape.
func Iterate(c complex128, maxIter int) int {
	cre, cim := real(c), imag(c)
	var zre, zim float64 = 0, 0
	it := 0
	for ; zre*zre+zim*zim <= 4 && it < maxIter; it += 1 {
		// z = z ^ 2 + c
		copyZre := zre
		zre = zre*zre - zim*zim + cre
		zim = copyZre*zim*2 + cim
	}
	return it
}
