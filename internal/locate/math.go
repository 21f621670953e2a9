package locate

// floorDiv returns the quotient of x/y rounded towards negative infinity.
// y must be positive.
func floorDiv(x, y int64) int64 {
	if x < 0 {
		x = x - y + 1
	}
	return x / y
}

// floorMod returns x - floorDiv(x, y)*y, which lies in [0, y) for positive y.
func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}
