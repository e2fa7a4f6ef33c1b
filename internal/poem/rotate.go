package poem

// Rotate selects n lines from pool cyclically: pool[0], pool[1], ...,
// pool[len-1], pool[0], ... It is total for any n >= 0 and non-empty pool.
func Rotate(pool []string, n int) []string {
	return rotateFrom(pool, 0, n)
}

// rotateFrom continues a rotation that has already consumed start lines.
func rotateFrom(pool []string, start, n int) []string {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = pool[(start+i)%len(pool)]
	}
	return out
}
