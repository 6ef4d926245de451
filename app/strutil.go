package app

// appendUint appends the decimal form of n to buf without using fmt.
// Keeps the firmware image small and the hot path allocation free once
// buf has grown to its working size.
func appendUint(buf []byte, n uint32) []byte {
	if n == 0 {
		return append(buf, '0')
	}

	// Count digits
	digits := 0
	for temp := n; temp > 0; temp /= 10 {
		digits++
	}

	// Build from right to left in place
	start := len(buf)
	for i := 0; i < digits; i++ {
		buf = append(buf, 0)
	}
	pos := start + digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return buf
}

// appendSpaces appends n space characters
func appendSpaces(buf []byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, ' ')
	}
	return buf
}
