package number

// IsPalindrome reports whether the digit string reads the same reversed.
//
// The first and last digits are compared first as a fast rejection; only
// then is the full mirror walk performed. The zero value reports false.
func (n Number) IsPalindrome() bool {
	d := n.digits
	if d == "" {
		return false
	}
	if d[0] != d[len(d)-1] {
		return false
	}
	for i, j := 1, len(d)-2; i < j; i, j = i+1, j-1 {
		if d[i] != d[j] {
			return false
		}
	}

	return true
}
