package view

// ClampImageIndex bounds a gallery index to [0, count-1]. It returns 0 when
// there are no images.
func ClampImageIndex(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// ClampQuantity bounds a cart quantity to [1, max(1, stock)].
func ClampQuantity(q, stock int) int {
	upper := max(1, stock)
	return min(max(q, 1), upper)
}

// NextTestimonial advances a carousel of n items, wrapping to the start.
func NextTestimonial(i, n int) int {
	if n <= 0 {
		return 0
	}
	return mod(i+1, n)
}

// PrevTestimonial steps a carousel of n items back, wrapping to the end.
func PrevTestimonial(i, n int) int {
	if n <= 0 {
		return 0
	}
	return mod(i-1, n)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
