package types

type Float64Slice []float64

func (s *Float64Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Float64Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Float64Slice) Mean() (mean float64) {
	if len(s) == 0 {
		return 0.0
	}
	return s.Sum() / float64(len(s))
}

func (s Float64Slice) Tail(size int) Float64Slice {
	length := len(s)
	if length <= size {
		win := make(Float64Slice, length)
		copy(win, s)
		return win
	}

	win := make(Float64Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate keeps the last size elements.
func (s Float64Slice) Truncate(size int) Float64Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}

func (s *Float64Slice) Last() float64 {
	length := len(*s)
	if length > 0 {
		return (*s)[length-1]
	}
	return 0.0
}

// Index returns the i-th value counted backwards from the last one.
func (s *Float64Slice) Index(i int) float64 {
	length := len(*s)
	if length-i-1 < 0 || i < 0 {
		return 0.0
	}
	return (*s)[length-i-1]
}

func (s *Float64Slice) Length() int {
	return len(*s)
}
