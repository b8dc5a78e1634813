package fixedpoint

type Slice []Value

func (s Slice) Sum() Value { return Sum(s) }

func (s Slice) Max() Value {
	if len(s) == 0 {
		return Zero
	}

	m := s[0]
	for _, v := range s[1:] {
		m = Max(m, v)
	}
	return m
}

func (s Slice) Min() Value {
	if len(s) == 0 {
		return Zero
	}

	m := s[0]
	for _, v := range s[1:] {
		m = Min(m, v)
	}
	return m
}

// Defaults to ascending sort
func (s Slice) Len() int           { return len(s) }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Slice) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }
