package types

// Queue is a fixed capacity ring buffer of float64 values. Pushing into a full queue
// evicts the oldest value and returns it to the caller, so rolling statistics can be
// maintained without rescanning the window.
type Queue struct {
	buf   []float64
	idx   int // next write position
	count int
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}

	return &Queue{
		buf: make([]float64, size),
	}
}

// Push appends v. When the queue was already full, the evicted value is returned with
// evicted == true.
func (q *Queue) Push(v float64) (old float64, evicted bool) {
	if q.count == len(q.buf) {
		old, evicted = q.buf[q.idx], true
	} else {
		q.count++
	}

	q.buf[q.idx] = v
	q.idx = (q.idx + 1) % len(q.buf)
	return old, evicted
}

func (q *Queue) Len() int { return q.count }
func (q *Queue) Cap() int { return len(q.buf) }

func (q *Queue) Full() bool { return q.count == len(q.buf) }

// Oldest returns the value that the next Push on a full queue would evict.
func (q *Queue) Oldest() float64 {
	if q.count == 0 {
		return 0.0
	}

	if q.count < len(q.buf) {
		return q.buf[0]
	}
	return q.buf[q.idx]
}

// Values returns the buffered values from the oldest to the newest.
func (q *Queue) Values() Float64Slice {
	values := make(Float64Slice, 0, q.count)
	start := 0
	if q.count == len(q.buf) {
		start = q.idx
	}

	for i := 0; i < q.count; i++ {
		values.Push(q.buf[(start+i)%len(q.buf)])
	}
	return values
}

func (q *Queue) Reset() {
	q.idx = 0
	q.count = 0
	for i := range q.buf {
		q.buf[i] = 0
	}
}
