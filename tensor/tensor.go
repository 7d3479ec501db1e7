package tensor

import "fmt"

// Tensor is a simple n-D array backed by a flat []float64.
type Tensor struct {
	Data  []float64
	Shape []int
}

// New allocates a zeroed Tensor of given shape (product of dims = len(Data)).
func New(shape ...int) *Tensor {
	// Compute total size
	total := 1
	for _, d := range shape {
		total *= d
	}
	return &Tensor{
		Data:  make([]float64, total),
		Shape: append([]int(nil), shape...),
	}
}

// NewWithData creates a 1-D tensor from existing data slice.
func NewWithData(data []float64) *Tensor {
	return &Tensor{
		Data:  append([]float64(nil), data...),
		Shape: []int{len(data)},
	}
}

// FromRows creates a 2-D tensor from row slices, or error if row lengths differ.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	out := New(len(rows), width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", i, len(row), width)
		}
		copy(out.Data[i*width:], row)
	}
	return out, nil
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	total := 1
	for _, d := range t.Shape {
		total *= d
	}
	return total
}

// Rows returns the length of the first dimension (0 for a degenerate tensor).
func (t *Tensor) Rows() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return t.Shape[0]
}

// Reshape returns a view of t with the new shape, or error if the element
// counts differ.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	total := 1
	for _, d := range shape {
		total *= d
	}
	if total != len(t.Data) {
		return nil, fmt.Errorf("cannot reshape %d elements into %v", len(t.Data), shape)
	}
	return &Tensor{Data: t.Data, Shape: append([]int(nil), shape...)}, nil
}

// Row returns the i-th row of a 2-D tensor as a slice sharing t's storage.
func (t *Tensor) Row(i int) []float64 {
	if len(t.Shape) != 2 {
		panic(fmt.Sprintf("Row requires a 2-D tensor, got shape %v", t.Shape))
	}
	w := t.Shape[1]
	return t.Data[i*w : (i+1)*w]
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		Data:  append([]float64(nil), t.Data...),
		Shape: append([]int(nil), t.Shape...),
	}
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) float64 {
	return t.Data[t.index("At", indices)]
}

// Set sets the element at the given indices to the given value.
func (t *Tensor) Set(value float64, indices ...int) {
	t.Data[t.index("Set", indices)] = value
}

func (t *Tensor) index(op string, indices []int) int {
	if len(indices) != len(t.Shape) {
		panic(fmt.Sprintf("%s: expected %d indices, got %d", op, len(t.Shape), len(indices)))
	}
	idx := 0
	stride := 1
	for i := len(indices) - 1; i >= 0; i-- {
		if indices[i] < 0 || indices[i] >= t.Shape[i] {
			panic(fmt.Sprintf("%s: index %d out of bounds for dimension %d (shape: %v)", op, indices[i], i, t.Shape))
		}
		idx += indices[i] * stride
		stride *= t.Shape[i]
	}
	return idx
}

// Eye returns the n×n identity matrix.
func Eye(n int) *Tensor {
	out := New(n, n)
	for i := 0; i < n; i++ {
		out.Data[i*n+i] = 1
	}
	return out
}

// Concat stacks a on top of b along the first axis. The trailing dimensions
// must match.
func Concat(a, b *Tensor) (*Tensor, error) {
	if len(a.Shape) != len(b.Shape) || len(a.Shape) == 0 {
		return nil, fmt.Errorf("concat shape mismatch: %v vs %v", a.Shape, b.Shape)
	}
	for i := 1; i < len(a.Shape); i++ {
		if a.Shape[i] != b.Shape[i] {
			return nil, fmt.Errorf("concat shape mismatch: %v vs %v", a.Shape, b.Shape)
		}
	}
	shape := append([]int(nil), a.Shape...)
	shape[0] = a.Shape[0] + b.Shape[0]
	out := &Tensor{
		Data:  make([]float64, 0, len(a.Data)+len(b.Data)),
		Shape: shape,
	}
	out.Data = append(out.Data, a.Data...)
	out.Data = append(out.Data, b.Data...)
	return out, nil
}

// ArgMax returns the index of the largest value in v, -1 for an empty slice.
// Ties resolve to the first occurrence.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
