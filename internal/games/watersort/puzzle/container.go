package puzzle

// DefaultCapacity is the number of slots in a container.
const DefaultCapacity = 4

// Container is a fixed-capacity stack of colors. Tokens[0] is the bottom.
type Container struct {
	Tokens   []Color
	Capacity int
}

// NewContainer creates an empty container with the given capacity.
func NewContainer(capacity int) Container {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return Container{
		Tokens:   make([]Color, 0, capacity),
		Capacity: capacity,
	}
}

// Len returns the number of tokens in the container.
func (c *Container) Len() int {
	return len(c.Tokens)
}

// IsEmpty returns true if the container holds no tokens.
func (c *Container) IsEmpty() bool {
	return len(c.Tokens) == 0
}

// IsFull returns true if no more tokens fit.
func (c *Container) IsFull() bool {
	return len(c.Tokens) >= c.Capacity
}

// FreeSpace returns the number of empty slots.
func (c *Container) FreeSpace() int {
	return c.Capacity - len(c.Tokens)
}

// Top returns the topmost color. ok is false for an empty container.
func (c *Container) Top() (color Color, ok bool) {
	if len(c.Tokens) == 0 {
		return 0, false
	}
	return c.Tokens[len(c.Tokens)-1], true
}

// TopRun returns the length of the contiguous same-color run at the top.
func (c *Container) TopRun() int {
	top, ok := c.Top()
	if !ok {
		return 0
	}
	run := 0
	for i := len(c.Tokens) - 1; i >= 0 && c.Tokens[i] == top; i-- {
		run++
	}
	return run
}

// IsUniform returns true if every token has the same color.
// An empty container is uniform.
func (c *Container) IsUniform() bool {
	for _, t := range c.Tokens {
		if t != c.Tokens[0] {
			return false
		}
	}
	return true
}

// IsSorted returns true if the container is empty, or full of a single color.
func (c *Container) IsSorted() bool {
	if c.IsEmpty() {
		return true
	}
	return c.IsFull() && c.IsUniform()
}

// Push places a token on top.
func (c *Container) Push(color Color) error {
	if c.IsFull() {
		return ErrCapacityExceeded
	}
	c.Tokens = append(c.Tokens, color)
	return nil
}

// Pop removes and returns the top token.
func (c *Container) Pop() (Color, error) {
	if c.IsEmpty() {
		return 0, ErrEmptyContainer
	}
	last := len(c.Tokens) - 1
	color := c.Tokens[last]
	c.Tokens = c.Tokens[:last]
	return color, nil
}

// Clone returns a deep copy of the container.
func (c *Container) Clone() Container {
	tokens := make([]Color, len(c.Tokens), c.Capacity)
	copy(tokens, c.Tokens)
	return Container{Tokens: tokens, Capacity: c.Capacity}
}
