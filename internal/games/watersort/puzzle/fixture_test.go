package puzzle

// layoutShuffler arranges tokens built by BuildTokens into a fixed layout.
// BuildTokens groups tokens by color, so original index k holds palette[k/capacity].
type layoutShuffler struct {
	want     []Color
	palette  []Color
	capacity int
}

func (l layoutShuffler) Shuffle(n int, swap func(i, j int)) {
	// Pick a source index for every target slot.
	used := make([]bool, n)
	perm := make([]int, n)
	for i, c := range l.want {
		for k := 0; k < n; k++ {
			if !used[k] && l.palette[k/l.capacity] == c {
				used[k] = true
				perm[i] = k
				break
			}
		}
	}

	// Apply the permutation through swaps, tracking where each original sits.
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	for i := 0; i < n; i++ {
		j := i
		for cur[j] != perm[i] {
			j++
		}
		if i != j {
			swap(i, j)
			cur[i], cur[j] = cur[j], cur[i]
		}
	}
}

// reverseShuffler reverses the token order.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

const (
	R = ColorRed
	G = ColorGreen
	B = ColorBlue
	Y = ColorYellow
	M = ColorMagenta
	C = ColorCyan
)

// scenarioLayout has containers 0 and 1 topped with yellow but otherwise different.
var scenarioLayout = [][]Color{
	{R, G, B, Y},
	{G, R, C, Y},
	{B, M, R, G},
	{C, B, M, R},
	{M, C, G, B},
	{Y, Y, C, M},
}

func flatten(layout [][]Color) []Color {
	var out []Color
	for _, c := range layout {
		out = append(out, c...)
	}
	return out
}

func mustCompose(capacity int, contents ...[]Color) *State {
	s, err := Compose(capacity, contents...)
	if err != nil {
		panic(err)
	}
	return s
}

func countsEqual(a, b map[Color]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
