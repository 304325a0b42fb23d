package maze

import "github.com/gammazero/deque"

// Reachable returns every open position connected to from through
// orthogonally adjacent open cells, in breadth-first order.
// It returns nil if from is not open.
func (g *Grid) Reachable(from Position) []Position {
	if !g.IsOpen(from) {
		return nil
	}

	visited := make(map[Position]struct{})
	visited[from] = struct{}{}

	var queue deque.Deque[Position]
	queue.PushBack(from)

	order := make([]Position, 0, g.CountOpen())
	for queue.Len() > 0 {
		p := queue.PopFront()
		order = append(order, p)

		for _, d := range Directions() {
			next := p.Add(d)
			if _, seen := visited[next]; seen || !g.IsOpen(next) {
				continue
			}
			visited[next] = struct{}{}
			queue.PushBack(next)
		}
	}
	return order
}
