package war

import "sort"

// NoHealthBar is the sentinel health of improvements without a damage
// track. A successful missile hit destroys them outright; conventional
// combat treats them the same as any other improvement.
const NoHealthBar = 99

// CapitalName is the improvement that is never removed from the map.
// When destroyed it is only rendered non-functional (health 0).
const CapitalName = "Capital"

// Unit is the single unit slot of a region.
type Unit struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Health int    `json:"health"`
}

// Improvement is the single improvement slot of a region. Ownership
// follows the region's owner.
type Improvement struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
}

// IsCapital reports whether this is the special capital improvement.
func (i *Improvement) IsCapital() bool {
	return i.Name == CapitalName
}

// Functional reports whether the improvement still operates. A capital
// at health 0 stays on the map but does nothing.
func (i *Improvement) Functional() bool {
	return i.Health > 0
}

// Region is one map cell: an owner, an optional wartime occupier, and
// at most one unit and one improvement.
type Region struct {
	ID          string       `json:"id"`
	Owner       string       `json:"owner"`
	Occupier    string       `json:"occupier,omitempty"`
	Fallout     int          `json:"fallout,omitempty"`
	Unit        *Unit        `json:"unit,omitempty"`
	Improvement *Improvement `json:"improvement,omitempty"`
}

// IsOccupied reports whether a foreign power currently controls the region.
func (r *Region) IsOccupied() bool {
	return r.Occupier != ""
}

// ControlledBy returns the nation currently in control: the occupier if
// present, otherwise the owner.
func (r *Region) ControlledBy() string {
	if r.Occupier != "" {
		return r.Occupier
	}
	return r.Owner
}

// RegionGraph is the static adjacency graph over region IDs. Edges are
// symmetric; the graph never changes after construction.
type RegionGraph struct {
	adj map[string][]string
}

// NewRegionGraph builds a graph from an edge list. Reverse edges are
// added automatically so callers only list each link once. Adjacency
// lists are built in sorted key order, so BFS tie-breaks are the same
// in every run over the same map.
func NewRegionGraph(edges map[string][]string) *RegionGraph {
	froms := make([]string, 0, len(edges))
	for from := range edges {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	g := &RegionGraph{adj: make(map[string][]string, len(edges))}
	for _, from := range froms {
		for _, to := range edges[from] {
			g.addEdge(from, to)
			g.addEdge(to, from)
		}
	}
	return g
}

func (g *RegionGraph) addEdge(from, to string) {
	for _, existing := range g.adj[from] {
		if existing == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], to)
}

// Neighbors returns the regions directly adjacent to id.
func (g *RegionGraph) Neighbors(id string) []string {
	return g.adj[id]
}

// Adjacent reports whether a and b share an edge.
func (g *RegionGraph) Adjacent(a, b string) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// WithinRange returns every region reachable from origin within the
// given number of hops, origin included, in BFS order.
func (g *RegionGraph) WithinRange(origin string, radius int) []string {
	type hop struct {
		id   string
		dist int
	}
	visited := map[string]bool{origin: true}
	queue := []hop{{origin, 0}}
	result := []string{origin}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.dist >= radius {
			continue
		}
		for _, n := range g.adj[current.id] {
			if visited[n] {
				continue
			}
			visited[n] = true
			result = append(result, n)
			queue = append(queue, hop{n, current.dist + 1})
		}
	}
	return result
}
