package stateless

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the machine for
// visualization. States appear in domain declaration order; parallel
// triggers between the same pair of states are merged into one labeled edge.
func (m *Machine[S, T, O]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph StateMachine {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" current\"];\n\n", m.current))

	outgoing := g.NewSet[S]()

	for state := range m.domain.Iter() {
		rep := m.representation(state)

		for _, behaviour := range rep.behaviours.Iter() {
			if behaviour.kind == kindTransitioning {
				outgoing.Insert(state)
			}
		}

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == m.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		var tooltips g.Slice[g.String]

		if rep.entryActions.NotEmpty() {
			tooltips.Push("OnEntry")
		}

		if rep.exitActions.NotEmpty() {
			tooltips.Push("OnExit")
		}

		if tooltips.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", tooltips.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for from := range m.domain.Iter() {
		rep := m.representation(from)

		grouped := g.NewMap[S, g.Slice[g.String]]()

		for trigger, behaviour := range rep.behaviours.Iter() {
			to := behaviour.fire(from)

			label := g.Format("{}", trigger)
			if behaviour.kind == kindInternal {
				label += " (internal)"
			}

			grouped.Entry(to).
				AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
				OrInsert(g.SliceOf(label))
		}

		for to := range m.domain.Iter() {
			labels := grouped.Get(to)
			if labels.IsNone() {
				continue
			}

			sorted := labels.Some()
			sorted.SortBy(cmp.Cmp)

			var edge g.Slice[g.String]
			label := sorted.Join("\\n")

			edge.Push(g.Format("label=\" {} \"", label))

			if label.Contains("(internal)") {
				edge.Push("style=dashed", "arrowhead=odiamond")
			}

			b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", from, to, edge.Join(", ")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}
