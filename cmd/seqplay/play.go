package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phanxgames/sequencer"
)

// runPlay evaluates seq at every frame in [from, to] and writes a table of
// node state to w, followed by the state after the session is stopped.
func runPlay(w io.Writer, seq *sequencer.Sequence, opts playOptions) error {
	if opts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", opts.fps)
	}
	if opts.to < opts.from {
		return fmt.Errorf("--to %v is before --from %v", opts.to, opts.from)
	}

	session := sequencer.NewSession(seq)
	session.SetPlayingInEditor(opts.pie)
	session.SetDebugMode(opts.debug)

	nodes := make([]*sequencer.Node, len(seq.Tracks))
	for i, t := range seq.Tracks {
		if opts.component {
			nodes[i] = sequencer.NewComponent(t.Name)
		} else {
			nodes[i] = sequencer.NewActor(t.Name)
		}
		session.BindOperand(t.Operand, nodes[i])
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "time")
	for _, n := range nodes {
		fmt.Fprintf(tw, "\t%s", n.Name)
	}
	fmt.Fprintln(tw)

	step := 1 / opts.fps
	frames := int((opts.to-opts.from)*opts.fps+1e-9) + 1
	for i := 0; i < frames; i++ {
		t := opts.from + float64(i)*step
		session.Evaluate(t)
		fmt.Fprintf(tw, "%.3f", t)
		for _, n := range nodes {
			fmt.Fprintf(tw, "\t%s", nodeState(n))
		}
		fmt.Fprintln(tw)
	}

	session.Stop()
	fmt.Fprint(tw, "restored")
	for _, n := range nodes {
		fmt.Fprintf(tw, "\t%s", nodeState(n))
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

// nodeState formats a node as "visible a=1.00" or "hidden a=0.50"; actors
// hidden only in the editor show "editor-hidden".
func nodeState(n *sequencer.Node) string {
	vis := "visible"
	switch {
	case n.Hidden:
		vis = "hidden"
	case n.Type == sequencer.NodeTypeActor && n.HiddenInEditor:
		vis = "editor-hidden"
	}
	return fmt.Sprintf("%s a=%.2f", vis, n.Alpha)
}
