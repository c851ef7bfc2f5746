// Package undotree provides transparent undo/redo over an in-memory state
// tree.
//
// Application state is built from trackable nodes: Leaf for comparable
// scalars, Text for strings diffed character by character, and Composite
// for named groups of nodes. A Workspace owns the root node. Every change
// made inside a batch is captured as an op when the batch closes, without
// the caller constructing it.
//
// # Architecture
//
// The package is a facade over:
//
//   - internal/engine/tracking: the Node contract, leaf and text values, text diff, composites
//   - internal/engine/history: the workspace, batches, undo/redo, versions, metrics
//   - internal/config: TOML/YAML/environment configuration
//
// # Basic Usage
//
//	type Point struct {
//	    *undotree.Composite
//	    X *undotree.Leaf[float64]
//	    Y *undotree.Leaf[float64]
//	}
//
//	func NewPoint(x, y float64) *Point {
//	    p := &Point{X: undotree.NewLeaf(x), Y: undotree.NewLeaf(y)}
//	    p.Composite = undotree.NewComposite(
//	        undotree.Field("x", p.X),
//	        undotree.Field("y", p.Y),
//	    )
//	    return p
//	}
//
//	ws := undotree.New(NewPoint(1, 2))
//	ws.Mutate(func(p *Point) error {
//	    p.X.Set(4)
//	    return nil
//	})
//	ws.Undo() // X is 1 again
//	ws.Redo() // X is 4
//
// # Configuration
//
//	cfg, err := undotree.LoadConfig("undotree.toml")
//	opts, closer, err := undotree.FromConfig(cfg)
//	defer closer.Close()
//	ws := undotree.New(root, opts...)
//
// # Thread Safety
//
// Nodes and workspaces are not safe for concurrent use.
package undotree
