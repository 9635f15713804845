// Package graphfeatures computes structural features — PageRank scores,
// k-core shells, and per-node motif class counts — over large directed or
// undirected graphs held in a compact compressed-sparse-row layout.
//
// The module is organized under three subpackages:
//
//	store/     — GraphStore: the CSR graph, its binary file format,
//	             PageRank, k-core, and inverse/undirected transforms.
//	variation/ — VariationTable: the group-signature-to-motif-class lookup
//	             loaded from a text file, addressed by (level, directed).
//	motif/     — MotifEngine: the degree-ordered canonical-root
//	             enumeration of connected 3- and 4-node induced subgraphs,
//	             classified via a VariationTable.
//
// A typical pipeline loads a graph into a store.Store, computes whatever
// GraphStore-level features it needs directly (PageRank, KCore), and
// separately configures a motif.Engine against a variation.Table to
// accumulate per-node motif counts:
//
//	s := store.New()
//	if err := s.Load("graph.bin"); err != nil {
//		// handle failure; s is left in the cleared state
//	}
//
//	tbl, err := variation.Load("groups3undirected.txt", variation.Key{Level: 3, Directed: false})
//	if err != nil {
//		// handle failure
//	}
//
//	engine, err := motif.NewEngine(3, false, tbl)
//	if err != nil {
//		// handle failure
//	}
//	if err := engine.Bind(s); err != nil {
//		// handle failure
//	}
//	features, err := engine.Calculate()
package graphfeatures
