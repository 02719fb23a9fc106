// Package contactnet turns raw proximity records into a weighted contact
// network and ranks the individuals in it.
//
// What is contactnet?
//
//	A batch pipeline, in memory and deterministic, that brings together:
//		• Loading: contact-record CSVs (village) or a GEXF graph (school)
//		• Aggregation: one undirected edge per pair, weight = summed duration
//		• Graph store: thread-safe core.Graph with exact decimal weights
//		• Metrics: degree, strength, betweenness, closeness, PageRank
//		• Reporting: summaries, degree histogram, top-k tables, metrics CSV
//
// Packages, in data-flow order:
//
//	loader/         CSV and GEXF decoding with file:line errors
//	contact/        canonical pairs, event aggregation, attribute policy
//	builder/        Aggregation → core.Graph, integrity checks
//	core/           Graph, Vertex, Edge and node attributes under RW locks
//	bfs/            hop-count traversal and connected components
//	centrality/     the five per-node metrics and the joined Table
//	report/         statistics, histogram, CSV export, terminal rendering
//	pipeline/       one run end to end, plus Export
//	cmd/contactnet  the CLI (analyze, degrees, version)
//
// Quick example:
//
//	(A,B,10) (B,A,5) (A,C,7)
//
//	    B ──15── A ──7── C
//
// gives degree(A)=2, strength(A)=22 and betweenness(A)=1.
//
//	go install github.com/katalvlaran/contactnet/cmd/contactnet@latest
package contactnet
