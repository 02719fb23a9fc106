// Package pipeline wires one analysis run: load the inputs, aggregate
// contact events, build the graph, compute every centrality metric and
// summarize the result. Export writes the metrics CSV and the text report.
//
// A village run reads contact-record CSVs and aggregates them; a school
// run reads one pre-aggregated GEXF graph and keeps its isolated nodes.
package pipeline
