// Package export writes sort traces to files: JSON documents, SVG stills,
// animated GIFs and self-contained HTML players.
package export
