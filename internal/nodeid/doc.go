// internal/nodeid/doc.go

/*
Package nodeid provides the identifier type for maze and graph nodes.

An identifier is an opaque, non-negative integer. Grid mazes derive it from
a cell position (`row*width + col`), explicit graphs declare it directly in
their manifests, e.g. `node "12" { ... }`.

This package centralizes parsing and formatting so every other package
treats node identifiers the same way.
*/
package nodeid
