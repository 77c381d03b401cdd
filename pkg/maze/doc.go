// Package maze defines the core data model shared by every generator,
// the solver, and the serializer: the wall/passage Grid, a MazeSpec
// (grid plus start/goal), the solver's ReasoningEvent trace and Plan,
// and the binary EncodedSpec used to move a maze cheaply between the
// producer and a solver worker.
package maze
