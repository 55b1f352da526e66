// Package metric defines the distance capability consumed by the k-opt engine
// together with two concrete node types.
//
// Provided types:
//   - Metric[T]: the capability itself, "has a distance to another T".
//   - Point: a 2-D Euclidean point.
//   - Table / Vertex: a validated dense distance table and its row handles.
//
// Contracts:
//   - Distance is symmetric and non-negative. The triangle inequality is NOT
//     assumed by any consumer in this module.
//   - Nodes are plain values; copying a node never copies the data it refers to.
package metric
