// Package process implements the inter-worker, intra-process channel
// allocator: a group of Process handles share one lazily-populated channel
// table and hand each worker its exclusive slice of a typed full mesh.
package process
