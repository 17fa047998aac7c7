// Package docstore provides single-document reads addressed by hierarchical
// paths of alternating collection and document segments, in the style of
// document databases with nested collections.
//
// Two implementations are provided: MongoReader for production use and
// MemoryReader for tests. Both are read-only by design; the pipeline that
// consumes them never writes to the document store.
package docstore
