// Package pipeline turns documents into files on disk.
//
// Every document goes through the same stages: load the embedded dataset,
// render the PDF in memory, write it to the output directory, write the
// optional Markdown and JSON companions, then read the PDF back to verify
// it. Each stage is a Step that receives the Job for one document and
// records its results on it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. Companions and verification are optional and can be left out of the
// step list instead of being guarded by flags inside one long function
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between stages
//
// Generator ties the pieces together. It locks the output directory, runs
// one pipeline per document with bounded concurrency using errgroup, and
// returns the jobs in the order they were requested.
package pipeline
