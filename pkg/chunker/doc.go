// Package chunker splits raw text into bounded, overlapping chunks suitable
// for vector search. It provides three interchangeable strategies plus the
// metadata finalization pass that stamps each chunk with its position in the
// final sequence.
//
// # Strategies
//
// Strategy selection in Split is a priority chain driven by Options:
//
//   - ParagraphStrategy – splits on blank lines, greedily packing whole
//     paragraphs (selected when PreserveParagraphs is true)
//   - SentenceStrategy  – splits on sentence terminators, re-joining with ". "
//     (selected when PreserveSentences is true)
//   - CharacterStrategy – fixed-size sliding window with optional word-boundary
//     snapping (the fallback)
//
// All boundary detection is heuristic. Abbreviations, decimal numbers, and
// code blocks will be split incorrectly; callers needing exact boundaries can
// implement Strategy themselves.
//
// # Usage
//
//	chunks := chunker.Split(document, chunker.DefaultOptions())
//	for _, c := range chunks {
//	    fmt.Printf("%s [%d/%d] %d words\n",
//	        c.ID, c.Metadata.ChunkIndex+1, c.Metadata.TotalChunks,
//	        c.Metadata.WordCount)
//	}
//
// # Overlap
//
// Consecutive chunks deliberately share trailing text so context survives the
// cut: the paragraph strategy carries the last ChunkOverlap bytes snapped to
// a sentence boundary, the sentence strategy carries whole trailing sentences
// that fit the overlap budget.
//
// # Dropped tails
//
// The paragraph and sentence strategies drop a final buffer shorter than
// MinChunkSize, so the tail of a document can be silently discarded. This
// keeps noise chunks out of the index at the cost of coverage; set
// MinChunkSize low when full coverage matters more.
package chunker
