// Package chunk reads the recursive chunk frames of a vox file.
//
// Every chunk starts with a 12-byte header: a 4-byte tag, the content length,
// and the children length, both little-endian uint32. The content is decoded
// by the semantic decoder registered for the tag; the children range is parsed
// as a sequence of sibling chunks that must consume it exactly. Unrecognized
// tags are kept as Unknown values with their raw content, so framing stays
// intact regardless of which tags a file uses.
package chunk
