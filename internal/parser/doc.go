// Package parser extracts the results tables of the archive pages and decodes
// their rows into model records.
//
// Extraction and decoding are separate steps. LocateTable parses a document
// once and exposes the header cells and body rows of the first table matching
// a structural selector. DecodeHeader and DecodeRow then walk those cells
// with a Schema, a declarative list of columns describing how each cell is
// read. Cells carrying the "limiter" class are layout spacers and never count
// as columns.
//
// Decoding is all or nothing: a row whose cell count differs from the
// schema's arity is rejected and a single bad row fails the whole page.
package parser
