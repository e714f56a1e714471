// Package target builds the page targets of the results archive.
//
// A PageTarget is an immutable GET request description. Builders only
// assemble URLs from fixed templates; fetching is left to the fetch package.
package target
