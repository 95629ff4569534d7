// Package packaging selects the smallest standard shipping container that a
// product, or a batch of identical products, fits into.
//
// Fit tests sort both the item and the container dimensions, so the result
// does not depend on how the caller labels depth, width and height. Bags only
// constrain the two largest item dimensions; boxes constrain all three.
package packaging
