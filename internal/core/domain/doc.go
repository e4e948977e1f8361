// Package domain contains the core types and pure functions of the
// universal search pipeline: match scanning, relevance scoring,
// excerpt building, highlighting, and result-to-path resolution.
//
// Everything in this package is pure computation over strings and
// result records. Functions here are total over their documented
// input domain: malformed input produces safe defaults, never panics.
// External collaborators (the search provider, storage, navigation)
// live behind ports.
package domain
