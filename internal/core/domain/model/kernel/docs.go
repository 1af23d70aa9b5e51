// Package kernel contains shared value objects used across domain aggregates.
// Types here carry no business behavior of their own; they exist to give
// identifiers and other primitives validated, immutable representations.
package kernel
