// Package plot renders a finished theta (or dzA) stream as one SVG trace
// line per column — a thin, optional convenience distinct from the
// statistical goodness-of-fit plotting the estimator itself never does.
package plot
