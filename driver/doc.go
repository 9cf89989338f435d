// Package driver implements the three command-line workflows this module
// ships: simplifying one mesh file, batch-simplifying a directory of mesh
// files at a fixed set of ratios, and evaluating the surface error of a
// batch's output against its input. Grounded on original_source's
// batch_simplify.py and batch_eval.py; the runnable-program texture (plain
// fmt output, no logging framework) follows the teacher's examples/*.go.
package driver
