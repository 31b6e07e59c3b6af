// Package libdiff reports differences between documents, either as a line
// diff of their encodings or as the paths at which two values differ.
package libdiff
