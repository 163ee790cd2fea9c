// Package hmetis reads and writes the hMETIS .hgr file family named in
// §6: the input hypergraph format, the N-line partition output, and
// the decimal-seconds timing sidecar. It is an external collaborator, not a
// core component — it never touches KM1, balance, or the refinement loop,
// only the textual interchange format around them. Error wrapping follows
// builder/helpers.go's builderErrorf convention (a single %w-wrapped
// sentinel per failure, method name as prefix).
package hmetis
