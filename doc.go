// Package cxg provides construction matching and rewriting for
// semantic graphs.
//
// A construction pairs a small finite-state acceptor (package 'core')
// with a rewrite action (package 'construction').  Matchers (package
// 'match') test single nodes and operators (package 'operators')
// perform the actual graph mutations.  Command-line tools are in
// `cmd`.
package cxg
