// Package exprdag is an in-memory engine for nonlinear expression DAGs:
// shared expression graphs, recursion-free traversal, and interval bound
// propagation for constraint and global-optimization solvers.
//
// 🚀 What is exprdag?
//
//	A pure-Go library that brings together:
//		• Core primitives: build shared (diamond-shaped) expression DAGs
//		  from variables, constants and algebraic operators
//		• Interval arithmetic: closed intervals with ±Inf endpoints and an
//		  explicit empty-interval infeasibility sentinel
//		• Traversals: stage-aware depth-first, breadth-first and
//		  reverse-topological iteration without recursion
//		• Propagation: forward activity computation (leaves→root) and
//		  reverse bound tightening (root→leaves) to a fixpoint
//
// ✨ Why choose exprdag?
//
//   - Solver-grade semantics – monotone tightening, epoch-tagged
//     memoization, explicit infeasibility (never NaN, never panic)
//   - Shared DAGs first – visited tags and per-iterator slots make
//     multi-parent sub-expressions cheap to walk exactly once
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement core.Handler to add your own operators
//
// Under the hood, everything is organized under four subpackages:
//
//	interval/  — interval type, arithmetic images and inverse rules
//	core/      — Node, operator handlers, Registry (slots/tags/epochs)
//	iterator/  — multi-mode DAG cursor with the 4-stage DFS machine
//	propagate/ — forward/reverse constraint propagation engine
//
// Quick ASCII example:
//
//	    (+)───────┐
//	    / \       │
//	  (*)  z   log(−)
//	  / \      /   \
//	 x   y    x     y
//
//	one DAG, x and y shared by the product and the log argument.
//
// The cmd/exprdag CLI loads a TOML model and reports tightened variable
// boxes; see internal/cli for the command wiring.
package exprdag
