// Package strassen multiplies large square matrices with Strassen's
// divide-and-conquer algorithm over a partitioned, distributable matrix
// representation.
//
// The engine recursively splits both operands into quadrants, computes the
// seven Strassen intermediate products from fixed quadrant combinations,
// and reassembles the four result quadrants, falling back to classical
// multiplication once block size drops to a configurable threshold. Matrix
// data is reached only through the Matrix handle and Backend interfaces,
// so the same recursion runs unchanged against in-process dense storage or
// a NATS JetStream KV substrate.
//
// # Quick Start
//
// Basic usage with the in-process backend and default settings:
//
//	import (
//	    strassen "github.com/bhavya-boda/Large-Scale-Matrix-Multiplication"
//	    "github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/backend/dense"
//	)
//
//	be := dense.New()
//	engine, err := strassen.New(&strassen.Config{BaseCaseSize: 64}, be)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a, _ := be.Distribute(ctx, dataA)
//	b, _ := be.Distribute(ctx, dataB)
//	c, err := engine.Multiply(ctx, a, b, n)
//
// # Key Properties
//
//   - Seven-way fan-out: the recursive subproblems at each level are
//     independent and run concurrently, bounded by Config.MaxParallel
//   - Immutable handles: no component mutates a handle it did not just
//     create, so concurrent reads need no locking discipline
//   - Fail-fast shapes: every shape violation surfaces as a ShapeError
//     propagated unchanged to the top-level caller, never coerced
//   - Backend-owned materialization: how eagerly intermediate handles
//     collect to local memory is a backend concern, not the engine's
//
// # Inputs
//
// Multiply expects both operands square with side length equal to the
// size argument. Power-of-two sides halve cleanly down to the base case;
// other sizes fail with a ShapeError as soon as an odd side reaches a
// partition step. Callers needing other sizes pad beforehand.
//
// See the examples/ directory for complete working examples.
package strassen
