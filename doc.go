/*
Package seqkit provides functional sequence operators, container
constructors, precondition guards and scope combinators for Go.

# Overview

Seqkit treats an ordered collection as a value you transform rather than a
slice you loop over. Every operator returns a new container and never
mutates its input, so pipelines read top to bottom:

	short := seqkit.ListOf("Seoul", "Tokyo", "Mountain View").
	    Filter(func(c string) bool { return len(c) <= 5 }).
	    JoinToString()
	// "Seoul, Tokyo"

# Key Benefits

  - Exact evaluation order: every operator walks its input once, front to back
  - Exact failure conditions: empty inputs produce typed errors, never panics
  - Deterministic iteration: sets and mappings carry an explicit Ordering
  - No hidden state: nothing is global, nothing is shared between calls

# Core Concepts

Containers: List is eager, Seq is lazy.

	cities := seqkit.ListOf("Seoul", "Tokyo")      // eager, random access
	numbers := seqkit.Range(0, 10)                 // lazy, generated on demand
	seqkit.SetOf("seoul", "tokyo", "seoul")        // [seoul, tokyo]
	seqkit.SortedMappingOf(seqkit.To("B", 2), seqkit.To("A", 1))

Methods and functions: operators that keep the element type are methods
and chain; operators that change it are package functions.

	seqkit.Map(cities, strings.ToUpper)
	seqkit.ZipWith(codes, names, func(c, n string) string { return c + " (" + n + ")" })
	seqkit.GroupBy(cities, func(c string) int { return len(c) })

Absence: inputs that may be missing are pointers, outputs that may be
missing are comma-ok pairs.

	seqkit.ListOfNotNil(&seoul, nil, &tokyo)     // [Seoul, Tokyo]
	city, ok := cities.FirstOrNone(isEmpty)       // "", false

# Available Operators

Transformation:
  - Map, MapIndexed, MapNotNone, FlatMap, GroupBy, Associate

Filtering:
  - Filter, FilterNot, FilterIndexed, Partition, Distinct, DistinctBy
  - Take, TakeLast, TakeWhile, TakeLastWhile
  - Drop, DropLast, DropWhile, DropLastWhile

Queries:
  - First, Last, FirstWhere, LastWhere, FirstOrNone, LastOrNone

Combination and aggregation:
  - Zip, ZipWith, JoinToString, Count, CountWhere
  - Reduce, ReduceRight, Fold, FoldRight
  - Any, AnyWhere, None, NoneWhere, All
  - Min, Max, MinBy, MaxBy, Sum, Average

# Errors

Failures are typed so callers can tell them apart with errors.As:

  - IllegalArgumentError: Require, RequireNotNil, bad sizes and steps
  - IllegalStateError: Check, CheckNotNil, Fail
  - NotImplementedError: TODO
  - NoSuchElementError: First, Last, Min, Max, Average on empty input
  - UnsupportedOperationError: Reduce and ReduceRight on empty input

# Scope Combinators

Let, Apply, With, Run and Also pass a value through a block without an
intermediate binding. They never recover panics or inspect errors:

	params := seqkit.Apply(&Params{}, func(p *Params) {
	    p.Weight = 1
	})

# Package Import

	import "github.com/Pure-Company/seqkit"
*/
package seqkit
