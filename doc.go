// Package labyrinth generates and solves rectangular mazes.
//
// A maze of h×w cells lives in a (2h+1)×(2w+1) table: logical cells sit at
// odd row and odd column, the positions between them are joints, and the
// outer ring is a permanent border. Generators carve joints until every cell
// is connected to every other by exactly one route.
//
// Packages, leaves first:
//
//	disjoint/        union-find with union by size and path compression
//	grid/            the cell table, neighbor queries and the text codec
//	carve/           depth-first, Kruskal and binary-tree generators
//	solve/           backtracking route finder with explicit found/not-found result
//	mazefile/        maze files on disk
//	archive/         Badger-backed maze archive keyed by UUID
//	config/          MAZE_* environment and .env settings
//	api/             gin HTTP surface over carve, solve and archive
//	cmd/mazegen/     interactive and one-shot command line, plus "serve"
//
// Quick example (ASCII symbols):
//
//	#########
//	#S..#   #
//	###.# ###
//	#  ....F#
//	#########
//
// Everything in the core is synchronous and draws randomness from an
// injected *rand.Rand, so a seed reproduces a maze exactly.
package labyrinth
