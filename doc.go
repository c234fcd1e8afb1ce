/*
Package chessgen implements legal chess move generation.

Given a [Position], [GenerateMoves] enumerates every legal move the side to
move may make under the rules of standard chess, including castling,
en-passant, promotions, and pin/check constraints. The package does not
evaluate positions, search, or maintain any move-history state; each call to
[Position.MakeMove] produces a new position value from the previous one.

Call [InitAttackTables] once, before the first position is constructed or
generated against, to populate the package's precomputed attack tables.
*/
package chessgen
