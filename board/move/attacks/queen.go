package attacks

import (
	"laptudirm.com/x/rixen/board/bitboard"
	"laptudirm.com/x/rixen/board/square"
)

func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
