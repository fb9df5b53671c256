package classical_test

import (
	"testing"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/search/eval/classical"
)

func BenchmarkAccumulate(b *testing.B) {
	evaluator := classical.EfficientlyUpdatable{}
	evaluator.Board = board.NewBoard(board.StartFEN)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		evaluator.Accumulate(piece.White)
	}
}
