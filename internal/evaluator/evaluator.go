//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package evaluator contains the static evaluation function: material,
// piece-square placement, mobility, king safety, pawn structure, piece
// coordination, center control and development, combined as tapered
// (mid-game/end-game) scores and interpolated by the position's phase.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/shogi-engine/internal/config"
	myLogging "github.com/frankkopp/shogi-engine/internal/logging"
	"github.com/frankkopp/shogi-engine/internal/position"
	. "github.com/frankkopp/shogi-engine/internal/types"
)

// Evaluator holds precomputed per-position context for one Evaluate call,
// avoiding repeated lookups of the same position state across evaluation
// terms.
type Evaluator struct {
	log *logging.Logger

	pos       *position.Position
	blackKing Square
	whiteKing Square
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog("evaluator"),
	}
}

// InitEval caches the per-position context a single Evaluate call reuses
// across every term.
func (e *Evaluator) InitEval(p *position.Position) {
	e.pos = p
	e.blackKing = p.KingSquare(Black)
	e.whiteKing = p.KingSquare(White)
}

// Evaluate returns the static evaluation of p from the side-to-move's
// point of view, in centipawns.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)

	var total Score
	if config.Settings.Eval.UseMaterial {
		total.Add(e.material())
	}
	if config.Settings.Eval.UsePST {
		total.Add(e.positional())
	}
	if config.Settings.Eval.UseMobility {
		total.Add(e.mobility())
	}
	if config.Settings.Eval.UseKingSafety {
		total.Add(e.kingSafety())
	}
	if config.Settings.Eval.UsePawnStructure {
		total.Add(e.pawnStructure())
	}
	if config.Settings.Eval.UseCoordination {
		total.Add(e.coordination())
	}
	if config.Settings.Eval.UseCenterControl {
		total.Add(e.centerControl())
	}
	if config.Settings.Eval.UseDevelopment {
		total.Add(e.development())
	}

	value := Interpolate(total, p.Phase())

	// every term so far is computed from Black's perspective (Black - White);
	// flip to the mover's perspective before adding the side-to-move tempo.
	if p.SideToMove() == White {
		value = -value
	}
	value += Value(config.Settings.Eval.Tempo * p.Phase() / PhaseMax)

	return value
}

// material returns the Black-minus-White material balance, board pieces
// plus hand pieces, as a flat (untapered) score.
func (e *Evaluator) material() Score {
	d := e.pos.Material(Black) - e.pos.Material(White)
	return Score{Mg: d, Eg: d}
}

// positional returns the Black-minus-White piece-square balance, already
// split into mid-game/end-game components by the incrementally maintained
// psqMid/psqEnd accumulators.
func (e *Evaluator) positional() Score {
	return Score{
		Mg: e.pos.PsqMidValue(Black) - e.pos.PsqMidValue(White),
		Eg: e.pos.PsqEndValue(Black) - e.pos.PsqEndValue(White),
	}
}
