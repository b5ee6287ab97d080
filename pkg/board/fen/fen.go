// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kourosh37/chesscore/pkg/board"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses the standard six-field FEN format. It fails if any field is malformed, if
// a rank does not sum to exactly 8 files, or if the board does not exactly fill 8 ranks.
// The halfmove and fullmove fields are optional, defaulting to 0 and 1 respectively.
func Decode(s string) (*board.Position, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("fen: invalid number of fields in %q", s)
	}

	placements, err := decodeBoard(fields[0])
	if err != nil {
		return nil, err
	}

	side, ok := decodeSide(fields[1])
	if !ok {
		return nil, fmt.Errorf("fen: invalid side to move in %q", s)
	}

	castling, ok := decodeCastling(fields[2])
	if !ok {
		return nil, fmt.Errorf("fen: invalid castling rights in %q", s)
	}

	ep := board.NoSquare
	if fields[3] != "-" {
		sq, ok := board.ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("fen: invalid en-passant square in %q", s)
		}
		ep = sq
	}

	halfmove := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: invalid halfmove clock in %q", s)
		}
		halfmove = n
	}

	fullmove := 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: invalid fullmove number in %q", s)
		}
		fullmove = n
	}

	return board.FromPlacements(placements, side, castling, ep, halfmove, fullmove), nil
}

func decodeBoard(field string) ([]board.Placement, error) {
	var placements []board.Placement

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: board must have 8 ranks, got %v in %q", len(ranks), field)
	}

	for i, rank := range ranks {
		r := board.Rank(7 - i) // ranks are listed rank 8 down to rank 1
		f := board.File(0)

		for _, ch := range []byte(rank) {
			switch {
			case ch >= '1' && ch <= '8':
				f += board.File(ch - '0')
			default:
				side := board.White
				c := ch
				if ch >= 'a' && ch <= 'z' {
					side = board.Black
					c = ch - ('a' - 'A')
				}
				piece, ok := board.ParsePieceKind(c)
				if !ok || f >= board.NumFiles {
					return nil, fmt.Errorf("fen: invalid piece %q in %q", string(ch), field)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(f, r),
					Side:   side,
					Piece:  piece,
				})
				f++
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("fen: rank %q does not sum to 8 files", rank)
		}
	}
	return placements, nil
}

func decodeSide(field string) (board.Side, bool) {
	switch field {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func decodeCastling(field string) (board.Castling, bool) {
	if field == "-" {
		return board.NoCastling, true
	}
	var c board.Castling
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			c |= board.WhiteKingside
		case 'Q':
			c |= board.WhiteQueenside
		case 'k':
			c |= board.BlackKingside
		case 'q':
			c |= board.BlackQueenside
		default:
			return 0, false
		}
	}
	return c, true
}

// Encode renders a position in FEN. Round-tripping is not required of the core, but Encode
// always produces a FEN Decode can parse back.
func Encode(p *board.Position) string {
	var sb strings.Builder

	for r := board.NumRanks - 1; r >= 0; r-- {
		blanks := 0
		for f := board.File(0); f < board.NumFiles; f++ {
			side, piece, ok := p.PieceAt(board.NewSquare(f, r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(encodePiece(side, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if p.EnPassant() != board.NoSquare {
		ep = p.EnPassant().String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), p.SideToMove(), p.Castling(), ep, p.HalfmoveClock(), p.FullmoveNumber())
}

func encodePiece(side board.Side, piece board.PieceKind) string {
	s := piece.String()
	if side == board.White {
		return strings.ToUpper(s)
	}
	return s
}
