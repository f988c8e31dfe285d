// Package console drives a board through a line-oriented text protocol.
//
// Each input line is a command followed by arguments. Output lines are
// plain text; failures are reported as "error: ..." and never end the
// session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hailam/ageofchess/internal/board"
	"github.com/hailam/ageofchess/internal/config"
	"github.com/hailam/ageofchess/internal/logger"
	"github.com/hailam/ageofchess/internal/mapgen"
	"github.com/hailam/ageofchess/internal/storage"
)

// Store is the persistence the console needs. *storage.Storage satisfies it.
type Store interface {
	SaveBoard(b *board.Board, mirrored bool) (string, error)
	LoadBoard(id string) (*storage.SavedBoard, *board.Board, error)
	ListBoards() ([]storage.BoardInfo, error)
	DeleteBoard(id string) error
}

// errUsage marks bad command arguments.
var errUsage = errors.New("usage")

// Console implements the command loop.
type Console struct {
	settings config.Settings
	gen      *mapgen.Generator
	store    Store

	board    *board.Board
	mirrored bool
	catalog  []board.PieceCost

	out io.Writer
	log *logrus.Entry
}

// New creates a console with an empty board of the configured size.
// store may be nil, which disables save, load and list.
func New(settings config.Settings, store Store, out io.Writer) *Console {
	c := &Console{
		settings: settings,
		gen:      mapgen.New(settings.MapSeed),
		store:    store,
		mirrored: settings.MapKind == config.MapMirrored,
		catalog:  board.DefaultCatalog,
		out:      out,
		log:      logger.Component("console"),
	}
	c.setBoard(board.NewEmptyBoard(settings.BoardSize))
	return c
}

// Board returns the current board.
func (c *Console) Board() *board.Board {
	return c.board
}

func (c *Console) setBoard(b *board.Board) {
	b.WhiteGold = c.settings.WhiteGold
	b.BlackGold = c.settings.BlackGold
	c.board = b
}

// Run reads commands from r until EOF or "quit".
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "quit" {
			return nil
		}
		c.log.WithField("cmd", cmd).Debug("command")
		if err := c.Execute(cmd, args); err != nil {
			c.log.WithError(err).WithField("cmd", cmd).Debug("command failed")
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Execute runs a single command.
func (c *Console) Execute(cmd string, args []string) error {
	switch cmd {
	case "new":
		return c.handleNew(args)
	case "seed":
		return c.handleSeed(args)
	case "d":
		fmt.Fprint(c.out, c.board.String())
	case "moves":
		return c.handleMoves(args)
	case "attacked":
		return c.handleAttacked(args)
	case "check":
		fmt.Fprintf(c.out, "check white %v black %v\n", c.board.InCheck(true), c.board.InCheck(false))
	case "gold":
		fmt.Fprintf(c.out, "gold white %d black %d active %d mines %d %d\n",
			c.board.WhiteGold, c.board.BlackGold, c.board.ActivePlayerGold(),
			c.board.OwnedMineCount(true), c.board.OwnedMineCount(false))
	case "setgold":
		return c.handleSetGold(args)
	case "afford":
		c.printPieceTypes(c.board.AffordablePieceTypes(c.catalog))
	case "place":
		return c.handlePlace(args)
	case "clear":
		return c.handleClear(args)
	case "move":
		return c.handleMove(args)
	case "turn":
		c.board.WhiteIsActive = !c.board.WhiteIsActive
		fmt.Fprintf(c.out, "turn %s\n", c.board.ActiveSide())
	case "hash":
		fmt.Fprintf(c.out, "hash %016x\n", c.board.Hash())
	case "seedof":
		fmt.Fprintln(c.out, board.EncodeSeed(c.board, c.mirrored))
	case "save":
		return c.handleSave()
	case "load":
		return c.handleLoad(args)
	case "list":
		return c.handleList()
	case "delete":
		return c.handleDelete(args)
	case "help":
		c.printHelp()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// handleNew generates a map.
// Formats:
//   - new
//   - new 10
//   - new 10 random
func (c *Console) handleNew(args []string) error {
	size := c.settings.BoardSize
	mirrored := c.settings.MapKind == config.MapMirrored

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: new [size] [mirrored|random]", errUsage)
		}
		size = n
	}
	if len(args) > 1 {
		switch args[1] {
		case config.MapMirrored:
			mirrored = true
		case config.MapRandom:
			mirrored = false
		default:
			return fmt.Errorf("%w: new [size] [mirrored|random]", errUsage)
		}
	}

	var m *mapgen.Map
	var err error
	if mirrored {
		m, err = c.gen.GenerateMirrored(size)
	} else {
		m, err = c.gen.GenerateFullRandom(size)
	}
	if err != nil {
		return err
	}

	c.setBoard(m.Board)
	c.mirrored = mirrored
	fmt.Fprintf(c.out, "seed %s\n", m.Seed)
	return nil
}

func (c *Console) handleSeed(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: seed <seed>", errUsage)
	}
	b, err := board.DecodeSeed(args[0])
	if err != nil {
		return err
	}
	c.setBoard(b)
	c.mirrored = strings.HasPrefix(args[0], board.SeedMirrored+"_")
	fmt.Fprintln(c.out, "ok")
	return nil
}

func (c *Console) square(name string) (*board.Square, error) {
	return c.board.SquareByName(name)
}

func parseSide(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return true, nil
	case "b", "black":
		return false, nil
	default:
		return false, fmt.Errorf("%w: side %q, want w or b", errUsage, s)
	}
}

// handleMoves lists the moves of the piece on a square, or of every piece
// of the side to move.
func (c *Console) handleMoves(args []string) error {
	var moves []board.Move
	switch len(args) {
	case 0:
		moves = c.board.LegalMoves()
	case 1:
		sq, err := c.square(args[0])
		if err != nil {
			return err
		}
		if !sq.HasPiece() {
			return fmt.Errorf("no piece on %s", sq.Name())
		}
		moves = c.board.LegalMovesFor(sq)
	default:
		return fmt.Errorf("%w: moves [square]", errUsage)
	}

	if len(moves) == 0 {
		fmt.Fprintln(c.out, "moves (none)")
		return nil
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.Notation(c.board)
	}
	fmt.Fprintf(c.out, "moves %s\n", strings.Join(names, " "))
	return nil
}

func (c *Console) handleAttacked(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: attacked <square> <w|b>", errUsage)
	}
	sq, err := c.square(args[0])
	if err != nil {
		return err
	}
	white, err := parseSide(args[1])
	if err != nil {
		return err
	}

	attackers := c.board.Attackers(sq, white)
	names := make([]string, len(attackers))
	for i, a := range attackers {
		names[i] = a.Name()
	}
	fmt.Fprintf(c.out, "attacked %v %s\n", c.board.IsSquareCapturable(sq, white), strings.Join(names, " "))
	return nil
}

func (c *Console) handleSetGold(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: setgold <w|b> <amount>", errUsage)
	}
	white, err := parseSide(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: gold must be a non-negative integer", errUsage)
	}
	if white {
		c.board.WhiteGold = n
	} else {
		c.board.BlackGold = n
	}
	fmt.Fprintln(c.out, "ok")
	return nil
}

func (c *Console) printPieceTypes(types []board.PieceType) {
	if len(types) == 0 {
		fmt.Fprintln(c.out, "afford (none)")
		return
	}
	names := make([]string, len(types))
	for i, pt := range types {
		cost, _ := board.CostOf(c.catalog, pt)
		names[i] = fmt.Sprintf("%s:%d", strings.ToLower(pt.String()), cost)
	}
	fmt.Fprintf(c.out, "afford %s\n", strings.Join(names, " "))
}

// handlePlace puts a piece on a square without charging gold.
// Format: place <square> <piece letter or name> <w|b>
func (c *Console) handlePlace(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: place <square> <piece> <w|b>", errUsage)
	}
	sq, err := c.square(args[0])
	if err != nil {
		return err
	}
	pt := parsePieceType(args[1])
	if pt == board.NoPieceType {
		return fmt.Errorf("%w: unknown piece %q", errUsage, args[1])
	}
	white, err := parseSide(args[2])
	if err != nil {
		return err
	}
	sq.SetPiece(pt, white)
	fmt.Fprintln(c.out, "ok")
	return nil
}

func parsePieceType(s string) board.PieceType {
	if len(s) == 1 {
		return board.PieceTypeFromChar(s[0])
	}
	for _, pt := range board.PieceTypes {
		if strings.EqualFold(pt.String(), s) {
			return pt
		}
	}
	return board.NoPieceType
}

func (c *Console) handleClear(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: clear <square>", errUsage)
	}
	sq, err := c.square(args[0])
	if err != nil {
		return err
	}
	sq.ClearPiece()
	fmt.Fprintln(c.out, "ok")
	return nil
}

// handleMove plays a legal move for the side to move and passes the turn.
// Formats:
//   - move a1 a2
//   - move a1-a2
func (c *Console) handleMove(args []string) error {
	var m board.Move
	var err error
	switch len(args) {
	case 1:
		m, err = board.ParseMove(args[0], c.board)
	case 2:
		m, err = board.ParseMove(args[0]+"-"+args[1], c.board)
	default:
		return fmt.Errorf("%w: move <from> <to>", errUsage)
	}
	if err != nil {
		return err
	}

	from := c.board.Square(m.SourceID)
	if !from.HasPiece() {
		return fmt.Errorf("%w: no piece on %s", board.ErrInvalidMove, from.Name())
	}
	if from.PieceIsWhite != c.board.WhiteIsActive {
		return fmt.Errorf("%w: %s is not to move", board.ErrInvalidMove, from.PieceSide())
	}
	legal := false
	for _, lm := range c.board.LegalMovesFor(from) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s", board.ErrInvalidMove, m.Notation(c.board))
	}

	notation := m.Notation(c.board)
	if err := c.board.ApplyMove(m); err != nil {
		return err
	}
	c.board.WhiteIsActive = !c.board.WhiteIsActive
	fmt.Fprintf(c.out, "played %s\n", notation)
	return nil
}

func (c *Console) handleSave() error {
	if c.store == nil {
		return errors.New("storage disabled")
	}
	id, err := c.store.SaveBoard(c.board, c.mirrored)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %s\n", id)
	return nil
}

func (c *Console) handleLoad(args []string) error {
	if c.store == nil {
		return errors.New("storage disabled")
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: load <id>", errUsage)
	}
	rec, b, err := c.store.LoadBoard(args[0])
	if err != nil {
		return err
	}
	// Saved gold and turn win over the configured starting values.
	c.board = b
	c.mirrored = strings.HasPrefix(rec.Seed, board.SeedMirrored+"_")
	fmt.Fprintf(c.out, "loaded %s\n", rec.ID)
	return nil
}

func (c *Console) handleList() error {
	if c.store == nil {
		return errors.New("storage disabled")
	}
	list, err := c.store.ListBoards()
	if err != nil {
		return err
	}
	for _, info := range list {
		fmt.Fprintf(c.out, "board %s %dx%d %s %s\n", info.ID, info.Size, info.Size,
			info.SavedAt.Format("2006-01-02T15:04:05Z07:00"), info.Seed)
	}
	fmt.Fprintf(c.out, "boards %d\n", len(list))
	return nil
}

func (c *Console) handleDelete(args []string) error {
	if c.store == nil {
		return errors.New("storage disabled")
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}
	if err := c.store.DeleteBoard(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "deleted %s\n", args[0])
	return nil
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  new [size] [mirrored|random]   generate a map
  seed <seed>                    load a map seed
  seedof                         print the current map seed
  d                              show the board
  moves [square]                 list legal moves
  attacked <square> <w|b>        is the square capturable by that side
  check                          check status of both kings
  gold                           gold balances and owned mines
  setgold <w|b> <n>              set a gold balance
  afford                         piece types (and prices) the side to move can buy
  place <square> <piece> <w|b>   put a piece on a square
  clear <square>                 remove a piece
  move <from> <to>               play a move and pass the turn
  turn                           pass the turn
  hash                           board hash
  save | load <id> | list        persistence
  delete <id>                    remove a saved board
  quit
`)
}
