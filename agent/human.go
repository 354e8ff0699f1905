package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"quoridor/game"
)

// Human prompts on out and reads a move per line from in: either a legal
// move ID from the snapshot ("M3") or an action in JSON.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{name: name, in: bufio.NewScanner(in), out: out}
}

// human[:name]
func newHumanFromArgs(args []string) (Agent, error) {
	name := "human"
	if len(args) > 0 && args[0] != "" {
		name = args[0]
	}
	return NewHuman(name, os.Stdin, os.Stdout), nil
}

func (h *Human) Name() string {
	return h.name
}

// Decide blocks on input. An unparsable line is returned as an error so the
// caller can ask again.
func (h *Human) Decide(ctx context.Context, snap game.Snapshot) (game.Action, error) {
	if len(snap.Legal) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	fmt.Fprint(h.out, snap.String())
	for i, a := range snap.Legal {
		fmt.Fprintf(h.out, "  M%d: %s\n", i, a)
	}
	fmt.Fprintf(h.out, "%s (player %d) > ", h.name, snap.CurrentPlayer)

	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return game.Action{}, fmt.Errorf("failed to read move: %w", err)
		}
		return game.Action{}, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}

	line := strings.TrimSpace(h.in.Text())
	if a, ok := snap.LegalByID(strings.ToUpper(line)); ok {
		return a, nil
	}

	var a game.Action
	if err := json.Unmarshal([]byte(line), &a); err != nil {
		return game.Action{}, fmt.Errorf("unrecognised move %q", line)
	}
	// The player may be left out; it defaults to the player to move.
	var seat struct {
		Player *int `json:"player"`
	}
	if err := json.Unmarshal([]byte(line), &seat); err == nil && seat.Player == nil {
		a.Player = snap.CurrentPlayer
	}
	return a, nil
}
