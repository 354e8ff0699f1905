package game

import "fmt"

// Code is a machine-readable rule violation code.
type Code string

const (
	CodeOutOfBounds            Code = "OUT_OF_BOUNDS"
	CodeCellOccupied           Code = "CELL_OCCUPIED"
	CodeNotAdjacentOrValidJump Code = "NOT_ADJACENT_OR_VALID_JUMP"
	CodeWallInventoryExhausted Code = "WALL_INVENTORY_EXHAUSTED"
	CodeWallOverlap            Code = "WALL_OVERLAP"
	CodeWallWouldBlockPath     Code = "WALL_WOULD_BLOCK_PATH"
	CodeNotCurrentPlayer       Code = "NOT_CURRENT_PLAYER"
	CodeGameAlreadyTerminal    Code = "GAME_ALREADY_TERMINAL"
	CodeUnknownAction          Code = "UNKNOWN_ACTION"
)

// RuleViolation is returned for any action outside the legal set. The state
// the action was checked against is left untouched.
type RuleViolation struct {
	Code    Code
	Message string
}

func (v *RuleViolation) Error() string {
	if v.Message == "" {
		return string(v.Code)
	}
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Is matches violations by code, so errors.Is(err, ErrWallOverlap) holds for
// any wall overlap regardless of message.
func (v *RuleViolation) Is(target error) bool {
	t, ok := target.(*RuleViolation)
	return ok && t.Code == v.Code
}

var (
	ErrOutOfBounds            = &RuleViolation{Code: CodeOutOfBounds}
	ErrCellOccupied           = &RuleViolation{Code: CodeCellOccupied}
	ErrNotAdjacentOrValidJump = &RuleViolation{Code: CodeNotAdjacentOrValidJump}
	ErrWallInventoryExhausted = &RuleViolation{Code: CodeWallInventoryExhausted}
	ErrWallOverlap            = &RuleViolation{Code: CodeWallOverlap}
	ErrWallWouldBlockPath     = &RuleViolation{Code: CodeWallWouldBlockPath}
	ErrNotCurrentPlayer       = &RuleViolation{Code: CodeNotCurrentPlayer}
	ErrGameAlreadyTerminal    = &RuleViolation{Code: CodeGameAlreadyTerminal}
	ErrUnknownAction          = &RuleViolation{Code: CodeUnknownAction}
)

func violation(code Code, format string, args ...any) *RuleViolation {
	return &RuleViolation{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ConfigError reports invalid game construction parameters.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid game config: %s=%d: %s", e.Field, e.Value, e.Reason)
}
