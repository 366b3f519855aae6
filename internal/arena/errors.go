package arena

import "errors"

// Level construction errors.
var (
	ErrInvalidGrid  = errors.New("arena: invalid grid dimensions")
	ErrOutsideGrid  = errors.New("arena: cell outside grid")
	ErrCellOccupied = errors.New("arena: cell already holds a brick")
	ErrUnknownBrick = errors.New("arena: unknown brick")
	ErrOrphanLock   = errors.New("arena: locked brick has no master")
)
