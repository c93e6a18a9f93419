package apperror

import "errors"

var (
	ErrInvalidPlayerNumber = errors.New("invalid player number")
	ErrUnknownMode         = errors.New("unknown presentation mode")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrRoundNotFinished    = errors.New("round is not finished")
)
