package estimate

import "errors"

var (
	ErrUnknownProjectType = errors.New("unknown project type")
	ErrUnknownGrade       = errors.New("unknown grade")
	ErrUnknownExtra       = errors.New("unknown extra option")
	ErrAreaTooSmall       = errors.New("area is below the minimum")
)
