package vm

import (
	"errors"

	"github.com/betazetadev/zork1-web/translate"
)

var f = translate.From

var (
	// Script errors
	ErrNoStart  = errors.New(f("script does not define start()"))
	ErrNoResume = errors.New(f("script does not define resume(line)"))

	// Builtin errors
	ErrBadSaveValue = errors.New(f("save values must be non-negative integers"))
)
