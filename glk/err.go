package glk

import (
	"errors"

	"github.com/betazetadev/zork1-web/translate"
)

var f = translate.From

var (
	// Stream errors
	ErrNoFileref = errors.New(f("no file reference"))
)
