package storage

import (
	"errors"

	"github.com/betazetadev/zork1-web/translate"
)

var f = translate.From

var (
	// Codec errors
	ErrMalformedBlob = errors.New(f("malformed stored blob"))
)
