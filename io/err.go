package io

import (
	"errors"

	"github.com/ezrec/na32/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console closed"))
)
