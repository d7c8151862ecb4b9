package config

import "errors"

var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrUnknownHandout = errors.New("unknown handout format")
)
