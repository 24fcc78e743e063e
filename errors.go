package main

import "errors"

var (
	// ErrScan is returned when a source file cannot be walked or read.
	// A partial scan would report used keys as unused, so it is fatal.
	ErrScan = errors.New("scanning sources")
	// ErrLoad is returned when a definition file cannot be read or parsed.
	ErrLoad = errors.New("loading definitions")
	// ErrWrite is returned when a definition file cannot be written.
	ErrWrite = errors.New("writing definitions")
	// ErrConfig is returned for invalid configuration values.
	ErrConfig = errors.New("invalid configuration")

	// errDeclined signals that the user answered no to a confirmation.
	errDeclined = errors.New("declined")
)
