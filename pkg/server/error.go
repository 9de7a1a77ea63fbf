package server

import (
	"errors"
	"fmt"
)

// Error error dari service layer. code dipakai handler rest buat nentuin http status.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// code error. handler rest memetakan code ke http status lewat getStatusCode.
var (
	// ErrInternalServerError network belum siap atau error tak terduga di search.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound stasiun yang diminta tidak ada di network.
	ErrNotFound = errors.New("station not found")
	// ErrBadParamInput algorithm, mode atau body request tidak valid.
	ErrBadParamInput = errors.New("invalid request parameter")
)

// MessageInternalServerError pesan ke client kalau detail error tidak boleh dibocorkan.
const MessageInternalServerError = "internal server error"
