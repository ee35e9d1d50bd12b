// Package errs defines the sentinel errors shared by gutil packages.
//
// Errors returned by gutil functions wrap one of these values, so callers
// should test for them with errors.Is rather than comparing messages.
// Precondition violations (buffer overflow, non-positive rate) are reported
// by panicking with an error that wraps the matching sentinel.
package errs

import "errors"

// Buffer and cursor errors.
var (
	// ErrBufferOverflow indicates a write would run past the end of the buffer.
	ErrBufferOverflow = errors.New("buffer overflow")
	// ErrBufferUnderflow indicates a read would run past the end of the buffer.
	ErrBufferUnderflow = errors.New("buffer underflow")
	// ErrNegativeCursor indicates a cursor below zero was supplied.
	ErrNegativeCursor = errors.New("negative cursor")
)

// Frame errors.
var (
	ErrFrameTooShort       = errors.New("frame too short")
	ErrInvalidFrameMagic   = errors.New("invalid frame magic")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrFrameLengthMismatch = errors.New("frame payload length mismatch")
	ErrChecksumMismatch    = errors.New("frame checksum mismatch")
	ErrFrameFinished       = errors.New("frame already finished")
	// ErrPayloadTooLarge indicates a payload that would decode past compress.MaxDecodedSize.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// ErrInvalidRate indicates a scheduling rate that is not a positive number of Hz.
var ErrInvalidRate = errors.New("invalid rate")
