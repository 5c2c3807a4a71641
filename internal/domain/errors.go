package domain

import "errors"

// ErrRange marks a value outside its declared domain (month not in
// 1..12, correction not in [-2, 2], and so on). Validation failures
// wrap it so callers can test with errors.Is.
var ErrRange = errors.New("value out of range")

// ErrShift marks a time shift that is not a finite number of seconds.
var ErrShift = errors.New("shift must be a finite number of seconds")
