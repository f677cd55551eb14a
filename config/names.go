package config

import (
	"errors"
	"strings"
	"unicode"
)

// characters not allowed in file names by at least one of supported platforms
const reservedChars = `<>:"/\|?*`

// device names Windows would not let us create, with or without extension
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// ErrBadFileName is returned when nothing usable is left of the name.
var ErrBadFileName = errors.New("file name is empty after cleaning")

// CleanFileName makes diagram file name portable. Result is the same on every
// platform, so generated files could be shared between them.
func CleanFileName(in string) (string, error) {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(reservedChars, sym) {
			return -1
		}
		return sym
	}, in)
	// no hidden files, no trailing dots or spaces (Windows drops them)
	out = strings.TrimRight(strings.TrimLeft(out, ". "), ". ")
	if len(out) == 0 {
		return "", ErrBadFileName
	}
	base, _, _ := strings.Cut(out, ".")
	if reservedNames[strings.ToUpper(strings.TrimSpace(base))] {
		out = "_" + out
	}
	return out, nil
}
