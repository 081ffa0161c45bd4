package ytdl

import "strings"

// Arg is one downloader flag, optionally paired with a value.
//
// Flags are not validated; the downloader decides what is legal.
type Arg struct {
	flag     string
	value    string
	hasValue bool
}

// NewArg returns a flag that takes no value, e.g. "--add-metadata".
func NewArg(flag string) Arg {
	return Arg{flag: flag}
}

// NewArgWithValue returns a flag paired with a value, e.g. "--cookies" "/path/to/cookies".
func NewArgWithValue(flag, value string) Arg {
	return Arg{flag: flag, value: value, hasValue: true}
}

// ParseArg is the inverse of String: the text before the first space is the
// flag, anything after it is the value. Blank input returns ErrEmptyFlag.
func ParseArg(s string) (Arg, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Arg{}, ErrEmptyFlag
	}
	flag, value, found := strings.Cut(s, " ")
	if !found {
		return NewArg(flag), nil
	}
	return NewArgWithValue(flag, strings.TrimSpace(value)), nil
}

// Flag returns the flag.
func (a Arg) Flag() string {
	return a.flag
}

// Value returns the value and whether one was set.
func (a Arg) Value() (string, bool) {
	return a.value, a.hasValue
}

// String renders the argument as "flag" or "flag value".
func (a Arg) String() string {
	if !a.hasValue {
		return a.flag
	}
	return a.flag + " " + a.value
}

// argv returns the argument as process arguments. The value is always its
// own token, spaces included.
func (a Arg) argv() []string {
	if !a.hasValue {
		return []string{a.flag}
	}
	return []string{a.flag, a.value}
}
