package bigint

// MarshalText implements encoding.TextMarshaler; values always travel as
// canonical decimal text.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// Set implements pflag.Value so an Int can be bound to a command-line flag.
func (x *Int) Set(s string) error { return x.UnmarshalText([]byte(s)) }

// Type implements pflag.Value.
func (x *Int) Type() string { return "decimal" }
