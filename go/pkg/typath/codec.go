package typath

// MarshalText encodes the canonical string, so any text-based codec
// (encoding/json included) carries exactly the canonical form. The empty
// relative directory encodes as the empty string, which is its one valid
// spelling for the parser.
func (p Path[B, K]) MarshalText() ([]byte, error) {
	return []byte(p.path), nil
}

// UnmarshalText parses the input with the parser matching the receiver's
// base and kind. Input that does not parse fails the whole decode; no
// default is substituted.
func (p *Path[B, K]) UnmarshalText(b []byte) error {
	s, err := normalize(string(b), !isRel[B](), isDir[K]())
	if err != nil {
		return err
	}
	p.path = s
	return nil
}
