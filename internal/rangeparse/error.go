package rangeparse

var (
	ErrSyntax   = &ParseError{"invalid range syntax"}
	ErrOverflow = &ParseError{"value out of range"}
)

type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Is(target error) bool {
	if targetErr, ok := target.(*ParseError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
