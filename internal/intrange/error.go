package intrange

var (
	ErrInvalidRange = &RangeError{"invalid range"}
	ErrNotMergeable = &RangeError{"ranges are neither overlapping nor adjacent"}
)

type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string {
	return e.Msg
}

func (e *RangeError) Is(target error) bool {
	if targetErr, ok := target.(*RangeError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
