package domain

type Token int

const (
	Empty     Token = 0
	PlayerOne Token = 1
	PlayerTwo Token = 2
)

func (t Token) String() string {
	switch t {
	case Empty:
		return "empty"
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	}
	return "unknown"
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn      Error = "invalid column"
	ErrColumnFull         Error = "column is full"
	ErrOutOfRange         Error = "position out of range"
	ErrUnknownStartPolicy Error = "unknown start policy"
)
