package db

// Op constants map to Redis command names for error context. The badger
// driver reuses them for the equivalent operations.
const (
	OpDel    = "DEL"
	OpHGet   = "HGETALL"
	OpHSet   = "HSET"
	OpExists = "EXISTS"
	OpLPush  = "RPUSH"
	OpLRange = "LRANGE"
	OpPing   = "PING"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
