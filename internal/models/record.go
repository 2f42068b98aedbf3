package models

// Record is implemented by every element of a timestamp-ordered JSON
// collection (chats, folders).
type Record[T any] interface {
	RecordID() string
	RecordTimestamp() int64
	Normalize() T
	Clone() T
}
