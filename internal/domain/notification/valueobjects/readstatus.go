package valueobjects

import "fmt"

type ReadStatus string

const (
	ReadStatusUnread ReadStatus = "unread"
	ReadStatusRead   ReadStatus = "read"
)

func (s ReadStatus) String() string {
	return string(s)
}

func (s ReadStatus) IsValid() bool {
	return s == ReadStatusUnread || s == ReadStatusRead
}

func (s ReadStatus) IsRead() bool {
	return s == ReadStatusRead
}

func (s ReadStatus) IsUnread() bool {
	return s == ReadStatusUnread
}

func NewReadStatus(s string) (ReadStatus, error) {
	rs := ReadStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid read status: %s", s)
	}
	return rs, nil
}
