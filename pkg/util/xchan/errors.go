package xchan

import "errors"

var (
	// ErrClosed 表示通道已关闭，无法继续发送。
	ErrClosed = errors.New("xchan: channel is closed")
)
