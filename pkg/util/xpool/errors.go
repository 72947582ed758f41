package xpool

import "errors"

var (
	// ErrInvalidWorkers 表示 worker 数量无效（必须为正且不超过上限）。
	ErrInvalidWorkers = errors.New("xpool: invalid worker count")

	// ErrPoolClosed 表示 Pool 已开始关闭，不再接受新任务。
	ErrPoolClosed = errors.New("xpool: pool is closed")

	// ErrNilTask 表示提交的任务为 nil。
	ErrNilTask = errors.New("xpool: nil task")

	// ErrNilContext 表示 context 参数为 nil。
	ErrNilContext = errors.New("xpool: nil context")
)
