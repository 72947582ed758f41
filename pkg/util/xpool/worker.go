package xpool

import "runtime/debug"

// worker 持有一个常驻 goroutine，循环从共享队列取消息并执行。
// id 仅用于日志与诊断，任务与 worker 之间没有绑定关系。
type worker struct {
	id   int
	pool *Pool
}

// run 是 worker 的主循环：取一条消息（出队期间持有队列锁，
// 执行期间不持有，多个 worker 可并发执行任务），然后按消息类型处理。
// 三种退出路径共享同一条清理逻辑（wg 计数恰好归零一次）：
//   - 收到终止哨兵；
//   - 队列发送端已关闭且缓冲排空（断开信号，视作隐式终止）；
//   - 任务 panic（见 invoke）。
func (w *worker) run() {
	defer w.pool.wg.Done()
	defer w.pool.metrics.workerExited()

	w.pool.log.Debug("xpool: worker started", "worker", w.id)
	for {
		msg, ok := w.pool.queue.Recv()
		if !ok || msg.terminate {
			w.pool.log.Debug("xpool: worker shutting down", "worker", w.id)
			return
		}
		if !w.invoke(msg.task) {
			// panic 的 worker 直接退出，Pool 容量随之减一，不自动补充。
			w.pool.log.Debug("xpool: worker shutting down after panic", "worker", w.id)
			return
		}
	}
}

// invoke 同步执行一个任务，返回任务是否正常完成。
// panic 被捕获并记录堆栈，避免拖垮整个进程；故障不传播到其他任务。
func (w *worker) invoke(task Task) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			w.pool.metrics.panicked()
			w.pool.log.Error("xpool: task panicked",
				"worker", w.id,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	task()
	w.pool.metrics.completed()
	return true
}
