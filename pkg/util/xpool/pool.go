package xpool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/omeyang/poolkit/pkg/util/xchan"
)

// Task 是提交给 Pool 的一次性工作单元。
// Task 不能依赖提交方 goroutine 的本地状态（它会在任意一个 worker 上执行），
// Pool 保证每个 Task 恰好被调用一次，不重试、不复制。
type Task func()

// message 是队列中流动的消息：普通任务或终止哨兵。
// 两种消息统一按 FIFO 排队，不做类型优先级重排。
type message struct {
	task      Task
	terminate bool
}

// maxWorkers 限制 worker 数量上限，防止误传超大值耗尽调度资源。
const maxWorkers = 65536

// Pool 是固定大小的 worker pool。
// worker 数量在构造时确定，运行期间不扩缩容；
// Pool 独占队列的发送端，全部 worker 共享接收端。
type Pool struct {
	queue   *xchan.Chan[message]
	workers []*worker
	wg      sync.WaitGroup
	log     *slog.Logger
	metrics *poolMetrics

	closed   atomic.Bool
	stopOnce sync.Once
	done     chan struct{}
}

// 编译期确保 Pool 满足关闭契约。
var _ io.Closer = (*Pool)(nil)

// New 创建 Pool 并立即启动 workers 个常驻 worker。
// 返回时所有 worker 已在运行，空闲阻塞等待第一条消息。
// workers <= 0 或超过上限时返回 ErrInvalidWorkers，
// 且保证错误返回前不启动任何 goroutine。
func New(workers int, opts ...Option) (*Pool, error) {
	if workers <= 0 || workers > maxWorkers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if o.name != "" {
		log = log.With("pool", o.name)
	}

	metrics, err := newPoolMetrics(o.meterProvider, o.name)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		queue:   xchan.New[message](),
		workers: make([]*worker, workers),
		log:     log,
		metrics: metrics,
		done:    make(chan struct{}),
	}

	for i := range p.workers {
		w := &worker{id: i, pool: p}
		p.workers[i] = w
		p.wg.Add(1)
		go w.run()
	}
	go func() {
		p.wg.Wait()
		close(p.done)
	}()

	return p, nil
}

// Submit 提交一个任务，由某个空闲 worker 异步执行。
// 队列无界，Submit 永不阻塞；返回 nil 只表示任务已入队（fire-and-forget），
// 执行结果需由任务自身的回传机制传递。
// task 为 nil 时返回 ErrNilTask，Pool 已开始关闭时返回 ErrPoolClosed。
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if p.closed.Load() {
		return ErrPoolClosed
	}
	if err := p.queue.Send(message{task: task}); err != nil {
		// closed 置位与队列关闭之间存在窗口，统一折算为 ErrPoolClosed。
		return ErrPoolClosed
	}
	p.metrics.submitted()
	return nil
}

// Close 优雅关闭 Pool：排空已入队的任务并等待全部 worker 退出。
// 等价于 Shutdown(context.Background())。多次调用安全，后续调用为 no-op。
func (p *Pool) Close() error {
	return p.Shutdown(context.Background())
}

// Shutdown 优雅关闭 Pool：
//  1. 置关闭标记，拒绝新任务提交；
//  2. 按 FIFO 追加每 worker 一个终止哨兵（先于哨兵入队的任务仍会被执行）；
//  3. 关闭队列发送端；
//  4. 等待全部 worker 退出。
//
// ctx 只约束等待阶段：ctx 到期时返回 context 错误，残留 worker
// 仍会在后台继续排空任务直到退出，可通过 Done() 等待最终完成。
// Shutdown 幂等：关闭协议只执行一次，重复调用只会再次等待。
func (p *Pool) Shutdown(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	p.stopOnce.Do(func() {
		p.closed.Store(true)
		// 每个 worker 恰好一个终止哨兵，保证没有 worker 被饿死。
		for range p.workers {
			_ = p.queue.Send(message{terminate: true})
		}
		p.queue.Close()
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done 返回在全部 worker 退出后关闭的 channel。
// 用于 Shutdown 超时返回后等待残留 worker 最终完成。
func (p *Pool) Done() <-chan struct{} {
	return p.done
}

// Workers 返回构造时确定的 worker 数量。
// 注意这是标称容量：panic 退出的 worker 不会被扣除。
func (p *Pool) Workers() int {
	return len(p.workers)
}

// Pending 返回当前仍在队列中等待的消息数量（关闭期间含终止哨兵）。
func (p *Pool) Pending() int {
	return p.queue.Len()
}
