package xchan

import (
	"sync"

	"github.com/eapache/queue"
)

// Chan 是无界的多生产者/多消费者 FIFO 通道。
// 所有接收者共享同一个缓冲，出队在互斥锁内完成，
// 保证每个值恰好被一个接收者取得，既不重复也不丢失。
type Chan[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	buf      *queue.Queue
	closed   bool
}

// New 创建一个空的未关闭通道。
func New[T any]() *Chan[T] {
	c := &Chan[T]{buf: queue.New()}
	c.notEmpty = sync.NewCond(&c.mu)
	return c
}

// Send 将 v 入队并唤醒一个阻塞中的接收者。
// 缓冲无界，Send 永不阻塞；通道已关闭时返回 ErrClosed。
func (c *Chan[T]) Send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.buf.Add(v)
	c.notEmpty.Signal()
	return nil
}

// Recv 阻塞直到取出一个值或通道关闭且缓冲排空。
// 关闭后缓冲中的剩余值仍会被依次取出；缓冲耗尽后返回 (零值, false)。
// 锁只在出队期间持有，接收者取到值后即可并发处理。
func (c *Chan[T]) Recv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buf.Length() == 0 && !c.closed {
		c.notEmpty.Wait()
	}
	return c.takeLocked()
}

// TryRecv 非阻塞地尝试取出一个值。
// 缓冲为空时返回 (零值, false)，不区分通道是否已关闭。
func (c *Chan[T]) TryRecv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.takeLocked()
}

// takeLocked 出队一个值，调用方必须持有 c.mu。
func (c *Chan[T]) takeLocked() (T, bool) {
	if c.buf.Length() == 0 {
		var zero T
		return zero, false
	}
	// 缓冲中只会有 Send 放入的 T，断言必然成立。
	return c.buf.Remove().(T), true
}

// Close 关闭通道的发送端并唤醒所有阻塞中的接收者。幂等。
func (c *Chan[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.notEmpty.Broadcast()
}

// Len 返回当前缓冲中的元素数量。
func (c *Chan[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.Length()
}
