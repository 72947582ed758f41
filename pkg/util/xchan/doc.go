// Package xchan 提供无界的多生产者/多消费者 FIFO 通道。
//
// Chan 是 Go 原生 channel 的无界替代品：发送永不阻塞，缓冲随需增长。
// 支持以下特性：
//   - 泛型元素类型
//   - 无界缓冲（底层为 eapache/queue 环形缓冲，均摊 O(1) 入队/出队）
//   - 多生产者/多消费者：出队在互斥锁内完成，每个值恰好被一个接收者取得
//   - 全局 FIFO：值按入队顺序被取出（跨接收者的相对完成顺序不作保证）
//   - 关闭后排空：Close 之后 Recv 仍可取出缓冲中的剩余值，
//     缓冲耗尽后才返回 (零值, false)
//
// # 注意事项
//
//   - Send 永不阻塞，也因此没有背压：生产速度长期高于消费速度时
//     缓冲会无限增长，需要背压请使用带缓冲的原生 channel
//   - Recv 返回 false 表示通道已关闭且缓冲已排空，等价于原生 channel
//     的 ok == false
//   - Close 幂等，可安全多次调用；关闭后 Send 返回 ErrClosed
//   - Chan 的零值不可用，必须通过 New 创建
//
// # 设计选择说明
//
// 设计决策: 使用 sync.Cond 而非原生 channel 实现阻塞接收：
//   - 原生 channel 缓冲固定，无法表达"无界 + 永不阻塞的发送"
//   - Cond.Wait 在无消息时挂起接收者，Signal/Broadcast 精确唤醒，
//     不存在忙等
//
// 设计决策: Recv 返回 (T, bool) 而非 (T, error)：
//   - 与原生 channel 的 v, ok := <-ch 习惯保持一致，调用方迁移成本最低
package xchan
