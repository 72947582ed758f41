// Package xpool 提供固定大小的 worker pool 实现。
//
// Pool 在构造时一次性启动固定数量的常驻 worker，之后复用这些 worker
// 执行任意多个任务，避免为每个任务付出 goroutine 启动与调度的开销。
// 支持以下特性：
//   - 固定 worker 数量（[1, 65536]），构造后不扩缩容
//   - 无界任务队列：Submit 永不阻塞，没有背压
//   - 全局 FIFO 投递：任务按提交顺序被取走，恰好执行一次
//   - 优雅关闭：Close/Shutdown 先排空已入队任务再等待全部 worker 退出
//   - 超时关闭：Shutdown(ctx) 支持 context 超时/取消，残留 worker
//     继续在后台排空，可通过 Done() 等待最终完成
//   - 可注入自定义日志记录器（WithLogger）与名称（WithName）
//   - OpenTelemetry 指标（WithMeterProvider，默认全局 MeterProvider）
//
// # 注意事项
//
//   - Submit 是 fire-and-forget：返回 nil 只表示任务已入队，
//     任务的执行结果需由任务自身的回传机制（channel 等）传递
//   - 队列无界意味着没有背压：提交速度长期高于处理速度时队列会无限增长
//   - 任务 panic 会被捕获并记录（含堆栈），但该 worker 随即退出且
//     不会自动补充，Pool 的有效容量减一；其余 worker 不受影响。
//     需要完整容量时应重建 Pool
//   - 任务一经提交无法撤回，执行中的任务无法被 Pool 打断
//   - Close/Shutdown 不可在任务内调用，否则会死锁
//   - workers 超出有效范围时 New 返回错误（而非 panic），
//     且保证错误返回前不启动任何 goroutine
//   - Shutdown(nil) 返回 ErrNilContext（而非 panic），与项目其他包一致
//
// # 关闭策略
//
// Close 等价于 Shutdown(context.Background())，无限等待。
// 关闭协议：置关闭标记拒绝新任务，按 FIFO 追加每 worker 一个终止哨兵，
// 关闭队列发送端，然后等待全部 worker 退出。终止哨兵是普通的 FIFO 条目，
// 不插队：先于哨兵入队的任务一定会被某个 worker 取走执行。
// Shutdown(ctx) 的 ctx 只约束等待阶段：到期后立即返回 context 错误，
// 残留 worker 仍在后台运行直到队列排空，调用方可通过 Done() 等待。
//
// # 设计选择说明
//
// 设计决策: 任务 panic 后 worker 退出而非复用：
//   - panic 意味着任务破坏了自身不变量，无法判断 worker 本地状态是否仍然
//     可信，退出是最保守的隔离边界
//   - 故障只影响该 worker，不传播到其他任务或 Pool 本身；也不自动重建
//     worker——容量退化是明确承诺的已知限制，而非静默自愈
//
// 设计决策: 每 worker 一个终止哨兵而非直接关闭队列：
//   - 哨兵保证每个 worker 恰好收到一次终止信号，不会出现部分 worker
//     持续消费任务而其他 worker 等不到信号的饿死情形
//   - 队列发送端关闭后的断开信号同样会让 worker 干净退出，
//     两条退出路径语义一致
package xpool
