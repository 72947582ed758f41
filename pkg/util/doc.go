// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xchan: 无界 MPMC FIFO 通道，泛型支持、关闭后排空
//   - xpool: 固定大小 Worker Pool，无界队列、优雅关闭、OTel 指标
//
// 设计原则：
//   - 提交与执行解耦，调度行为可验证（FIFO、恰好一次投递）
//   - 关闭路径不泄漏 goroutine，不静默丢弃已入队的工作
//   - 可观测性按需注入，默认零开销
package util
