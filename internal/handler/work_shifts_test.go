package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateBatchResults(t *testing.T) {
	t.Run("全部成功", func(t *testing.T) {
		message, ok := aggregateBatchResults([]BatchItemResult{
			{Date: "2026-03-02", Success: true},
			{Date: "2026-03-03", Success: true},
		})
		assert.True(t, ok)
		assert.Equal(t, "全部班次创建成功", message)
	})

	t.Run("全部失败", func(t *testing.T) {
		message, ok := aggregateBatchResults([]BatchItemResult{
			{Date: "2026-03-02", Success: false, Message: "2026-03-02 已存在时间重叠的班次"},
		})
		assert.False(t, ok)
		assert.Equal(t, "全部班次创建失败", message)
	})

	t.Run("部分成功", func(t *testing.T) {
		// 三个目标日期中一个已有冲突班次，应报告两成功一失败
		message, ok := aggregateBatchResults([]BatchItemResult{
			{Date: "2026-03-02", Success: true},
			{Date: "2026-03-03", Success: false, Message: "2026-03-03 已存在时间重叠的班次"},
			{Date: "2026-03-04", Success: true},
		})
		assert.False(t, ok)
		assert.Equal(t, "部分班次创建成功（成功 2 个，失败 1 个）", message)
	})
}
