package report

import (
	"encoding/json"
	"io"

	"github.com/onepoint10/dxf-inspector/measure"
)

// WriteJSON 以缩进 JSON 输出完整指标，供其他工具消费
func WriteJSON(w io.Writer, m measure.Metrics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}
