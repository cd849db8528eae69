package report

import (
	"fmt"
	"os"

	"github.com/zooyer/golib/xos"

	"github.com/onepoint10/dxf-inspector/measure"
)

// WriteCSV 导出实体统计汇总表，便于导入报价表格
// 先写表头再逐行追加，最后一行是合计
func WriteCSV(filename string, m measure.Metrics) (err error) {
	const header = "类型,数量,总长度(mm),平均长度(mm)\n"

	if err = os.WriteFile(filename, []byte(header), 0644); err != nil {
		return
	}

	for _, ts := range m.Types {
		avg := 0.0
		if ts.Count > 0 {
			avg = ts.Length / float64(ts.Count)
		}

		line := fmt.Sprintf("%s,%d,%.2f,%.2f\n", ts.Type, ts.Count, ts.Length, avg)
		if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return
		}
	}

	stat := fmt.Sprintf("合计,%d,%.2f,穿孔%d次\n", m.Measured, m.TotalLength, m.Piercings)

	return xos.AppendFile(filename, []byte(stat), 0644)
}
