package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onepoint10/dxf-inspector/core"
	"github.com/onepoint10/dxf-inspector/measure"
)

func testMetrics() measure.Metrics {
	return measure.Metrics{
		Filename:    "test.dxf",
		Observed:    4,
		Measured:    3,
		TotalLength: 314.16,
		Piercings:   2,
		HasBox:      true,
		Box:         core.BBox{Min: core.Point{}, Max: core.Point{X: 100, Y: 50}},
		Types: []measure.TypeStat{
			{Type: "LINE", Count: 2, Length: 214.16},
			{Type: "CIRCLE", Count: 1, Length: 100},
		},
		Layers: []measure.LayerCount{
			{Layer: "cut", Count: 3},
		},
		Diagnostics: []measure.Diagnostic{
			{Index: 3, Layer: "cut", Type: "CIRCLE", Reason: "几何数据非法"},
		},
	}
}

func TestFormat(t *testing.T) {
	text := Format(testMetrics(), true)

	for _, want := range []string{
		"激光切割分析报告",
		"test.dxf",
		"314.16 mm",
		"闭合轮廓",
		"100.00 mm", // 板材宽度
		"0.0050 m²",
		"LINE",
		"CIRCLE",
		"cut",
		"跳过实体 (1)",
		"#3 CIRCLE [cut]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("报告缺少 %q:\n%s", want, text)
		}
	}
}

func TestFormat_NoFile(t *testing.T) {
	m := testMetrics()
	m.Filename = ""
	m.Diagnostics = nil

	text := Format(m, true)
	if strings.Contains(text, "文件信息") {
		t.Error("无文件名时不应有文件信息段")
	}
	if strings.Contains(text, "跳过实体") {
		t.Error("无诊断时不应有跳过实体段")
	}
}

func TestWriteCSV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(filename, testMetrics()); err != nil {
		t.Fatalf("导出 CSV 失败: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("读取 CSV 失败: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("期望 4 行, 得到 %d:\n%s", len(lines), data)
	}
	if lines[1] != "LINE,2,214.16,107.08" {
		t.Errorf("数据行错误: %q", lines[1])
	}
	if lines[3] != "合计,3,314.16,穿孔2次" {
		t.Errorf("合计行错误: %q", lines[3])
	}
}

func TestWriteJSON(t *testing.T) {
	var b strings.Builder
	if err := WriteJSON(&b, testMetrics()); err != nil {
		t.Fatalf("导出 JSON 失败: %v", err)
	}

	var decoded measure.Metrics
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("JSON 解析失败: %v", err)
	}

	if decoded.Filename != "test.dxf" || decoded.Measured != 3 || decoded.Piercings != 2 {
		t.Errorf("JSON 内容错误: %+v", decoded)
	}
	if len(decoded.Types) != 2 || decoded.Types[0].Type != "LINE" {
		t.Errorf("类型统计错误: %+v", decoded.Types)
	}
}
