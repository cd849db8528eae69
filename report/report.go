// Package report 负责分析结果的呈现：彩色控制台报告、CSV 汇总、JSON 输出
// 只做格式化，不掺杂任何计算
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/onepoint10/dxf-inspector/measure"
)

// palette 报告用到的全部样式，noColor 时全部退化为无样式
type palette struct {
	title   lipgloss.Style
	section lipgloss.Style
	value   lipgloss.Style
	number  lipgloss.Style
	file    lipgloss.Style
	dim     lipgloss.Style
}

func newPalette(noColor bool) palette {
	if noColor {
		plain := lipgloss.NewStyle()
		return palette{title: plain, section: plain, value: plain, number: plain, file: plain, dim: plain}
	}

	return palette{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}),
		value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}),
		number:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}),
		file:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Format 把一次分析的指标排版成控制台报告
func Format(m measure.Metrics, noColor bool) string {
	var (
		p = newPalette(noColor)
		b strings.Builder
	)

	section := func(name string) {
		b.WriteString(p.section.Render("▶ " + name))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(p.title.Render("激光切割分析报告"))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", 64))
	b.WriteString("\n\n")

	if m.Filename != "" {
		section("文件信息")
		fmt.Fprintf(&b, "  文件名: %s\n\n", p.file.Render(m.Filename))
	}

	section("制造指标")
	fmt.Fprintf(&b, "  总切割长度: %s\n", p.value.Render(fmt.Sprintf("%.2f mm", m.TotalLength)))
	fmt.Fprintf(&b, "  穿孔次数:   %s (闭合轮廓)\n", p.value.Render(fmt.Sprint(m.Piercings)))
	fmt.Fprintf(&b, "  实体总数:   %s\n\n", p.number.Render(fmt.Sprint(m.Measured)))

	section("材料需求")
	fmt.Fprintf(&b, "  包围盒: 最小 (%.2f, %.2f)  最大 (%.2f, %.2f)\n",
		m.Box.Min.X, m.Box.Min.Y, m.Box.Max.X, m.Box.Max.Y)
	fmt.Fprintf(&b, "  板材尺寸: 宽 %s  高 %s  面积 %s\n\n",
		p.file.Render(fmt.Sprintf("%.2f mm", m.Width())),
		p.file.Render(fmt.Sprintf("%.2f mm", m.Height())),
		p.file.Render(fmt.Sprintf("%.4f m²", m.Area())))

	if len(m.Types) > 0 {
		section("实体统计")
		fmt.Fprintf(&b, "  %-14s %-8s %-18s %s\n", "类型", "数量", "总长度(mm)", "平均(mm)")
		fmt.Fprintf(&b, "  %s\n", strings.Repeat("-", 56))

		// 按数量降序展示
		types := append([]measure.TypeStat(nil), m.Types...)
		sort.SliceStable(types, func(i, j int) bool { return types[i].Count > types[j].Count })

		for _, ts := range types {
			avg := 0.0
			if ts.Count > 0 {
				avg = ts.Length / float64(ts.Count)
			}
			fmt.Fprintf(&b, "  %-14s %-8s %-18.2f %.2f\n",
				ts.Type, p.number.Render(fmt.Sprint(ts.Count)), ts.Length, avg)
		}
		b.WriteByte('\n')
	}

	if len(m.Layers) > 0 {
		section("图层分布")

		layers := append([]measure.LayerCount(nil), m.Layers...)
		sort.SliceStable(layers, func(i, j int) bool { return layers[i].Count > layers[j].Count })

		for _, lc := range layers {
			fmt.Fprintf(&b, "  %-24s %s\n", lc.Layer, p.number.Render(fmt.Sprint(lc.Count)))
		}
		b.WriteByte('\n')
	}

	section("报价要素")
	fmt.Fprintf(&b, "  切割时间 = %.2f mm ÷ 切割速度(mm/min)\n", m.TotalLength)
	fmt.Fprintf(&b, "  穿孔时间 = %d 次 × 单次穿孔耗时(s)\n", m.Piercings)
	fmt.Fprintf(&b, "  板材用量 = %.0f × %.0f mm (%.4f m²)\n\n", m.Width(), m.Height(), m.Area())

	if len(m.Diagnostics) > 0 {
		section(fmt.Sprintf("跳过实体 (%d)", len(m.Diagnostics)))
		for _, d := range m.Diagnostics {
			fmt.Fprintf(&b, "  #%d %s [%s] %s\n", d.Index, d.Type, d.Layer, p.dim.Render(d.Reason))
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("=", 64))
	b.WriteByte('\n')

	return b.String()
}

// Error 格式化错误提示
func Error(message string) string {
	return fmt.Sprintf("\n❌ 错误: %s\n", message)
}

// Warning 格式化警告提示
func Warning(message string) string {
	return fmt.Sprintf("\n⚠️ 警告: %s\n", message)
}

// Success 格式化成功提示
func Success(message string) string {
	return fmt.Sprintf("\n✅ %s\n", message)
}
