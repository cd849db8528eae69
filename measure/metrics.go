package measure

import (
	"github.com/onepoint10/dxf-inspector/core"
	"github.com/onepoint10/dxf-inspector/entities"
)

// TypeStat 某一实体类型的数量与总长度
type TypeStat struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Length float64 `json:"length"`
}

// LayerCount 某一图层上的实体数量
type LayerCount struct {
	Layer string `json:"layer"`
	Count int    `json:"count"`
}

// Diagnostic 被跳过实体的诊断记录，旁路输出，不计入任何总量
type Diagnostic struct {
	Index  int    `json:"index"` // 实体在输入序列中的下标
	Layer  string `json:"layer"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Metrics 一次分析的完整结果，产出后不再修改
// Observed 为输入实体总数（含跳过的），Measured 只数成功测量的
type Metrics struct {
	Filename    string       `json:"filename,omitempty"`
	Observed    int          `json:"observed"`
	Measured    int          `json:"measured"`
	TotalLength float64      `json:"total_length"` // 总切割长度(mm)
	Piercings   int          `json:"piercings"`    // 穿孔次数(闭合轮廓数)
	HasBox      bool         `json:"has_box"`
	Box         core.BBox    `json:"box"`
	Types       []TypeStat   `json:"types"`  // 首次出现顺序
	Layers      []LayerCount `json:"layers"` // 首次出现顺序
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Width 材料宽度(mm)，没有包围盒时为 0
func (m Metrics) Width() float64 {
	if !m.HasBox {
		return 0
	}

	return m.Box.Width()
}

// Height 材料高度(mm)
func (m Metrics) Height() float64 {
	if !m.HasBox {
		return 0
	}

	return m.Box.Height()
}

// Area 材料面积(m²)
func (m Metrics) Area() float64 {
	return m.Width() * m.Height() / 1e6
}

// Analyze 按输入顺序对实体序列做一次遍历，返回不可变的 Metrics
// 引擎无状态：相同输入必然得到相同输出，可安全并行分析多个文件
// 单个实体的失败只记诊断并跳过，绝不中断整批；nil 序列视为前置条件违规
func Analyze(ents []entities.Entity, opt Options) (metrics Metrics, err error) {
	if ents == nil {
		return Metrics{}, ErrInvalidInput
	}

	opt = opt.normalize()

	var (
		typeIndex  = make(map[string]int)
		layerIndex = make(map[string]int)
	)

	for i, entity := range ents {
		metrics.Observed++

		layer := entity.Layer()
		if layer == "" {
			layer = "0" // DXF 默认图层
		}

		length, truncated, lerr := EntityLength(entity, opt)
		if lerr != nil {
			metrics.Diagnostics = append(metrics.Diagnostics, Diagnostic{
				Index:  i,
				Layer:  layer,
				Type:   entity.Type(),
				Reason: lerr.Error(),
			})
			continue
		}

		if truncated {
			// 非致命：长度取近似值，实体照常计入
			metrics.Diagnostics = append(metrics.Diagnostics, Diagnostic{
				Index:  i,
				Layer:  layer,
				Type:   entity.Type(),
				Reason: "曲线展平达到深度上限，长度为近似值",
			})
		}

		metrics.Measured++
		metrics.TotalLength += length

		if IsPiercing(entity) {
			metrics.Piercings++
		}

		if idx, ok := typeIndex[entity.Type()]; ok {
			metrics.Types[idx].Count++
			metrics.Types[idx].Length += length
		} else {
			typeIndex[entity.Type()] = len(metrics.Types)
			metrics.Types = append(metrics.Types, TypeStat{Type: entity.Type(), Count: 1, Length: length})
		}

		if idx, ok := layerIndex[layer]; ok {
			metrics.Layers[idx].Count++
		} else {
			layerIndex[layer] = len(metrics.Layers)
			metrics.Layers = append(metrics.Layers, LayerCount{Layer: layer, Count: 1})
		}

		if metrics.HasBox {
			metrics.Box = metrics.Box.Merge(entity.BBox())
		} else {
			metrics.Box, metrics.HasBox = entity.BBox(), true
		}
	}

	return metrics, nil
}

// Merge 合并两个独立分析出的部分结果（对一个序列分区并行时使用）
// 计数和长度直接相加，类型/图层统计按 a 先 b 后的首次出现顺序合并，
// b 的诊断下标按 a 的 Observed 平移，保持与整体序列一致
func Merge(a, b Metrics) (merged Metrics) {
	merged = Metrics{
		Filename:    a.Filename,
		Observed:    a.Observed + b.Observed,
		Measured:    a.Measured + b.Measured,
		TotalLength: a.TotalLength + b.TotalLength,
		Piercings:   a.Piercings + b.Piercings,
	}

	switch {
	case a.HasBox && b.HasBox:
		merged.Box, merged.HasBox = a.Box.Merge(b.Box), true
	case a.HasBox:
		merged.Box, merged.HasBox = a.Box, true
	case b.HasBox:
		merged.Box, merged.HasBox = b.Box, true
	}

	typeIndex := make(map[string]int)
	for _, ts := range a.Types {
		typeIndex[ts.Type] = len(merged.Types)
		merged.Types = append(merged.Types, ts)
	}
	for _, ts := range b.Types {
		if idx, ok := typeIndex[ts.Type]; ok {
			merged.Types[idx].Count += ts.Count
			merged.Types[idx].Length += ts.Length
		} else {
			typeIndex[ts.Type] = len(merged.Types)
			merged.Types = append(merged.Types, ts)
		}
	}

	layerIndex := make(map[string]int)
	for _, lc := range a.Layers {
		layerIndex[lc.Layer] = len(merged.Layers)
		merged.Layers = append(merged.Layers, lc)
	}
	for _, lc := range b.Layers {
		if idx, ok := layerIndex[lc.Layer]; ok {
			merged.Layers[idx].Count += lc.Count
		} else {
			layerIndex[lc.Layer] = len(merged.Layers)
			merged.Layers = append(merged.Layers, lc)
		}
	}

	merged.Diagnostics = append(merged.Diagnostics, a.Diagnostics...)
	for _, d := range b.Diagnostics {
		d.Index += a.Observed
		merged.Diagnostics = append(merged.Diagnostics, d)
	}

	return
}
