package entities

import (
	"math"

	"github.com/onepoint10/dxf-inspector/core"
)

type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point // 长半轴向量，相对圆心
	Ratio      float64    // 短轴/长轴
	StartParam float64    // 弧度制参数
	EndParam   float64
}

func init() {
	Register("ELLIPSE", func() Entity {
		return &Ellipse{
			BaseEntity: BaseEntity{TypeName: "ELLIPSE"},
			Ratio:      1,
			EndParam:   2 * math.Pi, // 默认整椭圆
		}
	})
}

func (e *Ellipse) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			e.LayerName = t.AsString()
		case 10:
			e.Center.X = t.AsFloat()
		case 20:
			e.Center.Y = t.AsFloat()
		case 30:
			e.Center.Z = t.AsFloat()
		case 11:
			e.MajorAxis.X = t.AsFloat()
		case 21:
			e.MajorAxis.Y = t.AsFloat()
		case 31:
			e.MajorAxis.Z = t.AsFloat()
		case 40:
			e.Ratio = t.AsFloat()
		case 41:
			e.StartParam = t.AsFloat()
		case 42:
			e.EndParam = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// BBox 按整椭圆的解析范围计算（部分弧取保守范围）：
// 半宽 = sqrt(mx²+nx²)，半高 = sqrt(my²+ny²)，n 为短轴向量
func (e *Ellipse) BBox() core.BBox {
	var (
		mx, my = e.MajorAxis.X, e.MajorAxis.Y
		nx, ny = -my * e.Ratio, mx * e.Ratio
		hw     = math.Sqrt(mx*mx + nx*nx)
		hh     = math.Sqrt(my*my + ny*ny)
	)

	return core.BBox{
		Min: core.Point{X: e.Center.X - hw, Y: e.Center.Y - hh, Z: e.Center.Z},
		Max: core.Point{X: e.Center.X + hw, Y: e.Center.Y + hh, Z: e.Center.Z},
	}
}
