package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

// Dimension 标注实体，不属于切割几何，仅用于识别和跳过
type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 低 3 位，标注类型
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	DefPoint          core.Point // 组码 10
	TextMidPoint      core.Point // 组码 11
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: BaseEntity{TypeName: "DIMENSION"}}
	})
}

func (d *Dimension) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			d.LayerName = t.AsString()
		case 1:
			d.Text = t.AsString()
		case 42:
			d.ActualMeasurement = t.AsFloat()
		case 10:
			d.DefPoint.X = t.AsFloat()
		case 20:
			d.DefPoint.Y = t.AsFloat()
		case 11:
			d.TextMidPoint.X = t.AsFloat()
		case 21:
			d.TextMidPoint.Y = t.AsFloat()
		case 70:
			d.DimType = t.AsInt() & 0x07
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (d *Dimension) BBox() core.BBox {
	return core.NewBBox(d.DefPoint, d.TextMidPoint)
}
