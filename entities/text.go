package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

// Text 文字类注释实体（TEXT/MTEXT），不参与切割计算，仅用于识别和跳过
type Text struct {
	BaseEntity
	Location core.Point
	Content  string
	Height   float64
}

func init() {
	Register("TEXT", func() Entity { return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}} })
	Register("MTEXT", func() Entity { return &Text{BaseEntity: BaseEntity{TypeName: "MTEXT"}} })
}

func (t *Text) Parse(s *core.Scanner) error {
	for {
		tag := s.LastTag
		switch tag.Code {
		case 8:
			t.LayerName = tag.AsString()
		case 10:
			t.Location.X = tag.AsFloat()
		case 20:
			t.Location.Y = tag.AsFloat()
		case 30:
			t.Location.Z = tag.AsFloat()
		case 40:
			t.Height = tag.AsFloat()
		case 1:
			t.Content = tag.AsString()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (t *Text) BBox() core.BBox {
	// 简化处理：文字暂时以插入点作为包围盒
	return core.BBox{Min: t.Location, Max: t.Location}
}
