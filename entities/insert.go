package entities

import (
	"github.com/onepoint10/dxf-inspector/core"
)

// Insert 块引用，上游应当过滤掉；漏进来的由测量引擎标记为不支持
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 2:
			i.BlockName = t.AsString()
		case 8:
			i.LayerName = t.AsString()
		case 10:
			i.InsertionPoint.X = t.AsFloat()
		case 20:
			i.InsertionPoint.Y = t.AsFloat()
		case 30:
			i.InsertionPoint.Z = t.AsFloat()
		case 41:
			i.Scale.X = t.AsFloat()
		case 42:
			i.Scale.Y = t.AsFloat()
		case 43:
			i.Scale.Z = t.AsFloat()
		case 50:
			i.Rotation = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (i *Insert) BBox() core.BBox {
	// 不展开块定义，以插入点作为包围盒
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
