package measure

import (
	"math"

	"github.com/onepoint10/dxf-inspector/entities"
)

// IsPiercing 判断实体是否构成需要单独穿孔的闭合轮廓
// 开放路径默认接在已穿孔的轮廓或板材边缘上，不另计穿孔
func IsPiercing(entity entities.Entity) bool {
	switch e := entity.(type) {
	case *entities.Circle:
		return true
	case *entities.Ellipse:
		// 只有整椭圆闭合；部分椭圆弧是开放路径
		start, end := ellipseSpan(e)
		return end-start >= 2*math.Pi-fullTurnTolerance
	case *entities.LWPolyline:
		return e.Closed
	case *entities.Polyline:
		return e.Closed
	default:
		return false
	}
}
