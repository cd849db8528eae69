package measure

import (
	"math"

	"github.com/onepoint10/dxf-inspector/core"
)

const (
	// bulgeEpsilon 膨出角 θ→0 时退化为直线段，避免除零
	bulgeEpsilon = 1e-9
	// fullTurnTolerance 判定整圆/整椭圆参数跨度的容差（弧度）
	fullTurnTolerance = 1e-3
)

// SweepRadians 起止角（角度制）之间的非负扫掠角（弧度制）
// end < start 时视为跨过 0/360 边界，补一整圈再相减
func SweepRadians(startDeg, endDeg float64) float64 {
	sweep := (endDeg - startDeg) * math.Pi / 180
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	return sweep
}

// ArcLength 弧长 = 半径 × 扫掠角（弧度）
func ArcLength(radius, sweep float64) float64 {
	return radius * sweep
}

// bulgeSegment 多段线膨出段长度
// 膨出值 b 编码圆弧：夹角 θ = 4·atan|b|，半径 r = 弦长/(2·sin(θ/2))
// b 的符号只决定弧的方向，不影响长度
func bulgeSegment(p, q core.Point, bulge float64) float64 {
	var (
		chord = p.Distance(q)
		theta = 4 * math.Atan(math.Abs(bulge))
	)

	if theta < bulgeEpsilon || chord < bulgeEpsilon {
		return chord
	}

	return ArcLength(chord/(2*math.Sin(theta/2)), theta)
}

// lerp 两点线性插值
func lerp(a, b core.Point, t float64) core.Point {
	return core.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// chordDeviation 点 pm 到弦 pa-pb 的垂直距离，弦退化为点时取到端点的距离
func chordDeviation(pa, pb, pm core.Point) float64 {
	var (
		ux, uy, uz = pb.X - pa.X, pb.Y - pa.Y, pb.Z - pa.Z
		vx, vy, vz = pm.X - pa.X, pm.Y - pa.Y, pm.Z - pa.Z
	)

	chord := math.Sqrt(ux*ux + uy*uy + uz*uz)
	if chord < bulgeEpsilon {
		return pa.Distance(pm)
	}

	// |v × u| / |u|
	var (
		cx = vy*uz - vz*uy
		cy = vz*ux - vx*uz
		cz = vx*uy - vy*ux
	)

	return math.Sqrt(cx*cx+cy*cy+cz*cz) / chord
}

// polylineDistance 依次连接各采样点的折线长度
func polylineDistance(points []core.Point) (length float64) {
	for i := 0; i+1 < len(points); i++ {
		length += points[i].Distance(points[i+1])
	}

	return
}
