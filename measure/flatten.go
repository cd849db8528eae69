package measure

import (
	"math"

	"github.com/onepoint10/dxf-inspector/core"
	"github.com/onepoint10/dxf-inspector/entities"
)

// Curve 参数曲线，展平器只依赖逐点求值
type Curve interface {
	Eval(t float64) core.Point
}

// flattenCoarse 初始粗采样段数，自适应细分在此基础上进行
const flattenCoarse = 8

// Flatten 在参数区间 [t0, t1] 上把曲线展平为折线采样点序列
// 每段取中点测量到弦的垂直偏差，超过 tolerance 就对半细分
// 细分深度到达 maxDepth 时接受当前近似并报告 truncated，保证终止
func Flatten(c Curve, t0, t1, tolerance float64, maxDepth int) (points []core.Point, truncated bool) {
	points = append(points, c.Eval(t0))

	step := (t1 - t0) / flattenCoarse
	for i := 0; i < flattenCoarse; i++ {
		var (
			ta  = t0 + float64(i)*step
			tb  = t0 + float64(i+1)*step
			hit bool
		)

		points, hit = subdivide(c, ta, c.Eval(ta), tb, c.Eval(tb), tolerance, maxDepth, points)
		truncated = truncated || hit
	}

	return
}

func subdivide(c Curve, ta float64, pa core.Point, tb float64, pb core.Point, tolerance float64, depth int, acc []core.Point) ([]core.Point, bool) {
	var (
		tm = (ta + tb) / 2
		pm = c.Eval(tm)
	)

	if chordDeviation(pa, pb, pm) <= tolerance {
		return append(acc, pb), false
	}

	if depth <= 0 {
		// 深度耗尽：保留中点后截断，宁可近似也不能不终止
		return append(acc, pm, pb), true
	}

	acc, hitLeft := subdivide(c, ta, pa, tm, pm, tolerance, depth-1, acc)
	acc, hitRight := subdivide(c, tm, pm, tb, pb, tolerance, depth-1, acc)

	return acc, hitLeft || hitRight
}

// splineCurve 夹紧B样条的 de Boor 求值器
// 权重按不透明数据处理（不做有理求值），节点缺失或数量不符时生成夹紧均匀节点
type splineCurve struct {
	degree int
	ctrl   []core.Point
	knots  []float64
}

func newSplineCurve(sp *entities.Spline) splineCurve {
	var (
		degree = sp.Degree
		n      = len(sp.Controls)
	)

	if degree < 1 {
		degree = 3
	}

	knots := sp.Knots
	if len(knots) != n+degree+1 {
		knots = clampedKnots(n, degree)
	}

	return splineCurve{degree: degree, ctrl: sp.Controls, knots: knots}
}

// clampedKnots 生成夹紧均匀节点向量：首尾各重复 degree+1 次
func clampedKnots(n, degree int) []float64 {
	knots := make([]float64, n+degree+1)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(n-degree)
		}
	}

	return knots
}

// Eval de Boor 算法，t ∈ [0,1] 映射到节点定义域
func (s splineCurve) Eval(t float64) core.Point {
	var (
		p  = s.degree
		n  = len(s.ctrl)
		lo = s.knots[p]
		hi = s.knots[n]
		u  = lo + t*(hi-lo)
	)

	// 定位节点区间 k：knots[k] <= u < knots[k+1]
	k := p
	for k < n-1 && u >= s.knots[k+1] {
		k++
	}

	d := make([]core.Point, p+1)
	copy(d, s.ctrl[k-p:k+1])

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			var (
				i     = j + k - p
				denom = s.knots[i+p-r+1] - s.knots[i]
				alpha float64
			)

			if denom > 0 {
				alpha = (u - s.knots[i]) / denom
			}

			d[j] = lerp(d[j-1], d[j], alpha)
		}
	}

	return d[p]
}

// ellipseCurve 椭圆参数方程：center + major·cos(t) + minor·sin(t)
// 短轴向量取长轴在 XY 平面内旋转 90° 再乘轴比
type ellipseCurve struct {
	center, major, minor core.Point
}

func newEllipseCurve(e *entities.Ellipse) ellipseCurve {
	return ellipseCurve{
		center: e.Center,
		major:  e.MajorAxis,
		minor: core.Point{
			X: -e.MajorAxis.Y * e.Ratio,
			Y: e.MajorAxis.X * e.Ratio,
		},
	}
}

func (c ellipseCurve) Eval(t float64) core.Point {
	var (
		cos = math.Cos(t)
		sin = math.Sin(t)
	)

	return core.Point{
		X: c.center.X + c.major.X*cos + c.minor.X*sin,
		Y: c.center.Y + c.major.Y*cos + c.minor.Y*sin,
		Z: c.center.Z + c.major.Z*cos + c.minor.Z*sin,
	}
}
