// 湿り空気(CO2を含む)の音速の理論式とその偏微分
//
// Notes:
//
//	Cramer (1993) の半経験式による。
//	いずれの関数も入力値の検証は行わない。p = 0 などの場合は Inf や NaN をそのまま返す。
package theory

import "math"

//--------------------------------------
// 絶対温度
//--------------------------------------

// 気温 t [℃] から絶対温度 T [K] を求める
func T(t float64) float64 {
	return t + 273.15
}

// dT/dt
func DTdt() float64 {
	return 1.0
}

//--------------------------------------
// 増大係数
//--------------------------------------

// 気圧 p [Pa]、気温 t [℃] から増大係数 F [-] を求める
func F(p float64, t float64) float64 {
	return k16 + k17*p + k18*t*t
}

// ∂F/∂p
func DFdp() float64 {
	return k17
}

// ∂F/∂t
func DFdt(t float64) float64 {
	return 2.0 * k18 * t
}

//--------------------------------------
// 飽和水蒸気圧
//--------------------------------------

// 絶対温度 T [K] から飽和水蒸気圧 Psv [Pa] を求める
func Psv(T float64) float64 {
	Psv := k19 * T * T
	Psv += k20 * T
	Psv += k21
	Psv += k22 / T
	return math.Exp(Psv)
}

// dPsv/dt
//
// Args:
//
//	T(float64): 絶対温度 [K]
//
// Notes:
//
//	d/dT exp(g(T)) = exp(g(T))・g'(T) に dT/dt を掛ける
func DPsvdt(T float64) float64 {
	dPsvdt := 2.0*k19*T + k20 - k22/(T*T)
	dPsvdt *= Psv(T)
	dPsvdt *= DTdt()
	return dPsvdt
}

//--------------------------------------
// 水蒸気モル分率
//--------------------------------------

// 相対湿度 h [-]、増大係数 F [-]、飽和水蒸気圧 Psv [Pa]、気圧 p [Pa] から
// 水蒸気モル分率 Xw [-] を求める
func Xw(h float64, F float64, Psv float64, p float64) float64 {
	return h * F * Psv / p
}

// ∂Xw/∂h
func DXwdh(F float64, Psv float64, p float64) float64 {
	return F * Psv / p
}

// ∂Xw/∂F
func DXwdF(h float64, Psv float64, p float64) float64 {
	return h * Psv / p
}

// ∂Xw/∂Psv
func DXwdPsv(h float64, F float64, p float64) float64 {
	return h * F / p
}

// ∂Xw/∂p
//
// Notes:
//
//	F も p の関数なので商の微分に ∂F/∂p の項が加わる
func DXwdp(h float64, F float64, Psv float64, p float64) float64 {
	dXwdp := -h * F * Psv / (p * p)
	dXwdp += h * DFdp() * Psv / p
	return dXwdp
}

//--------------------------------------
// 音速
//--------------------------------------

// 気温 t [℃]、気圧 p [Pa]、水蒸気モル分率 Xw [-]、CO2モル分率 xc [-] から音速 C [m/s] を求める
func C(t float64, p float64, Xw float64, xc float64) float64 {
	C := k00 + k01*t + k02*t*t
	C += (k03 + k04*t + k05*t*t) * Xw
	C += (k06 + k07*t + k08*t*t) * p
	C += (k09 + k10*t + k11*t*t) * xc
	C += k12 * Xw * Xw
	C += k13 * p * p
	C += k14 * xc * xc
	C += k15 * Xw * p * xc
	return C
}

// dC/dt
//
// Args:
//
//	t(float64): 気温 [℃]
//	p(float64): 気圧 [Pa]
//	Xw(float64): 水蒸気モル分率 [-]
//	xc(float64): CO2モル分率 [-]
//	dXwdF(float64): ∂Xw/∂F
//	dFdt(float64): ∂F/∂t
//	dXwdPsv(float64): ∂Xw/∂Psv
//	dPsvdt(float64): dPsv/dt
//
// Notes:
//
//	Xw は Psv(t) と F(t) を通じて t に依存するため、多項式の t の項に加えて
//	∂C/∂Xw・(∂Xw/∂Psv・dPsv/dt + ∂Xw/∂F・∂F/∂t) の寄与を含める。
func DCdt(t float64, p float64, Xw float64, xc float64, dXwdF float64,
	dFdt float64, dXwdPsv float64, dPsvdt float64) float64 {
	dCdt := k01 + 2.0*k02*t
	dCdt += (k04 + 2.0*k05*t) * Xw
	dCdt += (k03 + k04*t + k05*t*t) * dXwdPsv * dPsvdt
	dCdt += (k03 + k04*t + k05*t*t) * dXwdF * dFdt
	dCdt += (k07 + 2.0*k08*t) * p
	dCdt += (k10 + 2.0*k11*t) * xc
	dCdt += 2.0 * k12 * Xw * dXwdPsv * dPsvdt
	dCdt += 2.0 * k12 * Xw * dXwdF * dFdt
	dCdt += k15 * p * xc * dXwdPsv * dPsvdt
	dCdt += k15 * p * xc * dXwdF * dFdt
	return dCdt
}

// ∂C/∂Xw
func DCdXw(t float64, p float64, Xw float64, xc float64) float64 {
	dCdXw := k03 + k04*t + k05*t*t
	dCdXw += 2.0 * k12 * Xw
	dCdXw += k15 * xc * p
	return dCdXw
}

// dC/dp (Xw の p 依存を含む)
func DCdp(t float64, p float64, Xw float64, xc float64, dXwdp float64) float64 {
	dCdp := (k03 + k04*t + k05*t*t) * dXwdp
	dCdp += k06 + k07*t + k08*t*t
	dCdp += 2.0 * k12 * Xw * dXwdp
	dCdp += 2.0 * k13 * p
	dCdp += k15 * dXwdp * p * xc
	dCdp += k15 * Xw * xc
	return dCdp
}

// ∂C/∂xc
func DCdxc(t float64, p float64, Xw float64, xc float64) float64 {
	dCdxc := k09 + k10*t + k11*t*t
	dCdxc += 2.0 * k14 * xc
	dCdxc += k15 * p * Xw
	return dCdxc
}

// dC/dh
//
// h は多項式に直接現れないため ∂C/∂Xw・∂Xw/∂h のみ
func DCdh(dCdXw float64, dXwdh float64) float64 {
	return dCdXw * dXwdh
}

//--------------------------------------
// 一連の計算
//--------------------------------------

// 気温 t [℃]、相対湿度 h [-]、気圧 p [Pa]、CO2モル分率 xc [-] から音速 [m/s] を求める
func Evaluate(t float64, h float64, p float64, xc float64) float64 {
	T := T(t)
	F := F(p, t)
	Psv := Psv(T)
	Xw := Xw(h, F, Psv, p)
	return C(t, p, Xw, xc)
}

// 音速 c [m/s] と各入力に対する偏微分 dC/dt, dC/dh, dC/dp, dC/dxc を求める
func EvaluateWithDerivatives(t float64, h float64, p float64, xc float64) (c, dCdt, dCdh, dCdp, dCdxc float64) {
	T := T(t)
	F := F(p, t)
	Psv := Psv(T)
	Xw := Xw(h, F, Psv, p)
	c = C(t, p, Xw, xc)

	// 中間量の偏微分
	dFdt := DFdt(t)
	dPsvdt := DPsvdt(T)
	dXwdF := DXwdF(h, Psv, p)
	dXwdPsv := DXwdPsv(h, F, p)
	dXwdp := DXwdp(h, F, Psv, p)
	dXwdh := DXwdh(F, Psv, p)

	// 連鎖律
	dCdt = DCdt(t, p, Xw, xc, dXwdF, dFdt, dXwdPsv, dPsvdt)
	dCdxc = DCdxc(t, p, Xw, xc)
	dCdp = DCdp(t, p, Xw, xc, dXwdp)
	dCdh = DCdh(DCdXw(t, p, Xw, xc), dXwdh)

	return c, dCdt, dCdh, dCdp, dCdxc
}
