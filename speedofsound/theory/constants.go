package theory

// 標準大気
const (
	StdTemperature     = 20.0     // 気温 [℃]
	StdHumidity        = 0.5      // 相対湿度 [-]
	StdPressure        = 101325.0 // 気圧 [Pa]
	StdCO2MoleFraction = 0.000314 // CO2モル分率 [-]
)

// 適用範囲
//
// Notes:
//
//	MinXwPressure, MaxXwPressure は水蒸気モル分率 Xw の検証用の気圧範囲
const (
	MinTemperature     = 0.0
	MinHumidity        = 0.0
	MinPressure        = 75000.0
	MinXwPressure      = 60000.0
	MinCO2MoleFraction = 0.0

	MaxTemperature     = 30.0
	MaxHumidity        = 1.0
	MaxPressure        = 102000.0
	MaxXwPressure      = 110000.0
	MaxCO2MoleFraction = 0.01
)

// 音速多項式の係数 k00-k15, 増大係数 k16-k18, 飽和水蒸気圧 k19-k22
const (
	k00 = 3.315024000e+02
	k01 = 6.030550000e-01
	k02 = -5.280000000e-04
	k03 = 5.147193500e+01
	k04 = 1.495874000e-01
	k05 = -7.820000000e-04
	k06 = -1.820000000e-07
	k07 = 3.730000000e-08
	k08 = -2.930000000e-10
	k09 = -8.520931000e+01
	k10 = -2.285250000e-01
	k11 = 5.910000000e-05
	k12 = -2.835149000e+00
	k13 = -2.150000000e-13
	k14 = 2.917976200e+01
	k15 = 4.860000000e-04
	k16 = 1.000620000e+00
	k17 = 3.140000000e-08
	k18 = 5.600000000e-07
	k19 = 1.281180500e-05
	k20 = -1.950987400e-02
	k21 = 3.404926034e+01
	k22 = -6.353631100e+03
)
