// 湿り空気の音速の計算と、基準条件まわりの線形近似
package speedofsound

import "github.com/udawtr/speedofsound-go/speedofsound/theory"

// 音速モデル
//
// 基準条件 reference における音速 value と偏微分 rate を保持し、
// 近傍の条件の音速を1次のテイラー展開で近似します。
//
// Notes:
//
//	reference, value, rate は EvaluateAndCache でのみ同時に更新されます。
//	ゼロ値は使用せず New または NewAt で作成してください。
//	排他制御は行わないため、複数のゴルーチンから EvaluateAndCache を呼ぶ場合は呼び出し側でロックが必要です。
type SpeedOfSound struct {
	reference AmbientCondition // 基準条件
	value     float64          // 基準条件における音速 [m/s]
	rate      DerivativeVector // 基準条件における偏微分
}

// 標準大気を基準条件としてモデルを作成します。
func New() *SpeedOfSound {
	return NewAt(NewAmbientCondition())
}

// 周囲条件 env を基準条件としてモデルを作成します。
func NewAt(env AmbientCondition) *SpeedOfSound {
	sos := &SpeedOfSound{}
	sos.EvaluateAndCache(env)
	return sos
}

// 基準条件
func (sos *SpeedOfSound) Reference() AmbientCondition {
	return sos.reference
}

// 基準条件における偏微分
func (sos *SpeedOfSound) Derivatives() DerivativeVector {
	return sos.rate
}

// 基準条件における音速 [m/s]
func (sos *SpeedOfSound) Value() float64 {
	return sos.value
}

// 周囲条件 env の音速と偏微分を計算し、env を新たな基準条件として保持します。
//
// Returns:
//
//	float64: 音速 [m/s]
func (sos *SpeedOfSound) EvaluateAndCache(env AmbientCondition) float64 {
	c, dCdt, dCdh, dCdp, dCdxc := theory.EvaluateWithDerivatives(
		env.Temperature,
		env.Humidity,
		env.Pressure,
		env.CO2MoleFraction,
	)

	sos.reference = env
	sos.value = c
	sos.rate = DerivativeVector{
		Temperature:     dCdt,
		Humidity:        dCdh,
		Pressure:        dCdp,
		CO2MoleFraction: dCdxc,
	}

	return sos.value
}

// 周囲条件 env の音速を厳密式で計算します。基準条件は変更しません。
func (sos *SpeedOfSound) EvaluateExact(env AmbientCondition) float64 {
	return theory.Evaluate(
		env.Temperature,
		env.Humidity,
		env.Pressure,
		env.CO2MoleFraction,
	)
}

// 周囲条件 env の音速を基準条件まわりの1次近似で求めます。
//
// Notes:
//
//	基準条件と同じ値の項目は計算を省略します。
//	env が基準条件と一致する場合は基準条件の音速をそのまま返します。
func (sos *SpeedOfSound) Approximate(env AmbientCondition) float64 {
	c := sos.value

	if env.Temperature != sos.reference.Temperature {
		c += (env.Temperature - sos.reference.Temperature) * sos.rate.Temperature
	}
	if env.Humidity != sos.reference.Humidity {
		c += (env.Humidity - sos.reference.Humidity) * sos.rate.Humidity
	}
	if env.Pressure != sos.reference.Pressure {
		c += (env.Pressure - sos.reference.Pressure) * sos.rate.Pressure
	}
	if env.CO2MoleFraction != sos.reference.CO2MoleFraction {
		c += (env.CO2MoleFraction - sos.reference.CO2MoleFraction) * sos.rate.CO2MoleFraction
	}

	return c
}
