package speedofsound

import (
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//--------------------------------------
// 一括計算と近似精度の評価
//--------------------------------------

// 1条件の計算結果
type Result struct {
	Condition   AmbientCondition
	Exact       float64 // 厳密式による音速 [m/s]
	Approximate float64 // 1次近似による音速 [m/s]
	AbsError    float64 // |Approximate - Exact| [m/s]
	RelError    float64 // AbsError / |Exact| [-]
}

// 近似精度の集計結果
type Summary struct {
	Count        int
	MeanRelError float64
	MaxRelError  float64
	MaxAbsError  float64
	RMSAbsError  float64
}

// 周囲条件 envs それぞれについて厳密値と近似値を計算します。基準条件は変更しません。
func (sos *SpeedOfSound) EvaluateBatch(envs []AmbientCondition) []Result {
	results := make([]Result, len(envs))
	for i, env := range envs {
		exact := sos.EvaluateExact(env)
		approx := sos.Approximate(env)
		absErr := math.Abs(approx - exact)
		results[i] = Result{
			Condition:   env,
			Exact:       exact,
			Approximate: approx,
			AbsError:    absErr,
			RelError:    absErr / math.Abs(exact),
		}
	}
	return results
}

// lo から hi までの各項目を n 分割した格子点 (n^4 点) を作成します。
//
// Notes:
//
//	n < 2 の場合は lo のみを返します。
func Grid(lo AmbientCondition, hi AmbientCondition, n int) []AmbientCondition {
	if n < 2 {
		return []AmbientCondition{lo}
	}

	t := floats.Span(make([]float64, n), lo.Temperature, hi.Temperature)
	h := floats.Span(make([]float64, n), lo.Humidity, hi.Humidity)
	p := floats.Span(make([]float64, n), lo.Pressure, hi.Pressure)
	xc := floats.Span(make([]float64, n), lo.CO2MoleFraction, hi.CO2MoleFraction)

	envs := make([]AmbientCondition, 0, n*n*n*n)
	for _, vt := range t {
		for _, vh := range h {
			for _, vp := range p {
				for _, vxc := range xc {
					envs = append(envs, AmbientCondition{
						Temperature:     vt,
						Humidity:        vh,
						Pressure:        vp,
						CO2MoleFraction: vxc,
					})
				}
			}
		}
	}
	return envs
}

// 計算結果の誤差を集計します。
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	relErr := make([]float64, len(results))
	absErr := make([]float64, len(results))
	for i, r := range results {
		relErr[i] = r.RelError
		absErr[i] = r.AbsError
	}

	return Summary{
		Count:        len(results),
		MeanRelError: stat.Mean(relErr, nil),
		MaxRelError:  floats.Max(relErr),
		MaxAbsError:  floats.Max(absErr),
		RMSAbsError:  floats.Norm(absErr, 2) / math.Sqrt(float64(len(absErr))),
	}
}

// 周囲条件 envs について近似精度を評価します。
func Sweep(sos *SpeedOfSound, envs []AmbientCondition) ([]Result, Summary) {
	logger := logging.GetLogger("speedofsound")
	logger.Debugf("近似精度の評価: %d 条件", len(envs))

	results := sos.EvaluateBatch(envs)
	summary := Summarize(results)

	logger.Debugf("平均相対誤差 %g, 最大相対誤差 %g, 最大絶対誤差 %g m/s",
		summary.MeanRelError, summary.MaxRelError, summary.MaxAbsError)

	return results, summary
}
