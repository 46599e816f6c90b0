package speedofsound

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/udawtr/speedofsound-go/speedofsound/theory"
)

// 周囲条件
type AmbientCondition struct {
	Temperature     float64 `yaml:"temperature"`       // 気温 [℃]
	Humidity        float64 `yaml:"humidity"`          // 相対湿度 [-] (0-1)
	Pressure        float64 `yaml:"pressure"`          // 気圧 [Pa]
	CO2MoleFraction float64 `yaml:"co2_mole_fraction"` // CO2モル分率 [-]
}

// 各周囲条件に対する音速の偏微分
type DerivativeVector struct {
	Temperature     float64 // dC/dt [m/s/℃]
	Humidity        float64 // dC/dh [m/s]
	Pressure        float64 // dC/dp [m/s/Pa]
	CO2MoleFraction float64 // dC/dxc [m/s]
}

// 標準大気の周囲条件を作成します。
func NewAmbientCondition() AmbientCondition {
	return AmbientCondition{
		Temperature:     theory.StdTemperature,
		Humidity:        theory.StdHumidity,
		Pressure:        theory.StdPressure,
		CO2MoleFraction: theory.StdCO2MoleFraction,
	}
}

// 適用範囲の下限と上限
func Envelope() (lo AmbientCondition, hi AmbientCondition) {
	lo = AmbientCondition{
		Temperature:     theory.MinTemperature,
		Humidity:        theory.MinHumidity,
		Pressure:        theory.MinPressure,
		CO2MoleFraction: theory.MinCO2MoleFraction,
	}
	hi = AmbientCondition{
		Temperature:     theory.MaxTemperature,
		Humidity:        theory.MaxHumidity,
		Pressure:        theory.MaxPressure,
		CO2MoleFraction: theory.MaxCO2MoleFraction,
	}
	return lo, hi
}

//--------------------------------------
// 適用範囲の確認
//--------------------------------------

func (env AmbientCondition) ValidTemperature() bool {
	return theory.MinTemperature <= env.Temperature && env.Temperature <= theory.MaxTemperature
}

func (env AmbientCondition) ValidHumidity() bool {
	return theory.MinHumidity <= env.Humidity && env.Humidity <= theory.MaxHumidity
}

func (env AmbientCondition) ValidPressure() bool {
	return theory.MinPressure <= env.Pressure && env.Pressure <= theory.MaxPressure
}

func (env AmbientCondition) ValidCO2MoleFraction() bool {
	return theory.MinCO2MoleFraction <= env.CO2MoleFraction && env.CO2MoleFraction <= theory.MaxCO2MoleFraction
}

// 4項目すべてが適用範囲内であるか
func (env AmbientCondition) Valid() bool {
	return env.ValidTemperature() &&
		env.ValidHumidity() &&
		env.ValidPressure() &&
		env.ValidCO2MoleFraction()
}

// 適用範囲外の項目をまとめてエラーとして返します。範囲内であれば nil を返します。
//
// Notes:
//
//	音速の計算自体は範囲外でも行えるため、呼び出し側で警告として扱うことを想定しています。
func (env AmbientCondition) Check() error {
	var fields []string
	if !env.ValidTemperature() {
		fields = append(fields, fmt.Sprintf("temperature=%g (%g-%g)", env.Temperature, theory.MinTemperature, theory.MaxTemperature))
	}
	if !env.ValidHumidity() {
		fields = append(fields, fmt.Sprintf("humidity=%g (%g-%g)", env.Humidity, theory.MinHumidity, theory.MaxHumidity))
	}
	if !env.ValidPressure() {
		fields = append(fields, fmt.Sprintf("pressure=%g (%g-%g)", env.Pressure, theory.MinPressure, theory.MaxPressure))
	}
	if !env.ValidCO2MoleFraction() {
		fields = append(fields, fmt.Sprintf("co2_mole_fraction=%g (%g-%g)", env.CO2MoleFraction, theory.MinCO2MoleFraction, theory.MaxCO2MoleFraction))
	}
	if len(fields) == 0 {
		return nil
	}
	return errors.WithMessage(ErrOutOfRange, strings.Join(fields, ", "))
}

// 適用範囲外
var ErrOutOfRange = errors.New("ambient condition out of range")
