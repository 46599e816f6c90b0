package speedofsound

import (
	"os"

	"github.com/hhkbp2/go-logging"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel = "ERROR"
	DefaultPoints   = 5
)

// 周囲条件の設定。未設定の項目は FillDefaults で補います。
type ConditionConfig struct {
	Temperature     *float64 `yaml:"temperature,omitempty"`
	Humidity        *float64 `yaml:"humidity,omitempty"`
	Pressure        *float64 `yaml:"pressure,omitempty"`
	CO2MoleFraction *float64 `yaml:"co2_mole_fraction,omitempty"`
}

// 設定ファイル
type Config struct {
	LogLevel   string             `yaml:"log_level"`
	Points     *int               `yaml:"points,omitempty"` // 精度評価の分割数
	Reference  *ConditionConfig   `yaml:"reference"`
	Conditions []*ConditionConfig `yaml:"conditions"`
}

// コマンドライン引数などによる上書き。nil の項目は設定ファイルの値を保持します。
type Overrides struct {
	LogLevel  *string
	Points    *int
	Reference ConditionConfig // 基準条件
	Condition ConditionConfig // すべての計算条件に適用
}

func getPTR[T any](v T) *T {
	return &v
}

func NewConditionConfig(env AmbientCondition) *ConditionConfig {
	return &ConditionConfig{
		Temperature:     getPTR(env.Temperature),
		Humidity:        getPTR(env.Humidity),
		Pressure:        getPTR(env.Pressure),
		CO2MoleFraction: getPTR(env.CO2MoleFraction),
	}
}

// 未設定の項目を base の値で補います。
func (c *ConditionConfig) FillDefaults(base AmbientCondition) {
	if c.Temperature == nil {
		c.Temperature = getPTR(base.Temperature)
	}
	if c.Humidity == nil {
		c.Humidity = getPTR(base.Humidity)
	}
	if c.Pressure == nil {
		c.Pressure = getPTR(base.Pressure)
	}
	if c.CO2MoleFraction == nil {
		c.CO2MoleFraction = getPTR(base.CO2MoleFraction)
	}
}

// o で設定されている項目だけを上書きします。
func (c *ConditionConfig) Override(o *ConditionConfig) {
	if o.Temperature != nil {
		c.Temperature = getPTR(*o.Temperature)
	}
	if o.Humidity != nil {
		c.Humidity = getPTR(*o.Humidity)
	}
	if o.Pressure != nil {
		c.Pressure = getPTR(*o.Pressure)
	}
	if o.CO2MoleFraction != nil {
		c.CO2MoleFraction = getPTR(*o.CO2MoleFraction)
	}
}

// 周囲条件に変換します。FillDefaults 前の未設定項目は0となります。
func (c *ConditionConfig) Condition() AmbientCondition {
	var env AmbientCondition
	if c.Temperature != nil {
		env.Temperature = *c.Temperature
	}
	if c.Humidity != nil {
		env.Humidity = *c.Humidity
	}
	if c.Pressure != nil {
		env.Pressure = *c.Pressure
	}
	if c.CO2MoleFraction != nil {
		env.CO2MoleFraction = *c.CO2MoleFraction
	}
	return env
}

func defConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		Points:    getPTR(DefaultPoints),
		Reference: NewConditionConfig(NewAmbientCondition()),
	}
}

// 既定値の補完
//
// Notes:
//
//	基準条件の未設定項目は標準大気、計算条件の未設定項目は基準条件の値とします。
func (cfg *Config) FillDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Points == nil {
		cfg.Points = getPTR(DefaultPoints)
	}
	if cfg.Reference == nil {
		cfg.Reference = &ConditionConfig{}
	}
	cfg.Reference.FillDefaults(NewAmbientCondition())

	ref := cfg.Reference.Condition()
	for i, c := range cfg.Conditions {
		if c == nil {
			c = &ConditionConfig{}
			cfg.Conditions[i] = c
		}
		c.FillDefaults(ref)
	}
}

// 上書きの適用
//
// Notes:
//
//	FillDefaults より前に呼び出します。計算条件が1つもない場合は o.Condition を唯一の計算条件とします。
//	未設定の項目は FillDefaults で上書き後の基準条件から補われます。
func (cfg *Config) Apply(o Overrides) {
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.Points != nil {
		cfg.Points = getPTR(*o.Points)
	}

	if cfg.Reference == nil {
		cfg.Reference = &ConditionConfig{}
	}
	cfg.Reference.Override(&o.Reference)

	if len(cfg.Conditions) == 0 {
		c := &ConditionConfig{}
		c.Override(&o.Condition)
		cfg.Conditions = []*ConditionConfig{c}
		return
	}
	for i, c := range cfg.Conditions {
		if c == nil {
			c = &ConditionConfig{}
			cfg.Conditions[i] = c
		}
		c.Override(&o.Condition)
	}
}

// 計算条件の一覧
func (cfg *Config) ConditionList() []AmbientCondition {
	envs := make([]AmbientCondition, len(cfg.Conditions))
	for i, c := range cfg.Conditions {
		envs[i] = c.Condition()
	}
	return envs
}

// YAML形式の設定を読み込みます。overrides は既定値の補完より前に適用されます。
func ParseConfig(data []byte, overrides ...Overrides) (*Config, error) {
	cfg := defConfig()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	}
	for _, o := range overrides {
		cfg.Apply(o)
	}
	cfg.FillDefaults()
	return cfg, nil
}

// 設定ファイル path を読み込みます。ファイルが存在しない場合は既定値を返します。
func LoadConfig(path string, overrides ...Overrides) (*Config, error) {
	logger := logging.GetLogger("speedofsound")

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		logger.Infof("設定ファイルがないため既定値を使用します: %s", path)
		return ParseConfig(nil, overrides...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat config file %s", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("config file %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := ParseConfig(data, overrides...)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	logger.Infof("設定ファイル: %s", path)

	return cfg, nil
}
