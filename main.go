// SpeedOfSound
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/speedofsound-go/speedofsound"
)

// コマンドライン引数
type options struct {
	temperature    *float64
	humidity       *float64
	pressure       *float64
	co2            *float64
	refTemperature *float64
	refHumidity    *float64
	refPressure    *float64
	refCO2         *float64
	configFile     *string
	mode           *string
	points         *int
	filename       *string
	log            *string
}

func newParser() (*argparse.Parser, *options) {
	parser := argparse.NewParser("SpeedOfSound", "Computes the speed of sound in humid, CO2-bearing air")
	opts := &options{}

	opts.temperature = parser.Float("t", "temperature", &argparse.Options{
		Help: "気温 [℃] (未指定の場合は基準条件の値)"})

	opts.humidity = parser.Float("", "humidity", &argparse.Options{
		Help: "相対湿度 [-] (0-1) (未指定の場合は基準条件の値)"})

	opts.pressure = parser.Float("p", "pressure", &argparse.Options{
		Help: "気圧 [Pa] (未指定の場合は基準条件の値)"})

	opts.co2 = parser.Float("", "co2", &argparse.Options{
		Help: "CO2モル分率 [-] (未指定の場合は基準条件の値)"})

	opts.refTemperature = parser.Float("", "ref_temperature", &argparse.Options{
		Help: "基準条件の気温 [℃] (未指定の場合は設定ファイルの値または20)"})

	opts.refHumidity = parser.Float("", "ref_humidity", &argparse.Options{
		Help: "基準条件の相対湿度 [-] (未指定の場合は設定ファイルの値または0.5)"})

	opts.refPressure = parser.Float("", "ref_pressure", &argparse.Options{
		Help: "基準条件の気圧 [Pa] (未指定の場合は設定ファイルの値または101325)"})

	opts.refCO2 = parser.Float("", "ref_co2", &argparse.Options{
		Help: "基準条件のCO2モル分率 [-] (未指定の場合は設定ファイルの値または0.000314)"})

	opts.configFile = parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "設定ファイル(YAML)のパス。指定した引数は設定ファイルの値より優先される"})

	opts.mode = parser.Selector("", "mode", []string{"exact", "approx", "sweep"}, &argparse.Options{
		Default: "exact",
		Help:    "計算モード 厳密式=exact(デフォルト), 1次近似=approx, 近似精度の評価=sweep"})

	opts.points = parser.Int("n", "points", &argparse.Options{
		Help: "sweepモードでの各項目の分割数 (未指定の場合は設定ファイルの値または5)"})

	opts.filename = parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	opts.log = parser.String("", "log", &argparse.Options{
		Validate: validateLogLevel,
		Help:     "ログレベルの設定 DEBUG, INFO, WARN, ERROR or CRITICAL (未指定の場合は設定ファイルの値またはERROR)"})

	return parser, opts
}

// 明示的に指定された引数だけを設定の上書きとして取り出します。
func (opts *options) overrides(parser *argparse.Parser) speedofsound.Overrides {
	parsed := map[string]bool{}
	for _, arg := range parser.GetArgs() {
		if arg.GetParsed() {
			parsed[arg.GetLname()] = true
		}
	}
	pick := func(name string, v *float64) *float64 {
		if parsed[name] {
			return v
		}
		return nil
	}

	var o speedofsound.Overrides
	o.Condition = speedofsound.ConditionConfig{
		Temperature:     pick("temperature", opts.temperature),
		Humidity:        pick("humidity", opts.humidity),
		Pressure:        pick("pressure", opts.pressure),
		CO2MoleFraction: pick("co2", opts.co2),
	}
	o.Reference = speedofsound.ConditionConfig{
		Temperature:     pick("ref_temperature", opts.refTemperature),
		Humidity:        pick("ref_humidity", opts.refHumidity),
		Pressure:        pick("ref_pressure", opts.refPressure),
		CO2MoleFraction: pick("ref_co2", opts.refCO2),
	}
	if parsed["points"] {
		o.Points = opts.points
	}
	if parsed["log"] {
		o.LogLevel = opts.log
	}
	return o
}

// 設定の読み込み
//
// Notes:
//
//	設定ファイルの読み込み中のログにも --log のレベルを反映させるため、読み込み前にレベルを設定します。
//	読み込み後は設定ファイルと引数を反映したレベルに設定し直します。
func loadConfig(logger logging.Logger, configFile string, o speedofsound.Overrides) (*speedofsound.Config, error) {
	level := speedofsound.DefaultLogLevel
	if o.LogLevel != nil {
		level = *o.LogLevel
	}
	setLogLevel(logger, level)

	var cfg *speedofsound.Config
	var err error
	if configFile != "" {
		cfg, err = speedofsound.LoadConfig(configFile, o)
	} else {
		cfg, err = speedofsound.ParseConfig(nil, o)
	}
	if err != nil {
		return nil, err
	}

	setLogLevel(logger, cfg.LogLevel)
	return cfg, nil
}

func main() {
	// コマンドライン引数の処理
	parser, opts := newParser()
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	logger := logging.GetLogger("speedofsound")

	// 基準条件と計算条件
	cfg, err := loadConfig(logger, *opts.configFile, opts.overrides(parser))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ref := cfg.Reference.Condition()
	envs := cfg.ConditionList()

	if err := ref.Check(); err != nil {
		logger.Warnf("基準条件: %v", err)
	}

	sos := speedofsound.NewAt(ref)
	logger.Debugf("基準条件の音速: %g m/s", sos.Value())

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *opts.mode {
	case "exact", "approx":
		for _, env := range envs {
			if err := env.Check(); err != nil {
				logger.Warnf("計算条件: %v", err)
			}
		}
		results := sos.EvaluateBatch(envs)
		if *opts.mode == "exact" {
			for _, r := range results {
				buf.WriteString(strconv.FormatFloat(r.Exact, 'f', -1, 64))
				buf.WriteString("\n")
			}
		} else {
			speedofsound.WriteCSV(buf, results)
		}
	case "sweep":
		lo, hi := speedofsound.Envelope()
		_, summary := speedofsound.Sweep(sos, speedofsound.Grid(lo, hi, *cfg.Points))
		logger.Infof("近似精度の評価が終了しました: %d 条件", summary.Count)
		speedofsound.WriteSummary(buf, sos.Reference(), sos.Value(), summary)
	}

	// 保存
	if *opts.filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *opts.filename)
		err := os.WriteFile(*opts.filename, buf.Bytes(), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Infof("計算が終了しました")
}

var logLevels = []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}

func validateLogLevel(args []string) error {
	for _, arg := range args {
		found := false
		for _, level := range logLevels {
			if arg == level {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("invalid log level %q, expected one of %v", arg, logLevels)
		}
	}
	return nil
}

// ログレベル設定
func setLogLevel(logger logging.Logger, level string) {
	if level == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if level == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if level == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if level == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if level == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}
}
