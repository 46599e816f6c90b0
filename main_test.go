package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hhkbp2/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/udawtr/speedofsound-go/speedofsound"
)

// 出力されたログのメッセージを記録するハンドラ
type recordHandler struct {
	*logging.BaseHandler
	messages []string
}

func newRecordHandler() *recordHandler {
	return &recordHandler{BaseHandler: logging.NewBaseHandler("", logging.LevelDebug)}
}

func (h *recordHandler) Emit(record *logging.LogRecord) error {
	h.messages = append(h.messages, record.GetMessage())
	return nil
}

func (h *recordHandler) Handle(record *logging.LogRecord) int {
	return h.BaseHandler.Handle2(h, record)
}

func parseArgs(t *testing.T, args ...string) (speedofsound.Overrides, *options) {
	parser, opts := newParser()
	err := parser.Parse(append([]string{"speedofsound"}, args...))
	assert.NoError(t, err)
	return opts.overrides(parser), opts
}

// 指定した引数だけが上書きとなる
func Test_overrides(t *testing.T) {
	o, _ := parseArgs(t, "--mode", "approx", "-t", "10", "--ref_temperature", "5")
	assert.Equal(t, 10.0, *o.Condition.Temperature)
	assert.Nil(t, o.Condition.Humidity)
	assert.Nil(t, o.Condition.Pressure)
	assert.Nil(t, o.Condition.CO2MoleFraction)
	assert.Equal(t, 5.0, *o.Reference.Temperature)
	assert.Nil(t, o.Reference.Humidity)
	assert.Nil(t, o.Points)
	assert.Nil(t, o.LogLevel)

	o, _ = parseArgs(t, "-n", "3", "--log", "DEBUG", "--ref_co2", "0")
	assert.Equal(t, 3, *o.Points)
	assert.Equal(t, "DEBUG", *o.LogLevel)
	assert.Equal(t, 0.0, *o.Reference.CO2MoleFraction)
	assert.Nil(t, o.Condition.Temperature)
}

// 引数なしでは標準大気を基準条件とし、計算条件も標準大気
func Test_loadConfig_Default(t *testing.T) {
	o, opts := parseArgs(t)
	cfg, err := loadConfig(logging.GetLogger("speedofsound"), *opts.configFile, o)
	assert.NoError(t, err)
	assert.Equal(t, speedofsound.NewAmbientCondition(), cfg.Reference.Condition())
	assert.Equal(t, []speedofsound.AmbientCondition{speedofsound.NewAmbientCondition()}, cfg.ConditionList())
	assert.Equal(t, speedofsound.DefaultPoints, *cfg.Points)
}

// 設定ファイルがなくても基準条件の引数は反映される
func Test_loadConfig_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	o, opts := parseArgs(t, "--mode", "approx", "-c", missing, "-t", "10", "--ref_temperature", "5")
	cfg, err := loadConfig(logging.GetLogger("speedofsound"), *opts.configFile, o)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Reference.Condition().Temperature)
	assert.Equal(t, []speedofsound.AmbientCondition{
		{Temperature: 10, Humidity: 0.5, Pressure: 101325, CO2MoleFraction: 0.000314},
	}, cfg.ConditionList())
}

// 引数は設定ファイルの値より優先される
func Test_loadConfig_FlagsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "points: 3\nreference:\n  temperature: 25\nconditions:\n  - {temperature: 30}\n  - {humidity: 0.2}\n"
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	o, opts := parseArgs(t, "-c", path, "-p", "90000", "--ref_humidity", "0.8", "-n", "4")
	cfg, err := loadConfig(logging.GetLogger("speedofsound"), *opts.configFile, o)
	assert.NoError(t, err)
	assert.Equal(t, 4, *cfg.Points)
	assert.Equal(t, speedofsound.AmbientCondition{Temperature: 25, Humidity: 0.8, Pressure: 101325, CO2MoleFraction: 0.000314}, cfg.Reference.Condition())
	assert.Equal(t, []speedofsound.AmbientCondition{
		{Temperature: 30, Humidity: 0.8, Pressure: 90000, CO2MoleFraction: 0.000314},
		{Temperature: 25, Humidity: 0.2, Pressure: 90000, CO2MoleFraction: 0.000314},
	}, cfg.ConditionList())
}

// --log のレベルは設定ファイル読み込み中のログにも反映される
func Test_loadConfig_LogLevel(t *testing.T) {
	logger := logging.GetLogger("speedofsound")
	handler := newRecordHandler()
	logger.AddHandler(handler)
	defer logger.RemoveHandler(handler)

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("log_level: ERROR\n"), 0644))

	o, opts := parseArgs(t, "-c", path, "--log", "INFO")
	_, err := loadConfig(logger, *opts.configFile, o)
	assert.NoError(t, err)
	assert.Contains(t, handler.messages, "設定ファイル: "+path)
	assert.Equal(t, logging.LevelInfo, logger.GetLevel())

	// --log がなければ設定ファイルのレベル
	handler.messages = nil
	o, opts = parseArgs(t, "-c", path)
	_, err = loadConfig(logger, *opts.configFile, o)
	assert.NoError(t, err)
	assert.Empty(t, handler.messages)
	assert.Equal(t, logging.LevelError, logger.GetLevel())
}

func Test_validateLogLevel(t *testing.T) {
	assert.NoError(t, validateLogLevel([]string{"DEBUG"}))
	assert.Error(t, validateLogLevel([]string{"VERBOSE"}))

	parser, _ := newParser()
	assert.Error(t, parser.Parse([]string{"speedofsound", "--log", "VERBOSE"}))
}
