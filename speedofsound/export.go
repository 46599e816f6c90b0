package speedofsound

import (
	"bytes"
	"fmt"
	"strconv"
)

// CSV形式
func WriteCSV(buf *bytes.Buffer, results []Result) {
	buf.WriteString("temperature")
	buf.WriteString(",humidity")
	buf.WriteString(",pressure")
	buf.WriteString(",co2_mole_fraction")
	buf.WriteString(",exact")
	buf.WriteString(",approximate")
	buf.WriteString(",abs_error")
	buf.WriteString(",rel_error")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(results); i++ {
		buf.WriteString(strconv.FormatFloat(results[i].Condition.Temperature, 'f', -1, 64))
		writeFloat(results[i].Condition.Humidity)
		writeFloat(results[i].Condition.Pressure)
		writeFloat(results[i].Condition.CO2MoleFraction)
		writeFloat(results[i].Exact)
		writeFloat(results[i].Approximate)
		writeFloat(results[i].AbsError)
		writeFloat(results[i].RelError)
		buf.WriteString("\n")
	}
}

// 集計結果をテキストで出力
func WriteSummary(buf *bytes.Buffer, ref AmbientCondition, value float64, summary Summary) {
	buf.WriteString(fmt.Sprintf("reference: t=%g h=%g p=%g xc=%g c=%g\n",
		ref.Temperature, ref.Humidity, ref.Pressure, ref.CO2MoleFraction, value))
	buf.WriteString(fmt.Sprintf("count: %d\n", summary.Count))
	buf.WriteString(fmt.Sprintf("mean_rel_error: %g\n", summary.MeanRelError))
	buf.WriteString(fmt.Sprintf("max_rel_error: %g\n", summary.MaxRelError))
	buf.WriteString(fmt.Sprintf("max_abs_error: %g\n", summary.MaxAbsError))
	buf.WriteString(fmt.Sprintf("rms_abs_error: %g\n", summary.RMSAbsError))
}
