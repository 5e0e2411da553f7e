package formresponses

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

func valueToStr(resultVal interface{}) string {
	if resultVal == nil {
		return ""
	}

	switch colValue := resultVal.(type) {
	case string:
		return colValue
	case int:
		return strconv.Itoa(colValue)
	case int64:
		return strconv.FormatInt(colValue, 10)
	case float64:
		return strconv.FormatFloat(colValue, 'f', -1, 64)
	case []string:
		return joinItems(colValue)
	}

	jsonBytes, err := json.Marshal(resultVal)
	if err != nil {
		slog.Debug("error while converting column value", slog.String("error", err.Error()))
		return fmt.Sprintf("%v", resultVal)
	}
	return string(jsonBytes)
}
