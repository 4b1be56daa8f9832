package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson indenta um payload para os logs de depuração. Entradas que
// não são JSON válido voltam como texto cru, sem quebrar o log
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		marshaled, err := json.Marshal(in)
		if err != nil {
			return ""
		}
		raw = marshaled
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
