package services

import (
	"time"
)

// DisplayTimeLayout задает формат вывода меток времени в документе.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// Метки времени прибытия в экспорте: с долями секунды и без них,
// обе в UTC с суффиксом Z.
var arrivalLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseArrivalTime разбирает метку времени прибытия и переводит ее в
// локальное время хоста. Для неразбираемых значений возвращает nil,
// ошибок не бывает.
func ParseArrivalTime(ts string) *time.Time {
	for _, layout := range arrivalLayouts {
		if parsed, err := time.Parse(layout, ts); err == nil {
			local := parsed.In(time.Local)
			return &local
		}
	}
	return nil
}

// FormatLocal форматирует локальное время для вывода в документ.
func FormatLocal(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}
