package utils

import "time"

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
	FileDateLayout = "2006-01-02"
)

// ParseDate interpreta datas no formato yyyy-mm-dd; texto vazio retorna a data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(FileDateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FileDate é a data usada no nome dos arquivos exportados
func FileDate(t time.Time) string {
	return t.Format(FileDateLayout)
}
