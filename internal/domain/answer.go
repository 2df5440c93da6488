package domain

import "time"

// DayFormat - формат ключа дня (дата в часовом поясе бота).
const DayFormat = "2006-01-02"

type Answer struct {
	ID        int64
	Day       time.Time
	ChatID    int64
	Name      string
	Summary   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayAnswer - компактная запись ответа за день, в таком виде
// она лежит в кэше и попадает в отчёт.
type DayAnswer struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func DayKey(day time.Time) string {
	return day.Format(DayFormat)
}
