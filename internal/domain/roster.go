package domain

type Team struct {
	ID         int
	Name       string
	Members    map[int64]string
	Managers   []int64
	DigestCron string
}

// Roster - статический список команд. Загружается один раз при старте
// и не меняется за время жизни процесса.
type Roster struct {
	Teams []Team
}

// Name возвращает отображаемое имя пользователя по chat_id
// среди всех команд.
func (r *Roster) Name(chatID int64) (string, bool) {
	for _, t := range r.Teams {
		if name, ok := t.Members[chatID]; ok {
			return name, true
		}
	}
	return "", false
}
