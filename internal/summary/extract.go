// Package summary выделяет из ответа бэкенда итоговую сводку.
package summary

import "strings"

// Маркер, которым промпт бэкенда помечает начало сводки.
const marker = "sum"

// Extract ищет маркер (без учёта регистра) и возвращает всё, что идёт
// после строки с маркером, с обрезанными краевыми пробелами.
//
// ok=false - маркера нет, это промежуточная реплика диалога.
// ok=true с пустой строкой - маркер есть, но после него ничего:
// финальный ход без содержимого, это не то же самое, что "маркера нет".
func Extract(reply string) (string, bool) {
	pos := strings.Index(strings.ToLower(reply), marker)
	if pos == -1 {
		return "", false
	}

	after := reply[pos:]
	lines := strings.Split(after, "\n")
	return strings.TrimSpace(strings.Join(lines[1:], "\n")), true
}
