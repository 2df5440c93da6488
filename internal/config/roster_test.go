package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRoster(t *testing.T) {
	t.Run("полный ростер", func(t *testing.T) {
		path := writeRoster(t, `
teams:
  - id: 1
    name: core
    members:
      775766895: "Кирилл Востриков"
      731869173: "Татьяна Воронкова"
    managers: [728631150, 775766895]
    digest_cron: "30 9 * * 1-5"
  - id: 2
    name: platform
    members:
      8134384275: "Кирилл 2"
    managers: [8134384275]
`)

		roster, err := LoadRoster(path)

		require.NoError(t, err)
		require.Len(t, roster.Teams, 2)
		assert.Equal(t, "Кирилл Востриков", roster.Teams[0].Members[775766895])
		assert.Equal(t, []int64{728631150, 775766895}, roster.Teams[0].Managers)
		assert.Equal(t, "30 9 * * 1-5", roster.Teams[0].DigestCron)
	})

	t.Run("расписание отчёта по умолчанию зависит от позиции команды", func(t *testing.T) {
		path := writeRoster(t, `
teams:
  - id: 1
    members: {1: "Анна"}
    managers: [2]
  - id: 2
    members: {3: "Пётр"}
    managers: [4]
`)

		roster, err := LoadRoster(path)

		require.NoError(t, err)
		assert.Equal(t, "30 9 * * 1-5", roster.Teams[0].DigestCron)
		assert.Equal(t, "0 11 * * 1-5", roster.Teams[1].DigestCron)
	})

	t.Run("поиск имени по всем командам", func(t *testing.T) {
		path := writeRoster(t, `
teams:
  - id: 1
    members: {1: "Анна"}
    managers: [2]
  - id: 2
    members: {3: "Пётр"}
    managers: [4]
`)

		roster, err := LoadRoster(path)
		require.NoError(t, err)

		name, ok := roster.Name(3)
		assert.True(t, ok)
		assert.Equal(t, "Пётр", name)

		_, ok = roster.Name(999)
		assert.False(t, ok)
	})

	t.Run("ростер без команд - ошибка", func(t *testing.T) {
		path := writeRoster(t, `teams: []`)

		_, err := LoadRoster(path)

		assert.Error(t, err)
	})

	t.Run("команда без участников - ошибка", func(t *testing.T) {
		path := writeRoster(t, `
teams:
  - id: 1
    members: {}
    managers: [2]
`)

		_, err := LoadRoster(path)

		assert.Error(t, err)
	})

	t.Run("команда без менеджеров - ошибка", func(t *testing.T) {
		path := writeRoster(t, `
teams:
  - id: 1
    members: {1: "Анна"}
    managers: []
`)

		_, err := LoadRoster(path)

		assert.Error(t, err)
	})

	t.Run("нет файла - ошибка", func(t *testing.T) {
		_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})
}
