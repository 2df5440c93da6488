package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/poproshayka/standup-bot/internal/domain"
)

type rosterFile struct {
	Teams []rosterTeam `yaml:"teams"`
}

type rosterTeam struct {
	ID         int              `yaml:"id"`
	Name       string           `yaml:"name"`
	Members    map[int64]string `yaml:"members"`
	Managers   []int64          `yaml:"managers"`
	DigestCron string           `yaml:"digest_cron"`
}

// Расписания отчётов по умолчанию: первая команда — 09:30,
// вторая — 11:00, будни.
var defaultDigestCron = []string{
	"30 9 * * 1-5",
	"0 11 * * 1-5",
}

// LoadRoster читает список команд из YAML-файла. Список статический:
// загружается один раз при старте и дальше только читается.
func LoadRoster(path string) (*domain.Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("roster %s has no teams", path)
	}

	roster := &domain.Roster{}
	for i, t := range file.Teams {
		if len(t.Members) == 0 {
			return nil, fmt.Errorf("team %d has no members", t.ID)
		}
		if len(t.Managers) == 0 {
			return nil, fmt.Errorf("team %d has no managers", t.ID)
		}
		cronSpec := t.DigestCron
		if cronSpec == "" && i < len(defaultDigestCron) {
			cronSpec = defaultDigestCron[i]
		}
		if cronSpec == "" {
			return nil, fmt.Errorf("team %d has no digest_cron", t.ID)
		}
		roster.Teams = append(roster.Teams, domain.Team{
			ID:         t.ID,
			Name:       t.Name,
			Members:    t.Members,
			Managers:   t.Managers,
			DigestCron: cronSpec,
		})
	}

	return roster, nil
}
