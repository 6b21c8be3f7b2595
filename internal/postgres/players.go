package postgres

import (
	"bytes"
	"encoding/json"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"log/slog"
)

// label is a display name stored either as a plain string or as an object carrying a name or title.
type label string

func (l *label) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = label(s)
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "decode label", slog.String("raw", string(data)))
	}
	*l = label(obj.Name)
	if obj.Name == "" {
		*l = label(obj.Title)
	}
	return nil
}

// storedPlayer accepts summaries written by this server as well as rows holding full player objects.
type storedPlayer struct {
	models.PlayerSummary
	Job         label   `json:"job"`
	Goal        label   `json:"goal"`
	LifeGoal    label   `json:"lifeGoal"`
	Investments []label `json:"investments"`
}

func decodePlayers(raw []byte) ([]models.PlayerSummary, error) {
	var stored []storedPlayer
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "decode players")
	}
	players := make([]models.PlayerSummary, 0, len(stored))
	for _, sp := range stored {
		p := sp.PlayerSummary
		p.Job = string(sp.Job)
		p.Goal = string(sp.Goal)
		if p.Goal == "" {
			p.Goal = string(sp.LifeGoal)
		}
		p.Investments = nil
		for _, inv := range sp.Investments {
			p.Investments = append(p.Investments, string(inv))
		}
		players = append(players, p)
	}
	return players, nil
}
