package domain

import "time"

// RemoteWave is a wave record as the contract returns it.
type RemoteWave struct {
	Waver     string
	Timestamp int64
	Message   string
}

type Wave struct {
	Address   string    `json:"address"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// WaveFromRemote converts the contract's second-resolution timestamp to a time value.
func WaveFromRemote(r RemoteWave) Wave {
	return Wave{
		Address:   r.Waver,
		Timestamp: time.UnixMilli(r.Timestamp * 1000),
		Message:   r.Message,
	}
}

func WavesFromRemote(records []RemoteWave) []Wave {
	waves := make([]Wave, 0, len(records))
	for _, r := range records {
		waves = append(waves, WaveFromRemote(r))
	}

	return waves
}

// History is the ordered list of waves known to the client. Entries are
// positional: there is no key beyond insertion order and no deduplication.
type History struct {
	waves []Wave
}

func NewHistory(waves ...Wave) History {
	return History{waves: append([]Wave(nil), waves...)}
}

func (h *History) Replace(waves []Wave) {
	h.waves = append(make([]Wave, 0, len(waves)), waves...)
}

func (h *History) Append(waves ...Wave) {
	h.waves = append(h.waves, waves...)
}

func (h History) Len() int {
	return len(h.waves)
}

// Waves returns a copy of the entries.
func (h History) Waves() []Wave {
	return append([]Wave(nil), h.waves...)
}
