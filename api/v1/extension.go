package v1

import (
	"github.com/nonx2/yuuna-server/internal/models"
)

func (s *VTSStatus) FromModel(m models.VTSStatus) {
	s.Host = m.Settings.Host
	s.Port = m.Settings.Port
	s.Connected = m.Connected
	s.Authenticated = m.Authenticated
	s.HasToken = m.HasToken
}

func (l *HotkeyList) FromModel(hotkeys []models.Hotkey, err error) {
	l.Hotkeys = make([]map[string]any, 0, len(hotkeys))
	for _, h := range hotkeys {
		l.Hotkeys = append(l.Hotkeys, h)
	}
	if err != nil {
		msg := err.Error()
		l.Error = &msg
	}
}

func (r TTSRequest) ToModel() models.Speech {
	return models.Speech{Text: r.Text, Speaker: r.Speaker}
}
