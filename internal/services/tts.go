package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nonx2/yuuna-server/internal/config"
	"github.com/nonx2/yuuna-server/internal/models"
)

// TTSService forwards synthesis requests to a VOICEVOX engine.
type TTSService struct {
	client         *http.Client
	baseURL        string
	defaultSpeaker int
}

func NewTTSService(cfg config.TTS) *TTSService {
	return &TTSService{
		client:         &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		defaultSpeaker: cfg.DefaultSpeaker,
	}
}

// Synthesize runs VOICEVOX's audio_query then synthesis steps and returns the WAV audio.
func (t *TTSService) Synthesize(ctx context.Context, speech models.Speech) (*models.Audio, error) {
	if speech.Text == "" {
		return nil, ErrEmptyText
	}
	id := t.defaultSpeaker
	if speech.Speaker != nil {
		id = *speech.Speaker
	}
	speaker := strconv.Itoa(id)

	query, err := t.post(ctx, "audio_query", url.Values{"text": {speech.Text}, "speaker": {speaker}}, nil)
	if err != nil {
		t.record(err)
		return nil, err
	}

	wav, err := t.post(ctx, "synthesis", url.Values{"speaker": {speaker}}, query)
	if err != nil {
		t.record(err)
		return nil, err
	}

	t.record(nil)
	zap.S().Named("tts").Debugw("speech synthesized", "speaker", id, "bytes", len(wav))

	return &models.Audio{MimeType: "audio/wav", Data: wav}, nil
}

func (t *TTSService) post(ctx context.Context, stage string, params url.Values, body []byte) ([]byte, error) {
	u := fmt.Sprintf("%s/%s?%s", t.baseURL, stage, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &EngineError{Stage: stage, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

func (t *TTSService) record(err error) {
	result := resultOK
	switch {
	case errors.Is(err, ErrEngineUnavailable):
		result = "unavailable"
	case err != nil:
		result = "engine_error"
	}
	metrics.ttsRequestCounter.WithLabelValues(result).Inc()
}
