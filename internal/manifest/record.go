package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingTranslation = errors.New("missing translation")
	ErrMissingAudioPath   = errors.New("missing audio path")
)

// Chunk is one line of a transcript/audio-chunk input file.
type Chunk struct {
	Sentence    string   `json:"sentence"`
	Translation string   `json:"translation"`
	Audio       AudioRef `json:"audio"`
}

// AudioRef points at the audio clip backing a chunk.
type AudioRef struct {
	Path string `json:"path"`
}

// Record is one line of the output manifest: a source utterance paired with
// its target translation under a shared identifier.
type Record struct {
	Source Source `json:"source"`
	Target Target `json:"target"`
}

// Source carries the audio side of a record.
type Source struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Lang           string `json:"lang"`
	AudioLocalPath string `json:"audio_local_path"`
	SamplingRate   int    `json:"sampling_rate"`
}

// Target carries the translation side of a record.
type Target struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// NewRecord builds a manifest record from a parsed chunk. The sentence may be
// empty; translation and audio path are required.
func NewRecord(chunk Chunk, sourceLang, targetLang string, samplingRate int) (Record, error) {
	if strings.TrimSpace(chunk.Translation) == "" {
		return Record{}, ErrMissingTranslation
	}
	if strings.TrimSpace(chunk.Audio.Path) == "" {
		return Record{}, ErrMissingAudioPath
	}

	id := uuid.NewString()
	return Record{
		Source: Source{
			ID:             id,
			Text:           chunk.Sentence,
			Lang:           sourceLang,
			AudioLocalPath: chunk.Audio.Path,
			SamplingRate:   samplingRate,
		},
		Target: Target{
			ID:   id,
			Text: chunk.Translation,
			Lang: targetLang,
		},
	}, nil
}

// Check verifies the structural invariants of an existing manifest record.
func (r Record) Check() error {
	if r.Source.ID == "" || r.Target.ID == "" {
		return errors.New("missing record id")
	}
	if r.Source.ID != r.Target.ID {
		return fmt.Errorf("source id %s does not match target id %s", r.Source.ID, r.Target.ID)
	}
	if strings.TrimSpace(r.Source.AudioLocalPath) == "" {
		return ErrMissingAudioPath
	}
	if strings.TrimSpace(r.Target.Text) == "" {
		return ErrMissingTranslation
	}
	if r.Source.SamplingRate <= 0 {
		return fmt.Errorf("sampling rate must be positive, got %d", r.Source.SamplingRate)
	}
	if strings.TrimSpace(r.Source.Lang) == "" || strings.TrimSpace(r.Target.Lang) == "" {
		return errors.New("missing language code")
	}
	return nil
}
