package advice

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Fallback strings returned when the collaborator fails. Fixed contract:
// the caller never sees the underlying error.
const (
	adviceFallback = "Could not generate advice at this time."
)

// Service shapes clinic prompts for the text generator.
type Service struct {
	gen TextGenerator
	log zerolog.Logger
}

// NewService creates an advice service over a generator.
func NewService(gen TextGenerator, log zerolog.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// HealthAdvice returns short lifestyle/dietary recommendations for a visit.
// On generator failure it returns the fixed fallback text.
func (s *Service) HealthAdvice(ctx context.Context, symptoms, diagnosis string) string {
	prompt := fmt.Sprintf(`You are a helpful medical assistant for a Homeopathy doctor (BHMS).
The patient has the following symptoms: %q.
The doctor's diagnosis is: %q.

Please provide 3 short, bulleted lifestyle or dietary recommendations for the patient to speed up recovery.
Keep it friendly and professional. Do not prescribe medicine.`, symptoms, diagnosis)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("health advice generation failed")
		return adviceFallback
	}
	return text
}

// SummarizeNotes condenses raw clinical notes. On failure the raw notes
// come back unchanged.
func (s *Service) SummarizeNotes(ctx context.Context, rawNotes string) string {
	prompt := fmt.Sprintf(`Summarize the following clinical notes into a concise, professional medical format suitable for a patient history record.
Notes: %q`, rawNotes)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("notes summarization failed")
		return rawNotes
	}
	return text
}
