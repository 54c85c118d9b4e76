package analysis

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/pkg/completion"
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type (
	AnalysisService interface {
		// AnalyzeDescription estimates macros for a free-text meal description.
		AnalyzeDescription(ctx context.Context, description string) (domain.AnalysisResult, error)
		// AnalyzeImage runs Narrate then Structure on an encoded photo.
		AnalyzeImage(ctx context.Context, encoded string) (domain.AnalysisResult, error)
		Narrate(ctx context.Context, image completion.Image) (domain.Narrative, error)
		Structure(ctx context.Context, narrative domain.Narrative) (domain.AnalysisResult, error)
	}

	analysisService struct {
		client completion.Client
		labels LabelDetector
	}
)

// NewAnalysisService accepts a nil LabelDetector when label hints are disabled.
func NewAnalysisService(client completion.Client, labels LabelDetector) AnalysisService {
	return &analysisService{
		client: client,
		labels: labels,
	}
}

func (s *analysisService) AnalyzeDescription(ctx context.Context, description string) (domain.AnalysisResult, error) {
	reply, err := s.client.Complete(ctx, completion.Request{
		System:      textSystemPrompt,
		Prompt:      textPrompt(description),
		JSON:        true,
		Temperature: completion.Temperature(textTemperature),
	})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	result, err := ParseResult(reply)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}
	return result, nil
}

func (s *analysisService) AnalyzeImage(ctx context.Context, encoded string) (domain.AnalysisResult, error) {
	image, err := DecodeImage(encoded)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	narrative, err := s.Narrate(ctx, image)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	return s.Structure(ctx, narrative)
}

func (s *analysisService) Narrate(ctx context.Context, image completion.Image) (domain.Narrative, error) {
	if len(image.Data) == 0 {
		return "", fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, domain.ErrInvalidImage)
	}

	prepared := PrepareImage(image)

	var hints []string
	if s.labels != nil {
		labels, err := s.labels.DetectLabels(ctx, prepared.Data)
		if err != nil {
			log.Errorf("label detection skipped: %v", err)
		} else {
			hints = labels
		}
	}

	reply, err := s.client.Complete(ctx, completion.Request{
		System:    visionSystemPrompt,
		Prompt:    visionPromptWithHints(hints),
		Images:    []completion.Image{prepared},
		MaxTokens: visionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	narrative := strings.TrimSpace(reply)
	if narrative == "" {
		return "", fmt.Errorf("%w: empty narrative", domain.ErrAnalysisFailed)
	}

	return domain.Narrative(narrative), nil
}

func (s *analysisService) Structure(ctx context.Context, narrative domain.Narrative) (domain.AnalysisResult, error) {
	reply, err := s.client.Complete(ctx, completion.Request{
		System: structureSystemPrompt,
		Prompt: string(narrative),
		JSON:   true,
	})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	result, err := ParseResult(reply)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	return result, nil
}
