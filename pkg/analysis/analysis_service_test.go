package analysis

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/pkg/completion"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	replies  []string
	errs     []error
	requests []completion.Request
}

func (f *fakeClient) Complete(_ context.Context, req completion.Request) (string, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", errors.New("unexpected call")
}

type fakeLabels struct {
	labels []string
	err    error
}

func (f fakeLabels) DetectLabels(context.Context, []byte) ([]string, error) {
	return f.labels, f.err
}

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func TestAnalyzeDescription(t *testing.T) {
	client := &fakeClient{replies: []string{`{"name":"Chicken & Rice","calories":650,"protein":45,"carbs":70,"fats":15}`}}
	svc := NewAnalysisService(client, nil)

	res, err := svc.AnalyzeDescription(context.Background(), "200g chicken breast with rice")
	require.NoError(t, err)
	assert.Equal(t, domain.AnalysisResult{Name: "Chicken & Rice", Calories: 650, Protein: 45, Carbs: 70, Fats: 15}, res)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.True(t, req.JSON)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.3, *req.Temperature)
	assert.Contains(t, req.Prompt, "200g chicken breast with rice")
	assert.Empty(t, req.Images)
}

func TestAnalyzeDescription_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
		cause  error
	}{
		{"completion error", &fakeClient{errs: []error{domain.ErrCompletionFailed}}, domain.ErrCompletionFailed},
		{"missing credentials", &fakeClient{errs: []error{domain.ErrMissingCredentials}}, domain.ErrMissingCredentials},
		{"not json", &fakeClient{replies: []string{"I think it is about 500 kcal"}}, domain.ErrMalformedAnalysis},
		{"string numbers", &fakeClient{replies: []string{`{"name":"x","calories":"450"}`}}, domain.ErrMalformedAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalysisService(tt.client, nil).AnalyzeDescription(context.Background(), "eggs")
			assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestNarrate(t *testing.T) {
	client := &fakeClient{replies: []string{"  A bowl of oatmeal with banana, roughly 80g oats.  "}}
	svc := NewAnalysisService(client, fakeLabels{labels: []string{"Oatmeal", "Banana"}})

	narrative, err := svc.Narrate(context.Background(), completion.Image{MIMEType: "image/jpeg", Data: jpegBytes})
	require.NoError(t, err)
	assert.Equal(t, domain.Narrative("A bowl of oatmeal with banana, roughly 80g oats."), narrative)

	req := client.requests[0]
	assert.Equal(t, 500, req.MaxTokens)
	assert.False(t, req.JSON)
	require.Len(t, req.Images, 1)
	assert.Equal(t, jpegBytes, req.Images[0].Data)
	assert.Contains(t, req.Prompt, "Oatmeal, Banana")
}

func TestNarrate_LabelErrorIgnored(t *testing.T) {
	client := &fakeClient{replies: []string{"steak"}}
	svc := NewAnalysisService(client, fakeLabels{err: errors.New("throttled")})

	narrative, err := svc.Narrate(context.Background(), completion.Image{MIMEType: "image/jpeg", Data: jpegBytes})
	require.NoError(t, err)
	assert.Equal(t, domain.Narrative("steak"), narrative)
	assert.Equal(t, visionPrompt, client.requests[0].Prompt)
}

func TestNarrate_EmptyReply(t *testing.T) {
	svc := NewAnalysisService(&fakeClient{replies: []string{"   "}}, nil)
	_, err := svc.Narrate(context.Background(), completion.Image{MIMEType: "image/jpeg", Data: jpegBytes})
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestStructure(t *testing.T) {
	client := &fakeClient{replies: []string{`{"name":"Oatmeal","description":"Oats with banana","calories":420,"protein":14.5,"carbs":70,"fats":8}`}}
	svc := NewAnalysisService(client, nil)

	res, err := svc.Structure(context.Background(), "A bowl of oatmeal with banana")
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", res.Name)
	assert.Equal(t, "Oats with banana", res.Description)
	assert.Equal(t, 14.5, res.Protein)

	req := client.requests[0]
	assert.True(t, req.JSON)
	assert.Equal(t, "A bowl of oatmeal with banana", req.Prompt)
	assert.Empty(t, req.Images)
}

func TestAnalyzeImage_RunsStagesInOrder(t *testing.T) {
	client := &fakeClient{replies: []string{
		"Grilled salmon with asparagus",
		`{"name":"Salmon","description":"Grilled salmon","calories":500,"protein":40,"carbs":10,"fats":30}`,
	}}
	svc := NewAnalysisService(client, nil)

	res, err := svc.AnalyzeImage(context.Background(), "data:image/jpeg;base64,/9j/4AAQSkZJRg==")
	require.NoError(t, err)
	assert.Equal(t, "Salmon", res.Name)

	require.Len(t, client.requests, 2)
	assert.NotEmpty(t, client.requests[0].Images)
	assert.Equal(t, "Grilled salmon with asparagus", client.requests[1].Prompt)
}

func TestAnalyzeImage_NarrateFailureSkipsStructure(t *testing.T) {
	client := &fakeClient{errs: []error{domain.ErrCompletionFailed}}
	svc := NewAnalysisService(client, nil)

	_, err := svc.AnalyzeImage(context.Background(), "data:image/jpeg;base64,/9j/4AAQSkZJRg==")
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
	assert.Len(t, client.requests, 1)
}

func TestAnalyzeImage_InvalidImage(t *testing.T) {
	client := &fakeClient{}
	svc := NewAnalysisService(client, nil)

	_, err := svc.AnalyzeImage(context.Background(), "data:image/jpeg;base64,")
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.Empty(t, client.requests)
}
