package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	calls    int
	response *llms.ContentResponse
	err      error
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.calls++
	return m.response, m.err
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	m.calls++
	return "", m.err
}

func textResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

func TestExplain_EmptyWord(t *testing.T) {
	model := &fakeModel{}
	svc := &Service{model: model}

	for _, word := range []string{"", "   ", "\n\t"} {
		_, err := svc.Explain(context.Background(), word)
		assert.ErrorIs(t, err, ErrEmptyWord, "word=%q", word)
	}

	// validation must short-circuit before the external call
	assert.Equal(t, 0, model.calls)
}

func TestExplain_Success(t *testing.T) {
	model := &fakeModel{response: textResponse("  корень «морковь» \n")}
	svc := &Service{model: model}

	text, err := svc.Explain(context.Background(), "морковь")
	require.NoError(t, err)
	assert.Equal(t, "корень «морковь»", text)
	assert.Equal(t, 1, model.calls)
}

func TestExplain_Unavailable(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	svc := &Service{model: model}

	_, err := svc.Explain(context.Background(), "слово")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExplain_MalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response *llms.ContentResponse
	}{
		{name: "no choices", response: &llms.ContentResponse{}},
		{name: "blank content", response: textResponse("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{model: &fakeModel{response: tt.response}}

			_, err := svc.Explain(context.Background(), "слово")
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}
