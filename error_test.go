package pagechat_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagechat"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagechat.Errorf(pagechat.ETRANSPORT, "Request failed: %s", "timeout")

	assert.Equal(t, pagechat.ETRANSPORT, pagechat.ErrorCode(err))
	assert.Equal(t, "Request failed: timeout", pagechat.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagechat.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("ask: %w", pagechat.Errorf(pagechat.EQUOTA, "quota exceeded"))

	assert.Equal(t, pagechat.EQUOTA, pagechat.ErrorCode(err))
	assert.Equal(t, "quota exceeded", pagechat.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pagechat.EINTERNAL, pagechat.ErrorCode(err))
	assert.Equal(t, "boom", pagechat.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagechat.ErrorMessage(nil))
}

func TestReplyMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"config", pagechat.Errorf(pagechat.ECONFIG, "x"), "Gemini API is not configured. Please add your API key."},
		{"no context", pagechat.Errorf(pagechat.ENOCONTEXT, "x"), "No website content available. Please parse a website first!"},
		{"credentials", pagechat.Errorf(pagechat.ECREDENTIALS, "x"), "Invalid API key. Please check your Gemini API key."},
		{"safety", pagechat.Errorf(pagechat.ESAFETY, "x"), "Response blocked by safety filters. Try rephrasing your question."},
		{"quota", pagechat.Errorf(pagechat.EQUOTA, "x"), "API quota exceeded. Please try again later or check your Gemini API usage."},
		{"provider", pagechat.Errorf(pagechat.EPROVIDER, "connection reset"), "Error generating response: connection reset"},
		{"plain", errors.New("boom"), "Error generating response: boom"},
		{"transport", pagechat.Errorf(pagechat.ETRANSPORT, "Request failed: HTTP 404"), "Request failed: HTTP 404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagechat.ReplyMessage(tt.err))
		})
	}
}
