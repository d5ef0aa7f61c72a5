package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  string
		retryable bool
	}{
		{"unauthorized", errors.New("API error: 401 Unauthorized"), "auth", false},
		{"bad key", errors.New("invalid api key provided"), "auth", false},
		{"rate limited", errors.New("429 rate limit reached"), "rate", true},
		{"server error", errors.New("500 internal server error"), "server", true},
		{"bad gateway", errors.New("received 502 from upstream"), "server", true},
		{"timeout", errors.New("context deadline exceeded"), "timeout", true},
		{"unknown", errors.New("connection reset by peer"), "provider", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("groq", tt.err)

			var auth *AuthenticationError
			var rate *RateLimitError
			var server *ServerError
			var timeout *RequestTimeoutError

			var got string
			switch {
			case errors.As(err, &auth):
				got = "auth"
			case errors.As(err, &rate):
				got = "rate"
			case errors.As(err, &server):
				got = "server"
			case errors.As(err, &timeout):
				got = "timeout"
			default:
				got = "provider"
			}
			if got != tt.wantType {
				t.Errorf("expected %s error, got %s (%v)", tt.wantType, got, err)
			}
			if IsRetryable(err) != tt.retryable {
				t.Errorf("expected retryable=%v, got %v", tt.retryable, IsRetryable(err))
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if err := Classify("groq", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestClassifyPreservesCause(t *testing.T) {
	cause := fmt.Errorf("401 unauthorized")
	err := Classify("openai", cause)
	if !errors.Is(err, cause) {
		t.Errorf("classified error should unwrap to the cause")
	}
}

func TestIsRetryableUnknownError(t *testing.T) {
	if IsRetryable(errors.New("plain error")) {
		t.Error("plain errors are not retryable")
	}
}

func TestProviderErrorMessage(t *testing.T) {
	err := Classify("groq", errors.New("429 rate limit reached"))
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	for _, want := range []string{"groq", "429", "retryable=true"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
