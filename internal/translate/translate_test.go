package translate

import (
	"context"
	"testing"
)

func TestText_InvalidTargetLanguage(t *testing.T) {
	_, err := Text(context.Background(), Config{}, "hello", "!!bad-tag!!")
	if err == nil {
		t.Error("expected error for invalid target language")
	}
}
