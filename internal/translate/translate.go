// Package translate runs a note body through Google Cloud Translation
// before it is parsed, for pushing notes in a different language than they
// were written in.
package translate

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type Config struct {
	// Credentials is a path to a Google Cloud credentials file. Empty means
	// Application Default Credentials.
	Credentials string `mapstructure:"credentials" json:"credentials"`
}

// Text translates text into targetLang. The result is requested in plain
// text format so markdown control characters survive untouched.
func Text(ctx context.Context, cfg Config, text, targetLang string) (string, error) {
	targetTag, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{text}, targetTag, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return translations[0].Text, nil
}
