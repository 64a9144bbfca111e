/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/valpere/notedoc/internal/config"
	"github.com/valpere/notedoc/internal/logging"
	"github.com/valpere/notedoc/internal/translate"
)

// loadConfig resolves file/env configuration and builds the logger; the
// --log-level flag wins over the configured level.
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return cfg, logging.New(level), nil
}

// firstNonEmpty returns the flag value when set, otherwise the configured
// fallback.
func firstNonEmpty(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// readNote loads the note body, optionally translating it before parsing.
func readNote(ctx context.Context, path, translateTo, credentials string, logger *log.Logger) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	text := string(raw)

	if translateTo != "" {
		translated, err := translate.Text(ctx, translate.Config{Credentials: credentials}, text, translateTo)
		if err != nil {
			return "", fmt.Errorf("failed to translate note: %w", err)
		}
		logger.Info("translated note", "file", path, "target", translateTo)
		text = translated
	}

	return text, nil
}
