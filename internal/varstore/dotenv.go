package varstore

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
)

// ImportDotenv reads a dotenv file and sets every entry, overwriting
// existing names.
func (s *Store) ImportDotenv(ctx context.Context, path string) (int, error) {
	entries, err := godotenv.Read(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read env file '%s': %w", path, err)
	}
	for k, v := range entries {
		if err := s.Set(ctx, k, v); err != nil {
			return 0, fmt.Errorf("env file '%s': %w", path, err)
		}
	}
	return len(entries), nil
}

// WriteDotenv writes every binding to w in dotenv format, sorted by name.
func (s *Store) WriteDotenv(ctx context.Context, w io.Writer) error {
	content, err := godotenv.Marshal(s.All(ctx))
	if err != nil {
		return fmt.Errorf("failed to encode variables: %w", err)
	}
	if content == "" {
		return nil
	}
	_, err = io.WriteString(w, content+"\n")
	return err
}

// ExportDotenv writes every binding to the file at path.
func (s *Store) ExportDotenv(ctx context.Context, path string) error {
	if err := godotenv.Write(s.All(ctx), path); err != nil {
		return fmt.Errorf("failed to write env file '%s': %w", path, err)
	}
	return nil
}
