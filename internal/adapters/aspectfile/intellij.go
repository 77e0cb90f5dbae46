package aspectfile

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const transformConcurrency = 8

// NewIntellijTransform returns a transform that converts intellij-info
// artifacts into the JSON form the parser consumes. Each artifact is
// rewritten next to its source file; artifacts that cannot be converted are
// logged and dropped so one broken target does not sink the whole
// resolution.
func NewIntellijTransform(logger ports.Logger) ports.TransformFunc {
	return func(ctx context.Context, paths []string) []string {
		results := make([]string, len(paths))

		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(transformConcurrency)
		for i, path := range paths {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return nil
				}
				converted, err := convertArtifact(path)
				if err != nil {
					logger.Warn("dropping unconvertible aspect artifact: " + err.Error())
					return nil
				}
				results[i] = converted
				return nil
			})
		}
		_ = eg.Wait()

		out := make([]string, 0, len(results))
		for _, path := range results {
			if path != "" {
				out = append(out, path)
			}
		}
		return out
	}
}

// convertArtifact parses one intellij-info file and writes the JSON
// rendition beside it, returning the JSON path.
func convertArtifact(path string) (string, error) {
	if !strings.HasSuffix(path, domain.IntellijInfoSuffix) {
		return "", zerr.With(zerr.New("unexpected artifact suffix"), "path", path)
	}

	file, err := os.Open(path) //nolint:gosec // paths come from the build tool
	if err != nil {
		return "", zerr.Wrap(err, "failed to open intellij-info artifact")
	}
	defer func() { _ = file.Close() }()

	var rec record
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseInfoLine(scanner.Text())
		if !ok {
			continue
		}
		switch key {
		case "label":
			rec.Label = value
		case "source":
			rec.Sources = append(rec.Sources, value)
		case "dep":
			rec.Deps = append(rec.Deps, value)
		case "generated":
			rec.GeneratedSources = append(rec.GeneratedSources, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read intellij-info artifact"), "path", path)
	}
	if rec.Label == "" {
		return "", zerr.With(zerr.New("intellij-info artifact carries no label"), "path", path)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode aspect artifact")
	}

	out := strings.TrimSuffix(path, domain.IntellijInfoSuffix) + domain.ArtifactSuffix
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write aspect artifact"), "path", out)
	}
	return out, nil
}

// parseInfoLine splits a `key: "value"` line from an intellij-info file.
func parseInfoLine(line string) (key, value string, ok bool) {
	key, rest, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSpace(rest)
	if unquoted, err := strconv.Unquote(rest); err == nil {
		rest = unquoted
	}
	if rest == "" {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
