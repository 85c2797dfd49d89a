package markov

import (
	"context"
	"log/slog"
)

// GenerateStream walks the chain like Generate but delivers tokens one at a
// time on the returned channel, seed tokens first. The channel is closed once
// generation is complete or the context is cancelled.
//
// Seed and empty-model errors are returned before any token is produced.
func (m *Model) GenerateStream(ctx context.Context, opts ...GenerateOption) (<-chan Token, error) {
	options := newGenerateOptions(opts)

	w, err := m.startWalk(options)
	if err != nil {
		return nil, err
	}

	tokenChan := make(chan Token)

	go func() {
		defer close(tokenChan)

		for _, text := range w.words {
			select {
			case <-ctx.Done():
				return
			case tokenChan <- Token{Text: text, Seed: true}:
			}
		}

		for len(w.words) < options.length {
			select {
			case <-ctx.Done():
				m.logger.DebugContext(ctx, "Generation stream cancelled by context",
					slog.Int("generated_length", len(w.words)),
				)
				return
			default:
				// continue
			}

			text, ok := w.step()
			if !ok {
				m.logger.DebugContext(ctx, "Generation stream terminated due to dead-end",
					slog.String("last_state", string(w.state)),
					slog.Int("generated_length", len(w.words)),
				)
				return
			}

			select {
			case <-ctx.Done():
				return
			case tokenChan <- Token{Text: text}:
			}
		}
	}()

	return tokenChan, nil
}
