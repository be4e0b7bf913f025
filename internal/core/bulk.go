package core

import (
	"context"
	"sync"
)

const defaultConcurrency = 15

// BulkParse parses many .SRCINFO texts in parallel, keyed by caller-chosen
// names such as a pkgbase or a file path. Every parsed input gets a result,
// partial or complete. Inputs not started before ctx is done are omitted.
func BulkParse(ctx context.Context, texts map[string]string) map[string]ParseResult {
	return defaultParser.BulkParseWithConcurrency(ctx, texts, defaultConcurrency)
}

// BulkParse parses many texts in parallel with p's options.
func (p *Parser) BulkParse(ctx context.Context, texts map[string]string) map[string]ParseResult {
	return p.BulkParseWithConcurrency(ctx, texts, defaultConcurrency)
}

// BulkParseWithConcurrency parses texts with a custom concurrency limit.
func (p *Parser) BulkParseWithConcurrency(ctx context.Context, texts map[string]string, concurrency int) map[string]ParseResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make(map[string]ParseResult, len(texts))
	var mu sync.Mutex
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for key, text := range texts {
		wg.Add(1)
		go func(key, text string) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}
			if ctx.Err() != nil {
				return
			}

			res := p.Parse(text)
			mu.Lock()
			results[key] = res
			mu.Unlock()
		}(key, text)
	}

	wg.Wait()
	return results
}
