package shopadsclient

import (
	"context"
	"sync"
	"time"
)

// RateLimiter impõe um teto de requisições por janela deslizante, com um
// limitador independente por loja. Uma chamada acima do teto nunca é
// descartada: ela espera o tempo exato para o timestamp mais antigo sair da
// janela e tenta de novo, em laço explícito (sem recursão).
type RateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    map[string][]time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make(map[string][]time.Time),
	}
}

// Acquire bloqueia até haver orçamento de requisições para a loja, ou até o
// contexto ser cancelado. É seguro sob chamadas concorrentes para a mesma
// loja: o mapa de limitadores é o único estado compartilhado do cliente.
func (l *RateLimiter) Acquire(ctx context.Context, storeID string) error {
	for {
		wait, ok := l.tryAcquire(storeID)
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire registra a requisição se houver orçamento; caso contrário devolve
// quanto falta para o timestamp mais antigo expirar
func (l *RateLimiter) tryAcquire(storeID string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	timestamps := l.requests[storeID]
	pruned := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) < l.maxRequests {
		l.requests[storeID] = append(pruned, now)
		return 0, true
	}

	l.requests[storeID] = pruned

	wait := pruned[0].Add(l.window).Sub(now)
	if wait <= 0 {
		wait = time.Millisecond
	}
	return wait, false
}

// InFlight devolve quantas requisições da loja ainda estão dentro da janela
func (l *RateLimiter) InFlight(storeID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.window)
	count := 0
	for _, ts := range l.requests[storeID] {
		if ts.After(cutoff) {
			count++
		}
	}
	return count
}
