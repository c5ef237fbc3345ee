package helpers

import (
	"context"
	"errors"
	"sync"

	"riskscreen_backend/internal/auth"
)

// FakeVerifier is an in-memory IDTokenVerifier. Tests register a credential
// string with the claims it should verify to; anything else fails the way a
// forged token would.
type FakeVerifier struct {
	mu     sync.Mutex
	tokens map[string]auth.GoogleClaims
}

func NewFakeVerifier() *FakeVerifier {
	return &FakeVerifier{tokens: make(map[string]auth.GoogleClaims)}
}

func (f *FakeVerifier) Register(credential string, claims auth.GoogleClaims) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[credential] = claims
}

func (f *FakeVerifier) Verify(_ context.Context, credential string) (*auth.GoogleClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[credential]
	if !ok {
		return nil, errors.New("credential verification failed")
	}
	return &claims, nil
}
