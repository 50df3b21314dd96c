package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"estimatepro/internal/usecase/interfaces"
)

var ErrSurveySlugUnavailable = errors.New("could not allocate a unique survey slug")

const (
	slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugSuffixLength   = 4
	slugMaxAttempts    = 5
)

// newOpaqueToken returns a random url-safe token handed to clients.
// Only its hash is ever persisted.
func newOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// slugify lower-cases s and keeps ascii letters and digits, joining words with "-".
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		case r == '&':
			if b.Len() > 0 {
				b.WriteString("-and")
			}
			dash = true
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "builder"
	}
	return b.String()
}

func randomSlugSuffix() (string, error) {
	b := make([]byte, slugSuffixLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate slug suffix: %w", err)
	}
	for i := range b {
		b[i] = slugSuffixAlphabet[int(b[i])%len(slugSuffixAlphabet)]
	}
	return string(b), nil
}

// claimSurveySlug builds "<business-name>-<4 chars>" candidates and passes free ones to
// write, retrying while the slug is taken either on lookup or when write reports
// interfaces.ErrSurveySlugTaken.
func claimSurveySlug(ctx context.Context, repo interfaces.IBuilderRepository, businessName string, write func(slug string) error) error {
	base := slugify(businessName)
	for i := 0; i < slugMaxAttempts; i++ {
		suffix, err := randomSlugSuffix()
		if err != nil {
			return err
		}
		slug := base + "-" + suffix
		existing, err := repo.GetBySurveySlug(ctx, slug)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}
		if err := write(slug); !errors.Is(err, interfaces.ErrSurveySlugTaken) {
			return err
		}
	}
	return ErrSurveySlugUnavailable
}
