package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

const (
	DefaultSeparator   = "-"
	DefaultChunkLength = 6
	DefaultChunkCount  = 6
)

// DerivationRequest carries everything Derive needs. Counter is always 0 in
// current callers but any value is accepted.
type DerivationRequest struct {
	Username    string
	Secret      string
	Service     string
	Counter     uint64
	ChunkCount  int
	ChunkLength int
	Separator   string
}

func NewDerivationRequest(credential Credential, service string, counter uint64, layout ChunkLayout) DerivationRequest {
	return DerivationRequest{
		Username:    credential.Username,
		Secret:      credential.Secret,
		Service:     service,
		Counter:     counter,
		ChunkCount:  layout.Count,
		ChunkLength: layout.Length,
		Separator:   layout.Separator,
	}
}

func (r DerivationRequest) Validate() error {
	return r.Layout().Validate()
}

func (r DerivationRequest) Layout() ChunkLayout {
	return ChunkLayout{Count: r.ChunkCount, Length: r.ChunkLength, Separator: r.Separator}
}

// ChunkLayout controls how the cleaned digest is cut and joined.
type ChunkLayout struct {
	Count     int
	Length    int
	Separator string
}

func DefaultChunkLayout() ChunkLayout {
	return ChunkLayout{
		Count:     DefaultChunkCount,
		Length:    DefaultChunkLength,
		Separator: DefaultSeparator,
	}
}

func (l ChunkLayout) Validate() error {
	var errs []error
	if l.Count < 0 {
		errs = append(errs, errors.New("chunk count must not be negative"))
	}
	if l.Length < 0 {
		errs = append(errs, errors.New("chunk length must not be negative"))
	}
	if len(errs) == 0 {
		return nil
	}

	return errors.Join(append([]error{ErrInvalidLayout}, errs...)...)
}

// CanonicalSource is the string that gets hashed.
func CanonicalSource(r DerivationRequest) string {
	return strings.Join([]string{
		r.Username,
		r.Secret,
		r.Service,
		strconv.FormatUint(r.Counter, 10),
	}, ":")
}

// Derive computes the password for r. The result depends only on the request
// fields. Negative chunk geometry is treated as zero.
func Derive(r DerivationRequest) string {
	cleaned := cleanedDigest(CanonicalSource(r))

	count := max(r.ChunkCount, 0)
	length := max(r.ChunkLength, 0)

	chunks := make([]string, count)
	for i := range chunks {
		chunks[i] = sliceClamped(cleaned, i*length, (i+1)*length)
	}

	return strings.Join(chunks, r.Separator)
}

func cleanedDigest(source string) string {
	digest := sha256.Sum256([]byte(source))
	encoded := base64.StdEncoding.EncodeToString(digest[:])

	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		if isASCIIAlphanumeric(encoded[i]) {
			b.WriteByte(encoded[i])
		}
	}

	return b.String()
}

func isASCIIAlphanumeric(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func sliceClamped(s string, start, stop int) string {
	if start >= len(s) {
		return ""
	}
	if stop > len(s) {
		stop = len(s)
	}

	return s[start:stop]
}
