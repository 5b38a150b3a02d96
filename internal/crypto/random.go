package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	mrand "math/rand/v2"
	"sync"
	"time"

	"golang.org/x/crypto/chacha20"
)

// Source kinds accepted by NewSource.
const (
	SourceCrypto = "crypto"
	SourceWeak   = "weak"
	SourceSeeded = "seeded"
)

// SeedSize is the number of bytes a SeededSource needs.
const SeedSize = chacha20.KeySize

var (
	ErrUnknownSource  = errors.New("unknown random source")
	ErrCryptoUnusable = errors.New("crypto/rand is not usable")
	ErrInvalidSeed    = errors.New("seed must be 32 bytes of hex")
)

// RandomSource draws uniform integers for the generator.
type RandomSource interface {
	// IntN returns a uniform random integer in [0, n).
	IntN(n int) (int, error)
	// Secure reports whether output is unpredictable to an attacker.
	Secure() bool
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

// IntN picks a uniform integer using crypto/rand.
func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: range must be positive, got %d", ErrInvalidInput, n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func (CryptoSource) Secure() bool { return true }

// WeakSource is a non-cryptographic PRNG. Passwords drawn from it can be
// predicted by anyone able to recover the PCG state, so it is only used when
// the configuration explicitly opts in.
type WeakSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewWeakSource seeds a PCG generator from the clock.
func NewWeakSource() *WeakSource {
	now := uint64(time.Now().UnixNano())
	return &WeakSource{rng: mrand.New(mrand.NewPCG(now, now>>32|now<<32))}
}

func (s *WeakSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: range must be positive, got %d", ErrInvalidInput, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

func (s *WeakSource) Secure() bool { return false }

// SeededSource is a deterministic ChaCha20 keystream. The same seed always
// yields the same sequence.
type SeededSource struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	buf    [8]byte
}

// NewSeededSource builds a SeededSource from a 32-byte seed.
func NewSeededSource(seed []byte) (*SeededSource, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed, nonce)
	if err != nil {
		return nil, fmt.Errorf("creating keystream: %w", err)
	}
	return &SeededSource{cipher: c}, nil
}

// IntN uses rejection sampling so every value in [0, n) is equally likely.
func (s *SeededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: range must be positive, got %d", ErrInvalidInput, n)
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		v := s.next()
		if v < limit {
			return int(v % bound), nil
		}
	}
}

func (s *SeededSource) next() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *SeededSource) Secure() bool { return false }

// ProbeCrypto checks that crypto/rand can produce bytes.
func ProbeCrypto() error {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrCryptoUnusable, err)
	}
	return nil
}

// NewSource selects a RandomSource by kind. When the crypto source is
// requested but unusable, the weak source is returned only if allowWeak is set.
func NewSource(kind, seedHex string, allowWeak bool) (RandomSource, error) {
	switch kind {
	case "", SourceCrypto:
		if err := ProbeCrypto(); err != nil {
			if !allowWeak {
				return nil, err
			}
			slog.Warn("falling back to weak random source", "error", err)
			return NewWeakSource(), nil
		}
		return CryptoSource{}, nil
	case SourceWeak:
		slog.Warn("weak random source selected, passwords are predictable")
		return NewWeakSource(), nil
	case SourceSeeded:
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return nil, ErrInvalidSeed
		}
		return NewSeededSource(seed)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
}
