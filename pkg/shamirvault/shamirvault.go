// Package shamirvault is the public facade of the module: the five
// operations of spec.md §6 (Init, Split, Reconstruct, ValidateParameters,
// Teardown), wiring the CSPRNG gate, polynomial engine, split/reconstruct
// core, wire-format codec, validator, and sensitive-memory registry
// together. It is the only package external callers import.
package shamirvault

import (
	cryptorand "crypto/rand"
	"errors"
	"strconv"
	"sync"

	"github.com/coldforge/shamirvault/internal/csprng"
	"github.com/coldforge/shamirvault/internal/gf256"
	"github.com/coldforge/shamirvault/internal/memguard"
	"github.com/coldforge/shamirvault/internal/obslog"
	"github.com/coldforge/shamirvault/internal/shamir"
	"github.com/coldforge/shamirvault/internal/shareformat"
	"github.com/coldforge/shamirvault/internal/validate"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

var (
	initOnce   sync.Once
	initErr    error
	logger     = obslog.NullLogger()
	loggerLock sync.Mutex
)

// SetLogger replaces the package-wide logger used for categorical
// diagnostics. It never receives secret bytes or decoded share values,
// only operation names, counts, and error kinds. Passing nil restores
// the silent default.
func SetLogger(l *obslog.Logger) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	if l == nil {
		l = obslog.NullLogger()
	}
	logger = l
}

func currentLogger() *obslog.Logger {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	return logger
}

// Init binds the CSPRNG gate to the OS cryptographic source, locks it
// against further replacement, and runs the three-sample self-check of
// spec.md §4.2. It must succeed before Split or Reconstruct is called;
// a RandomnessUnavailable failure is fatal to the process per spec.md §7.
func Init() error {
	initOnce.Do(func() {
		if gf256.Broken() {
			initErr = shamirerr.New(shamirerr.KindInternal, "GF(2^8) table self-check failed")
			currentLogger().Errorf("gf256 table self-check failed", "kind", string(shamirerr.KindInternal))
			return
		}
		if err := csprng.SetSource(cryptorand.Reader); err != nil {
			initErr = err
			return
		}
		csprng.Lock()
		if err := csprng.Verify(); err != nil {
			initErr = err
			currentLogger().Errorf("csprng self-check failed", "kind", kindOf(err))
			return
		}
		currentLogger().Debugf("initialized")
	})
	return initErr
}

// ValidateParameters checks (n, k, secretLen) against spec.md §4.4's
// ranges without touching randomness or performing any split.
func ValidateParameters(n, k, secretLen int) error {
	return validate.Parameters(n, k, secretLen)
}

// Split divides secret into n shares requiring any k of them to
// reconstruct, returning each share encoded as a padded Base62 string.
func Split(secret []byte, n, k int) ([]string, error) {
	if err := validate.Parameters(n, k, len(secret)); err != nil {
		return nil, err
	}
	if err := validate.SecretBytes(secret); err != nil {
		return nil, err
	}
	if err := csprng.Verify(); err != nil {
		currentLogger().Errorf("csprng self-check failed", "kind", kindOf(err))
		return nil, err
	}

	draw := func(count int) ([]byte, error) {
		return csprng.RandomBytes(count)
	}

	shares, err := shamir.Split(secret, n, k, draw)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, s := range shares {
			memguard.Wipe(s.Y)
		}
	}()

	lines := make([]string, len(shares))
	for i, s := range shares {
		line, err := shareformat.EncodeBase62(s.X, s.Y, draw)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}

	currentLogger().Debugf("split complete", "n", n, "k", k, "secret_len", len(secret))
	return lines, nil
}

// Reconstruct decodes shareLines (a mix of legacy hex and Base62 lines is
// permitted; blank lines are skipped) and recovers the original secret
// from any k or more of them.
func Reconstruct(shareLines []string) ([]byte, error) {
	shares := make([]shamir.Share, 0, len(shareLines))
	for _, line := range shareLines {
		share, blank, err := shareformat.DecodeLine(line)
		if err != nil {
			currentLogger().Errorf("malformed share line", "kind", kindOf(err))
			return nil, err
		}
		if blank {
			continue
		}
		shares = append(shares, share)
	}

	if err := validate.ShareBatch(shares); err != nil {
		currentLogger().Errorf("share batch rejected", "kind", kindOf(err))
		return nil, err
	}

	secret, err := shamir.Reconstruct(shares)
	if err != nil {
		currentLogger().Errorf("reconstruct failed", "kind", kindOf(err))
		return nil, err
	}
	currentLogger().Debugf("reconstruct complete", "shares", strconv.Itoa(len(shares)))
	return secret, nil
}

// Teardown wipes every buffer still held in the sensitive-memory registry
// and requests a garbage collection pass. Split and Reconstruct do not
// register their buffers: they wipe secret-derived values (polynomial
// coefficients, share values, Lagrange weights) directly with
// memguard.Wipe, so the registry holds only what a host has registered.
func Teardown() {
	memguard.Sweep()
	currentLogger().Debugf("teardown complete")
}

func kindOf(err error) string {
	var se *shamirerr.Error
	if !errors.As(err, &se) {
		return "unknown"
	}
	return string(se.Kind)
}
