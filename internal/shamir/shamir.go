// Package shamir implements the split/reconstruct engine of spec.md
// §4.4-§4.5: it evaluates one polynomial per secret byte to produce N
// share records, and recovers the secret from any K (or more) of them by
// Lagrange interpolation at x=0. It operates purely on decoded Share
// records; encoding/decoding to wire formats is the shareformat package's
// job, and parameter/batch validation is the validate package's job, so
// Split and Reconstruct here assume their inputs have already been
// checked by the caller (the public facade always validates first).
package shamir

import (
	"sort"
	"strconv"

	"github.com/coldforge/shamirvault/internal/gf256"
	"github.com/coldforge/shamirvault/internal/memguard"
	"github.com/coldforge/shamirvault/internal/polynomial"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

// Share is a decoded share record: the x-coordinate and the per-byte
// polynomial values evaluated at x.
type Share struct {
	X byte
	Y []byte
}

// Split evaluates one random degree-(k-1) polynomial per byte of secret
// and returns n share records with x-coordinates 1..n, in increasing
// order. draw supplies k-1 random coefficient bytes per call; callers are
// expected to have already validated (n, k, len(secret)) and run the
// CSPRNG self-check.
func Split(secret []byte, n, k int, draw func(int) ([]byte, error)) ([]Share, error) {
	polys := make([]*polynomial.Polynomial, len(secret))
	for i, b := range secret {
		p, err := polynomial.New(b, k, draw)
		if err != nil {
			for _, done := range polys[:i] {
				if done != nil {
					done.Zero()
				}
			}
			return nil, err
		}
		polys[i] = p
	}
	defer func() {
		for _, p := range polys {
			p.Zero()
		}
	}()

	shares := make([]Share, n)
	for x := 1; x <= n; x++ {
		xb := byte(x)
		y := make([]byte, len(secret))
		for i, p := range polys {
			y[i] = p.Evaluate(xb)
		}
		shares[x-1] = Share{X: xb, Y: y}
	}

	return shares, nil
}

// Reconstruct deduplicates identical (x, Y) shares, requires the
// remainder to already be known-consistent (the validate package checks
// equal-x-differing-Y and equal-length invariants before this is called),
// sorts by x so traversal order is deterministic and testable, and
// recovers the secret by Lagrange interpolation at x=0. The Y slices of
// shares are wiped before this returns, per the memory-hygiene contract:
// only the returned secret survives.
func Reconstruct(shares []Share) ([]byte, error) {
	deduped := dedupeExact(shares)

	sorted := make([]Share, len(deduped))
	copy(sorted, deduped)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	secretLen := len(sorted[0].Y)
	weights, err := lagrangeWeights(sorted)
	if err != nil {
		for _, s := range shares {
			memguard.Wipe(s.Y)
		}
		return nil, err
	}

	secret := make([]byte, secretLen)
	for i := 0; i < secretLen; i++ {
		var val byte
		for j, s := range sorted {
			val = gf256.Add(val, gf256.Mul(s.Y[i], weights[j]))
		}
		secret[i] = val
	}

	for _, s := range shares {
		memguard.Wipe(s.Y)
	}
	memguard.Wipe(weights)

	return secret, nil
}

// dedupeExact collapses shares that agree on both x and Y, preserving
// first-seen order. A mismatched duplicate (same x, differing Y) is left
// for lagrangeWeights to reject, since validate.ShareBatch is expected to
// have already rejected it before Reconstruct is reachable; dedupeExact
// itself has no basis to prefer one differing value over the other.
func dedupeExact(shares []Share) []Share {
	type key struct {
		x byte
		y string
	}
	seen := make(map[key]bool, len(shares))
	out := make([]Share, 0, len(shares))
	for _, s := range shares {
		k := key{x: s.X, y: string(s.Y)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

// lagrangeWeights precomputes λ_j(0) = Π_{k≠j} x_k * inv(x_k ⊕ x_j) for
// every share j. The x-coordinates are the same across every byte
// position, so this is computed once and reused for all secretLen bytes.
// A zero denominator means two shares share an x-coordinate with
// differing Y, which is an invariant the caller was supposed to have
// already rejected; surfacing it as Internal rather than silently
// treating inv(0) as 0 keeps a caller bug from producing a
// plausible-looking wrong secret.
func lagrangeWeights(shares []Share) ([]byte, error) {
	weights := make([]byte, len(shares))
	for j, sj := range shares {
		weight := byte(1)
		for k, sk := range shares {
			if k == j {
				continue
			}
			denom := gf256.Sub(sk.X, sj.X)
			if denom == 0 {
				return nil, shamirerr.New(shamirerr.KindInternal,
					"lagrange interpolation hit a zero denominator: duplicate x-coordinate with differing value",
					"x", strconv.Itoa(int(sk.X)))
			}
			factor, ok := gf256.Div(sk.X, denom)
			if !ok {
				return nil, shamirerr.New(shamirerr.KindInternal,
					"lagrange interpolation failed to invert a denominator")
			}
			weight = gf256.Mul(weight, factor)
		}
		weights[j] = weight
	}
	return weights, nil
}
