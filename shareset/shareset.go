// Package shareset decodes the external JSON share-collection document and
// drives reconstruction. The document shape is
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2", "value": "111" },
//	  ...
//	}
//
// where each non-"keys" key is a decimal x-coordinate and its base/value pair
// encodes the y-coordinate. The document is an untrusted transfer shape: it
// is converted to shamir.Share values at the boundary and never used past it.
package shareset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/mbellotti/polyrecover/digits"
	"github.com/mbellotti/polyrecover/shamir"
)

// Keys carries the document metadata: N is the advertised total share count
// (informational only, never validated against the actual count), K is the
// reconstruction threshold.
type Keys struct {
	N int `json:"n"`
	K int `json:"k"`
}

// entry is the encoded form of one share's y-coordinate.
type entry struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// ShareSet is a decoded share collection: the threshold metadata plus every
// share parsed into exact integers, sorted ascending by x.
type ShareSet struct {
	Keys   Keys
	Shares []*shamir.Share
}

// UnmarshalJSON decodes the external document, base-decoding every share on
// the spot. Decoding is all-or-nothing: a single malformed entry fails the
// whole document.
func (ss *ShareSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return errors.New(`missing "keys" entry`)
	}
	var keys Keys
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return fmt.Errorf(`invalid "keys" entry: %w`, err)
	}
	if keys.K < 1 {
		return fmt.Errorf("threshold k must be at least 1, got %d", keys.K)
	}

	shares := make([]*shamir.Share, 0, len(raw)-1)
	for key, val := range raw {
		if key == "keys" {
			continue
		}
		share, err := decodeShare(key, val)
		if err != nil {
			return err
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].X.Cmp(shares[j].X) < 0
	})

	ss.Keys = keys
	ss.Shares = shares
	return nil
}

// decodeShare turns one `"<x>": {"base": ..., "value": ...}` pair into a
// Share.
func decodeShare(key string, val json.RawMessage) (*shamir.Share, error) {
	x, ok := new(big.Int).SetString(key, 10)
	if !ok || x.Sign() < 0 {
		return nil, fmt.Errorf("invalid x-coordinate key %q: want a non-negative decimal integer", key)
	}

	var e entry
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, fmt.Errorf("invalid entry for x=%s: %w", x, err)
	}
	base, err := strconv.Atoi(strings.TrimSpace(e.Base))
	if err != nil {
		return nil, fmt.Errorf("invalid base %q for x=%s", e.Base, x)
	}
	y, err := digits.Parse(e.Value, base)
	if err != nil {
		return nil, fmt.Errorf("share x=%s: %w", x, err)
	}
	return &shamir.Share{X: x, Y: y}, nil
}

// Reconstruct recovers the constant term from the first k shares by
// ascending x. Any k consistent shares determine the same constant, so
// first-k is a deterministic convention, not a mathematical requirement.
func (ss *ShareSet) Reconstruct() (*big.Int, error) {
	if err := ss.check(); err != nil {
		return nil, err
	}
	return shamir.InterpolateAtZero(ss.Shares[:ss.Keys.K])
}

// ReconstructVerified recovers the constant term and additionally
// cross-checks every share beyond the threshold against it, rejecting
// collections where a surplus share is off the polynomial.
func (ss *ShareSet) ReconstructVerified() (*big.Int, error) {
	if err := ss.check(); err != nil {
		return nil, err
	}
	return shamir.InterpolateAtZeroVerified(ss.Shares, ss.Keys.K)
}

func (ss *ShareSet) check() error {
	if len(ss.Shares) < ss.Keys.K {
		return fmt.Errorf("%w: need %d, have %d", shamir.ErrInsufficientShares, ss.Keys.K, len(ss.Shares))
	}
	return nil
}

// Recover decodes a share-collection document and reconstructs its secret in
// one step.
func Recover(data []byte) (*big.Int, error) {
	var ss ShareSet
	if err := json.Unmarshal(data, &ss); err != nil {
		return nil, err
	}
	return ss.Reconstruct()
}
