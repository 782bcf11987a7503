// Package digest computes hex-encoded message digests over byte slices
// and streams. Output is always lowercase hex, matching the format the
// rest of the system stores and compares.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// Algorithm selects one of the supported digest functions.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// New returns a fresh hash.Hash for the algorithm, or an error for an
// unknown name.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("digest: unknown algorithm %q", string(a))
	}
}

// HexSize returns the length of the hex string the algorithm produces.
func (a Algorithm) HexSize() (int, error) {
	h, err := a.New()
	if err != nil {
		return 0, err
	}
	return hex.EncodedLen(h.Size()), nil
}

// Sum hashes data and returns the lowercase hex digest.
func (a Algorithm) Sum(data []byte) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumReader hashes everything readable from r and returns the lowercase
// hex digest. The reader is consumed to EOF.
func (a Algorithm) SumReader(r io.Reader) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("digest: reading input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5Hex returns the lowercase hex MD5 digest of data.
func MD5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// SHA1Hex returns the lowercase hex SHA-1 digest of data.
func SHA1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// SHA256Hex returns the lowercase hex SHA-256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA512Hex returns the lowercase hex SHA-512 digest of data.
func SHA512Hex(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}
