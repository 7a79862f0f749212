package group

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// Csprng is a seeded, deterministic pseudo-random generator of field
// scalars. Given the same seed it produces the same sequence of draws,
// which is what lets the test suite reproduce a whole DKG run bit for
// bit from a fixed seed (spec §4.1, scenario S3).
//
// Internally it is an HKDF-Expand(SHA-256) stream keyed by the seed: no
// entropy is extracted from the seed (there would be nothing to extract
// a seed already is the entropy), it is simply expanded into an
// arbitrarily long pseudo-random byte stream.
//
// A Csprng is owned exclusively by its caller for the duration of use; it
// is not safe for concurrent draws from multiple goroutines. Partition
// work across goroutines with Subseed instead of sharing one instance
// (spec §5).
type Csprng struct {
	seed   []byte
	reader io.Reader
	epoch  uint32
}

// NewCsprng seeds a new deterministic generator from an arbitrary byte
// string.
func NewCsprng(seed []byte) *Csprng {
	seedCopy := append([]byte(nil), seed...)
	return &Csprng{
		seed:   seedCopy,
		reader: hkdf.Expand(sha256.New, seedCopy, []byte("eg-csprng-stream-v1")),
	}
}

// Read implements io.Reader by forwarding to the underlying HKDF stream,
// which lets a Csprng double as the randomness source for primitives
// that accept a plain io.Reader (e.g. crypto/rand.Prime). A single
// HKDF-Expand yields at most 255 blocks; when the current one runs out,
// Read continues on a fresh HKDF-Expand branch whose info label carries
// an epoch counter, so it never returns an error.
func (c *Csprng) Read(p []byte) (int, error) {
	for off := 0; off < len(p); {
		end := off + sha256.Size
		if end > len(p) {
			end = len(p)
		}
		if _, err := io.ReadFull(c.reader, p[off:end]); err != nil {
			c.epoch++
			info := append([]byte("eg-csprng-stream-v1"), byte(c.epoch>>24), byte(c.epoch>>16), byte(c.epoch>>8), byte(c.epoch))
			c.reader = hkdf.Expand(sha256.New, c.seed, info)
			continue
		}
		off = end
	}
	return len(p), nil
}

// NextBiguintLt draws a uniform scalar in [0, q) by rejection sampling
// over fixed-width big-endian draws the width of q (spec §4.1).
func (c *Csprng) NextBiguintLt(q *big.Int) *big.Int {
	nbytes := (q.BitLen() + 7) / 8
	if nbytes == 0 {
		nbytes = 1
	}

	buf := make([]byte, nbytes)
	for {
		if _, err := c.Read(buf); err != nil {
			// Read moves on to a fresh HKDF branch whenever one is
			// exhausted and never returns an error, so this is
			// unreachable.
			panic(err)
		}

		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(q) < 0 {
			return candidate
		}
	}
}

// Subseed derives an independent, deterministic child generator from a
// distinct label, without consuming this generator's own stream. Use one
// sub-seeded Csprng per goroutine when parallelizing independent
// exponentiations (spec §5) so results stay reproducible regardless of
// scheduling.
func (c *Csprng) Subseed(label []byte) *Csprng {
	sub := hkdf.Expand(sha256.New, c.seed, label)
	childSeed := make([]byte, sha256.Size)
	if _, err := io.ReadFull(sub, childSeed); err != nil {
		panic(err)
	}
	return NewCsprng(childSeed)
}
