package objectid

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeriveFingerprint_Deterministic(t *testing.T) {
	src := FingerprintSource{
		Interfaces: func() ([]string, error) { return []string{"eth0/aa:bb:cc:dd:ee:ff", "lo/"}, nil },
		ProcessID:  func() (int, error) { return 0x1234, nil },
		LoaderID:   func() string { return "c0ffee" },
		Random:     func() (uint32, error) { t.Fatal("random must not be consulted"); return 0, nil },
	}

	fp, err := deriveFingerprint(src, discardLogger())
	require.NoError(t, err)

	wantMachine := hash32("eth0/aa:bb:cc:dd:ee:fflo/") << 16
	wantProcess := hash32("1234c0ffee") & 0xFFFF
	assert.Equal(t, wantMachine|wantProcess, fp)

	again, err := deriveFingerprint(src, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, fp, again, "same signals must derive the same fingerprint")
}

func TestDeriveFingerprint_MachinePieceShape(t *testing.T) {
	src := FingerprintSource{
		Interfaces: func() ([]string, error) { return []string{"eth0"}, nil },
		ProcessID:  func() (int, error) { return 1, nil },
		LoaderID:   func() string { return "0" },
	}

	fp, err := deriveFingerprint(src, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, hash32("eth0")&0xFFFF, fp>>16, "high 16 bits hold the shifted interface hash")
}

func TestDeriveFingerprint_InterfaceFailureFallsBackToRandom(t *testing.T) {
	tests := []struct {
		name       string
		interfaces func() ([]string, error)
	}{
		{"enumeration error", func() ([]string, error) { return nil, errors.New("no netlink") }},
		{"no interfaces", func() ([]string, error) { return nil, nil }},
		{"empty list", func() ([]string, error) { return []string{}, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := FingerprintSource{
				Interfaces: tt.interfaces,
				ProcessID:  func() (int, error) { return 0x1234, nil },
				LoaderID:   func() string { return "c0ffee" },
				Random:     func() (uint32, error) { return 0xDEAD1111, nil },
			}

			fp, err := deriveFingerprint(src, discardLogger())
			require.NoError(t, err)

			wantProcess := hash32("1234c0ffee") & 0xFFFF
			randomPiece := uint32(0xDEAD1111)
			assert.Equal(t, randomPiece<<16|wantProcess, fp,
				"machine piece must be the random substitute shifted into the high bits")
		})
	}
}

func TestDeriveFingerprint_ProcessIDFailureFallsBackToRandom(t *testing.T) {
	src := FingerprintSource{
		Interfaces: func() ([]string, error) { return []string{"eth0"}, nil },
		ProcessID:  func() (int, error) { return 0, errors.New("no procfs") },
		LoaderID:   func() string { return "c0ffee" },
		Random:     func() (uint32, error) { return 0xBEEF, nil },
	}

	fp, err := deriveFingerprint(src, discardLogger())
	require.NoError(t, err)

	wantMachine := hash32("eth0") << 16
	wantProcess := hash32("beefc0ffee") & 0xFFFF
	assert.Equal(t, wantMachine|wantProcess, fp)
}

func TestDeriveFingerprint_RandomFailureIsFatal(t *testing.T) {
	src := FingerprintSource{
		Interfaces: func() ([]string, error) { return nil, errors.New("no netlink") },
		ProcessID:  func() (int, error) { return 1, nil },
		LoaderID:   func() string { return "0" },
		Random:     func() (uint32, error) { return 0, errors.New("entropy exhausted") },
	}

	_, err := deriveFingerprint(src, discardLogger())
	var fe *FingerprintError
	require.ErrorAs(t, err, &fe)
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestNewGenerator_FingerprintFailurePropagates(t *testing.T) {
	_, err := NewGenerator(WithFingerprintSource(FingerprintSource{
		Interfaces: func() ([]string, error) { return nil, errors.New("no netlink") },
		Random:     func() (uint32, error) { return 0, errors.New("entropy exhausted") },
	}), WithLogger(discardLogger()))

	var fe *FingerprintError
	require.ErrorAs(t, err, &fe)
}

func TestDeriveFingerprint_SystemDefaults(t *testing.T) {
	fp, err := deriveFingerprint(FingerprintSource{}, discardLogger())
	require.NoError(t, err)

	again, err := deriveFingerprint(FingerprintSource{}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, fp, again, "system signals are stable within a process")
}
