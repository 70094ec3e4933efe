package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
)

// FingerprintSource supplies the identity signals used to derive the
// process fingerprint. Nil fields fall back to the real system signals, so
// the zero value describes production behavior; tests substitute failing or
// deterministic functions to exercise the fallback paths.
type FingerprintSource struct {
	// Interfaces enumerates descriptions of the network interfaces
	// available to the process.
	Interfaces func() ([]string, error)
	// ProcessID returns the OS process id.
	ProcessID func() (int, error)
	// LoaderID identifies the in-process isolation unit hosting this copy
	// of the package.
	LoaderID func() string
	// Random supplies the substitution value used when an identity signal
	// is unavailable.
	Random func() (uint32, error)
}

// processAnchor exists only for its address: distinct copies of this
// package linked into one process (for example via plugins) get distinct
// anchor addresses and therefore distinct process pieces, the same way
// distinct classloaders did in the convention this format comes from.
var processAnchor byte

func systemInterfaces() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	descs := make([]string, 0, len(ifaces))
	for _, ifi := range ifaces {
		descs = append(descs, ifi.Name+"/"+ifi.HardwareAddr.String())
	}
	return descs, nil
}

func systemProcessID() (int, error) { return os.Getpid(), nil }

func systemLoaderID() string { return fmt.Sprintf("%p", &processAnchor) }

func randomUint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func hash32(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// deriveFingerprint computes the combined machine+process identity value
// stored in the machine field of every generated ObjectID. The machine
// piece occupies the high 16 bits, the process piece the low 16. Signal
// failures degrade to random substitution; only a failing Random source is
// fatal, since at that point there is no safe fallback left.
func deriveFingerprint(src FingerprintSource, logger *slog.Logger) (uint32, error) {
	if src.Interfaces == nil {
		src.Interfaces = systemInterfaces
	}
	if src.ProcessID == nil {
		src.ProcessID = systemProcessID
	}
	if src.LoaderID == nil {
		src.LoaderID = systemLoaderID
	}
	if src.Random == nil {
		src.Random = randomUint32
	}

	var machinePiece uint32
	descs, err := src.Interfaces()
	if err != nil || len(descs) == 0 {
		r, rerr := src.Random()
		if rerr != nil {
			return 0, &FingerprintError{Err: rerr}
		}
		logger.Warn("objectid: no usable network interface signal, substituting random machine piece", "error", err)
		machinePiece = r << 16
	} else {
		machinePiece = hash32(strings.Join(descs, "")) << 16
	}

	var pidHex string
	pid, err := src.ProcessID()
	if err != nil {
		r, rerr := src.Random()
		if rerr != nil {
			return 0, &FingerprintError{Err: rerr}
		}
		logger.Warn("objectid: process id unavailable, substituting random process signal", "error", err)
		pidHex = strconv.FormatUint(uint64(r), 16)
	} else {
		pidHex = strconv.FormatUint(uint64(uint32(pid)), 16)
	}
	processPiece := hash32(pidHex+src.LoaderID()) & 0xFFFF

	fp := machinePiece | processPiece
	logger.Debug("objectid: derived process fingerprint", "fingerprint", fmt.Sprintf("%08x", fp))
	return fp, nil
}
