package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// Fingerprint identifies the content of a file at a point in time.
type Fingerprint struct {
	Size    int64
	ModTime int64
	CRC     string
}

// FingerprintBytes computes a fingerprint for data already in memory.
func FingerprintBytes(data []byte) Fingerprint {
	return Fingerprint{
		Size: int64(len(data)),
		CRC:  fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)),
	}
}

// CalculateFileFingerprint hashes the whole file; project files are small.
func CalculateFileFingerprint(path string) (Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return Fingerprint{}, err
	}

	hash := crc32.NewIEEE()
	if _, err := io.Copy(hash, file); err != nil {
		return Fingerprint{}, err
	}

	return Fingerprint{
		Size:    stat.Size(),
		ModTime: stat.ModTime().Unix(),
		CRC:     fmt.Sprintf("%08x", hash.Sum32()),
	}, nil
}

// SameContent compares size and checksum, ignoring modification time.
func (f Fingerprint) SameContent(other Fingerprint) bool {
	return f.Size == other.Size && f.CRC == other.CRC
}
