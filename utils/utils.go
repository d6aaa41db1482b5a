package utils

import (
	"bytes"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ConcatBytes concatenates two byte slices.
func ConcatBytes(a, b []byte) []byte {
	var buf bytes.Buffer
	buf.Write(a)
	buf.Write(b)
	return buf.Bytes()
}

// Sha3Hash converts a message to a hash value using SHA3-256.
func Sha3Hash(message []byte) ([]byte, error) {
	sha := sha3.New256()
	_, err := sha.Write(message)
	if err != nil {
		return nil, err
	}
	return sha.Sum(nil), nil
}

// WrapWords splits text into lines of at most width characters without
// ever breaking inside a word, so a seed phrase printed to a terminal can
// be copied back without joined or split words. Words longer than the
// width get a line of their own.
func WrapWords(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
