// Package bases formats generator output in other alphabets and builds
// seeded tokens from them.
package bases

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/zxfonline/microrand/random"
)

const (
	NUMERALS          = "0123456789"
	LETTERS_LOWERCASE = "abcdefghijklmnopqrstuvwxyz"
)

var (
	ErrUnknownBase = errors.New("bases: unknown base")
	ErrBadDigit    = errors.New("bases: digit not in alphabet")
	ErrOverflow    = errors.New("bases: value overflows uint64")
	ErrBadLength   = errors.New("bases: token length must not be negative")
)

var (
	KNOWN_ALPHABETS   = make(map[int]string)
	LETTERS_UPPERCASE = strings.ToUpper(LETTERS_LOWERCASE)
)

func init() {
	for i := 2; i <= 10; i++ {
		KNOWN_ALPHABETS[i] = NUMERALS[0:i]
	}
	// 0-9 then lowercase letters, like native hex
	for i := 11; i <= 16; i++ {
		KNOWN_ALPHABETS[i] = NUMERALS + LETTERS_LOWERCASE[0:i-10]
	}
	KNOWN_ALPHABETS[26] = LETTERS_LOWERCASE
	KNOWN_ALPHABETS[36] = NUMERALS + LETTERS_LOWERCASE
	KNOWN_ALPHABETS[52] = LETTERS_LOWERCASE + LETTERS_UPPERCASE
	KNOWN_ALPHABETS[62] = NUMERALS + LETTERS_LOWERCASE + LETTERS_UPPERCASE
	// base-58 drops the look-alikes, Crockford base-32 drops ILOU
	KNOWN_ALPHABETS[58] = regexp.MustCompile("[0OlI]").ReplaceAllString(KNOWN_ALPHABETS[62], "")
	KNOWN_ALPHABETS[32] = NUMERALS + regexp.MustCompile("[ILOU]").ReplaceAllString(LETTERS_UPPERCASE, "")
}

func Alphabet(base int) (string, error) {
	alphabet, ok := KNOWN_ALPHABETS[base]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownBase, base)
	}
	return alphabet, nil
}

// Format returns num written in the alphabet for base.
func Format(num uint64, base int) (string, error) {
	alphabet, err := Alphabet(base)
	if err != nil {
		return "", err
	}
	b := uint64(len(alphabet))
	var chars []byte
	// at least once, so 0 becomes the alphabet's zero digit
	for {
		chars = append(chars, alphabet[num%b])
		num /= b
		if num == 0 {
			break
		}
	}
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}

// Parse is the inverse of Format.
func Parse(str string, base int) (uint64, error) {
	alphabet, err := Alphabet(base)
	if err != nil {
		return 0, err
	}
	b := uint64(len(alphabet))
	var num uint64
	for i := 0; i < len(str); i++ {
		digit := strings.IndexByte(alphabet, str[i])
		if digit < 0 {
			return 0, fmt.Errorf("%w: %q in %q", ErrBadDigit, str[i], str)
		}
		if num > (math.MaxUint64-uint64(digit))/b {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, str)
		}
		num = num*b + uint64(digit)
	}
	return num, nil
}

// Token draws length characters uniformly from the alphabet for base.
func Token(r random.Intner, length, base int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	alphabet, err := Alphabet(base)
	if err != nil {
		return "", err
	}
	chars := make([]byte, length)
	for i := range chars {
		chars[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(chars), nil
}
