// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// CharacterToken is a single non-digit character.
type CharacterToken struct {
	r rune
}

// NewCharacter returns a token for r. ASCII digits and invalid runes are
// rejected with INVALID_TOKEN.
func NewCharacter(r rune) (CharacterToken, error) {
	if !utf8.ValidRune(r) {
		return CharacterToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken,
			fmt.Sprintf("invalid rune %U", r))
	}
	if isDigitRune(r) {
		return CharacterToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken,
			fmt.Sprintf("character token cannot be a digit: %q", r))
	}
	return CharacterToken{r: r}, nil
}

// Rune returns the character.
func (c CharacterToken) Rune() rune { return c.r }

// Text returns the character as a string.
func (c CharacterToken) Text() string { return string(c.r) }

func (c CharacterToken) Kind() Kind { return KindCharacter }

func (c CharacterToken) Len(includeAllSourceChars bool) int {
	if includeAllSourceChars {
		return 1
	}
	return runeCount(c.CanonicalValue())
}

func (c CharacterToken) CanonicalValue() string { return norm.NFC.String(c.Text()) }

func (c CharacterToken) SourceCharacters() string { return c.Text() }

func (c CharacterToken) Compare(other Token) int { return CompareTokens(c, other) }

func (c CharacterToken) Equals(other Token) bool { return CompareTokens(c, other) == 0 }

func (CharacterToken) isToken() {}

// StringToken is a run of characters containing no ASCII digit.
type StringToken struct {
	text string
}

// NewString returns a token for s. Empty text and text containing an ASCII
// digit are rejected with INVALID_TOKEN.
func NewString(s string) (StringToken, error) {
	if s == "" {
		return StringToken{}, cdnerrors.New(cdnerrors.ErrCodeInvalidToken, "string token cannot be empty")
	}
	if i := strings.IndexFunc(s, isDigitRune); i >= 0 {
		return StringToken{}, cdnerrors.NewWithContext(cdnerrors.ErrCodeInvalidToken,
			"string token cannot contain digits", map[string]any{"text": s, "offset": i})
	}
	return StringToken{text: s}, nil
}

// NewText returns a CharacterToken when s is a single rune and a StringToken
// otherwise.
func NewText(s string) (Textual, error) {
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) && r != utf8.RuneError {
		return NewCharacter(r)
	}
	return NewString(s)
}

// Text returns the original text.
func (s StringToken) Text() string { return s.text }

func (s StringToken) Kind() Kind { return KindString }

func (s StringToken) Len(includeAllSourceChars bool) int {
	if includeAllSourceChars {
		return runeCount(s.text)
	}
	return runeCount(s.CanonicalValue())
}

func (s StringToken) CanonicalValue() string { return norm.NFC.String(s.text) }

func (s StringToken) SourceCharacters() string { return s.text }

func (s StringToken) Compare(other Token) int { return CompareTokens(s, other) }

func (s StringToken) Equals(other Token) bool { return CompareTokens(s, other) == 0 }

func (StringToken) isToken() {}

// text builds a textual token without validation. Callers guarantee that s is
// non-empty and digit free.
func text(s string) Textual {
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError {
		return CharacterToken{r: r}
	}
	return StringToken{text: s}
}

// delimiter is like text but maps "" to nil.
func delimiter(s string) Textual {
	if s == "" {
		return nil
	}
	return text(s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }
