package srs

import "fmt"

// ContentType identifies which kind of learning content a card refers to.
type ContentType string

const (
	ContentTypeHiragana   ContentType = "hiragana"
	ContentTypeKatakana   ContentType = "katakana"
	ContentTypeKanji      ContentType = "kanji"
	ContentTypeVocabulary ContentType = "vocabulary"
	ContentTypeGrammar    ContentType = "grammar"
)

// ContentTypes lists all supported content types.
var ContentTypes = []ContentType{
	ContentTypeHiragana,
	ContentTypeKatakana,
	ContentTypeKanji,
	ContentTypeVocabulary,
	ContentTypeGrammar,
}

// ParseContentType converts a string into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(s)
	if !ct.Valid() {
		return "", fmt.Errorf("unknown content type: %q", s)
	}
	return ct, nil
}

// Valid reports whether the content type is one of the supported kinds.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeHiragana, ContentTypeKatakana, ContentTypeKanji, ContentTypeVocabulary, ContentTypeGrammar:
		return true
	}
	return false
}

func (ct ContentType) String() string {
	return string(ct)
}
