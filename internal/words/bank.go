package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// WordDef is a secret word together with its one-line description.
type WordDef struct {
	Word        string `json:"word"`        // Upper-case secret word (e.g., "SWIFT")
	Description string `json:"description"` // Hint text shown after enough wrong guesses
}

// WordsFile represents the structure of words.json.
type WordsFile struct {
	Words []WordDef `json:"words"`
}

// wordsFile is the embedded dictionary.
const wordsFile = "words.json"

// LoadWords loads word definitions from the embedded words.json file.
func LoadWords() ([]WordDef, error) {
	content, err := dataFS.ReadFile(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", wordsFile, err)
	}

	var file WordsFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", wordsFile, err)
	}
	return file.Words, nil
}

// Bank is the fixed dictionary of secret words. Order is preserved from
// words.json so that seeded selection is reproducible.
type Bank struct {
	byWord map[string]*WordDef
	all    []WordDef
}

// NewBank creates a bank from word definitions. Words are upper-cased;
// duplicates and missing descriptions are rejected.
func NewBank(defs []WordDef) (*Bank, error) {
	bank := &Bank{
		byWord: make(map[string]*WordDef, len(defs)),
		all:    make([]WordDef, 0, len(defs)),
	}
	for _, def := range defs {
		def.Word = strings.ToUpper(strings.TrimSpace(def.Word))
		if def.Word == "" {
			return nil, errors.New("word bank entry has no word")
		}
		if strings.TrimSpace(def.Description) == "" {
			return nil, fmt.Errorf("word %s has no description", def.Word)
		}
		if _, ok := bank.byWord[def.Word]; ok {
			return nil, fmt.Errorf("duplicate word %s", def.Word)
		}
		bank.all = append(bank.all, def)
		bank.byWord[def.Word] = &bank.all[len(bank.all)-1]
	}
	return bank, nil
}

// LoadBank loads and creates a bank from the embedded words.json.
func LoadBank() (*Bank, error) {
	defs, err := LoadWords()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no words loaded from words.json")
	}
	return NewBank(defs)
}

// Lookup returns the definition for word, ignoring case, or nil if absent.
func (b *Bank) Lookup(word string) *WordDef {
	return b.byWord[strings.ToUpper(strings.TrimSpace(word))]
}

// Pick selects a word uniformly at random using rng.
func (b *Bank) Pick(rng *rand.Rand) *WordDef {
	if len(b.all) == 0 {
		return nil
	}
	return &b.all[rng.Intn(len(b.all))]
}

// Count returns the number of words in the bank.
func (b *Bank) Count() int {
	return len(b.all)
}
