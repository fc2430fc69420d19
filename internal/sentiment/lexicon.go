package sentiment

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// 否定词之后最多影响的词数
	negationWindow = 3
	// 被否定的情感词按此系数反转
	negationFactor = -0.5
)

// Lexicon 基于词典的极性打分器：对命中的情感词取平均，处理否定词与程度副词
type Lexicon struct {
	words        map[string]float64
	intensifiers map[string]float64
	negators     map[string]struct{}
}

// NewLexicon 使用内置词典
func NewLexicon() *Lexicon {
	l := &Lexicon{
		words:        make(map[string]float64, len(defaultWords)),
		intensifiers: make(map[string]float64, len(defaultIntensifiers)),
		negators:     make(map[string]struct{}, len(defaultNegators)),
	}
	for w, p := range defaultWords {
		l.words[w] = p
	}
	for w, m := range defaultIntensifiers {
		l.intensifiers[w] = m
	}
	for _, w := range defaultNegators {
		l.negators[w] = struct{}{}
	}
	return l
}

// LoadLexicon 在内置词典之上叠加外部词表，path 为空时只用内置词典
func LoadLexicon(path string) (*Lexicon, error) {
	l := NewLexicon()
	if path == "" {
		return l, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	overrides, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	for w, p := range overrides {
		l.words[w] = p
	}
	return l, nil
}

// ParseLexicon 读取 "word,polarity" 格式的词表，# 开头的行为注释
func ParseLexicon(r io.Reader) (map[string]float64, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	out := make(map[string]float64)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected word,polarity", line)
		}
		word := normalizeToken(row[0])
		if word == "" {
			continue
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("line %d: invalid polarity %q", line, row[1])
		}
		out[word] = Clamp(p)
	}
	return out, nil
}

// Size 词典中的情感词数量
func (l *Lexicon) Size() int {
	return len(l.words)
}

func (l *Lexicon) Polarity(_ context.Context, text string) (float64, error) {
	return l.Score(text), nil
}

// Score 纯函数打分，无命中情感词时为 0
func (l *Lexicon) Score(text string) float64 {
	var (
		sum       float64
		hits      int
		negated   bool
		window    int
		intensity = 1.0
	)
	for _, clause := range splitClauses(text) {
		negated, window, intensity = false, 0, 1.0
		for _, tok := range Tokenize(clause) {
			if l.isNegator(tok) {
				negated = true
				window = negationWindow
				continue
			}
			if m, ok := l.intensifiers[tok]; ok {
				intensity *= m
				continue
			}
			if p, ok := l.words[tok]; ok {
				v := p * intensity
				if negated {
					v *= negationFactor
				}
				sum += Clamp(v)
				hits++
				negated, window, intensity = false, 0, 1.0
				continue
			}
			intensity = 1.0
			if negated {
				window--
				if window <= 0 {
					negated = false
				}
			}
		}
	}
	if hits == 0 {
		return 0
	}
	return Clamp(sum / float64(hits))
}

func (l *Lexicon) isNegator(tok string) bool {
	if _, ok := l.negators[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}

// splitClauses 按句读切分，否定词与程度词不跨越子句
func splitClauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', ',', ';', '!', '?', ':', '。', '，', '；', '！', '？':
			return true
		}
		return false
	})
}

// Tokenize 小写、NFKC 归一化后按非字母数字切分，保留词内撇号
func Tokenize(text string) []string {
	text = strings.ToLower(norm.NFKC.String(text))
	text = strings.ReplaceAll(text, "’", "'")
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func normalizeToken(s string) string {
	toks := Tokenize(s)
	if len(toks) != 1 {
		return ""
	}
	return toks[0]
}
