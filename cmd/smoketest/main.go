// Command smoketest loads the embedded seed dictionary and runs a
// handful of analyze/pronounce/romanize calls against it, printing
// results for manual inspection. It is not a test binary; see the
// package _test.go files for the conformance fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jake1104/KULIM/analyzer"
	"github.com/jake1104/KULIM/data"
	"github.com/jake1104/KULIM/dict"
)

var analyzeSamples = []string{
	"친구가 학교에 갔습니다.",
	"오늘 날씨가 정말 좋다.",
	"그 사람은 책을 많이 읽는다.",
}

var pronounceSamples = []string{
	"밥이", "독립", "값이", "읽고", "같이", "앉다", "싫어", "놓고",
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	trie, err := buildTrie(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build seed trie")
	}

	az := analyzer.New(trie, log)

	fmt.Println("== analyze ==")
	for _, s := range analyzeSamples {
		morphs := az.Analyze(s)
		fmt.Printf("%q ->\n", s)
		for _, m := range morphs {
			fmt.Printf("  %s/%s (lemma=%s, conf=%.1f)\n", m.Surface, m.POS, m.Lemma, m.Confidence)
			for _, sub := range m.Sub {
				fmt.Printf("    + %s (lemma=%s)\n", sub.POS, sub.Lemma)
			}
		}
	}

	fmt.Println("\n== pronounce / romanize ==")
	for _, s := range pronounceSamples {
		p := az.Pronounce(s)
		fmt.Printf("%s -> %s (phonetic=%s, literal=%s)\n", s, p, az.Romanize(s), az.RomanizeStandard(s))
	}
}

func buildTrie(log zerolog.Logger) (*dict.Trie, error) {
	entries, err := data.Entries()
	if err != nil {
		return nil, err
	}
	trie := dict.New()
	for _, e := range entries {
		if err := trie.Insert(e.Surface, e.POS, e.Lemma); err != nil {
			return nil, err
		}
	}
	if err := trie.Build(true); err != nil {
		return nil, err
	}
	log.Info().Int("entries", len(entries)).Bool("plain_backend", trie.UsingPlainBackend()).Msg("seed trie built")
	return trie, nil
}
